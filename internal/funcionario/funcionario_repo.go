package funcionario

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	FindAllRows(ctx context.Context) ([]FuncionarioRow, error)
	FindRowByID(ctx context.Context, id int64) (*FuncionarioRow, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByCPFOrEmail(ctx context.Context, cpf, email string, excludeID int64) (bool, error)

	InsertRoot(ctx context.Context, f *Funcionario) error
	UpdateRoot(ctx context.Context, f *Funcionario) error
	InsertDadosPessoais(ctx context.Context, d *DadosPessoais) error
	UpdateDadosPessoais(ctx context.Context, d *DadosPessoais) error
	InsertEndereco(ctx context.Context, e *Endereco) error
	UpdateEndereco(ctx context.Context, e *Endereco) error
	InsertDadosProfissionais(ctx context.Context, d *DadosProfissionais) error
	UpdateDadosProfissionais(ctx context.Context, d *DadosProfissionais) error
	InsertDadosBancarios(ctx context.Context, d *DadosBancarios) error
	UpdateDadosBancarios(ctx context.Context, d *DadosBancarios) error
	ReplaceDiasFolga(ctx context.Context, funcionarioID int64, dias []string) error
	ReplaceDependentes(ctx context.Context, funcionarioID int64, deps []Dependente) error
	DeleteCascade(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository to a transaction handle so the service
// can run the multi-table write atomically.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindAllRows(ctx context.Context) ([]FuncionarioRow, error) {
	var rows []FuncionarioRow
	err := r.db.WithContext(ctx).Raw(funcionarioListQuery).Scan(&rows).Error
	return rows, err
}

func (r *repository) FindRowByID(ctx context.Context, id int64) (*FuncionarioRow, error) {
	var row FuncionarioRow
	result := r.db.WithContext(ctx).Raw(funcionarioDetailQuery, id).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	// Raw+Scan reports zero rows through RowsAffected, not ErrRecordNotFound.
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Funcionario{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsByCPFOrEmail(ctx context.Context, cpf, email string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&Funcionario{}).
		Where("cpf = ? OR email = ?", cpf, email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) InsertRoot(ctx context.Context, f *Funcionario) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *repository) UpdateRoot(ctx context.Context, f *Funcionario) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *repository) InsertDadosPessoais(ctx context.Context, d *DadosPessoais) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// The 1:1 child updates run as upserts (ON DUPLICATE KEY UPDATE on
// funcionario_id). An employee whose child row went missing heals on
// the next save instead of silently updating zero rows.
func (r *repository) UpdateDadosPessoais(ctx context.Context, d *DadosPessoais) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(d).Error
}

func (r *repository) InsertEndereco(ctx context.Context, e *Endereco) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) UpdateEndereco(ctx context.Context, e *Endereco) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(e).Error
}

func (r *repository) InsertDadosProfissionais(ctx context.Context, d *DadosProfissionais) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) UpdateDadosProfissionais(ctx context.Context, d *DadosProfissionais) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(d).Error
}

func (r *repository) InsertDadosBancarios(ctx context.Context, d *DadosBancarios) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) UpdateDadosBancarios(ctx context.Context, d *DadosBancarios) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(d).Error
}

// ReplaceDiasFolga rewrites the day-off set wholesale. The set is small
// and unkeyed, so delete-then-insert is simpler than diffing.
func (r *repository) ReplaceDiasFolga(ctx context.Context, funcionarioID int64, dias []string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("funcionario_id = ?", funcionarioID).Delete(&DiaFolga{}).Error; err != nil {
		return err
	}
	for _, dia := range dias {
		if err := db.Create(&DiaFolga{FuncionarioID: funcionarioID, Dia: dia}).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) ReplaceDependentes(ctx context.Context, funcionarioID int64, deps []Dependente) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("funcionario_id = ?", funcionarioID).Delete(&Dependente{}).Error; err != nil {
		return err
	}
	for i := range deps {
		deps[i].ID = 0
		deps[i].FuncionarioID = funcionarioID
		if err := db.Create(&deps[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeleteCascade removes the employee and every child row. Children go
// first so the foreign keys never dangle mid-transaction.
func (r *repository) DeleteCascade(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)
	children := []interface{}{
		&Dependente{},
		&DiaFolga{},
		&DadosBancarios{},
		&DadosProfissionais{},
		&Endereco{},
		&DadosPessoais{},
	}
	for _, child := range children {
		if err := db.Where("funcionario_id = ?", id).Delete(child).Error; err != nil {
			return err
		}
	}
	return db.Delete(&Funcionario{}, "id = ?", id).Error
}
