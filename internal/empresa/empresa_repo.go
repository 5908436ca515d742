package empresa

import (
	"context"

	"gorm.io/gorm"
)

const empresaDetailQuery = `
	SELECT
		e.id,
		e.razao_social,
		e.nome_fantasia,
		e.cnpj,
		e.porte,
		e.inscricao_estadual,
		e.inscricao_municipal,
		e.id_cnae,
		c.codigo AS cnae,
		c.descricao AS descricao_cnae,
		e.regime_tributario,
		DATE_FORMAT(e.data_fundacao, '%Y-%m-%d') AS data_fundacao,
		e.natureza_juridica,
		e.cep,
		e.cidade,
		e.estado,
		e.rua,
		e.numero,
		e.bairro,
		e.complemento,
		e.email,
		e.telefone,
		e.site,
		e.pessoa_contato,
		e.situacao_cadastral
	FROM empresa e
	LEFT JOIN cnae c ON e.id_cnae = c.id
	WHERE e.id = ?`

const atividadesSecundariasQuery = `
	SELECT c.id AS id_cnae, c.codigo AS cnae, c.descricao AS descricao_cnae
	FROM empresa_atividade_secundaria eas
	JOIN cnae c ON eas.id_cnae = c.id
	WHERE eas.empresa_id = ?`

// EmpresaRow is the detail scan target; CNAE columns are nullable
// because the lookup is LEFT-joined.
type EmpresaRow struct {
	ID                 int64   `gorm:"column:id"`
	RazaoSocial        string  `gorm:"column:razao_social"`
	NomeFantasia       *string `gorm:"column:nome_fantasia"`
	CNPJ               string  `gorm:"column:cnpj"`
	Porte              string  `gorm:"column:porte"`
	InscricaoEstadual  *string `gorm:"column:inscricao_estadual"`
	InscricaoMunicipal string  `gorm:"column:inscricao_municipal"`
	IDCnae             int64   `gorm:"column:id_cnae"`
	Cnae               *string `gorm:"column:cnae"`
	DescricaoCnae      *string `gorm:"column:descricao_cnae"`
	RegimeTributario   string  `gorm:"column:regime_tributario"`
	DataFundacao       string  `gorm:"column:data_fundacao"`
	NaturezaJuridica   *string `gorm:"column:natureza_juridica"`
	CEP                string  `gorm:"column:cep"`
	Cidade             string  `gorm:"column:cidade"`
	Estado             string  `gorm:"column:estado"`
	Rua                string  `gorm:"column:rua"`
	Numero             string  `gorm:"column:numero"`
	Bairro             string  `gorm:"column:bairro"`
	Complemento        *string `gorm:"column:complemento"`
	Email              string  `gorm:"column:email"`
	Telefone           string  `gorm:"column:telefone"`
	Site               *string `gorm:"column:site"`
	PessoaContato      *string `gorm:"column:pessoa_contato"`
	SituacaoCadastral  string  `gorm:"column:situacao_cadastral"`
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	FindAllSummaries(ctx context.Context) ([]EmpresaSummary, error)
	FindRowByID(ctx context.Context, id int64) (*EmpresaRow, error)
	FindAtividades(ctx context.Context, empresaID int64) ([]AtividadeView, error)
	FindCNAEByCodigo(ctx context.Context, formatted, sanitized string) (*CNAE, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)

	Insert(ctx context.Context, e *Empresa) error
	Update(ctx context.Context, e *Empresa) error
	ReplaceAtividades(ctx context.Context, empresaID int64, cnaeIDs []int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindAllSummaries(ctx context.Context) ([]EmpresaSummary, error) {
	var summaries []EmpresaSummary
	err := r.db.WithContext(ctx).
		Table("empresa").
		Select("id, razao_social, cnpj, inscricao_municipal, email, telefone, cidade, estado").
		Scan(&summaries).Error
	return summaries, err
}

func (r *repository) FindRowByID(ctx context.Context, id int64) (*EmpresaRow, error) {
	var row EmpresaRow
	result := r.db.WithContext(ctx).Raw(empresaDetailQuery, id).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *repository) FindAtividades(ctx context.Context, empresaID int64) ([]AtividadeView, error) {
	var atividades []AtividadeView
	err := r.db.WithContext(ctx).Raw(atividadesSecundariasQuery, empresaID).Scan(&atividades).Error
	return atividades, err
}

// FindCNAEByCodigo matches the stored code against both the formatted
// and the bare-digit spelling, so clients can send either.
func (r *repository) FindCNAEByCodigo(ctx context.Context, formatted, sanitized string) (*CNAE, error) {
	var cnae CNAE
	result := r.db.WithContext(ctx).
		Where("codigo = ? OR codigo = ?", formatted, sanitized).
		Limit(1).
		Find(&cnae)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &cnae, nil
}

func (r *repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Empresa{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Insert(ctx context.Context, e *Empresa) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *Empresa) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) ReplaceAtividades(ctx context.Context, empresaID int64, cnaeIDs []int64) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("empresa_id = ?", empresaID).Delete(&AtividadeSecundaria{}).Error; err != nil {
		return err
	}
	for _, cnaeID := range cnaeIDs {
		sec := AtividadeSecundaria{EmpresaID: empresaID, IDCnae: cnaeID}
		if err := db.Create(&sec).Error; err != nil {
			return err
		}
	}
	return nil
}
