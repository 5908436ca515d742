package funcionario_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/funcionario"
	funcionarioerrors "github.com/haurio/projeto-ceramica-vicente-portela/internal/funcionario/errors"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeRepo records the write sequence so the tests can assert both
// ordering and transactional behavior without a real database.
type fakeRepo struct {
	calls []string

	findAllRows        []funcionario.FuncionarioRow
	findAllErr         error
	findRow            *funcionario.FuncionarioRow
	findRowErr         error
	existsByID         bool
	existsByIDErr      error
	cpfOrEmailTaken    bool
	cpfOrEmailErr      error
	writeErr           map[string]error
	insertedRootID     int64
	lastExcludeID      int64
	replacedDias       []string
	replacedDependente []funcionario.Dependente
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{writeErr: map[string]error{}, insertedRootID: 42}
}

func (f *fakeRepo) WithTx(tx *gorm.DB) funcionario.Repository { return f }

func (f *fakeRepo) FindAllRows(ctx context.Context) ([]funcionario.FuncionarioRow, error) {
	return f.findAllRows, f.findAllErr
}

func (f *fakeRepo) FindRowByID(ctx context.Context, id int64) (*funcionario.FuncionarioRow, error) {
	return f.findRow, f.findRowErr
}

func (f *fakeRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	f.calls = append(f.calls, "exists_by_id")
	return f.existsByID, f.existsByIDErr
}

func (f *fakeRepo) ExistsByCPFOrEmail(ctx context.Context, cpf, email string, excludeID int64) (bool, error) {
	f.calls = append(f.calls, "exists_by_cpf_or_email")
	f.lastExcludeID = excludeID
	return f.cpfOrEmailTaken, f.cpfOrEmailErr
}

func (f *fakeRepo) write(name string) error {
	f.calls = append(f.calls, name)
	return f.writeErr[name]
}

func (f *fakeRepo) InsertRoot(ctx context.Context, fn *funcionario.Funcionario) error {
	if err := f.write("insert_root"); err != nil {
		return err
	}
	fn.ID = f.insertedRootID
	return nil
}

func (f *fakeRepo) UpdateRoot(ctx context.Context, fn *funcionario.Funcionario) error {
	return f.write("update_root")
}

func (f *fakeRepo) InsertDadosPessoais(ctx context.Context, d *funcionario.DadosPessoais) error {
	return f.write("insert_dados_pessoais")
}

func (f *fakeRepo) UpdateDadosPessoais(ctx context.Context, d *funcionario.DadosPessoais) error {
	return f.write("update_dados_pessoais")
}

func (f *fakeRepo) InsertEndereco(ctx context.Context, e *funcionario.Endereco) error {
	return f.write("insert_endereco")
}

func (f *fakeRepo) UpdateEndereco(ctx context.Context, e *funcionario.Endereco) error {
	return f.write("update_endereco")
}

func (f *fakeRepo) InsertDadosProfissionais(ctx context.Context, d *funcionario.DadosProfissionais) error {
	return f.write("insert_dados_profissionais")
}

func (f *fakeRepo) UpdateDadosProfissionais(ctx context.Context, d *funcionario.DadosProfissionais) error {
	return f.write("update_dados_profissionais")
}

func (f *fakeRepo) InsertDadosBancarios(ctx context.Context, d *funcionario.DadosBancarios) error {
	return f.write("insert_dados_bancarios")
}

func (f *fakeRepo) UpdateDadosBancarios(ctx context.Context, d *funcionario.DadosBancarios) error {
	return f.write("update_dados_bancarios")
}

func (f *fakeRepo) ReplaceDiasFolga(ctx context.Context, funcionarioID int64, dias []string) error {
	f.replacedDias = dias
	return f.write("replace_dias_folga")
}

func (f *fakeRepo) ReplaceDependentes(ctx context.Context, funcionarioID int64, deps []funcionario.Dependente) error {
	f.replacedDependente = deps
	return f.write("replace_dependentes")
}

func (f *fakeRepo) DeleteCascade(ctx context.Context, id int64) error {
	return f.write("delete_cascade")
}

func setupServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *gorm.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysqldriver.New(mysqldriver.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock, gormDB
}

func TestFuncionarioService_Create(t *testing.T) {
	t.Run("success commits every table", func(t *testing.T) {
		db, mock, gormDB := setupServiceTest(t)
		defer db.Close()

		repo := newFakeRepo()
		svc := funcionario.NewService(gormDB, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		p := validPayload()
		p.Dependents = []funcionario.DependentePayload{
			{Name: "Pedro", BirthDate: "2015-01-01", Parentesco: "Filho"},
		}

		id, err := svc.Create(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)

		assert.Equal(t, []string{
			"exists_by_cpf_or_email",
			"insert_root",
			"insert_dados_pessoais",
			"insert_endereco",
			"insert_dados_profissionais",
			"insert_dados_bancarios",
			"replace_dias_folga",
			"replace_dependentes",
		}, repo.calls)
		assert.Equal(t, []string{"domingo"}, repo.replacedDias)
		assert.Len(t, repo.replacedDependente, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("validation failure skips the transaction", func(t *testing.T) {
		db, mock, gormDB := setupServiceTest(t)
		defer db.Close()

		repo := newFakeRepo()
		svc := funcionario.NewService(gormDB, repo)

		p := validPayload()
		p.Name = ""

		_, err := svc.Create(context.Background(), p)
		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "O campo name é obrigatório", appErr.Message)
		assert.Equal(t, 400, appErr.HTTPStatus)

		assert.Empty(t, repo.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate cpf or email rolls back", func(t *testing.T) {
		db, mock, gormDB := setupServiceTest(t)
		defer db.Close()

		repo := newFakeRepo()
		repo.cpfOrEmailTaken = true
		svc := funcionario.NewService(gormDB, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Create(context.Background(), validPayload())
		assert.ErrorIs(t, err, funcionarioerrors.ErrCPFOuEmailJaCadastrado)

		assert.Equal(t, []string{"exists_by_cpf_or_email"}, repo.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("child insert failure rolls back", func(t *testing.T) {
		db, mock, gormDB := setupServiceTest(t)
		defer db.Close()

		repo := newFakeRepo()
		repo.writeErr["insert_endereco"] = errors.New("connection reset")
		svc := funcionario.NewService(gormDB, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Create(context.Background(), validPayload())
		require.Error(t, err)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.HTTPStatus)
		assert.Equal(t, "Erro no servidor. Tente novamente mais tarde.", appErr.Message)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFuncionarioService_Update(t *testing.T) {
	t.Run("success rewrites children in place", func(t *testing.T) {
		db, mock, gormDB := setupServiceTest(t)
		defer db.Close()

		repo := newFakeRepo()
		repo.existsByID = true
		svc := funcionario.NewService(gormDB, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := svc.Update(context.Background(), 7, validPayload())
		require.NoError(t, err)

		assert.Equal(t, []string{
			"exists_by_id",
			"exists_by_cpf_or_email",
			"update_root",
			"update_dados_pessoais",
			"update_endereco",
			"update_dados_profissionais",
			"update_dados_bancarios",
			"replace_dias_folga",
			"replace_dependentes",
		}, repo.calls)
		// Uniqueness must ignore the row being updated.
		assert.Equal(t, int64(7), repo.lastExcludeID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id is a 400", func(t *testing.T) {
		db, mock, gormDB := setupServiceTest(t)
		defer db.Close()

		repo := newFakeRepo()
		repo.existsByID = false
		svc := funcionario.NewService(gormDB, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := svc.Update(context.Background(), 999, validPayload())
		assert.ErrorIs(t, err, funcionarioerrors.ErrFuncionarioNotFoundWrite)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFuncionarioService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, gormDB := setupServiceTest(t)
		defer db.Close()

		repo := newFakeRepo()
		repo.existsByID = true
		svc := funcionario.NewService(gormDB, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := svc.Delete(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, []string{"exists_by_id", "delete_cascade"}, repo.calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id rolls back", func(t *testing.T) {
		db, mock, gormDB := setupServiceTest(t)
		defer db.Close()

		repo := newFakeRepo()
		svc := funcionario.NewService(gormDB, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := svc.Delete(context.Background(), 999)
		assert.ErrorIs(t, err, funcionarioerrors.ErrFuncionarioNotFoundWrite)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFuncionarioService_Get(t *testing.T) {
	t.Run("missing row maps to not found", func(t *testing.T) {
		db, _, gormDB := setupServiceTest(t)
		defer db.Close()

		repo := newFakeRepo()
		svc := funcionario.NewService(gormDB, repo)

		_, err := svc.Get(context.Background(), 123)
		assert.ErrorIs(t, err, funcionarioerrors.ErrFuncionarioNotFound)
	})

	t.Run("row is composed into the view", func(t *testing.T) {
		db, _, gormDB := setupServiceTest(t)
		defer db.Close()

		bank := int64(33)
		position := "Ceramista"
		repo := newFakeRepo()
		repo.findRow = &funcionario.FuncionarioRow{
			ID:         7,
			Name:       "Maria da Silva",
			CPF:        "529.982.247-25",
			Email:      "maria@empresa.com.br",
			Status:     "Ativo",
			Position:   &position,
			Bank:       &bank,
			DaysOff:    "Domingo,segunda",
			Dependents: `[{"id":1,"name":"Pedro","birth_date":"2015-01-01","parentesco":"Filho"}]`,
		}
		svc := funcionario.NewService(gormDB, repo)

		view, err := svc.Get(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, "Maria da Silva", view.Name)
		assert.Equal(t, "Ceramista", view.Position)
		assert.Equal(t, "33", view.Bank)
		assert.Equal(t, []string{"domingo", "segunda"}, view.DaysOff)
		require.Len(t, view.Dependents, 1)
		assert.Equal(t, "Pedro", view.Dependents[0].Name)
	})

	t.Run("malformed dependents degrade to empty", func(t *testing.T) {
		db, _, gormDB := setupServiceTest(t)
		defer db.Close()

		repo := newFakeRepo()
		repo.findRow = &funcionario.FuncionarioRow{
			ID:         7,
			Name:       "Maria da Silva",
			Status:     "Ativo",
			DaysOff:    "",
			Dependents: `{"broken":`,
		}
		svc := funcionario.NewService(gormDB, repo)

		view, err := svc.Get(context.Background(), 7)
		require.NoError(t, err)
		assert.Empty(t, view.DaysOff)
		assert.Empty(t, view.Dependents)
	})
}
