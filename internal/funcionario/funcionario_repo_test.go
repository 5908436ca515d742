package funcionario_test

import (
	"context"
	"testing"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/funcionario"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The 1:1 child tables key on funcionario_id. An update must reach the
// database as an upsert so an employee missing a child row gets it
// rewritten instead of a zero-row UPDATE passing silently.
func TestFuncionarioRepository_ChildUpdateUpserts(t *testing.T) {
	t.Run("dados pessoais", func(t *testing.T) {
		db, mock, gormDB := setupServiceTest(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `funcionarios_dados_pessoais`.*ON DUPLICATE KEY UPDATE").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx := gormDB.Begin()
		require.NoError(t, tx.Error)

		repo := funcionario.NewRepository(gormDB).WithTx(tx)
		err := repo.UpdateDadosPessoais(context.Background(), &funcionario.DadosPessoais{
			FuncionarioID:  7,
			DataNascimento: "1990-05-10",
			Telefone:       "(84) 99999-0000",
		})
		require.NoError(t, err)
		require.NoError(t, tx.Commit().Error)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("endereco", func(t *testing.T) {
		db, mock, gormDB := setupServiceTest(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `funcionarios_enderecos`.*ON DUPLICATE KEY UPDATE").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		tx := gormDB.Begin()
		require.NoError(t, tx.Error)

		repo := funcionario.NewRepository(gormDB).WithTx(tx)
		err := repo.UpdateEndereco(context.Background(), &funcionario.Endereco{
			FuncionarioID: 7,
			CEP:           "59600-000",
			Cidade:        "Mossoró",
		})
		require.NoError(t, err)
		require.NoError(t, tx.Commit().Error)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("dados bancarios", func(t *testing.T) {
		db, mock, gormDB := setupServiceTest(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `funcionarios_dados_bancarios`.*ON DUPLICATE KEY UPDATE").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		tx := gormDB.Begin()
		require.NoError(t, tx.Error)

		repo := funcionario.NewRepository(gormDB).WithTx(tx)
		err := repo.UpdateDadosBancarios(context.Background(), &funcionario.DadosBancarios{
			FuncionarioID:  7,
			FormaPagamento: "Dinheiro",
		})
		require.NoError(t, err)
		require.NoError(t, tx.Commit().Error)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
