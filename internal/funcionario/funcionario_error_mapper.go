package funcionario

import (
	"errors"
	"strings"

	funcionarioerrors "github.com/haurio/projeto-ceramica-vicente-portela/internal/funcionario/errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return funcionarioerrors.ErrFuncionarioNotFound
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		// 1062 = ER_DUP_ENTRY; the only unique keys on the employee
		// tables are cpf and email.
		if mysqlErr.Number == 1062 {
			return funcionarioerrors.ErrCPFOuEmailJaCadastrado
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate entry") {
		return funcionarioerrors.ErrCPFOuEmailJaCadastrado
	}

	return err
}
