package empresa

import (
	"errors"
	"strings"

	empresaerrors "github.com/haurio/projeto-ceramica-vicente-portela/internal/empresa/errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return empresaerrors.ErrEmpresaNotFound
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		// 1062 = ER_DUP_ENTRY; cnpj is the only unique key.
		if mysqlErr.Number == 1062 {
			return empresaerrors.ErrCNPJJaCadastrado
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate entry") {
		return empresaerrors.ErrCNPJJaCadastrado
	}

	return err
}
