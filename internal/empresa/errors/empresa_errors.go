package empresaerrors

import (
	"net/http"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/apperror"
)

var (
	ErrEmpresaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Empresa não encontrada",
		http.StatusNotFound,
	)
	// The update form treats an unknown id as a client error.
	ErrEmpresaNotFoundWrite = apperror.New(
		apperror.CodeInvalidInput,
		"Empresa não encontrada.",
		http.StatusBadRequest,
	)
	ErrCNPJJaCadastrado = apperror.New(
		apperror.CodeConflict,
		"CNPJ já cadastrado",
		http.StatusBadRequest,
	)
	ErrCNAENotFound = apperror.New(
		apperror.CodeNotFound,
		"CNAE não encontrado",
		http.StatusNotFound,
	)
	ErrInvalidEmpresaID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de empresa inválido",
		http.StatusBadRequest,
	)
)

// WrapStorage hides a storage failure behind the generic 500 message.
func WrapStorage(err error) *apperror.AppError {
	return apperror.Wrap(
		err,
		apperror.CodeInternalError,
		"Erro no servidor. Tente novamente mais tarde.",
		http.StatusInternalServerError,
	)
}

// ValidationFailed wraps a field-level violation message.
func ValidationFailed(message string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		message,
		http.StatusBadRequest,
	)
}
