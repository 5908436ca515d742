package autherrors

import (
	"net/http"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Usuário ou senha inválidos.",
		http.StatusUnauthorized,
	)
	ErrAllFieldsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Todos os campos são obrigatórios.",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		`Status inválido. Use "Ativo" ou "Inativo".`,
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"E-mail inválido.",
		http.StatusBadRequest,
	)
	ErrPasswordTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"A senha deve ter pelo menos 8 caracteres.",
		http.StatusBadRequest,
	)
	ErrFieldTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Usuário ou nome completo excedem o tamanho máximo.",
		http.StatusBadRequest,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Usuário já existe.",
		http.StatusBadRequest,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"E-mail já está em uso.",
		http.StatusBadRequest,
	)
	ErrLogoutFailed = apperror.New(
		apperror.CodeInternalError,
		"Erro ao realizar logout",
		http.StatusInternalServerError,
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
