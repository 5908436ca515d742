package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Recurso não encontrado",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"Você não tem permissão para acessar este recurso",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Erro no servidor. Tente novamente mais tarde.",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Não autorizado. Faça login para acessar.",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Dados inválidos",
		http.StatusBadRequest,
	)
)

// RequiredField builds the canonical missing-field validation error.
func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("O campo %s é obrigatório", field),
		http.StatusBadRequest,
	)
}

// InvalidField builds the canonical malformed-field validation error.
func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("O campo %s é inválido", field),
		http.StatusBadRequest,
	)
}
