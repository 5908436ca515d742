package funcionarioerrors

import (
	"fmt"
	"net/http"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/apperror"
)

var (
	// Read path: missing id is a plain 404.
	ErrFuncionarioNotFound = apperror.New(
		apperror.CodeNotFound,
		"Funcionário não encontrado",
		http.StatusNotFound,
	)
	// Write path: update/delete of an unknown id surfaces as a 400 with
	// the same message, matching the form contract.
	ErrFuncionarioNotFoundWrite = apperror.New(
		apperror.CodeInvalidInput,
		"Funcionário não encontrado",
		http.StatusBadRequest,
	)
	ErrCPFOuEmailJaCadastrado = apperror.New(
		apperror.CodeConflict,
		"CPF ou e-mail já cadastrado",
		http.StatusBadRequest,
	)
	ErrDependenteIncompleto = apperror.New(
		apperror.CodeInvalidInput,
		"Nome, data de nascimento e parentesco do dependente são obrigatórios",
		http.StatusBadRequest,
	)
	ErrInvalidFuncionarioID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de funcionário inválido",
		http.StatusBadRequest,
	)
)

// InvalidFieldValue reports a field whose value could not be coerced.
func InvalidFieldValue(field string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("O campo %s é inválido", field),
		http.StatusBadRequest,
	)
}

// WrapStorage hides a storage failure behind the generic 500 message
// while keeping the cause attached for the logs.
func WrapStorage(err error) *apperror.AppError {
	return apperror.Wrap(
		err,
		apperror.CodeInternalError,
		"Erro no servidor. Tente novamente mais tarde.",
		http.StatusInternalServerError,
	)
}

// ValidationFailed wraps the first rule-table violation message.
func ValidationFailed(message string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		message,
		http.StatusBadRequest,
	)
}
