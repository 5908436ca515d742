package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// data_admissao -> Data Admissao
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.Portuguese)
	return caser.String(s)
}

// MapValidationError turns a gin binding failure into an AppError naming
// the first offending field.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]

		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return New(
		CodeInvalidInput,
		"Dados inválidos",
		http.StatusBadRequest,
	)
}
