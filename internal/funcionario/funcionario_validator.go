package funcionario

import (
	"fmt"
	"regexp"
	"strings"
)

// Closed enum sets. Wire values are the Portuguese tokens the client
// submits and the schema stores.
var (
	StatusValues        = []string{"Ativo", "Afastado", "Demitido"}
	SimNaoValues        = []string{"sim", "nao"}
	PaymentMethodValues = []string{"PIX", "Transferência", "Dinheiro"}
	DayOffValues        = []string{"domingo", "segunda", "terca", "quarta", "quinta", "sexta", "sabado"}
)

const (
	StatusAtivo    = "Ativo"
	StatusAfastado = "Afastado"
	StatusDemitido = "Demitido"

	PaymentPIX           = "PIX"
	PaymentTransferencia = "Transferência"
	PaymentDinheiro      = "Dinheiro"
)

// DependentMode selects how incomplete dependent entries are treated.
// Top-level fields always fail hard; dependents are sub-records the
// original system tolerated, so the service runs in lenient mode and
// the assembler drops entries missing a field.
type DependentMode int

const (
	DependentLenient DependentMode = iota
	DependentStrict
)

// Violation is one field-level validation failure.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) Error() string { return v.Message }

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// fieldRule drives the declarative validation pass: required flag, an
// optional closed value set, and an optional condition under which the
// field becomes required.
type fieldRule struct {
	field        string
	required     bool
	enum         []string
	enumOptional bool              // enum checked only when a value is present
	requiredWhen func(fields map[string]string) (bool, string)
}

var payloadRules = []fieldRule{
	{field: "name", required: true},
	{field: "cpf", required: true},
	{field: "email", required: true},
	{field: "cargo_id", required: true},
	{field: "departamento_id", required: true},
	{field: "status", required: true, enum: StatusValues},
	{field: "birth_date", required: true},
	{field: "birth_city", required: true},
	{field: "birth_state", required: true},
	{field: "nationality", required: true},
	{field: "education_level", required: true},
	{field: "phone", required: true},
	{field: "marital_status", required: true},
	{field: "identity_number", required: true},
	{field: "identity_issue_date", required: true},
	{field: "identity_issuer", required: true},
	{field: "identity_state", required: true},
	{field: "father_name", required: true},
	{field: "mother_name", required: true},
	{field: "has_children", required: true, enum: SimNaoValues},
	{field: "cep", required: true},
	{field: "city", required: true},
	{field: "state", required: true},
	{field: "street", required: true},
	{field: "number", required: true},
	{field: "neighborhood", required: true},
	{field: "ctps", required: true},
	{field: "ctps_state", required: true},
	{field: "ctps_issue_date", required: true},
	{field: "pis", required: true},
	{field: "admission_date", required: true},
	{field: "salary", required: true},
	{field: "monthly_hours", required: true},
	{field: "weekly_hours", required: true},
	{field: "trial_period", required: true},
	{field: "payment_method", required: true, enum: PaymentMethodValues},
	{field: "first_job", enum: SimNaoValues, enumOptional: true},

	{field: "pix_key", requiredWhen: whenPayment(PaymentPIX, "Chave PIX e banco são obrigatórios para a forma de pagamento PIX")},
	{field: "bank", requiredWhen: whenPayment(PaymentPIX, "Chave PIX e banco são obrigatórios para a forma de pagamento PIX")},
	{field: "bank", requiredWhen: whenPayment(PaymentTransferencia, transferMsg)},
	{field: "agency", requiredWhen: whenPayment(PaymentTransferencia, transferMsg)},
	{field: "account", requiredWhen: whenPayment(PaymentTransferencia, transferMsg)},
	{field: "account_type", requiredWhen: whenPayment(PaymentTransferencia, transferMsg)},
	{field: "leave_reason", requiredWhen: whenStatus(StatusAfastado, "Motivo de afastamento é obrigatório para o status Afastado")},
	{field: "dismissal_date", requiredWhen: whenStatus(StatusDemitido, "Data de demissão é obrigatória para o status Demitido")},
}

const transferMsg = "Banco, agência, conta e tipo de conta são obrigatórios para a forma de pagamento Transferência"

func whenPayment(method, msg string) func(map[string]string) (bool, string) {
	return func(fields map[string]string) (bool, string) {
		return fields["payment_method"] == method, msg
	}
}

func whenStatus(status, msg string) func(map[string]string) (bool, string) {
	return func(fields map[string]string) (bool, string) {
		return fields["status"] == status, msg
	}
}

// ValidateCPF checks the two check digits of a CPF. Non-digits are
// stripped first; anything that is not exactly 11 digits fails.
func ValidateCPF(cpf string) bool {
	digits := make([]int, 0, 11)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) != 11 {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	check := 11 - (sum % 11)
	if check >= 10 {
		check = 0
	}
	if check != digits[9] {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	check = 11 - (sum % 11)
	if check >= 10 {
		check = 0
	}
	return check == digits[10]
}

// ValidateEmail checks the general local@domain.tld shape.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// Validate runs the full rule table over the payload and returns every
// violation found. It never mutates the payload and performs no I/O;
// uniqueness lives in the transactional writer.
func Validate(p *FuncionarioPayload, mode DependentMode) []Violation {
	var violations []Violation
	fields := p.scalarFields()

	for _, rule := range payloadRules {
		value := strings.TrimSpace(fields[rule.field])

		if rule.required && value == "" {
			violations = append(violations, Violation{
				Field:   rule.field,
				Message: fmt.Sprintf("O campo %s é obrigatório", rule.field),
			})
			continue
		}

		if rule.requiredWhen != nil {
			if active, msg := rule.requiredWhen(fields); active && value == "" {
				violations = append(violations, Violation{Field: rule.field, Message: msg})
				continue
			}
		}

		if len(rule.enum) > 0 && !(rule.enumOptional && value == "") {
			if !contains(rule.enum, value) {
				violations = append(violations, Violation{
					Field:   rule.field,
					Message: fmt.Sprintf("O campo %s deve ser um dos seguintes valores: %s", rule.field, strings.Join(rule.enum, ", ")),
				})
			}
		}
	}

	if cpf := strings.TrimSpace(p.CPF); cpf != "" && !ValidateCPF(cpf) {
		violations = append(violations, Violation{Field: "cpf", Message: "CPF inválido"})
	}
	if email := strings.TrimSpace(p.Email); email != "" && !ValidateEmail(email) {
		violations = append(violations, Violation{Field: "email", Message: "E-mail inválido"})
	}

	if len(p.DaysOff) == 0 {
		violations = append(violations, Violation{
			Field:   "days_off",
			Message: "Pelo menos um dia de folga deve ser selecionado",
		})
	}
	for _, day := range p.DaysOff {
		if !contains(DayOffValues, day) {
			violations = append(violations, Violation{
				Field:   "days_off",
				Message: fmt.Sprintf("O campo days_off deve ser um dos seguintes valores: %s", strings.Join(DayOffValues, ", ")),
			})
		}
	}

	if mode == DependentStrict {
		for _, dep := range p.Dependents {
			if !dependentComplete(dep) {
				violations = append(violations, Violation{
					Field:   "dependents",
					Message: "Nome, data de nascimento e parentesco do dependente são obrigatórios",
				})
			}
		}
	}

	return violations
}

func dependentComplete(dep DependentePayload) bool {
	return strings.TrimSpace(dep.Name) != "" &&
		strings.TrimSpace(dep.BirthDate) != "" &&
		strings.TrimSpace(dep.Parentesco) != ""
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
