package funcionario_test

import (
	"testing"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/funcionario"

	"github.com/stretchr/testify/assert"
)

func validPayload() funcionario.FuncionarioPayload {
	return funcionario.FuncionarioPayload{
		Name:           "Maria da Silva",
		CPF:            "529.982.247-25",
		Email:          "maria@empresa.com.br",
		CargoID:        "2",
		DepartamentoID: "1",
		Status:         "Ativo",

		BirthDate:      "1990-03-14",
		BirthCity:      "Porto Alegre",
		BirthState:     "RS",
		Nationality:    "Brasileira",
		EducationLevel: "Ensino Médio",
		Phone:          "(51) 99999-0000",
		MaritalStatus:  "Solteira",
		IdentityNumber: "1234567890",
		IdentityIssueDate: "2010-05-02",
		IdentityIssuer: "SSP",
		IdentityState:  "RS",
		FatherName:     "João da Silva",
		MotherName:     "Ana da Silva",
		HasChildren:    "nao",

		CEP:          "90000-000",
		City:         "Porto Alegre",
		State:        "RS",
		Street:       "Rua das Flores",
		Number:       "100",
		Neighborhood: "Centro",

		CTPS:          "123456",
		CTPSState:     "RS",
		CTPSIssueDate: "2012-01-10",
		PIS:           "12345678901",
		AdmissionDate: "2020-02-01",
		Salary:        "2500.00",
		MonthlyHours:  "220",
		WeeklyHours:   "44",
		TrialPeriod:   "90",
		WeekdayStart:  "08:00",
		WeekdayEnd:    "18:00",

		PaymentMethod: "Dinheiro",

		DaysOff: []string{"domingo"},
	}
}

func TestValidateCPF(t *testing.T) {
	cases := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"valid with punctuation", "529.982.247-25", true},
		{"valid bare digits", "52998224725", true},
		{"valid alternate", "111.444.777-35", true},
		{"wrong first check digit", "529.982.247-35", false},
		{"wrong second check digit", "529.982.247-24", false},
		{"too short", "5299822472", false},
		{"too long", "529982247255", false},
		{"letters only", "abc.def.ghi-jk", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, funcionario.ValidateCPF(tc.cpf))
		})
	}
}

func TestValidate_AcceptsCompletePayload(t *testing.T) {
	p := validPayload()
	assert.Empty(t, funcionario.Validate(&p, funcionario.DependentLenient))
}

func TestValidate_RequiredFields(t *testing.T) {
	p := validPayload()
	p.Name = ""
	p.PIS = "  "

	violations := funcionario.Validate(&p, funcionario.DependentLenient)

	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.Message)
	}
	assert.Contains(t, messages, "O campo name é obrigatório")
	assert.Contains(t, messages, "O campo pis é obrigatório")
}

func TestValidate_InvalidCPFAndEmail(t *testing.T) {
	p := validPayload()
	p.CPF = "529.982.247-24"
	p.Email = "not-an-email"

	violations := funcionario.Validate(&p, funcionario.DependentLenient)

	fields := map[string]string{}
	for _, v := range violations {
		fields[v.Field] = v.Message
	}
	assert.Equal(t, "CPF inválido", fields["cpf"])
	assert.Equal(t, "E-mail inválido", fields["email"])
}

func TestValidate_EnumFields(t *testing.T) {
	p := validPayload()
	p.Status = "Ferias"
	p.HasChildren = "talvez"

	violations := funcionario.Validate(&p, funcionario.DependentLenient)

	fields := map[string]bool{}
	for _, v := range violations {
		fields[v.Field] = true
	}
	assert.True(t, fields["status"])
	assert.True(t, fields["has_children"])
}

func TestValidate_FirstJobOnlyCheckedWhenPresent(t *testing.T) {
	p := validPayload()
	p.FirstJob = ""
	assert.Empty(t, funcionario.Validate(&p, funcionario.DependentLenient))

	p.FirstJob = "sim"
	assert.Empty(t, funcionario.Validate(&p, funcionario.DependentLenient))

	p.FirstJob = "yes"
	violations := funcionario.Validate(&p, funcionario.DependentLenient)
	assert.Len(t, violations, 1)
	assert.Equal(t, "first_job", violations[0].Field)
}

func TestValidate_PaymentMethodConditionals(t *testing.T) {
	t.Run("pix requires key and bank", func(t *testing.T) {
		p := validPayload()
		p.PaymentMethod = "PIX"

		violations := funcionario.Validate(&p, funcionario.DependentLenient)
		assert.Len(t, violations, 2)
		for _, v := range violations {
			assert.Equal(t, "Chave PIX e banco são obrigatórios para a forma de pagamento PIX", v.Message)
		}
	})

	t.Run("pix satisfied", func(t *testing.T) {
		p := validPayload()
		p.PaymentMethod = "PIX"
		p.PixKey = "maria@empresa.com.br"
		p.Bank = "33"

		assert.Empty(t, funcionario.Validate(&p, funcionario.DependentLenient))
	})

	t.Run("transfer requires full bank account", func(t *testing.T) {
		p := validPayload()
		p.PaymentMethod = "Transferência"
		p.Bank = "33"
		p.Agency = "0001"

		violations := funcionario.Validate(&p, funcionario.DependentLenient)
		assert.Len(t, violations, 2)

		fields := map[string]bool{}
		for _, v := range violations {
			fields[v.Field] = true
		}
		assert.True(t, fields["account"])
		assert.True(t, fields["account_type"])
	})

	t.Run("cash needs no bank data", func(t *testing.T) {
		p := validPayload()
		p.PaymentMethod = "Dinheiro"
		assert.Empty(t, funcionario.Validate(&p, funcionario.DependentLenient))
	})
}

func TestValidate_StatusConditionals(t *testing.T) {
	t.Run("afastado requires leave reason", func(t *testing.T) {
		p := validPayload()
		p.Status = "Afastado"

		violations := funcionario.Validate(&p, funcionario.DependentLenient)
		assert.Len(t, violations, 1)
		assert.Equal(t, "leave_reason", violations[0].Field)

		p.LeaveReason = "Licença médica"
		assert.Empty(t, funcionario.Validate(&p, funcionario.DependentLenient))
	})

	t.Run("demitido requires dismissal date", func(t *testing.T) {
		p := validPayload()
		p.Status = "Demitido"

		violations := funcionario.Validate(&p, funcionario.DependentLenient)
		assert.Len(t, violations, 1)
		assert.Equal(t, "dismissal_date", violations[0].Field)

		p.DismissalDate = "2024-06-30"
		assert.Empty(t, funcionario.Validate(&p, funcionario.DependentLenient))
	})
}

func TestValidate_DaysOff(t *testing.T) {
	p := validPayload()
	p.DaysOff = nil

	violations := funcionario.Validate(&p, funcionario.DependentLenient)
	assert.Len(t, violations, 1)
	assert.Equal(t, "Pelo menos um dia de folga deve ser selecionado", violations[0].Message)

	p.DaysOff = []string{"domingo", "feriado"}
	violations = funcionario.Validate(&p, funcionario.DependentLenient)
	assert.Len(t, violations, 1)
	assert.Equal(t, "days_off", violations[0].Field)
}

func TestValidate_DependentModes(t *testing.T) {
	p := validPayload()
	p.Dependents = []funcionario.DependentePayload{
		{Name: "Pedro", BirthDate: "2015-01-01", Parentesco: "Filho"},
		{Name: "Sem Data", Parentesco: "Filho"},
	}

	assert.Empty(t, funcionario.Validate(&p, funcionario.DependentLenient))

	violations := funcionario.Validate(&p, funcionario.DependentStrict)
	assert.Len(t, violations, 1)
	assert.Equal(t, "dependents", violations[0].Field)
}
