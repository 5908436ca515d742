package funcionario

import (
	"encoding/json"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// funcionarioSelect reconstitutes the normalized employee view in one
// grouped join: lookups resolved by name, days-off collapsed into a
// delimited token list and dependents into a JSON array, both per row.
const funcionarioSelect = `
	SELECT
		f.id,
		f.nome AS name,
		f.cpf,
		f.email,
		f.cargo_id,
		c.nome AS position,
		f.status,
		f.departamento_id,
		d.nome AS department,
		DATE_FORMAT(dp.data_nascimento, '%Y-%m-%d') AS birth_date,
		dp.cidade_nascimento AS birth_city,
		dp.estado_nascimento AS birth_state,
		dp.nacionalidade AS nationality,
		dp.escolaridade AS education_level,
		dp.telefone AS phone,
		dp.estado_civil AS marital_status,
		dp.titulo_eleitor AS voter_id,
		dp.zona_eleitoral AS voter_zone,
		dp.secao_eleitoral AS voter_section,
		dp.reservista AS military_id,
		dp.categoria_reservista AS military_category,
		dp.rg AS identity_number,
		DATE_FORMAT(dp.data_emissao_rg, '%Y-%m-%d') AS identity_issue_date,
		dp.orgao_emissor_rg AS identity_issuer,
		dp.estado_emissor_rg AS identity_state,
		dp.nome_pai AS father_name,
		dp.nome_mae AS mother_name,
		dp.conjuge AS spouse,
		dp.possui_filhos AS has_children,
		e.cep,
		e.cidade AS city,
		e.estado AS state,
		e.rua AS street,
		e.numero AS number,
		e.bairro AS neighborhood,
		e.complemento AS complement,
		prof.ctps,
		prof.ctps_estado AS ctps_state,
		DATE_FORMAT(prof.ctps_data_emissao, '%Y-%m-%d') AS ctps_issue_date,
		prof.pis,
		DATE_FORMAT(f.data_admissao, '%Y-%m-%d') AS admission_date,
		prof.salario AS salary,
		prof.carga_horaria_mensal AS monthly_hours,
		prof.carga_horaria_semanal AS weekly_hours,
		prof.periodo_experiencia AS trial_period,
		prof.adicional_noturno AS night_shift_percentage,
		prof.primeiro_emprego AS first_job,
		prof.motivo_saida AS leave_reason,
		DATE_FORMAT(f.data_demissao, '%Y-%m-%d') AS dismissal_date,
		prof.horario_inicio_semana AS weekday_start,
		prof.horario_fim_semana AS weekday_end,
		prof.horario_inicio_sabado AS saturday_start,
		prof.horario_fim_sabado AS saturday_end,
		prof.horario_inicio_domingo AS sunday_start,
		prof.horario_fim_domingo AS sunday_end,
		db.forma_pagamento AS payment_method,
		db.chave_pix AS pix_key,
		db.banco_id AS bank,
		b.nome AS bank_name,
		db.agencia AS agency,
		db.conta AS account,
		db.tipo_conta AS account_type,
		COALESCE(GROUP_CONCAT(df.dia), '') AS days_off,
		COALESCE((
			SELECT CONCAT(
				'[',
				GROUP_CONCAT(
					JSON_OBJECT(
						'id', dep.id,
						'name', dep.nome,
						'birth_date', DATE_FORMAT(dep.data_nascimento, '%Y-%m-%d'),
						'parentesco', dep.parentesco
					)
					SEPARATOR ','
				),
				']'
			)
			FROM funcionarios_dependentes dep
			WHERE dep.funcionario_id = f.id
		), '[]') AS dependents
	FROM funcionarios f
	LEFT JOIN cargos c ON f.cargo_id = c.id
	LEFT JOIN departamentos d ON f.departamento_id = d.id
	LEFT JOIN funcionarios_dados_pessoais dp ON f.id = dp.funcionario_id
	LEFT JOIN funcionarios_enderecos e ON f.id = e.funcionario_id
	LEFT JOIN funcionarios_dados_profissionais prof ON f.id = prof.funcionario_id
	LEFT JOIN funcionarios_dados_bancarios db ON f.id = db.funcionario_id
	LEFT JOIN bancos b ON db.banco_id = b.id
	LEFT JOIN funcionarios_dias_folga df ON f.id = df.funcionario_id`

const funcionarioListQuery = funcionarioSelect + `
	GROUP BY f.id`

const funcionarioDetailQuery = funcionarioSelect + `
	WHERE f.id = ?
	GROUP BY f.id`

// FuncionarioRow is the flat scan target for the grouped join. Joined
// columns are nullable because every child is LEFT-joined.
type FuncionarioRow struct {
	ID             int64   `gorm:"column:id"`
	Name           string  `gorm:"column:name"`
	CPF            string  `gorm:"column:cpf"`
	Email          string  `gorm:"column:email"`
	CargoID        *int64  `gorm:"column:cargo_id"`
	Position       *string `gorm:"column:position"`
	Status         string  `gorm:"column:status"`
	DepartamentoID *int64  `gorm:"column:departamento_id"`
	Department     *string `gorm:"column:department"`

	BirthDate        *string `gorm:"column:birth_date"`
	BirthCity        *string `gorm:"column:birth_city"`
	BirthState       *string `gorm:"column:birth_state"`
	Nationality      *string `gorm:"column:nationality"`
	EducationLevel   *string `gorm:"column:education_level"`
	Phone            *string `gorm:"column:phone"`
	MaritalStatus    *string `gorm:"column:marital_status"`
	VoterID          *string `gorm:"column:voter_id"`
	VoterZone        *string `gorm:"column:voter_zone"`
	VoterSection     *string `gorm:"column:voter_section"`
	MilitaryID       *string `gorm:"column:military_id"`
	MilitaryCategory *string `gorm:"column:military_category"`
	IdentityNumber   *string `gorm:"column:identity_number"`
	IdentityIssueDate *string `gorm:"column:identity_issue_date"`
	IdentityIssuer   *string `gorm:"column:identity_issuer"`
	IdentityState    *string `gorm:"column:identity_state"`
	FatherName       *string `gorm:"column:father_name"`
	MotherName       *string `gorm:"column:mother_name"`
	Spouse           *string `gorm:"column:spouse"`
	HasChildren      *string `gorm:"column:has_children"`

	CEP          *string `gorm:"column:cep"`
	City         *string `gorm:"column:city"`
	State        *string `gorm:"column:state"`
	Street       *string `gorm:"column:street"`
	Number       *string `gorm:"column:number"`
	Neighborhood *string `gorm:"column:neighborhood"`
	Complement   *string `gorm:"column:complement"`

	CTPS          *string `gorm:"column:ctps"`
	CTPSState     *string `gorm:"column:ctps_state"`
	CTPSIssueDate *string `gorm:"column:ctps_issue_date"`
	PIS           *string `gorm:"column:pis"`
	AdmissionDate *string `gorm:"column:admission_date"`
	Salary        *string `gorm:"column:salary"`
	MonthlyHours  *string `gorm:"column:monthly_hours"`
	WeeklyHours   *string `gorm:"column:weekly_hours"`
	TrialPeriod   *string `gorm:"column:trial_period"`
	NightShiftPercentage *string `gorm:"column:night_shift_percentage"`
	FirstJob      *string `gorm:"column:first_job"`
	LeaveReason   *string `gorm:"column:leave_reason"`
	DismissalDate *string `gorm:"column:dismissal_date"`
	WeekdayStart  *string `gorm:"column:weekday_start"`
	WeekdayEnd    *string `gorm:"column:weekday_end"`
	SaturdayStart *string `gorm:"column:saturday_start"`
	SaturdayEnd   *string `gorm:"column:saturday_end"`
	SundayStart   *string `gorm:"column:sunday_start"`
	SundayEnd     *string `gorm:"column:sunday_end"`

	PaymentMethod *string `gorm:"column:payment_method"`
	PixKey        *string `gorm:"column:pix_key"`
	Bank          *int64  `gorm:"column:bank"`
	BankName      *string `gorm:"column:bank_name"`
	Agency        *string `gorm:"column:agency"`
	Account       *string `gorm:"column:account"`
	AccountType   *string `gorm:"column:account_type"`

	DaysOff    string `gorm:"column:days_off"`
	Dependents string `gorm:"column:dependents"`
}

// composeView turns one scanned row into the response shape. The
// aggregated columns are parsed defensively: malformed aggregate data
// degrades to an empty set/list instead of failing the whole read.
func composeView(row FuncionarioRow, logger *zap.Logger) FuncionarioView {
	view := FuncionarioView{
		ID:             row.ID,
		Name:           row.Name,
		CPF:            row.CPF,
		Email:          row.Email,
		CargoID:        derefInt(row.CargoID),
		Position:       deref(row.Position),
		Status:         row.Status,
		DepartamentoID: derefInt(row.DepartamentoID),
		Department:     deref(row.Department),

		BirthDate:        deref(row.BirthDate),
		BirthCity:        deref(row.BirthCity),
		BirthState:       deref(row.BirthState),
		Nationality:      deref(row.Nationality),
		EducationLevel:   deref(row.EducationLevel),
		Phone:            deref(row.Phone),
		MaritalStatus:    deref(row.MaritalStatus),
		VoterID:          deref(row.VoterID),
		VoterZone:        deref(row.VoterZone),
		VoterSection:     deref(row.VoterSection),
		MilitaryID:       deref(row.MilitaryID),
		MilitaryCategory: deref(row.MilitaryCategory),
		IdentityNumber:   deref(row.IdentityNumber),
		IdentityIssueDate: deref(row.IdentityIssueDate),
		IdentityIssuer:   deref(row.IdentityIssuer),
		IdentityState:    deref(row.IdentityState),
		FatherName:       deref(row.FatherName),
		MotherName:       deref(row.MotherName),
		Spouse:           deref(row.Spouse),
		HasChildren:      deref(row.HasChildren),

		CEP:          deref(row.CEP),
		City:         deref(row.City),
		State:        deref(row.State),
		Street:       deref(row.Street),
		Number:       deref(row.Number),
		Neighborhood: deref(row.Neighborhood),
		Complement:   deref(row.Complement),

		CTPS:          deref(row.CTPS),
		CTPSState:     deref(row.CTPSState),
		CTPSIssueDate: deref(row.CTPSIssueDate),
		PIS:           deref(row.PIS),
		AdmissionDate: deref(row.AdmissionDate),
		Salary:        deref(row.Salary),
		MonthlyHours:  deref(row.MonthlyHours),
		WeeklyHours:   deref(row.WeeklyHours),
		TrialPeriod:   deref(row.TrialPeriod),
		NightShiftPercentage: deref(row.NightShiftPercentage),
		FirstJob:      deref(row.FirstJob),
		LeaveReason:   deref(row.LeaveReason),
		DismissalDate: deref(row.DismissalDate),
		WeekdayStart:  deref(row.WeekdayStart),
		WeekdayEnd:    deref(row.WeekdayEnd),
		SaturdayStart: deref(row.SaturdayStart),
		SaturdayEnd:   deref(row.SaturdayEnd),
		SundayStart:   deref(row.SundayStart),
		SundayEnd:     deref(row.SundayEnd),

		PaymentMethod: deref(row.PaymentMethod),
		PixKey:        deref(row.PixKey),
		BankName:      deref(row.BankName),
		Agency:        deref(row.Agency),
		Account:       deref(row.Account),
		AccountType:   deref(row.AccountType),

		DaysOff:    []string{},
		Dependents: []DependenteView{},
	}

	// banco_id is stored numeric but must round-trip as text so the
	// client select widget can match it.
	if row.Bank != nil {
		view.Bank = strconv.FormatInt(*row.Bank, 10)
	}

	if row.DaysOff != "" {
		for _, day := range strings.Split(row.DaysOff, ",") {
			day = strings.ToLower(strings.TrimSpace(day))
			if day != "" && !contains(view.DaysOff, day) {
				view.DaysOff = append(view.DaysOff, day)
			}
		}
	}

	if row.Dependents != "" {
		var deps []DependenteView
		if err := json.Unmarshal([]byte(row.Dependents), &deps); err != nil {
			logger.Error("malformed dependents aggregate",
				zap.Int64("funcionario_id", row.ID),
				zap.Error(err),
			)
		} else {
			view.Dependents = deps
		}
	}

	return view
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
