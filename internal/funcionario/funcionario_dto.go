package funcionario

// FuncionarioPayload is the form payload shared by create and update.
// The jQuery client serializes form controls, so scalar values arrive
// as strings; the assembler coerces ids and nulls empty optionals.
type FuncionarioPayload struct {
	Name           string `json:"name"`
	CPF            string `json:"cpf"`
	Email          string `json:"email"`
	CargoID        string `json:"cargo_id"`
	DepartamentoID string `json:"departamento_id"`
	Status         string `json:"status"`

	BirthDate      string `json:"birth_date"`
	BirthCity      string `json:"birth_city"`
	BirthState     string `json:"birth_state"`
	Nationality    string `json:"nationality"`
	EducationLevel string `json:"education_level"`
	Phone          string `json:"phone"`
	MaritalStatus  string `json:"marital_status"`
	VoterID        string `json:"voter_id"`
	VoterZone      string `json:"voter_zone"`
	VoterSection   string `json:"voter_section"`
	MilitaryID     string `json:"military_id"`
	MilitaryCategory string `json:"military_category"`
	IdentityNumber    string `json:"identity_number"`
	IdentityIssueDate string `json:"identity_issue_date"`
	IdentityIssuer    string `json:"identity_issuer"`
	IdentityState     string `json:"identity_state"`
	FatherName     string `json:"father_name"`
	MotherName     string `json:"mother_name"`
	Spouse         string `json:"spouse"`
	HasChildren    string `json:"has_children"`

	CEP          string `json:"cep"`
	City         string `json:"city"`
	State        string `json:"state"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement"`

	CTPS          string `json:"ctps"`
	CTPSState     string `json:"ctps_state"`
	CTPSIssueDate string `json:"ctps_issue_date"`
	PIS           string `json:"pis"`
	AdmissionDate string `json:"admission_date"`
	Salary        string `json:"salary"`
	MonthlyHours  string `json:"monthly_hours"`
	WeeklyHours   string `json:"weekly_hours"`
	TrialPeriod   string `json:"trial_period"`
	NightShiftPercentage string `json:"night_shift_percentage"`
	FirstJob      string `json:"first_job"`
	LeaveReason   string `json:"leave_reason"`
	DismissalDate string `json:"dismissal_date"`
	WeekdayStart  string `json:"weekday_start"`
	WeekdayEnd    string `json:"weekday_end"`
	SaturdayStart string `json:"saturday_start"`
	SaturdayEnd   string `json:"saturday_end"`
	SundayStart   string `json:"sunday_start"`
	SundayEnd     string `json:"sunday_end"`

	PaymentMethod string `json:"payment_method"`
	PixKey        string `json:"pix_key"`
	Bank          string `json:"bank"`
	Agency        string `json:"agency"`
	Account       string `json:"account"`
	AccountType   string `json:"account_type"`

	DaysOff    []string             `json:"days_off"`
	Dependents []DependentePayload  `json:"dependents"`
}

type DependentePayload struct {
	ID         *int64 `json:"id"`
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	Parentesco string `json:"parentesco"`
}

// scalarFields exposes the flat form fields by wire name so the
// declarative rule table can address them uniformly.
func (p *FuncionarioPayload) scalarFields() map[string]string {
	return map[string]string{
		"name":                 p.Name,
		"cpf":                  p.CPF,
		"email":                p.Email,
		"cargo_id":             p.CargoID,
		"departamento_id":      p.DepartamentoID,
		"status":               p.Status,
		"birth_date":           p.BirthDate,
		"birth_city":           p.BirthCity,
		"birth_state":          p.BirthState,
		"nationality":          p.Nationality,
		"education_level":      p.EducationLevel,
		"phone":                p.Phone,
		"marital_status":       p.MaritalStatus,
		"voter_id":             p.VoterID,
		"voter_zone":           p.VoterZone,
		"voter_section":        p.VoterSection,
		"military_id":          p.MilitaryID,
		"military_category":    p.MilitaryCategory,
		"identity_number":      p.IdentityNumber,
		"identity_issue_date":  p.IdentityIssueDate,
		"identity_issuer":      p.IdentityIssuer,
		"identity_state":       p.IdentityState,
		"father_name":          p.FatherName,
		"mother_name":          p.MotherName,
		"spouse":               p.Spouse,
		"has_children":         p.HasChildren,
		"cep":                  p.CEP,
		"city":                 p.City,
		"state":                p.State,
		"street":               p.Street,
		"number":               p.Number,
		"neighborhood":         p.Neighborhood,
		"complement":           p.Complement,
		"ctps":                 p.CTPS,
		"ctps_state":           p.CTPSState,
		"ctps_issue_date":      p.CTPSIssueDate,
		"pis":                  p.PIS,
		"admission_date":       p.AdmissionDate,
		"salary":               p.Salary,
		"monthly_hours":        p.MonthlyHours,
		"weekly_hours":         p.WeeklyHours,
		"trial_period":         p.TrialPeriod,
		"night_shift_percentage": p.NightShiftPercentage,
		"first_job":            p.FirstJob,
		"leave_reason":         p.LeaveReason,
		"dismissal_date":       p.DismissalDate,
		"weekday_start":        p.WeekdayStart,
		"weekday_end":          p.WeekdayEnd,
		"saturday_start":       p.SaturdayStart,
		"saturday_end":         p.SaturdayEnd,
		"sunday_start":         p.SundayStart,
		"sunday_end":           p.SundayEnd,
		"payment_method":       p.PaymentMethod,
		"pix_key":              p.PixKey,
		"bank":                 p.Bank,
		"agency":               p.Agency,
		"account":              p.Account,
		"account_type":         p.AccountType,
	}
}

// FuncionarioView is the read-side shape reconstructed by the grouped
// join: every column the form needs plus the aggregated days-off token
// set and the nested dependents list.
type FuncionarioView struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	CPF            string `json:"cpf"`
	Email          string `json:"email"`
	CargoID        int64  `json:"cargo_id"`
	Position       string `json:"position"`
	Status         string `json:"status"`
	DepartamentoID int64  `json:"departamento_id"`
	Department     string `json:"department"`

	BirthDate      string `json:"birth_date"`
	BirthCity      string `json:"birth_city"`
	BirthState     string `json:"birth_state"`
	Nationality    string `json:"nationality"`
	EducationLevel string `json:"education_level"`
	Phone          string `json:"phone"`
	MaritalStatus  string `json:"marital_status"`
	VoterID        string `json:"voter_id"`
	VoterZone      string `json:"voter_zone"`
	VoterSection   string `json:"voter_section"`
	MilitaryID     string `json:"military_id"`
	MilitaryCategory string `json:"military_category"`
	IdentityNumber    string `json:"identity_number"`
	IdentityIssueDate string `json:"identity_issue_date"`
	IdentityIssuer    string `json:"identity_issuer"`
	IdentityState     string `json:"identity_state"`
	FatherName     string `json:"father_name"`
	MotherName     string `json:"mother_name"`
	Spouse         string `json:"spouse"`
	HasChildren    string `json:"has_children"`

	CEP          string `json:"cep"`
	City         string `json:"city"`
	State        string `json:"state"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Complement   string `json:"complement"`

	CTPS          string `json:"ctps"`
	CTPSState     string `json:"ctps_state"`
	CTPSIssueDate string `json:"ctps_issue_date"`
	PIS           string `json:"pis"`
	AdmissionDate string `json:"admission_date"`
	Salary        string `json:"salary"`
	MonthlyHours  string `json:"monthly_hours"`
	WeeklyHours   string `json:"weekly_hours"`
	TrialPeriod   string `json:"trial_period"`
	NightShiftPercentage string `json:"night_shift_percentage"`
	FirstJob      string `json:"first_job"`
	LeaveReason   string `json:"leave_reason"`
	DismissalDate string `json:"dismissal_date"`
	WeekdayStart  string `json:"weekday_start"`
	WeekdayEnd    string `json:"weekday_end"`
	SaturdayStart string `json:"saturday_start"`
	SaturdayEnd   string `json:"saturday_end"`
	SundayStart   string `json:"sunday_start"`
	SundayEnd     string `json:"sunday_end"`

	PaymentMethod string `json:"payment_method"`
	PixKey        string `json:"pix_key"`
	// Bank round-trips as a string so the client select widget can match
	// it against option values.
	Bank     string `json:"bank"`
	BankName string `json:"bank_name"`
	Agency   string `json:"agency"`
	Account  string `json:"account"`
	AccountType string `json:"account_type"`

	DaysOff    []string         `json:"days_off"`
	Dependents []DependenteView `json:"dependents"`
}

type DependenteView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	Parentesco string `json:"parentesco"`
}
