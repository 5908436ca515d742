package funcionario

import (
	"strconv"
	"strings"

	funcionarioerrors "github.com/haurio/projeto-ceramica-vicente-portela/internal/funcionario/errors"
)

// Record is the normalized multi-table form of one employee, ready for
// the transactional writer. Child rows carry no funcionario id yet; the
// writer stamps it after the root insert.
type Record struct {
	Funcionario        Funcionario
	DadosPessoais      DadosPessoais
	Endereco           Endereco
	DadosProfissionais DadosProfissionais
	DadosBancarios     DadosBancarios
	DiasFolga          []string
	Dependentes        []Dependente
}

// Assemble maps the validated payload into the seven sub-records. Empty
// optional strings become NULL, numeric ids are coerced from their form
// string representation, and incomplete dependents are dropped when the
// mode is lenient. Performs no I/O.
func Assemble(p *FuncionarioPayload, mode DependentMode) (*Record, error) {
	cargoID, err := parseID(p.CargoID)
	if err != nil {
		return nil, funcionarioerrors.InvalidFieldValue("cargo_id")
	}
	departamentoID, err := parseID(p.DepartamentoID)
	if err != nil {
		return nil, funcionarioerrors.InvalidFieldValue("departamento_id")
	}

	var bancoID *int64
	if strings.TrimSpace(p.Bank) != "" {
		id, err := parseID(p.Bank)
		if err != nil {
			return nil, funcionarioerrors.InvalidFieldValue("bank")
		}
		bancoID = &id
	}

	rec := &Record{
		Funcionario: Funcionario{
			Nome:           strings.TrimSpace(p.Name),
			CPF:            strings.TrimSpace(p.CPF),
			Email:          strings.TrimSpace(p.Email),
			CargoID:        cargoID,
			DepartamentoID: departamentoID,
			Status:         p.Status,
			DataAdmissao:   p.AdmissionDate,
			DataDemissao:   optional(p.DismissalDate),
		},
		DadosPessoais: DadosPessoais{
			DataNascimento:      p.BirthDate,
			CidadeNascimento:    p.BirthCity,
			EstadoNascimento:    p.BirthState,
			Nacionalidade:       p.Nationality,
			Escolaridade:        p.EducationLevel,
			Telefone:            p.Phone,
			EstadoCivil:         p.MaritalStatus,
			TituloEleitor:       optional(p.VoterID),
			ZonaEleitoral:       optional(p.VoterZone),
			SecaoEleitoral:      optional(p.VoterSection),
			Reservista:          optional(p.MilitaryID),
			CategoriaReservista: optional(p.MilitaryCategory),
			RG:                  p.IdentityNumber,
			DataEmissaoRG:       p.IdentityIssueDate,
			OrgaoEmissorRG:      p.IdentityIssuer,
			EstadoEmissorRG:     p.IdentityState,
			NomePai:             p.FatherName,
			NomeMae:             p.MotherName,
			Conjuge:             optional(p.Spouse),
			PossuiFilhos:        p.HasChildren,
		},
		Endereco: Endereco{
			CEP:         p.CEP,
			Cidade:      p.City,
			Estado:      p.State,
			Rua:         p.Street,
			Numero:      p.Number,
			Bairro:      p.Neighborhood,
			Complemento: optional(p.Complement),
		},
		DadosProfissionais: DadosProfissionais{
			CTPS:                 p.CTPS,
			CTPSEstado:           p.CTPSState,
			CTPSDataEmissao:      p.CTPSIssueDate,
			PIS:                  p.PIS,
			Salario:              p.Salary,
			CargaHorariaMensal:   p.MonthlyHours,
			CargaHorariaSemanal:  p.WeeklyHours,
			PeriodoExperiencia:   p.TrialPeriod,
			AdicionalNoturno:     optional(p.NightShiftPercentage),
			PrimeiroEmprego:      optional(p.FirstJob),
			MotivoSaida:          optional(p.LeaveReason),
			HorarioInicioSemana:  p.WeekdayStart,
			HorarioFimSemana:     p.WeekdayEnd,
			HorarioInicioSabado:  optional(p.SaturdayStart),
			HorarioFimSabado:     optional(p.SaturdayEnd),
			HorarioInicioDomingo: optional(p.SundayStart),
			HorarioFimDomingo:    optional(p.SundayEnd),
		},
		DadosBancarios: DadosBancarios{
			FormaPagamento: p.PaymentMethod,
			ChavePIX:       optional(p.PixKey),
			BancoID:        bancoID,
			Agencia:        optional(p.Agency),
			Conta:          optional(p.Account),
			TipoConta:      optional(p.AccountType),
		},
		DiasFolga: append([]string(nil), p.DaysOff...),
	}

	for _, dep := range p.Dependents {
		if !dependentComplete(dep) {
			if mode == DependentLenient {
				continue
			}
			return nil, funcionarioerrors.ErrDependenteIncompleto
		}
		rec.Dependentes = append(rec.Dependentes, Dependente{
			Nome:           strings.TrimSpace(dep.Name),
			DataNascimento: dep.BirthDate,
			Parentesco:     dep.Parentesco,
		})
	}

	return rec, nil
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v := s
	return &v
}
