package empresa

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	empresaerrors "github.com/haurio/projeto-ceramica-vicente-portela/internal/empresa/errors"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context) ([]EmpresaSummary, error)
	Get(ctx context.Context, id int64) (EmpresaDetail, error)
	Create(ctx context.Context, payload EmpresaPayload) (int64, error)
	Update(ctx context.Context, id int64, payload EmpresaPayload) error
	LookupCNAE(ctx context.Context, codigo string) (CNAEView, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("empresa.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("empresa.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// requiredFields mirrors the NOT NULL columns of the empresa table so a
// missing value fails with a readable message instead of a driver error.
var requiredFields = []struct {
	field string
	value func(p *EmpresaPayload) string
}{
	{"razao_social", func(p *EmpresaPayload) string { return p.RazaoSocial }},
	{"cnpj", func(p *EmpresaPayload) string { return p.CNPJ }},
	{"inscricao_municipal", func(p *EmpresaPayload) string { return p.InscricaoMunicipal }},
	{"regime_tributario", func(p *EmpresaPayload) string { return p.RegimeTributario }},
	{"data_fundacao", func(p *EmpresaPayload) string { return p.DataFundacao }},
	{"cep", func(p *EmpresaPayload) string { return p.CEP }},
	{"cidade", func(p *EmpresaPayload) string { return p.Cidade }},
	{"estado", func(p *EmpresaPayload) string { return p.Estado }},
	{"rua", func(p *EmpresaPayload) string { return p.Rua }},
	{"numero", func(p *EmpresaPayload) string { return p.Numero }},
	{"bairro", func(p *EmpresaPayload) string { return p.Bairro }},
	{"email", func(p *EmpresaPayload) string { return p.Email }},
	{"telefone", func(p *EmpresaPayload) string { return p.Telefone }},
}

func validatePayload(p *EmpresaPayload) error {
	for _, rf := range requiredFields {
		if strings.TrimSpace(rf.value(p)) == "" {
			return empresaerrors.ValidationFailed(fmt.Sprintf("O campo %s é obrigatório", rf.field))
		}
	}
	if p.IDCnae <= 0 {
		return empresaerrors.ValidationFailed("O campo id_cnae é obrigatório")
	}
	return nil
}

func toEntity(p *EmpresaPayload) Empresa {
	porte := strings.TrimSpace(p.Porte)
	if porte == "" {
		porte = "DEMAIS"
	}
	situacao := strings.TrimSpace(p.SituacaoCadastral)
	if situacao == "" {
		situacao = "Ativa"
	}

	return Empresa{
		RazaoSocial:        strings.TrimSpace(p.RazaoSocial),
		NomeFantasia:       optional(p.NomeFantasia),
		CNPJ:               strings.TrimSpace(p.CNPJ),
		Porte:              porte,
		InscricaoEstadual:  optional(p.InscricaoEstadual),
		InscricaoMunicipal: p.InscricaoMunicipal,
		IDCnae:             p.IDCnae,
		RegimeTributario:   p.RegimeTributario,
		DataFundacao:       p.DataFundacao,
		NaturezaJuridica:   optional(p.NaturezaJuridica),
		CEP:                p.CEP,
		Cidade:             p.Cidade,
		Estado:             p.Estado,
		Rua:                p.Rua,
		Numero:             p.Numero,
		Bairro:             p.Bairro,
		Complemento:        optional(p.Complemento),
		Email:              strings.TrimSpace(p.Email),
		Telefone:           p.Telefone,
		Site:               optional(p.Site),
		PessoaContato:      optional(p.PessoaContato),
		SituacaoCadastral:  situacao,
	}
}

func secondaryCNAEIDs(p *EmpresaPayload) []int64 {
	ids := make([]int64, 0, len(p.AtividadesSecundarias))
	for _, atividade := range p.AtividadesSecundarias {
		if atividade.IDCnae != nil && *atividade.IDCnae > 0 {
			ids = append(ids, *atividade.IDCnae)
		}
	}
	return ids
}

func (s *service) List(ctx context.Context) ([]EmpresaSummary, error) {
	summaries, err := s.repo.FindAllSummaries(ctx)
	if err != nil {
		s.logger.Error("list empresas query failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, empresaerrors.WrapStorage(err)
	}
	return summaries, nil
}

func (s *service) Get(ctx context.Context, id int64) (EmpresaDetail, error) {
	rid := contextutil.GetRequestID(ctx)

	row, err := s.repo.FindRowByID(ctx, id)
	if err != nil {
		s.logger.Error("get empresa query failed",
			zap.String("request_id", rid),
			zap.Int64("empresa_id", id),
			zap.Error(err),
		)
		return EmpresaDetail{}, empresaerrors.WrapStorage(err)
	}
	if row == nil {
		return EmpresaDetail{}, empresaerrors.ErrEmpresaNotFound
	}

	atividades, err := s.repo.FindAtividades(ctx, id)
	if err != nil {
		s.logger.Error("get empresa atividades query failed",
			zap.String("request_id", rid),
			zap.Int64("empresa_id", id),
			zap.Error(err),
		)
		return EmpresaDetail{}, empresaerrors.WrapStorage(err)
	}
	if atividades == nil {
		atividades = []AtividadeView{}
	}

	return EmpresaDetail{
		ID:                 row.ID,
		RazaoSocial:        row.RazaoSocial,
		NomeFantasia:       deref(row.NomeFantasia),
		CNPJ:               row.CNPJ,
		Porte:              row.Porte,
		InscricaoEstadual:  deref(row.InscricaoEstadual),
		InscricaoMunicipal: row.InscricaoMunicipal,
		IDCnae:             row.IDCnae,
		Cnae:               deref(row.Cnae),
		DescricaoCnae:      deref(row.DescricaoCnae),
		RegimeTributario:   row.RegimeTributario,
		DataFundacao:       row.DataFundacao,
		NaturezaJuridica:   deref(row.NaturezaJuridica),
		CEP:                row.CEP,
		Cidade:             row.Cidade,
		Estado:             row.Estado,
		Rua:                row.Rua,
		Numero:             row.Numero,
		Bairro:             row.Bairro,
		Complemento:        deref(row.Complemento),
		Email:              row.Email,
		Telefone:           row.Telefone,
		Site:               deref(row.Site),
		PessoaContato:      deref(row.PessoaContato),
		SituacaoCadastral:  row.SituacaoCadastral,

		AtividadesSecundarias: atividades,
	}, nil
}

func (s *service) Create(ctx context.Context, payload EmpresaPayload) (int64, error) {
	return s.save(ctx, nil, payload)
}

func (s *service) Update(ctx context.Context, id int64, payload EmpresaPayload) error {
	_, err := s.save(ctx, &id, payload)
	return err
}

func (s *service) save(ctx context.Context, existingID *int64, payload EmpresaPayload) (int64, error) {
	rid := contextutil.GetRequestID(ctx)

	if err := validatePayload(&payload); err != nil {
		return 0, err
	}

	entity := toEntity(&payload)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("save empresa begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return 0, empresaerrors.WrapStorage(tx.Error)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if existingID == nil {
		if err := qtx.Insert(ctx, &entity); err != nil {
			return 0, s.failWrite(rid, "insert empresa", err)
		}
	} else {
		exists, err := qtx.ExistsByID(ctx, *existingID)
		if err != nil {
			s.logger.Error("save empresa exists check failed", zap.String("request_id", rid), zap.Error(err))
			return 0, empresaerrors.WrapStorage(err)
		}
		if !exists {
			return 0, empresaerrors.ErrEmpresaNotFoundWrite
		}
		entity.ID = *existingID
		if err := qtx.Update(ctx, &entity); err != nil {
			return 0, s.failWrite(rid, "update empresa", err)
		}
	}

	if err := qtx.ReplaceAtividades(ctx, entity.ID, secondaryCNAEIDs(&payload)); err != nil {
		return 0, s.failWrite(rid, "replace atividades secundarias", err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("save empresa commit failed", zap.String("request_id", rid), zap.Error(err))
		return 0, empresaerrors.WrapStorage(err)
	}

	if existingID == nil {
		s.logger.Info("empresa created", zap.String("request_id", rid), zap.Int64("empresa_id", entity.ID))
	} else {
		s.logger.Info("empresa updated", zap.String("request_id", rid), zap.Int64("empresa_id", entity.ID))
	}
	return entity.ID, nil
}

var cnaeSeparatorsRe = regexp.MustCompile(`[-/]`)
var cnaeFormatRe = regexp.MustCompile(`^(\d{4})(\d)(\d{2})$`)

// LookupCNAE resolves an activity code in either spelling: bare seven
// digits or the canonical NNNN-N/NN form.
func (s *service) LookupCNAE(ctx context.Context, codigo string) (CNAEView, error) {
	sanitized := cnaeSeparatorsRe.ReplaceAllString(codigo, "")
	formatted := codigo
	if len(sanitized) == 7 {
		formatted = cnaeFormatRe.ReplaceAllString(sanitized, "$1-$2/$3")
	}

	cnae, err := s.repo.FindCNAEByCodigo(ctx, formatted, sanitized)
	if err != nil {
		s.logger.Error("cnae lookup failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("codigo", codigo),
			zap.Error(err),
		)
		return CNAEView{}, empresaerrors.WrapStorage(err)
	}
	if cnae == nil {
		return CNAEView{}, empresaerrors.ErrCNAENotFound
	}

	return CNAEView{ID: cnae.ID, Codigo: cnae.Codigo, Descricao: cnae.Descricao}, nil
}

func (s *service) failWrite(rid, op string, err error) error {
	mapped := mapRepositoryError(err)
	if mapped == empresaerrors.ErrCNPJJaCadastrado {
		return mapped
	}
	s.logger.Error("empresa write failed",
		zap.String("request_id", rid),
		zap.String("op", op),
		zap.Error(err),
	)
	return empresaerrors.WrapStorage(err)
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v := s
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
