package funcionario

import (
	"context"

	funcionarioerrors "github.com/haurio/projeto-ceramica-vicente-portela/internal/funcionario/errors"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context) ([]FuncionarioView, error)
	Get(ctx context.Context, id int64) (FuncionarioView, error)
	Create(ctx context.Context, payload FuncionarioPayload) (int64, error)
	Update(ctx context.Context, id int64, payload FuncionarioPayload) error
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("funcionario.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("funcionario.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) List(ctx context.Context) ([]FuncionarioView, error) {
	rows, err := s.repo.FindAllRows(ctx)
	if err != nil {
		s.logger.Error("list funcionarios query failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	views := make([]FuncionarioView, 0, len(rows))
	for _, row := range rows {
		views = append(views, composeView(row, s.logger))
	}
	return views, nil
}

func (s *service) Get(ctx context.Context, id int64) (FuncionarioView, error) {
	row, err := s.repo.FindRowByID(ctx, id)
	if err != nil {
		s.logger.Error("get funcionario query failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Int64("funcionario_id", id),
			zap.Error(err),
		)
		return FuncionarioView{}, err
	}
	if row == nil {
		return FuncionarioView{}, funcionarioerrors.ErrFuncionarioNotFound
	}
	return composeView(*row, s.logger), nil
}

func (s *service) Create(ctx context.Context, payload FuncionarioPayload) (int64, error) {
	return s.save(ctx, nil, payload)
}

func (s *service) Update(ctx context.Context, id int64, payload FuncionarioPayload) error {
	_, err := s.save(ctx, &id, payload)
	return err
}

// save is the single write path shared by create and update. The two
// differ only in the uniqueness exclusion and in whether child rows are
// inserted or rewritten; everything else is identical, so one
// transaction script serves both.
func (s *service) save(ctx context.Context, existingID *int64, payload FuncionarioPayload) (int64, error) {
	rid := contextutil.GetRequestID(ctx)

	if violations := Validate(&payload, DependentLenient); len(violations) > 0 {
		s.logger.Warn("funcionario payload rejected",
			zap.String("request_id", rid),
			zap.String("field", violations[0].Field),
			zap.Int("violations", len(violations)),
		)
		return 0, funcionarioerrors.ValidationFailed(violations[0].Message)
	}

	rec, err := Assemble(&payload, DependentLenient)
	if err != nil {
		return 0, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("save funcionario begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return 0, funcionarioerrors.WrapStorage(tx.Error)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	var excludeID int64
	if existingID != nil {
		excludeID = *existingID
		exists, err := qtx.ExistsByID(ctx, excludeID)
		if err != nil {
			s.logger.Error("save funcionario exists check failed", zap.String("request_id", rid), zap.Error(err))
			return 0, funcionarioerrors.WrapStorage(err)
		}
		if !exists {
			return 0, funcionarioerrors.ErrFuncionarioNotFoundWrite
		}
	}

	taken, err := qtx.ExistsByCPFOrEmail(ctx, rec.Funcionario.CPF, rec.Funcionario.Email, excludeID)
	if err != nil {
		s.logger.Error("save funcionario uniqueness check failed", zap.String("request_id", rid), zap.Error(err))
		return 0, funcionarioerrors.WrapStorage(err)
	}
	if taken {
		return 0, funcionarioerrors.ErrCPFOuEmailJaCadastrado
	}

	if existingID == nil {
		if err := qtx.InsertRoot(ctx, &rec.Funcionario); err != nil {
			return 0, s.failWrite(rid, "insert funcionario", err)
		}
	} else {
		rec.Funcionario.ID = *existingID
		if err := qtx.UpdateRoot(ctx, &rec.Funcionario); err != nil {
			return 0, s.failWrite(rid, "update funcionario", err)
		}
	}
	id := rec.Funcionario.ID

	rec.DadosPessoais.FuncionarioID = id
	rec.Endereco.FuncionarioID = id
	rec.DadosProfissionais.FuncionarioID = id
	rec.DadosBancarios.FuncionarioID = id

	if existingID == nil {
		if err := qtx.InsertDadosPessoais(ctx, &rec.DadosPessoais); err != nil {
			return 0, s.failWrite(rid, "insert dados pessoais", err)
		}
		if err := qtx.InsertEndereco(ctx, &rec.Endereco); err != nil {
			return 0, s.failWrite(rid, "insert endereco", err)
		}
		if err := qtx.InsertDadosProfissionais(ctx, &rec.DadosProfissionais); err != nil {
			return 0, s.failWrite(rid, "insert dados profissionais", err)
		}
		if err := qtx.InsertDadosBancarios(ctx, &rec.DadosBancarios); err != nil {
			return 0, s.failWrite(rid, "insert dados bancarios", err)
		}
	} else {
		if err := qtx.UpdateDadosPessoais(ctx, &rec.DadosPessoais); err != nil {
			return 0, s.failWrite(rid, "update dados pessoais", err)
		}
		if err := qtx.UpdateEndereco(ctx, &rec.Endereco); err != nil {
			return 0, s.failWrite(rid, "update endereco", err)
		}
		if err := qtx.UpdateDadosProfissionais(ctx, &rec.DadosProfissionais); err != nil {
			return 0, s.failWrite(rid, "update dados profissionais", err)
		}
		if err := qtx.UpdateDadosBancarios(ctx, &rec.DadosBancarios); err != nil {
			return 0, s.failWrite(rid, "update dados bancarios", err)
		}
	}

	if err := qtx.ReplaceDiasFolga(ctx, id, rec.DiasFolga); err != nil {
		return 0, s.failWrite(rid, "replace dias de folga", err)
	}
	if err := qtx.ReplaceDependentes(ctx, id, rec.Dependentes); err != nil {
		return 0, s.failWrite(rid, "replace dependentes", err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("save funcionario commit failed", zap.String("request_id", rid), zap.Error(err))
		return 0, funcionarioerrors.WrapStorage(err)
	}

	if existingID == nil {
		s.logger.Info("funcionario created", zap.String("request_id", rid), zap.Int64("funcionario_id", id))
	} else {
		s.logger.Info("funcionario updated", zap.String("request_id", rid), zap.Int64("funcionario_id", id))
	}
	return id, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete funcionario begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return funcionarioerrors.WrapStorage(tx.Error)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Error("delete funcionario exists check failed", zap.String("request_id", rid), zap.Error(err))
		return funcionarioerrors.WrapStorage(err)
	}
	if !exists {
		return funcionarioerrors.ErrFuncionarioNotFoundWrite
	}

	if err := qtx.DeleteCascade(ctx, id); err != nil {
		return s.failWrite(rid, "delete funcionario", err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete funcionario commit failed", zap.String("request_id", rid), zap.Error(err))
		return funcionarioerrors.WrapStorage(err)
	}

	s.logger.Info("funcionario deleted", zap.String("request_id", rid), zap.Int64("funcionario_id", id))
	return nil
}

func (s *service) failWrite(rid, op string, err error) error {
	mapped := mapRepositoryError(err)
	if mapped == funcionarioerrors.ErrCPFOuEmailJaCadastrado {
		return mapped
	}
	s.logger.Error("funcionario write failed",
		zap.String("request_id", rid),
		zap.String("op", op),
		zap.Error(err),
	)
	return funcionarioerrors.WrapStorage(err)
}
