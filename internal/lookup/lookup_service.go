package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsCacheKey = "lookup:options"

const optionsCacheTTL = 1 * time.Hour

type Service interface {
	GetOptions(ctx context.Context) (Options, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("lookup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookup.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// GetOptions serves the department, position and bank sets from cache
// when possible. The tables are master data, so an hour of staleness is
// acceptable; singleflight keeps concurrent form loads from stampeding
// the database when the cache is cold.
func (s *service) GetOptions(ctx context.Context) (Options, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var opts Options
			if json.Unmarshal([]byte(cached), &opts) == nil {
				return opts, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		departments, err := s.repo.FindDepartments(ctx)
		if err != nil {
			return nil, err
		}
		positions, err := s.repo.FindPositions(ctx)
		if err != nil {
			return nil, err
		}
		banks, err := s.repo.FindBanks(ctx)
		if err != nil {
			return nil, err
		}

		opts := Options{
			Departments: emptyIfNil(departments),
			Positions:   positions,
			Banks:       emptyIfNil(banks),
		}
		if opts.Positions == nil {
			opts.Positions = []PositionOption{}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(opts); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, optionsCacheTTL)
			}
		}

		return opts, nil
	})
	if err != nil {
		s.logger.Error("load options failed", zap.Error(err))
		return Options{}, apperror.Wrap(
			err,
			apperror.CodeInternalError,
			"Erro ao carregar opções",
			http.StatusInternalServerError,
		)
	}

	return v.(Options), nil
}

func emptyIfNil(opts []Option) []Option {
	if opts == nil {
		return []Option{}
	}
	return opts
}
