package auth

import (
	"context"
	"regexp"
	"strings"

	autherrors "github.com/haurio/projeto-ceramica-vicente-portela/internal/auth/errors"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/session"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (string, error)
	Register(ctx context.Context, req RegisterRequest) error
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	repo     Repository
	sessions *session.Store
	logger   *zap.Logger
}

func NewService(repo Repository, sessions *session.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, sessions: sessions, logger: l}
}

// Login verifies the credentials and opens a server-side session. Both
// unknown users and wrong passwords collapse into the same message so
// the response does not leak which usernames exist.
func (s *service) Login(ctx context.Context, req LoginRequest) (string, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error("login lookup failed", zap.Error(err))
		return "", autherrors.WrapStorage(err)
	}
	if user == nil {
		s.logger.Warn("login attempt for unknown user", zap.String("username", req.Username))
		return "", autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Warn("login attempt with wrong password", zap.String("username", req.Username))
		return "", autherrors.ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Create(ctx, session.Data{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		s.logger.Error("session create failed", zap.String("username", req.Username), zap.Error(err))
		return "", autherrors.WrapStorage(err)
	}

	s.logger.Info("login succeeded", zap.String("username", req.Username))
	return sessionID, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.FullName == "" || req.Status == "" {
		return autherrors.ErrAllFieldsRequired
	}
	if req.Status != "Ativo" && req.Status != "Inativo" {
		return autherrors.ErrInvalidStatus
	}
	if !emailRe.MatchString(req.Email) {
		return autherrors.ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return autherrors.ErrPasswordTooShort
	}
	if len(req.Username) > 255 || len(req.FullName) > 255 {
		return autherrors.ErrFieldTooLong
	}

	existing, err := s.repo.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		s.logger.Error("register lookup failed", zap.Error(err))
		return autherrors.WrapStorage(err)
	}
	if existing != nil {
		if existing.Username == req.Username {
			return autherrors.ErrUsernameTaken
		}
		return autherrors.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return autherrors.WrapStorage(err)
	}

	user := User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		Password: string(hashed),
		FullName: strings.TrimSpace(req.FullName),
		Status:   req.Status,
	}
	if err := s.repo.Insert(ctx, &user); err != nil {
		s.logger.Error("register insert failed", zap.Error(err))
		return autherrors.WrapStorage(err)
	}

	s.logger.Info("user registered", zap.String("username", user.Username))
	return nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		s.logger.Error("logout failed", zap.Error(err))
		return autherrors.ErrLogoutFailed
	}
	s.logger.Info("logout succeeded")
	return nil
}
