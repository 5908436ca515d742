package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/haurio/projeto-ceramica-vicente-portela/internal/auth"
	autherrors "github.com/haurio/projeto-ceramica-vicente-portela/internal/auth/errors"
	"github.com/haurio/projeto-ceramica-vicente-portela/internal/session"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byUsername *auth.User
	byEither   *auth.User
	inserted   *auth.User
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	return f.byUsername, nil
}

func (f *fakeUserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*auth.User, error) {
	return f.byEither, nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, u *auth.User) error {
	f.inserted = u
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid credentials open a session", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.Regexp().ExpectSet(`session:.+`, `.+`, 24*time.Hour).SetVal("OK")

		repo := &fakeUserRepo{byUsername: &auth.User{
			ID:       1,
			Username: "vicente",
			Email:    "vicente@ceramica.com.br",
			Password: hashPassword(t, "segredo123"),
		}}
		svc := auth.NewService(repo, session.NewStore(rdb))

		sessionID, err := svc.Login(context.Background(), auth.LoginRequest{
			Username: "vicente",
			Password: "segredo123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, sessionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user and wrong password share one message", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()

		svc := auth.NewService(&fakeUserRepo{}, session.NewStore(rdb))
		_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "ghost", Password: "x"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)

		repo := &fakeUserRepo{byUsername: &auth.User{
			Username: "vicente",
			Password: hashPassword(t, "segredo123"),
		}}
		svc = auth.NewService(repo, session.NewStore(rdb))
		_, err = svc.Login(context.Background(), auth.LoginRequest{Username: "vicente", Password: "errada"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Register(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	sessions := session.NewStore(rdb)

	valid := auth.RegisterRequest{
		Username: "vicente",
		Email:    "vicente@ceramica.com.br",
		Password: "segredo123",
		FullName: "Vicente Portela",
		Status:   "Ativo",
	}

	t.Run("success hashes the password", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := auth.NewService(repo, sessions)

		require.NoError(t, svc.Register(context.Background(), valid))
		require.NotNil(t, repo.inserted)
		assert.NotEqual(t, "segredo123", repo.inserted.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.inserted.Password), []byte("segredo123")))
	})

	t.Run("validation matrix", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(r *auth.RegisterRequest)
			wantErr error
		}{
			{"missing field", func(r *auth.RegisterRequest) { r.Email = "" }, autherrors.ErrAllFieldsRequired},
			{"bad status", func(r *auth.RegisterRequest) { r.Status = "Pendente" }, autherrors.ErrInvalidStatus},
			{"bad email", func(r *auth.RegisterRequest) { r.Email = "nope" }, autherrors.ErrInvalidEmail},
			{"short password", func(r *auth.RegisterRequest) { r.Password = "curta" }, autherrors.ErrPasswordTooShort},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := valid
				tc.mutate(&req)
				err := auth.NewService(&fakeUserRepo{}, sessions).Register(context.Background(), req)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})

	t.Run("duplicates distinguish username from email", func(t *testing.T) {
		repo := &fakeUserRepo{byEither: &auth.User{Username: "vicente"}}
		err := auth.NewService(repo, sessions).Register(context.Background(), valid)
		assert.ErrorIs(t, err, autherrors.ErrUsernameTaken)

		repo = &fakeUserRepo{byEither: &auth.User{Username: "outro", Email: valid.Email}}
		err = auth.NewService(repo, sessions).Register(context.Background(), valid)
		assert.ErrorIs(t, err, autherrors.ErrEmailTaken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("session:abc").SetVal(1)

	svc := auth.NewService(&fakeUserRepo{}, session.NewStore(rdb))
	require.NoError(t, svc.Logout(context.Background(), "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
