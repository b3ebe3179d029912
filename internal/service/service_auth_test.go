package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"chatvault/internal/config"
	"chatvault/internal/logger"
	"chatvault/internal/store"
	"chatvault/models"
)

// fakeUserRepository implements store.UserRepository with swappable
// function fields so each test supplies only the behaviour it needs.
type fakeUserRepository struct {
	createUserFunc         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFunc func(ctx context.Context, username string) (models.User, error)
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFunc(ctx, user)
}

func (f *fakeUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return f.findUserByUsernameFunc(ctx, username)
}

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "chatvault-test",
		TokenDuration: time.Hour,
	}
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	repo := &fakeUserRepository{
		createUserFunc: func(_ context.Context, user models.User) (models.User, error) {
			// the service must send a bcrypt hash, never the plaintext
			assert.Empty(t, user.Password)
			require.NotEmpty(t, user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))

			user.UserID = 7
			return user, nil
		},
	}
	auth := NewAuthService(repo, testAuthConfig(), logger.Nop())

	registered, err := auth.RegisterUser(context.Background(), "alice", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, int64(7), registered.UserID)
	assert.Equal(t, "alice", registered.Username)
}

func TestAuthService_RegisterUser_EmptyFields(t *testing.T) {
	repo := &fakeUserRepository{
		createUserFunc: func(_ context.Context, _ models.User) (models.User, error) {
			t.Fatal("store must not be reached for invalid input")
			return models.User{}, nil
		},
	}
	auth := NewAuthService(repo, testAuthConfig(), logger.Nop())

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "pw"},
		{name: "empty password", username: "alice", password: ""},
		{name: "both empty", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.RegisterUser(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	repo := &fakeUserRepository{
		createUserFunc: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	auth := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := auth.RegisterUser(context.Background(), "alice", "s3cret")

	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), passwordHashCost)
	require.NoError(t, err)

	repo := &fakeUserRepository{
		findUserByUsernameFunc: func(_ context.Context, username string) (models.User, error) {
			assert.Equal(t, "alice", username)
			return models.User{UserID: 7, Username: "alice", PasswordHash: string(hash)}, nil
		},
	}
	auth := NewAuthService(repo, testAuthConfig(), logger.Nop())

	found, err := auth.Login(context.Background(), "alice", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)
}

// An unknown username and a wrong password must be indistinguishable to the
// caller: the same error value comes back in both cases.
func TestAuthService_Login_IdenticalFailures(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), passwordHashCost)
	require.NoError(t, err)

	repo := &fakeUserRepository{
		findUserByUsernameFunc: func(_ context.Context, username string) (models.User, error) {
			if username == "alice" {
				return models.User{UserID: 7, Username: "alice", PasswordHash: string(hash)}, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	auth := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, errWrongPassword := auth.Login(context.Background(), "alice", "wrong-password")
	_, errUnknownUser := auth.Login(context.Background(), "nobody", "right-password")

	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword, errUnknownUser)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	repo := &fakeUserRepository{
		findUserByUsernameFunc: func(_ context.Context, _ string) (models.User, error) {
			t.Fatal("store must not be reached for empty credentials")
			return models.User{}, nil
		},
	}
	auth := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := auth.Login(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_StoreUnavailable(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := &fakeUserRepository{
		findUserByUsernameFunc: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, fmt.Errorf("%w: %w", store.ErrStoreUnavailable, storeErr)
		},
	}
	auth := NewAuthService(repo, testAuthConfig(), logger.Nop())

	_, err := auth.Login(context.Background(), "alice", "s3cret")

	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	auth := NewAuthService(&fakeUserRepository{}, testAuthConfig(), logger.Nop())

	token, err := auth.CreateToken(context.Background(), models.User{UserID: 42, Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := auth.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	auth := NewAuthService(&fakeUserRepository{}, testAuthConfig(), logger.Nop())

	_, err := auth.ParseToken(context.Background(), "not-a-jwt")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
