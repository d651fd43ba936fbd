package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lequangminh/fitstreak/internal/core/domain"
	"github.com/lequangminh/fitstreak/internal/core/services"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	args := m.Called(ctx, id, current, longest)
	return args.Error(0)
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewAuthService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()

		user, err := svc.SignUp(ctx, services.SignUpInput{
			Username: "Anna",
			Password: "secret123",
			Level:    domain.LevelBeginner,
		})

		require.NoError(t, err)
		assert.Equal(t, "anna", user.Username)
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, user.PasswordHash)
		repo.AssertExpectations(t)
	})

	t.Run("Invalid level rejected before touching the repo", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewAuthService(repo)

		_, err := svc.SignUp(ctx, services.SignUpInput{
			Username: "anna",
			Password: "secret123",
			Level:    "pro",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidLevel)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Short password rejected", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewAuthService(repo)

		_, err := svc.SignUp(ctx, services.SignUpInput{
			Username: "anna",
			Password: "short",
			Level:    domain.LevelBeginner,
		})

		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})

	t.Run("Duplicate username propagates", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewAuthService(repo)

		repo.On("Create", ctx, mock.Anything).Return(domain.ErrUsernameAlreadyUsed).Once()

		_, err := svc.SignUp(ctx, services.SignUpInput{
			Username: "anna",
			Password: "secret123",
			Level:    domain.LevelBeginner,
		})

		assert.ErrorIs(t, err, domain.ErrUsernameAlreadyUsed)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	knownUser := func(t *testing.T) *domain.User {
		t.Helper()
		user, err := domain.NewUser("id-1", "anna", domain.LevelBeginner)
		require.NoError(t, err)
		require.NoError(t, user.SetPassword("secret123"))
		return user
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewAuthService(repo)

		repo.On("GetByUsername", ctx, "anna").Return(knownUser(t), nil).Once()

		user, err := svc.Authenticate(ctx, "anna", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "anna", user.Username)
	})

	t.Run("Mixed-case username matches the stored lowercased account", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewAuthService(repo)

		// Signup stored "anna"; login with the casing the user typed at
		// signup must still find it.
		repo.On("GetByUsername", ctx, "anna").Return(knownUser(t), nil).Once()

		user, err := svc.Authenticate(ctx, " Anna ", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "anna", user.Username)
		repo.AssertExpectations(t)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewAuthService(repo)

		repo.On("GetByUsername", ctx, "anna").Return(knownUser(t), nil).Once()

		_, err := svc.Authenticate(ctx, "anna", "wrong-password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Unknown user collapses to invalid credentials", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewAuthService(repo)

		repo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.Authenticate(ctx, "ghost", "whatever1")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Repo failure is not masked", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewAuthService(repo)

		dbErr := errors.New("db connection lost")
		repo.On("GetByUsername", ctx, "anna").Return(nil, dbErr).Once()

		_, err := svc.Authenticate(ctx, "anna", "secret123")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
