package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	mockRepo "taskboard/internal/mocks/repository"
	mockSvc "taskboard/internal/mocks/service"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type authServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	tokenSvc  *mockSvc.MockTokenService
}

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, authServiceMocks) {
	mocks := authServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokenSvc:  mockSvc.NewMockTokenService(t),
	}

	service := NewAuthService(AuthServiceParams{
		TxManager:    mocks.txManager,
		UserRepo:     mocks.userRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenSvc,
		Logger:       testLogger(),
	})

	return service, mocks
}

// expectTransaction wires the transaction manager mock so the callback runs
// against the given repository factory.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo *mockRepo.MockUserRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(userRepo)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAuthService_Register_Success(t *testing.T) {
	service, mocks := newAuthServiceForTest(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	}

	mocks.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)
	expectTransaction(t, mocks.txManager, mocks.userRepo)

	mocks.userRepo.EXPECT().
		ExistsByEmail(ctx, input.Email).
		Return(false, nil)

	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, input.Name, user.Name)
			assert.Equal(t, input.Email, user.Email)
			assert.Equal(t, "hashed-password", user.PasswordHash)
			assert.Equal(t, entity.RoleUser, user.Role)
			user.ID = uuid.New()
		}).
		Return(nil)

	mocks.tokenSvc.EXPECT().
		Issue(input.Email, entity.RoleUser).
		Return("issued-token", int64(86400000), nil)

	output, err := service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "issued-token", output.Token)
	assert.Equal(t, int64(86400000), output.ExpiresIn)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, mocks := newAuthServiceForTest(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	}

	mocks.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)
	expectTransaction(t, mocks.txManager, mocks.userRepo)

	mocks.userRepo.EXPECT().
		ExistsByEmail(ctx, input.Email).
		Return(true, nil)

	output, err := service.Register(ctx, input)
	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
	mocks.tokenSvc.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	service, mocks := newAuthServiceForTest(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse battery",
	}

	mocks.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := service.Register(ctx, input)
	assert.Nil(t, output)
	assert.Error(t, err)
	mocks.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, mocks := newAuthServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleUser,
	}

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	mocks.hasher.EXPECT().
		Check("correct horse battery", "stored-hash").
		Return(true)

	mocks.tokenSvc.EXPECT().
		Issue(user.Email, entity.RoleUser).
		Return("issued-token", int64(86400000), nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", output.Token)
	assert.Equal(t, int64(86400000), output.ExpiresIn)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, mocks := newAuthServiceForTest(t)

	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, mocks := newAuthServiceForTest(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: "stored-hash",
		Role:         entity.RoleUser,
	}

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	mocks.hasher.EXPECT().
		Check("wrong password", "stored-hash").
		Return(false)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong password",
	})
	assert.Nil(t, output)
	// Wrong password folds into the same kind as an unknown email; callers
	// cannot tell the two apart.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	mocks.tokenSvc.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	service, mocks := newAuthServiceForTest(t)

	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(nil, errors.New("db error"))

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "whatever",
	})
	assert.Nil(t, output)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
