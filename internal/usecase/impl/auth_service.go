// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/domain/service"
	"taskboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register orchestrates the complete user registration process: duplicate
// check and insert run in one transaction, then a credential is issued for
// the new identity.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.CredentialOutput, error) {
	srv.logger.Info("Starting user registration", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		exists, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if exists {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("user registration failed")
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Role:         entity.RoleUser,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Warn("User registration failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	token, expiresIn, err := srv.tokenService.Issue(registeredUser.Email, registeredUser.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue credential after registration")
	}
	srv.logger.Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.CredentialOutput{Token: token, ExpiresIn: expiresIn}, nil
}

// Login verifies the supplied credentials and issues a fresh credential.
// Unknown email and wrong password both fold into ErrInvalidCredentials so
// the caller cannot enumerate accounts.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.CredentialOutput, error) {
	srv.logger.Debug("Starting user login", "email", input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", "email", input.Email)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, expiresIn, err := srv.tokenService.Issue(user.Email, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue credential after login")
	}
	srv.logger.Debug("User logged in successfully", "userID", user.ID)

	return &usecase.CredentialOutput{Token: token, ExpiresIn: expiresIn}, nil
}
