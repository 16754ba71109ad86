package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"booksy/config"
	deliverycontext "booksy/internal/delivery/context"
	"booksy/internal/domain/entity"
	domainerrors "booksy/internal/domain/errors"
	"booksy/internal/domain/repository"
	"booksy/internal/domain/service"
	"booksy/internal/errors"
	"booksy/internal/usecase"
	"booksy/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const minPasswordLength = 6

// userService implements the UserUsecase interface.
type userService struct {
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	email          service.EmailService
	metrics        service.Metrics
	accessTokenTTL time.Duration
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Email        service.EmailService
	Metrics      service.Metrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		email:          params.Email,
		metrics:        params.Metrics,
		accessTokenTTL: params.Config.Auth.AccessTokenTTL,
		logger:         params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a learner account and signs them in.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := util.NormalizeEmail(input.Email)
	name := strings.TrimSpace(input.Name)
	if name == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and email are required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 6 characters")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
	}

	token, err := srv.issueToken(user)
	if err != nil {
		return nil, err
	}

	srv.metrics.UserRegistered()
	if err := srv.email.SendWelcome(ctx, user.Name, user.Email); err != nil {
		srv.log(ctx).Warn("Failed to send welcome email",
			slog.String("userID", user.ID.String()),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

// Login verifies credentials. Unknown email and wrong password are indistinguishable.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := util.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{User: user, AccessToken: token}, nil
}

func (srv *userService) issueToken(user *entity.User) (string, error) {
	token, err := srv.tokenService.GenerateToken(user.ID, user.Email, user.Roles().ToStrings(), service.TokenTypeAccess, srv.accessTokenTTL)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate access token")
	}

	return token, nil
}

// GetProfile returns the user's account.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies the provided fields and leaves the rest untouched.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		user.Name = name
	}
	if input.Avatar != nil {
		user.Profile.Avatar = *input.Avatar
	}
	if input.Bio != nil {
		user.Profile.Bio = *input.Bio
	}
	if input.Phone != nil {
		user.Profile.Phone = *input.Phone
	}
	user.UpdatedAt = time.Now().UTC()

	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}
