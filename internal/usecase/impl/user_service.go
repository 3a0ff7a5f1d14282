package impl

import (
	"context"
	"log/slog"
	"strings"

	"creativehub/config"
	deliverycontext "creativehub/internal/delivery/context"
	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	"creativehub/internal/domain/service"
	"creativehub/internal/usecase"
	"creativehub/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	resourceUsers            = "users"
	defaultMinPasswordLength = 6
	minPhoneDigits           = 10
	maxPhoneDigits           = 15
)

// userService implements both the AuthUsecase and the admin UserUsecase.
type userService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	minPasswordLength int
	events            events
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

func newUserService(params UserServiceParams) *userService {
	minLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minLength = params.Config.Auth.MinPasswordLength
	}

	return &userService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		minPasswordLength: minLength,
		events:            events{publisher: params.Publisher, logger: params.Logger},
		logger:            params.Logger,
	}
}

// NewAuthService is the constructor for the self-service auth flows.
func NewAuthService(params UserServiceParams) usecase.AuthUsecase {
	return newUserService(params)
}

// NewUserService is the constructor for the admin user directory.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return newUserService(params)
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// --- Auth ---

// Register opens a buyer (default) or seller account and signs it in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	role := entity.Role(input.Role)
	if role == "" {
		role = entity.RoleBuyer
	}
	if role == entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WithDetails("admin accounts cannot self-register")
	}

	user, err := srv.createUser(ctx, &usecase.UserInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      string(role),
		Password:  input.Password,
	})
	if err != nil {
		return nil, err
	}

	return srv.issue(user)
}

func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, util.NormalizeEmail(input.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, repoError(err, domainerrors.ErrUserNotFound, "find user by email")
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.String("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if user.Status == entity.UserBlocked {
		return nil, domainerrors.ErrAccountBlocked
	}

	srv.log(ctx).Info("User signed in", slog.String("user_id", user.ID), slog.String("role", user.Role.String()))

	return srv.issue(user)
}

func (srv *userService) Me(ctx context.Context, userID string) (*entity.User, error) {
	return srv.Get(ctx, userID)
}

func (srv *userService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return &usecase.AuthOutput{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// --- Admin directory ---

func (srv *userService) List(ctx context.Context, filter repository.ListFilter) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrUserNotFound, "list users")
	}

	return users, nil
}

func (srv *userService) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, repoError(err, domainerrors.ErrUserNotFound, "find user")
	}

	return user, nil
}

func (srv *userService) Create(ctx context.Context, input *usecase.UserInput) (*entity.User, error) {
	return srv.createUser(ctx, input)
}

func (srv *userService) Update(ctx context.Context, id string, patch *usecase.UserPatch) (*entity.User, error) {
	user, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&user.FirstName, patch.FirstName)
	setIfPresent(&user.LastName, patch.LastName)
	setIfPresent(&user.Phone, patch.Phone)
	if patch.Email != nil {
		user.Email = util.NormalizeEmail(*patch.Email)
	}
	if patch.Role != nil {
		user.Role = entity.Role(*patch.Role)
	}
	if patch.Status != nil {
		user.Status = entity.UserStatus(*patch.Status)
	}
	if err := srv.validateProfile(user); err != nil {
		return nil, err
	}
	if patch.Password != nil && *patch.Password != "" {
		hash, err := srv.hashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, repoError(err, domainerrors.ErrUserNotFound, "update user")
	}

	srv.events.emit(ctx, resourceUsers, service.ActionUpdated, user.ID)

	return user, nil
}

func (srv *userService) Delete(ctx context.Context, id string) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return repoError(err, domainerrors.ErrUserNotFound, "delete user")
	}

	srv.events.emit(ctx, resourceUsers, service.ActionDeleted, id)

	return nil
}

func (srv *userService) createUser(ctx context.Context, input *usecase.UserInput) (*entity.User, error) {
	status := entity.UserStatus(input.Status)
	if status == "" {
		status = entity.UserActive
	}

	user := &entity.User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     util.NormalizeEmail(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Role:      entity.Role(input.Role),
		Status:    status,
	}
	if err := srv.validateProfile(user); err != nil {
		return nil, err
	}

	_, err := srv.userRepo.FindByEmail(ctx, user.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, repoError(err, domainerrors.ErrUserNotFound, "find user by email")
	}

	hash, err := srv.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, repoError(err, domainerrors.ErrUserNotFound, "create user")
	}

	srv.log(ctx).Info("User created", slog.String("user_id", user.ID), slog.String("role", user.Role.String()))
	srv.events.emit(ctx, resourceUsers, service.ActionCreated, user.ID)

	return user, nil
}

func (srv *userService) validateProfile(user *entity.User) error {
	if len(user.FirstName) < 2 {
		return domainerrors.ErrValidationFailed.WithDetails("firstName must be at least 2 characters")
	}
	if !strings.Contains(user.Email, "@") {
		return domainerrors.ErrValidationFailed.WithDetails("a valid email is required")
	}
	if !user.Role.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(user.Role))
	}
	if !user.Status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown status " + string(user.Status))
	}
	if user.Phone != "" {
		if digits := util.DigitCount(user.Phone); digits < minPhoneDigits || digits > maxPhoneDigits {
			return domainerrors.ErrValidationFailed.WithDetails("phone must contain 10 to 15 digits")
		}
	}

	return nil
}

func (srv *userService) hashPassword(password string) (string, error) {
	if len(password) < srv.minPasswordLength {
		return "", domainerrors.ErrValidationFailed.WithDetails("password is too short")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed
	}

	return hash, nil
}
