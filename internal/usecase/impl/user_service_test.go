package impl

import (
	"context"
	"testing"
	"time"

	"creativehub/config"
	"creativehub/internal/domain/entity"
	domainerrors "creativehub/internal/domain/errors"
	"creativehub/internal/domain/repository"
	mockRepo "creativehub/internal/mocks/repository"
	mockService "creativehub/internal/mocks/service"
	"creativehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userMocks struct {
	users  *mockRepo.MockUserRepository
	hasher *mockService.MockPasswordHasher
	tokens *mockService.MockTokenService
}

func newTestUserService(t *testing.T) (*userService, userMocks) {
	m := userMocks{
		users:  mockRepo.NewMockUserRepository(t),
		hasher: mockService.NewMockPasswordHasher(t),
		tokens: mockService.NewMockTokenService(t),
	}
	srv := newUserService(UserServiceParams{
		UserRepo:     m.users,
		Hasher:       m.hasher,
		TokenService: m.tokens,
		Publisher:    newQuietPublisher(t),
		Config:       &config.Config{Auth: &config.AuthConfig{MinPasswordLength: 6}},
		Logger:       newDiscardLogger(),
	})

	return srv, m
}

func TestUserService_Register_DefaultsToBuyer(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestUserService(t)
	expires := time.Now().Add(time.Hour)

	m.users.On("FindByEmail", ctx, "nadia@example.com").Return(nil, repository.ErrNotFound).Once()
	m.hasher.On("Hash", "secret12").Return("hashed", nil).Once()
	m.users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleBuyer && u.PasswordHash == "hashed" && u.Status == entity.UserActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = "u1"
	}).Return(nil).Once()
	m.tokens.On("GenerateAccessToken", "u1", "buyer").Return("tok", expires, nil).Once()

	out, err := srv.Register(ctx, &usecase.RegisterInput{
		FirstName: "Nadia",
		Email:     " Nadia@Example.com ",
		Password:  "secret12",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok", out.Token)
	assert.Equal(t, "nadia@example.com", out.User.Email)
}

func TestUserService_Register_RejectsAdmin(t *testing.T) {
	srv, _ := newTestUserService(t)

	_, err := srv.Register(context.Background(), &usecase.RegisterInput{FirstName: "Eve", Email: "e@x.io", Password: "secret12", Role: "admin"})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestUserService(t)

	m.users.On("FindByEmail", ctx, "taken@example.com").Return(&entity.User{ID: "u0"}, nil).Once()

	_, err := srv.Register(ctx, &usecase.RegisterInput{FirstName: "Tom", Email: "taken@example.com", Password: "secret12"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.UserInput
	}{
		{"short first name", usecase.UserInput{FirstName: "A", Email: "a@b.io", Role: "buyer", Password: "secret12"}},
		{"bad email", usecase.UserInput{FirstName: "Ann", Email: "ann", Role: "buyer", Password: "secret12"}},
		{"bad role", usecase.UserInput{FirstName: "Ann", Email: "a@b.io", Role: "owner", Password: "secret12"}},
		{"phone too short", usecase.UserInput{FirstName: "Ann", Email: "a@b.io", Role: "buyer", Phone: "12-34", Password: "secret12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestUserService(t)
			_, err := srv.Create(context.Background(), &tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
		})
	}
}

func TestUserService_Create_ShortPassword(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestUserService(t)

	m.users.On("FindByEmail", ctx, "a@b.io").Return(nil, repository.ErrNotFound).Once()

	_, err := srv.Create(ctx, &usecase.UserInput{FirstName: "Ann", Email: "a@b.io", Role: "seller", Password: "123"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv, m := newTestUserService(t)
		m.users.On("FindByEmail", ctx, "admin@creativehub.io").
			Return(&entity.User{ID: "u1", Role: entity.RoleAdmin, Status: entity.UserActive, PasswordHash: "h"}, nil).Once()
		m.hasher.On("Check", "admin123", "h").Return(true).Once()
		m.tokens.On("GenerateAccessToken", "u1", "admin").Return("tok", time.Now(), nil).Once()

		out, err := srv.Login(ctx, &usecase.LoginInput{Email: "Admin@CreativeHub.io", Password: "admin123"})
		require.NoError(t, err)
		assert.Equal(t, "tok", out.Token)
	})

	t.Run("unknown email", func(t *testing.T) {
		srv, m := newTestUserService(t)
		m.users.On("FindByEmail", ctx, "ghost@x.io").Return(nil, repository.ErrNotFound).Once()

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ghost@x.io", Password: "whatever"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		srv, m := newTestUserService(t)
		m.users.On("FindByEmail", ctx, "a@b.io").Return(&entity.User{ID: "u1", PasswordHash: "h"}, nil).Once()
		m.hasher.On("Check", "nope", "h").Return(false).Once()

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "a@b.io", Password: "nope"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("blocked", func(t *testing.T) {
		srv, m := newTestUserService(t)
		m.users.On("FindByEmail", ctx, "a@b.io").Return(&entity.User{ID: "u1", PasswordHash: "h", Status: entity.UserBlocked}, nil).Once()
		m.hasher.On("Check", "pw", "h").Return(true).Once()

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "a@b.io", Password: "pw"})
		assert.True(t, errors.Is(err, domainerrors.ErrAccountBlocked))
	})
}

func TestUserService_Update_EmptyPasswordKeepsHash(t *testing.T) {
	ctx := context.Background()
	srv, m := newTestUserService(t)

	m.users.On("FindByID", ctx, "u1").Return(&entity.User{
		ID: "u1", FirstName: "Ann", Email: "a@b.io", Role: entity.RoleBuyer, Status: entity.UserActive, PasswordHash: "old",
	}, nil).Once()
	m.users.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.PasswordHash == "old" && u.Role == entity.RoleSeller
	})).Return(nil).Once()

	_, err := srv.Update(ctx, "u1", &usecase.UserPatch{Role: ptr("seller"), Password: ptr("")})
	require.NoError(t, err)
}
