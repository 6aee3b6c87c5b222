package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/stash/internal/error_values"
	"github.com/limbo/stash/internal/repository/mocks"
	"github.com/limbo/stash/internal/service"
	"github.com/limbo/stash/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(usersRepo)
	ctx := context.Background()
	username := "test_user"
	password := "test_password"
	uid := uuid.New()

	t.Run("success", func(t *testing.T) {
		var storedHash string
		usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user *entity.User) error {
				storedHash = user.PasswordHash
				return nil
			})
		usersRepo.EXPECT().FindByName(gomock.Any(), username).DoAndReturn(
			func(_ context.Context, name string) (*entity.User, error) {
				return &entity.User{ID: uid, Name: name, PasswordHash: storedHash}, nil
			})
		user, err := us.Register(ctx, &service.RegisterRequest{Name: username, Password: password})
		require.NoError(t, err)
		assert.Equal(t, uid, user.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})

	t.Run("error user exists", func(t *testing.T) {
		usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
		_, err := us.Register(ctx, &service.RegisterRequest{Name: username, Password: password})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})

	t.Run("error invalid name", func(t *testing.T) {
		_, err := us.Register(ctx, &service.RegisterRequest{Name: "1_bad", Password: password})
		assert.Error(t, err)
	})

	t.Run("error short password", func(t *testing.T) {
		_, err := us.Register(ctx, &service.RegisterRequest{Name: username, Password: "short"})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(usersRepo)
	ctx := context.Background()
	username := "test_user"
	password := "test_password"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Name: username, PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		usersRepo.EXPECT().FindByName(gomock.Any(), username).Return(user, nil)
		got, err := us.Login(ctx, username, password)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("error wrong password", func(t *testing.T) {
		usersRepo.EXPECT().FindByName(gomock.Any(), username).Return(user, nil)
		_, err := us.Login(ctx, username, "wrong_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})

	t.Run("error unexist user", func(t *testing.T) {
		usersRepo.EXPECT().FindByName(gomock.Any(), username).Return(nil, errorvalues.ErrUserNotFound)
		_, err := us.Login(ctx, username, password)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(usersRepo)
	ctx := context.Background()
	password := "test_password"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Name: "test_user", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		usersRepo.EXPECT().Delete(gomock.Any(), user.ID).Return(nil)
		assert.NoError(t, us.DeleteAccount(ctx, user.ID, password))
	})

	t.Run("error wrong password", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		assert.ErrorIs(t, us.DeleteAccount(ctx, user.ID, "wrong_password"), errorvalues.ErrWrongCredentials)
	})
}
