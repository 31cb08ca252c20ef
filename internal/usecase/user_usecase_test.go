package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/internal/usecase"
	"ats-resume-scorer/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled persistence answers 501 everywhere", func(t *testing.T) {
		uc := usecase.NewUserUsecase(nil)
		assert.False(t, uc.Enabled())

		_, err := uc.ListUsers(ctx)
		assert.Equal(t, http.StatusNotImplemented, apperror.StatusOf(err))
		assert.ErrorIs(t, err, domain.ErrPersistenceDisabled)
		assert.Equal(t, "Database not available", err.Error())

		_, err = uc.CreateUser(ctx, domain.CreateUserRequest{Username: "jane", Email: "j@x.io"})
		assert.Equal(t, http.StatusNotImplemented, apperror.StatusOf(err))
		_, err = uc.GetUser(ctx, 1)
		assert.Equal(t, http.StatusNotImplemented, apperror.StatusOf(err))
		_, err = uc.UpdateUser(ctx, 1, domain.UpdateUserRequest{})
		assert.Equal(t, http.StatusNotImplemented, apperror.StatusOf(err))
		assert.Equal(t, http.StatusNotImplemented, apperror.StatusOf(uc.DeleteUser(ctx, 1)))
	})

	t.Run("List returns an empty slice", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("List", ctx).Return(nil, nil)

		users, err := usecase.NewUserUsecase(repo).ListUsers(ctx)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("Create normalizes the email", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil)

		user, err := usecase.NewUserUsecase(repo).CreateUser(ctx, domain.CreateUserRequest{Username: " jane ", Email: "Jane@Example.COM"})
		require.NoError(t, err)
		assert.Equal(t, &domain.User{ID: 7, Username: "jane", Email: "jane@example.com"}, user)
	})

	t.Run("Create conflict", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrUserConflict)

		_, err := usecase.NewUserUsecase(repo).CreateUser(ctx, domain.CreateUserRequest{Username: "jane", Email: "j@x.io"})
		assert.Equal(t, http.StatusConflict, apperror.StatusOf(err))
	})

	t.Run("Get missing", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", ctx, int64(9)).Return(nil, domain.ErrUserNotFound)

		_, err := usecase.NewUserUsecase(repo).GetUser(ctx, 9)
		assert.Equal(t, http.StatusNotFound, apperror.StatusOf(err))
	})

	t.Run("Update applies present fields only", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3, Username: "old", Email: "old@x.io"}, nil)
		repo.On("Update", ctx, &domain.User{ID: 3, Username: "old", Email: "new@x.io"}).Return(nil)

		user, err := usecase.NewUserUsecase(repo).UpdateUser(ctx, 3, domain.UpdateUserRequest{Email: strPtr("NEW@x.io")})
		require.NoError(t, err)
		assert.Equal(t, "old", user.Username)
		assert.Equal(t, "new@x.io", user.Email)
		repo.AssertExpectations(t)
	})

	t.Run("Repository failure is internal", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("Delete", ctx, int64(1)).Return(errors.New("connection reset"))

		err := usecase.NewUserUsecase(repo).DeleteUser(ctx, 1)
		assert.Equal(t, http.StatusInternalServerError, apperror.StatusOf(err))
		assert.Equal(t, "Internal Server Error", err.Error())
	})
}
