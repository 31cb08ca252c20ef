package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ats-resume-scorer/internal/domain"
	"ats-resume-scorer/pkg/apperror"
	"ats-resume-scorer/pkg/security"
)

const persistenceDisabled = "Database not available"

type userUsecase struct {
	repo domain.UserRepository
}

// NewUserUsecase returns the user service. A nil repo disables persistence and
// every operation answers 501.
func NewUserUsecase(repo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{repo: repo}
}

func (u *userUsecase) Enabled() bool {
	return u.repo != nil
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	if !u.Enabled() {
		return nil, disabledErr()
	}
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, mapUserErr(err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (u *userUsecase) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if !u.Enabled() {
		return nil, disabledErr()
	}
	user := &domain.User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
	}
	if user.Username == "" || user.Email == "" {
		return nil, apperror.BadRequest("Username and email are required")
	}
	if err := u.repo.Create(ctx, user); err != nil {
		return nil, mapUserErr(err)
	}
	security.DefaultLogger().LogUserChange(ctx, security.EventUserCreated, domain.RequestIDFrom(ctx), user.ID, user.Email)
	return user, nil
}

func (u *userUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if !u.Enabled() {
		return nil, disabledErr()
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapUserErr(err)
	}
	return user, nil
}

// UpdateUser applies only the fields present in req.
func (u *userUsecase) UpdateUser(ctx context.Context, id int64, req domain.UpdateUserRequest) (*domain.User, error) {
	if !u.Enabled() {
		return nil, disabledErr()
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapUserErr(err)
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if err := u.repo.Update(ctx, user); err != nil {
		return nil, mapUserErr(err)
	}
	return user, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id int64) error {
	if !u.Enabled() {
		return disabledErr()
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return mapUserErr(err)
	}
	security.DefaultLogger().LogUserChange(ctx, security.EventUserDeleted, domain.RequestIDFrom(ctx), id, "")
	return nil
}

func disabledErr() error {
	return apperror.New(http.StatusNotImplemented, persistenceDisabled, domain.ErrPersistenceDisabled)
}

func mapUserErr(err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return apperror.New(http.StatusNotFound, "User not found", err)
	case errors.Is(err, domain.ErrUserConflict):
		return apperror.New(http.StatusConflict, "Username or email already exists", err)
	default:
		return apperror.Internal(err)
	}
}
