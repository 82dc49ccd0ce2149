package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
	repo "github.com/nestorahq/nestora-api/internal/domain/repository"
	"github.com/nestorahq/nestora-api/pkg/helpers"
)

// UserService handles account registration.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	PhotoURL string
}

// Register inserts the user, hashing the password when one is supplied
// (third-party sign-ins register without one). Registering an existing
// email is a no-op; the bool reports whether a row was written.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, bool, error) {
	u := &entity.User{
		Email:    in.Email,
		Name:     in.Name,
		Role:     in.Role,
		PhotoURL: in.PhotoURL,
	}
	if u.Role == "" {
		u.Role = "user"
	}
	if in.Password != "" {
		hash, err := helpers.HashPassword(in.Password)
		if err != nil {
			return nil, false, err
		}
		u.Password = hash
	}

	inserted, err := s.Repo.Create(ctx, u)
	if err != nil {
		return nil, false, err
	}
	if !inserted {
		existing, err := s.Repo.GetByEmail(ctx, in.Email)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, false, err
		}
		return existing, false, nil
	}
	return u, true, nil
}
