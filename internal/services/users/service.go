package users

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles users business logic
type Service struct {
	repo     Repository
	validate *validator.Validate
	log      *slog.Logger
}

// NewService creates a new users service
func NewService(repo Repository, v *validator.Validate, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: v,
		log:      log,
	}
}

// RegisterUserRequest represents a user registration request
type RegisterUserRequest struct {
	FirstName string    `json:"first_name,omitempty" example:"Kari"`
	LastName  string    `json:"last_name,omitempty" example:"Nordmann"`
	Email     string    `json:"email" validate:"required,email" example:"kari@example.com"`
	Meta      *UserMeta `json:"meta,omitempty"`
}

// Register validates a registration request and inserts the user.
// A second registration with the same email returns ErrDuplicateEmail.
func (s *Service) Register(ctx context.Context, req RegisterUserRequest) (*User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &User{
		ID:        bson.NewObjectID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Meta:      req.Meta,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, err
		}
		s.log.Error(ErrCreateUser.Error(), "error", err, "email", req.Email)
		return nil, ErrCreateUser
	}

	return user, nil
}

// FindByEmail returns the user registered under the given email.
func (s *Service) FindByEmail(ctx context.Context, email string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		s.log.Error(ErrListUsers.Error(), "error", err, "email", email)
		return nil, ErrListUsers
	}
	return user, nil
}

// List returns every user in the collection.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	usersList, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error(ErrListUsers.Error(), "error", err)
		return nil, ErrListUsers
	}
	return usersList, nil
}

// UpdateMeta applies a partial patch to the meta record of the user with
// the given email and returns the post-update document.
func (s *Service) UpdateMeta(ctx context.Context, email string, patch UpdateUserMeta) (*User, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, err
	}

	user, err := s.repo.UpdateMeta(ctx, email, patch)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		s.log.Error(ErrUpdateUser.Error(), "error", err, "email", email)
		return nil, ErrUpdateUser
	}

	return user, nil
}

// Purge removes every user from the collection.
func (s *Service) Purge(ctx context.Context) (int64, error) {
	n, err := s.repo.Purge(ctx)
	if err != nil {
		s.log.Error(ErrDeleteUsers.Error(), "error", err)
		return 0, ErrDeleteUsers
	}
	return n, nil
}
