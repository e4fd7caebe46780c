package cars

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles cars business logic
type Service struct {
	repo     Repository
	validate *validator.Validate
	log      *slog.Logger
}

// NewService creates a new cars service
func NewService(repo Repository, v *validator.Validate, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: v,
		log:      log,
	}
}

// RegisterCarRequest represents a car registration request
type RegisterCarRequest struct {
	Make  string `json:"make" validate:"required" example:"Tesla"`
	Model string `json:"model" validate:"required" example:"Model S"`
	Year  int    `json:"year,omitempty" validate:"omitempty,min=1886" example:"2021"`
	Color string `json:"color,omitempty" example:"black"`
	Owner *Owner `json:"owner,omitempty"`
}

// Register validates a registration request and inserts the car.
func (s *Service) Register(ctx context.Context, req RegisterCarRequest) (*Car, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	car := &Car{
		ID:        bson.NewObjectID(),
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
		Color:     req.Color,
		Owner:     req.Owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, car); err != nil {
		s.log.Error(ErrCreateCar.Error(), "error", err, "make", req.Make, "model", req.Model)
		return nil, ErrCreateCar
	}

	return car, nil
}

// List returns every car in the collection.
func (s *Service) List(ctx context.Context) ([]*Car, error) {
	carsList, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error(ErrListCars.Error(), "error", err)
		return nil, ErrListCars
	}
	return carsList, nil
}

// Find returns the cars matching the filter.
func (s *Service) Find(ctx context.Context, f Filter) ([]*Car, error) {
	carsList, err := s.repo.Find(ctx, f)
	if err != nil {
		s.log.Error(ErrListCars.Error(), "error", err, "filter", f)
		return nil, ErrListCars
	}
	return carsList, nil
}

// Update applies a partial patch to the first car matching the filter and
// returns the post-update document. Fields not named in the patch keep
// their stored values.
func (s *Service) Update(ctx context.Context, f Filter, patch UpdateCar) (*Car, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, err
	}

	car, err := s.repo.Update(ctx, f, patch)
	if err != nil {
		if errors.Is(err, ErrCarNotFound) {
			return nil, err
		}
		s.log.Error(ErrUpdateCar.Error(), "error", err, "filter", f)
		return nil, ErrUpdateCar
	}

	return car, nil
}

// Scrap deletes the cars matching the filter and reports how many went away.
func (s *Service) Scrap(ctx context.Context, f Filter) (int64, error) {
	n, err := s.repo.Delete(ctx, f)
	if err != nil {
		s.log.Error(ErrDeleteCar.Error(), "error", err, "filter", f)
		return 0, ErrDeleteCar
	}
	return n, nil
}

// Clear removes every car from the collection.
func (s *Service) Clear(ctx context.Context) (int64, error) {
	n, err := s.repo.Clear(ctx)
	if err != nil {
		s.log.Error(ErrDeleteCar.Error(), "error", err)
		return 0, ErrDeleteCar
	}
	return n, nil
}
