// Package seed drives the demo data run: a fixed chain of CRUD calls
// against the cars and users collections, executed strictly one at a
// time. The first failing step aborts the rest of the chain.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fleetbook/internal/services/cars"
	"fleetbook/internal/services/users"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/oklog/ulid/v2"
)

// CarsService is the slice of the cars service the run depends on.
type CarsService interface {
	Clear(ctx context.Context) (int64, error)
	Register(ctx context.Context, req cars.RegisterCarRequest) (*cars.Car, error)
	List(ctx context.Context) ([]*cars.Car, error)
	Find(ctx context.Context, f cars.Filter) ([]*cars.Car, error)
	Update(ctx context.Context, f cars.Filter, patch cars.UpdateCar) (*cars.Car, error)
}

// UsersService is the slice of the users service the run depends on.
type UsersService interface {
	Purge(ctx context.Context) (int64, error)
	Register(ctx context.Context, req users.RegisterUserRequest) (*users.User, error)
	UpdateMeta(ctx context.Context, email string, patch users.UpdateUserMeta) (*users.User, error)
}

// Options controls the optional tail of the run.
type Options struct {
	ExtraCars int  // bulk-insert this many generated cars after the fixed chain
	UsersDemo bool // run the users uniqueness demo
}

// Runner executes the seed chain.
type Runner struct {
	cars  CarsService
	users UsersService
	log   *slog.Logger
}

// NewRunner creates a new seed runner
func NewRunner(carsSvc CarsService, usersSvc UsersService, log *slog.Logger) *Runner {
	return &Runner{
		cars:  carsSvc,
		users: usersSvc,
		log:   log,
	}
}

// ErrDuplicateNotRejected is returned when the users demo manages to
// register the same email twice.
var ErrDuplicateNotRejected = errors.New("duplicate email was not rejected")

const demoEmail = "kari@example.com"

// Run executes the chain. Each step starts only after the previous one
// completed; the first error aborts everything that follows.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	log := r.log.With("run_id", ulid.Make().String())

	if err := r.runCarsChain(ctx, log); err != nil {
		return err
	}

	if opts.UsersDemo {
		if err := r.runUsersDemo(ctx, log); err != nil {
			return err
		}
	}

	if opts.ExtraCars > 0 {
		if err := r.seedExtraCars(ctx, log, opts.ExtraCars); err != nil {
			return err
		}
	}

	log.Info("seed run complete")
	return nil
}

// runCarsChain is the fixed five-step demo:
// delete-all, create two cars, find-all, find-by-make, find-and-update.
func (r *Runner) runCarsChain(ctx context.Context, log *slog.Logger) error {
	deleted, err := r.cars.Clear(ctx)
	if err != nil {
		log.Error("step failed", "step", "clear-cars", "error", err)
		return err
	}
	log.Info("cleared cars", "deleted", deleted)

	tesla, err := r.cars.Register(ctx, cars.RegisterCarRequest{
		Make:  "Tesla",
		Model: "Model S",
		Year:  2021,
		Color: "black",
		Owner: &cars.Owner{
			Picture:       "https://example.com/owners/kari.jpg",
			Country:       "Norway",
			ContactName:   "Kari Nordmann",
			ContactNumber: "+47 555 01 234",
		},
	})
	if err != nil {
		log.Error("step failed", "step", "register-tesla", "error", err)
		return err
	}
	log.Info("registered car", "id", tesla.ID.Hex(), "make", tesla.Make, "model", tesla.Model)

	ford, err := r.cars.Register(ctx, cars.RegisterCarRequest{
		Make:  "Ford",
		Model: "Focus",
		Year:  2018,
		Color: "white",
	})
	if err != nil {
		log.Error("step failed", "step", "register-ford", "error", err)
		return err
	}
	log.Info("registered car", "id", ford.ID.Hex(), "make", ford.Make, "model", ford.Model)

	all, err := r.cars.List(ctx)
	if err != nil {
		log.Error("step failed", "step", "list-cars", "error", err)
		return err
	}
	log.Info("listed cars", "count", len(all))
	for _, c := range all {
		log.Info("car", "id", c.ID.Hex(), "make", c.Make, "model", c.Model, "color", c.Color)
	}

	teslas, err := r.cars.Find(ctx, cars.Filter{Make: "Tesla"})
	if err != nil {
		log.Error("step failed", "step", "find-teslas", "error", err)
		return err
	}
	log.Info("found cars by make", "make", "Tesla", "count", len(teslas))

	model := "X"
	color := "beige"
	updated, err := r.cars.Update(ctx, cars.Filter{Make: "Tesla"}, cars.UpdateCar{
		Model: &model,
		Color: &color,
	})
	if err != nil {
		log.Error("step failed", "step", "update-tesla", "error", err)
		return err
	}
	log.Info("updated car", "id", updated.ID.Hex(), "model", updated.Model, "color", updated.Color)

	return nil
}

// runUsersDemo registers a user twice to show the unique email index at work,
// then patches the embedded meta record.
func (r *Runner) runUsersDemo(ctx context.Context, log *slog.Logger) error {
	purged, err := r.users.Purge(ctx)
	if err != nil {
		log.Error("step failed", "step", "purge-users", "error", err)
		return err
	}
	log.Info("purged users", "deleted", purged)

	req := users.RegisterUserRequest{
		FirstName: "Kari",
		LastName:  "Nordmann",
		Email:     demoEmail,
		Meta: &users.UserMeta{
			Age:     37,
			Website: "https://kari.example.com",
			Address: "Storgata 1",
			Country: "Norway",
		},
	}

	user, err := r.users.Register(ctx, req)
	if err != nil {
		log.Error("step failed", "step", "register-user", "error", err)
		return err
	}
	log.Info("registered user", "id", user.ID.Hex(), "email", user.Email)

	_, err = r.users.Register(ctx, req)
	switch {
	case err == nil:
		log.Error("step failed", "step", "register-duplicate", "error", ErrDuplicateNotRejected)
		return ErrDuplicateNotRejected
	case errors.Is(err, users.ErrDuplicateEmail):
		log.Info("duplicate email rejected", "email", req.Email)
	default:
		log.Error("step failed", "step", "register-duplicate", "error", err)
		return err
	}

	age := 38
	address := "Storgata 2"
	patched, err := r.users.UpdateMeta(ctx, req.Email, users.UpdateUserMeta{
		Age:     &age,
		Address: &address,
	})
	if err != nil {
		log.Error("step failed", "step", "update-user-meta", "error", err)
		return err
	}
	log.Info("updated user meta", "email", patched.Email, "age", patched.Meta.Age)

	return nil
}

// seedExtraCars bulk-inserts generated cars, one at a time.
func (r *Runner) seedExtraCars(ctx context.Context, log *slog.Logger, total int) error {
	for i := 1; i <= total; i++ {
		req := cars.RegisterCarRequest{
			Make:  gofakeit.CarMaker(),
			Model: gofakeit.CarModel(),
			Year:  gofakeit.Number(1990, 2025),
			Color: gofakeit.SafeColor(),
			Owner: &cars.Owner{
				Picture:       gofakeit.URL(),
				Country:       gofakeit.Country(),
				ContactName:   gofakeit.Name(),
				ContactNumber: gofakeit.Phone(),
			},
		}

		if _, err := r.cars.Register(ctx, req); err != nil {
			log.Error("step failed", "step", "seed-extra-cars", "error", err, "index", i)
			return fmt.Errorf("seed car %d/%d: %w", i, total, err)
		}

		if i%50 == 0 || i == total {
			log.Info("seeding cars", "done", i, "total", total)
		}
	}
	return nil
}
