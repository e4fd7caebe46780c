package cars

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var silentLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var (
	errRepo  = errors.New("repository error")
	mockCar  = mock.AnythingOfType("*cars.Car")
	mockFltr = mock.AnythingOfType("cars.Filter")
)

// MockCarsRepo is a mock implementation of Repository
type MockCarsRepo struct {
	mock.Mock
}

func (m *MockCarsRepo) Create(ctx context.Context, c *Car) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarsRepo) List(ctx context.Context) ([]*Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Car), args.Error(1)
}

func (m *MockCarsRepo) Find(ctx context.Context, f Filter) ([]*Car, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Car), args.Error(1)
}

func (m *MockCarsRepo) Update(ctx context.Context, f Filter, patch UpdateCar) (*Car, error) {
	args := m.Called(ctx, f, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Car), args.Error(1)
}

func (m *MockCarsRepo) Delete(ctx context.Context, f Filter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarsRepo) Clear(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(repo *MockCarsRepo) *Service {
	return NewService(repo, validator.New(), silentLogger)
}

func TestServiceRegister(t *testing.T) {
	repo := &MockCarsRepo{}
	svc := newTestService(repo)

	repo.On("Create", mock.Anything, mockCar).Return(nil)

	car, err := svc.Register(context.Background(), RegisterCarRequest{
		Make:  "Tesla",
		Model: "Model S",
		Year:  2021,
		Color: "black",
	})
	require.NoError(t, err)

	assert.False(t, car.ID.IsZero(), "expected an ID to be assigned")
	assert.Equal(t, "Tesla", car.Make)
	assert.False(t, car.CreatedAt.IsZero())
	assert.Equal(t, car.CreatedAt, car.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestServiceRegisterValidation(t *testing.T) {
	repo := &MockCarsRepo{}
	svc := newTestService(repo)

	tests := []struct {
		name string
		req  RegisterCarRequest
	}{
		{name: "missing make", req: RegisterCarRequest{Model: "Focus"}},
		{name: "missing model", req: RegisterCarRequest{Make: "Ford"}},
		{name: "year before first car", req: RegisterCarRequest{Make: "Ford", Model: "Focus", Year: 1700}},
		{name: "bad owner picture", req: RegisterCarRequest{
			Make: "Ford", Model: "Focus",
			Owner: &Owner{Picture: "not-a-url"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}

	repo.AssertNotCalled(t, "Create")
}

func TestServiceRegisterRepoError(t *testing.T) {
	repo := &MockCarsRepo{}
	svc := newTestService(repo)

	repo.On("Create", mock.Anything, mockCar).Return(errRepo)

	_, err := svc.Register(context.Background(), RegisterCarRequest{Make: "Tesla", Model: "Model S"})
	assert.Equal(t, ErrCreateCar, err)
}

func TestServiceList(t *testing.T) {
	repo := &MockCarsRepo{}
	svc := newTestService(repo)

	expected := []*Car{{Make: "Tesla", Model: "Model S"}}
	repo.On("List", mock.Anything).Return(expected, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestServiceListRepoError(t *testing.T) {
	repo := &MockCarsRepo{}
	svc := newTestService(repo)

	repo.On("List", mock.Anything).Return(nil, errRepo)

	_, err := svc.List(context.Background())
	assert.Equal(t, ErrListCars, err)
}

func TestServiceFind(t *testing.T) {
	repo := &MockCarsRepo{}
	svc := newTestService(repo)

	filter := Filter{Make: "Tesla"}
	expected := []*Car{{Make: "Tesla", Model: "Model S"}}
	repo.On("Find", mock.Anything, filter).Return(expected, nil)

	got, err := svc.Find(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	repo.AssertExpectations(t)
}

func TestServiceUpdate(t *testing.T) {
	repo := &MockCarsRepo{}
	svc := newTestService(repo)

	model := "X"
	color := "beige"
	patch := UpdateCar{Model: &model, Color: &color}
	updated := &Car{Make: "Tesla", Model: "X", Color: "beige"}

	repo.On("Update", mock.Anything, Filter{Make: "Tesla"}, patch).Return(updated, nil)

	got, err := svc.Update(context.Background(), Filter{Make: "Tesla"}, patch)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestServiceUpdateNotFound(t *testing.T) {
	repo := &MockCarsRepo{}
	svc := newTestService(repo)

	repo.On("Update", mock.Anything, mockFltr, mock.AnythingOfType("cars.UpdateCar")).
		Return(nil, ErrCarNotFound)

	_, err := svc.Update(context.Background(), Filter{Make: "Tesla"}, UpdateCar{})
	assert.Equal(t, ErrCarNotFound, err, "not-found should pass through untranslated")
}

func TestServiceUpdateValidation(t *testing.T) {
	repo := &MockCarsRepo{}
	svc := newTestService(repo)

	empty := ""
	_, err := svc.Update(context.Background(), Filter{Make: "Tesla"}, UpdateCar{Model: &empty})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Update")
}

func TestServiceScrapAndClear(t *testing.T) {
	repo := &MockCarsRepo{}
	svc := newTestService(repo)

	repo.On("Delete", mock.Anything, Filter{Make: "Ford"}).Return(int64(1), nil)
	repo.On("Clear", mock.Anything).Return(int64(2), nil)

	n, err := svc.Scrap(context.Background(), Filter{Make: "Ford"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = svc.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestServiceClearRepoError(t *testing.T) {
	repo := &MockCarsRepo{}
	svc := newTestService(repo)

	repo.On("Clear", mock.Anything).Return(int64(0), errRepo)

	_, err := svc.Clear(context.Background())
	assert.Equal(t, ErrDeleteCar, err)
}
