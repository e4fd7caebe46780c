package cars

import "errors"

// ErrCarNotFound - car not found in DB
var ErrCarNotFound = errors.New("car not found")

// ErrCreateCar is returned when car registration fails.
var ErrCreateCar = errors.New("failed to register car")

// ErrListCars is returned when listing cars fails.
var ErrListCars = errors.New("failed to list cars")

// ErrUpdateCar is returned when a car update fails.
var ErrUpdateCar = errors.New("failed to update car")

// ErrDeleteCar is returned when deleting cars fails.
var ErrDeleteCar = errors.New("failed to delete cars")

// ErrCreateCarsRepo is returned when cars repository creation fails.
var ErrCreateCarsRepo = errors.New("failed to create cars repository")
