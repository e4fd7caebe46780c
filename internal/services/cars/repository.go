package cars

import "context"

// Repository defines the interface for cars repository operations
type Repository interface {
	Create(ctx context.Context, c *Car) error
	List(ctx context.Context) ([]*Car, error)
	Find(ctx context.Context, f Filter) ([]*Car, error)
	Update(ctx context.Context, f Filter, patch UpdateCar) (*Car, error)
	Delete(ctx context.Context, f Filter) (int64, error)
	Clear(ctx context.Context) (int64, error)
}
