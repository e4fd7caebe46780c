package users

import "context"

// Repository defines the interface for users repository operations
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	UpdateMeta(ctx context.Context, email string, patch UpdateUserMeta) (*User, error)
	Purge(ctx context.Context) (int64, error)
}
