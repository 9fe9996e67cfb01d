package user

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	// Create fails with ErrUserEmailExists on a duplicate email
	Create(ctx context.Context, newUser User) (User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
