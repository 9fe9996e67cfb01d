package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.User)}
}

// Create implements user.UserRepository.
func (r *UserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, newUser.Email) {
			return user.User{}, user.ErrUserEmailExists
		}
	}
	now := time.Now().UTC()
	newUser.CreatedAt, newUser.UpdatedAt = now, now
	r.users[newUser.ID] = newUser
	return newUser, nil
}

// GetByEmail implements user.UserRepository.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

// GetByID implements user.UserRepository.
func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	if err := ctx.Err(); err != nil {
		return user.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// UpdateLastLogin implements user.UserRepository.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.LastLoginAt = &at
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return nil
}
