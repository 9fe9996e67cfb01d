package staff

import "context"

type StaffRepository interface {
	// Create fails with ErrStaffEmailExists on a duplicate email
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	GetByUserID(ctx context.Context, userID string) (Staff, error)
	Update(ctx context.Context, s Staff) (Staff, error)
	List(ctx context.Context, filter ListStaffFilter) ([]Staff, error)
}
