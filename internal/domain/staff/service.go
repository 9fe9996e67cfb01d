package staff

import "context"

type StaffService interface {
	Onboard(ctx context.Context, req OnboardStaffRequest) (StaffResponse, error)
	Update(ctx context.Context, req UpdateStaffRequest) (StaffResponse, error)
	GetByID(ctx context.Context, id string) (StaffResponse, error)
	GetByUserID(ctx context.Context, userID string) (StaffResponse, error)
	List(ctx context.Context, filter ListStaffFilter) ([]StaffResponse, error)
}
