package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/staff"
)

type StaffRepository struct {
	mu    sync.RWMutex
	staff map[string]staff.Staff
}

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{staff: make(map[string]staff.Staff)}
}

// Create implements staff.StaffRepository.
func (r *StaffRepository) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	if err := ctx.Err(); err != nil {
		return staff.Staff{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.staff {
		if strings.EqualFold(existing.Email, s.Email) {
			return staff.Staff{}, staff.ErrStaffEmailExists
		}
	}
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	r.staff[s.ID] = cloneStaff(s)
	return cloneStaff(s), nil
}

// GetByID implements staff.StaffRepository.
func (r *StaffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	if err := ctx.Err(); err != nil {
		return staff.Staff{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.staff[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return cloneStaff(s), nil
}

// GetByUserID implements staff.StaffRepository.
func (r *StaffRepository) GetByUserID(ctx context.Context, userID string) (staff.Staff, error) {
	if err := ctx.Err(); err != nil {
		return staff.Staff{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *staff.Staff
	for _, s := range r.staff {
		if s.UserID != userID {
			continue
		}
		if found == nil || s.CreatedAt.Before(found.CreatedAt) {
			s := s
			found = &s
		}
	}
	if found == nil {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return cloneStaff(*found), nil
}

// Update implements staff.StaffRepository.
func (r *StaffRepository) Update(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	if err := ctx.Err(); err != nil {
		return staff.Staff{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.staff[s.ID]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	s.UserID, s.StaffCode, s.Email = existing.UserID, existing.StaffCode, existing.Email
	s.JoiningDate, s.CreatedBy, s.CreatedAt = existing.JoiningDate, existing.CreatedBy, existing.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	r.staff[s.ID] = cloneStaff(s)
	return cloneStaff(s), nil
}

// List implements staff.StaffRepository.
func (r *StaffRepository) List(ctx context.Context, filter staff.ListStaffFilter) ([]staff.Staff, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []staff.Staff{}
	for _, s := range r.staff {
		if !filter.IncludeInactive && !s.IsActive {
			continue
		}
		out = append(out, cloneStaff(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func cloneStaff(s staff.Staff) staff.Staff {
	if s.EmergencyContact != nil {
		c := *s.EmergencyContact
		s.EmergencyContact = &c
	}
	if s.BankDetails != nil {
		b := *s.BankDetails
		s.BankDetails = &b
	}
	return s
}
