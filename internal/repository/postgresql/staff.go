package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/basratech/hr-suite-go/internal/domain/staff"
	"github.com/basratech/hr-suite-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const staffColumns = `
	id, user_id, staff_code, name, email, phone_number, designation, department,
	joining_date, address, emergency_contact, bank_details, is_active, created_by,
	created_at, updated_at`

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

// Create implements staff.StaffRepository.
func (r *staffRepositoryImpl) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	emergencyContact, bankDetails, err := marshalStaffDocuments(s)
	if err != nil {
		return staff.Staff{}, err
	}

	query := `
		INSERT INTO staff (
			id, user_id, staff_code, name, email, phone_number, designation, department,
			joining_date, address, emergency_contact, bank_details, is_active, created_by,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING ` + staffColumns

	created, err := scanStaff(q.QueryRow(ctx, query,
		s.ID,
		s.UserID,
		s.StaffCode,
		s.Name,
		s.Email,
		s.PhoneNumber,
		s.Designation,
		s.Department,
		s.JoiningDate,
		s.Address,
		emergencyContact,
		bankDetails,
		s.IsActive,
		s.CreatedBy,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return staff.Staff{}, staff.ErrStaffEmailExists
		}
		return staff.Staff{}, storeError("create staff", err)
	}
	return created, nil
}

// GetByID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	return r.getOne(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id)
}

// GetByUserID implements staff.StaffRepository.
func (r *staffRepositoryImpl) GetByUserID(ctx context.Context, userID string) (staff.Staff, error) {
	return r.getOne(ctx, `SELECT `+staffColumns+` FROM staff WHERE user_id = $1 ORDER BY created_at ASC LIMIT 1`, userID)
}

func (r *staffRepositoryImpl) getOne(ctx context.Context, query string, arg string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanStaff(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, storeError("get staff", err)
	}
	return s, nil
}

// Update implements staff.StaffRepository.
func (r *staffRepositoryImpl) Update(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	emergencyContact, bankDetails, err := marshalStaffDocuments(s)
	if err != nil {
		return staff.Staff{}, err
	}

	query := `
		UPDATE staff SET
			name = $2,
			phone_number = $3,
			designation = $4,
			department = $5,
			address = $6,
			emergency_contact = $7,
			bank_details = $8,
			is_active = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + staffColumns

	updated, err := scanStaff(q.QueryRow(ctx, query,
		s.ID,
		s.Name,
		s.PhoneNumber,
		s.Designation,
		s.Department,
		s.Address,
		emergencyContact,
		bankDetails,
		s.IsActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, storeError("update staff", err)
	}
	return updated, nil
}

// List implements staff.StaffRepository.
func (r *staffRepositoryImpl) List(ctx context.Context, filter staff.ListStaffFilter) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + staffColumns + ` FROM staff`
	if !filter.IncludeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, storeError("list staff", err)
	}
	defer rows.Close()

	members := []staff.Staff{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, storeError("scan staff", err)
		}
		members = append(members, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate staff", err)
	}
	return members, nil
}

func marshalStaffDocuments(s staff.Staff) (emergencyContact, bankDetails []byte, err error) {
	if s.EmergencyContact != nil {
		if emergencyContact, err = json.Marshal(s.EmergencyContact); err != nil {
			return nil, nil, fmt.Errorf("marshal emergency contact: %w", err)
		}
	}
	if s.BankDetails != nil {
		if bankDetails, err = json.Marshal(s.BankDetails); err != nil {
			return nil, nil, fmt.Errorf("marshal bank details: %w", err)
		}
	}
	return emergencyContact, bankDetails, nil
}

func scanStaff(row rowScanner) (staff.Staff, error) {
	var (
		s                staff.Staff
		emergencyContact []byte
		bankDetails      []byte
	)
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.StaffCode,
		&s.Name,
		&s.Email,
		&s.PhoneNumber,
		&s.Designation,
		&s.Department,
		&s.JoiningDate,
		&s.Address,
		&emergencyContact,
		&bankDetails,
		&s.IsActive,
		&s.CreatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return staff.Staff{}, err
	}

	if len(emergencyContact) > 0 {
		s.EmergencyContact = &staff.EmergencyContact{}
		if err := json.Unmarshal(emergencyContact, s.EmergencyContact); err != nil {
			return staff.Staff{}, fmt.Errorf("unmarshal emergency contact: %w", err)
		}
	}
	if len(bankDetails) > 0 {
		s.BankDetails = &staff.BankDetails{}
		if err := json.Unmarshal(bankDetails, s.BankDetails); err != nil {
			return staff.Staff{}, fmt.Errorf("unmarshal bank details: %w", err)
		}
	}
	s.JoiningDate = s.JoiningDate.UTC()
	return s, nil
}
