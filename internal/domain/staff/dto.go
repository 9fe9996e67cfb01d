package staff

import (
	"strings"
	"time"

	"github.com/basratech/hr-suite-go/internal/pkg/calendar"
	"github.com/basratech/hr-suite-go/internal/pkg/validator"
)

type OnboardStaffRequest struct {
	UserID           string            `json:"userId"`
	StaffCode        string            `json:"staffCode"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	PhoneNumber      *string           `json:"phoneNumber,omitempty"`
	Designation      string            `json:"designation"`
	Department       string            `json:"department"`
	JoiningDate      string            `json:"joiningDate"`
	Address          *string           `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	BankDetails      *BankDetails      `json:"bankDetails,omitempty"`
	CreatedBy        *string           `json:"-"`
}

func (r *OnboardStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs.Add("userId", "userId is required")
	} else if !validator.IsValidUUID(r.UserID) {
		errs.Add("userId", "userId must be a valid UUID")
	}
	if validator.IsEmpty(r.StaffCode) {
		errs.Add("staffCode", "staffCode is required")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs.Add("phoneNumber", "invalid phone number format")
	}
	if validator.IsEmpty(r.Designation) {
		errs.Add("designation", "designation is required")
	}
	if validator.IsEmpty(r.Department) {
		errs.Add("department", "department is required")
	}
	if validator.IsEmpty(r.JoiningDate) {
		errs.Add("joiningDate", "joiningDate is required")
	} else if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs.Add("joiningDate", "joiningDate must be in YYYY-MM-DD format")
	}
	if r.EmergencyContact != nil {
		validateEmergencyContact(&errs, r.EmergencyContact)
	}

	return errs.Err()
}

// UpdateStaffRequest applies only the fields that are set.
type UpdateStaffRequest struct {
	ID               string            `json:"-"`
	Name             *string           `json:"name,omitempty"`
	PhoneNumber      *string           `json:"phoneNumber,omitempty"`
	Designation      *string           `json:"designation,omitempty"`
	Department       *string           `json:"department,omitempty"`
	Address          *string           `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	BankDetails      *BankDetails      `json:"bankDetails,omitempty"`
	IsActive         *bool             `json:"isActive,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs.Add("phoneNumber", "invalid phone number format")
	}
	if r.Designation != nil && validator.IsEmpty(*r.Designation) {
		errs.Add("designation", "designation must not be empty")
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs.Add("department", "department must not be empty")
	}
	if r.EmergencyContact != nil {
		validateEmergencyContact(&errs, r.EmergencyContact)
	}

	return errs.Err()
}

// Apply copies the set fields onto s.
func (r *UpdateStaffRequest) Apply(s *Staff) {
	if r.Name != nil {
		s.Name = strings.TrimSpace(*r.Name)
	}
	if r.PhoneNumber != nil {
		s.PhoneNumber = r.PhoneNumber
	}
	if r.Designation != nil {
		s.Designation = *r.Designation
	}
	if r.Department != nil {
		s.Department = *r.Department
	}
	if r.Address != nil {
		s.Address = r.Address
	}
	if r.EmergencyContact != nil {
		s.EmergencyContact = r.EmergencyContact
	}
	if r.BankDetails != nil {
		s.BankDetails = r.BankDetails
	}
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
}

func validateEmergencyContact(errs *validator.ValidationErrors, c *EmergencyContact) {
	if validator.IsEmpty(c.Name) {
		errs.Add("emergencyContact.name", "emergency contact name is required")
	}
	if !validator.IsValidPhoneNumber(c.PhoneNumber) {
		errs.Add("emergencyContact.phoneNumber", "invalid phone number format")
	}
}

type ListStaffFilter struct {
	IncludeInactive bool
}

type StaffResponse struct {
	ID               string            `json:"id"`
	UserID           string            `json:"userId"`
	StaffCode        string            `json:"staffCode"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	PhoneNumber      *string           `json:"phoneNumber,omitempty"`
	Designation      string            `json:"designation"`
	Department       string            `json:"department"`
	JoiningDate      string            `json:"joiningDate"`
	Address          *string           `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	BankDetails      *BankDetails      `json:"bankDetails,omitempty"`
	IsActive         bool              `json:"isActive"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
}

func NewStaffResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:               s.ID,
		UserID:           s.UserID,
		StaffCode:        s.StaffCode,
		Name:             s.Name,
		Email:            s.Email,
		PhoneNumber:      s.PhoneNumber,
		Designation:      s.Designation,
		Department:       s.Department,
		JoiningDate:      s.JoiningDate.Format(calendar.DateLayout),
		Address:          s.Address,
		EmergencyContact: s.EmergencyContact,
		BankDetails:      s.BankDetails,
		IsActive:         s.IsActive,
		CreatedAt:        s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
