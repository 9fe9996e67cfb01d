package staff

import "time"

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	PhoneNumber  string `json:"phoneNumber"`
}

type BankDetails struct {
	BankName          string `json:"bankName"`
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
	AccountHolderName string `json:"accountHolderName"`
}

type Staff struct {
	ID               string
	UserID           string
	StaffCode        string
	Name             string
	Email            string
	PhoneNumber      *string
	Designation      string
	Department       string
	JoiningDate      time.Time
	Address          *string
	EmergencyContact *EmergencyContact
	BankDetails      *BankDetails
	IsActive         bool
	CreatedBy        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
