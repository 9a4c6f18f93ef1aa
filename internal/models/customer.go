package models

import "time"

// VerificationStatus is the lifecycle state of a stored customer record.
type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusVerified VerificationStatus = "verified"
)

// Customer is a persisted customer identity record. Identity fields are
// pointers: nil means the value was never observed, which is distinct from an
// empty string. The reconciliation engine never mutates these fields; only
// the verification status changes after insert.
type Customer struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	Name               *string            `json:"name"`
	Phone              *string            `json:"phone"`
	DOB                *string            `gorm:"column:dob" json:"dob"`
	Address            *string            `json:"address"`
	Email              *string            `json:"email"`
	Company            *string            `json:"company"`
	VerificationStatus VerificationStatus `gorm:"default:pending" json:"verification_status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// ExtractedRecord holds the structured identity fields pulled from one
// document or manual entry. Same absence convention as Customer: nil, never "".
type ExtractedRecord struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	DOB     *string `json:"dob"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Company *string `json:"company"`
}

// Field returns the value for a recognized field key (name, phone, dob,
// address, email, company). Unrecognized keys return nil.
func (r ExtractedRecord) Field(key string) *string {
	switch key {
	case "name":
		return r.Name
	case "phone":
		return r.Phone
	case "dob":
		return r.DOB
	case "address":
		return r.Address
	case "email":
		return r.Email
	case "company":
		return r.Company
	default:
		return nil
	}
}

// Record returns the customer's identity fields as an ExtractedRecord view,
// so stored records and freshly extracted ones compare through the same path.
func (c Customer) Record() ExtractedRecord {
	return ExtractedRecord{
		Name:    c.Name,
		Phone:   c.Phone,
		DOB:     c.DOB,
		Address: c.Address,
		Email:   c.Email,
		Company: c.Company,
	}
}
