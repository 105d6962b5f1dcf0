package models

import (
	"time"
)

// Patient represents a row of the patients table.
type Patient struct {
	PatientID        int       `json:"patient_id" db:"patient_id"`
	FirstName        string    `json:"first_name" db:"first_name"`
	LastName         string    `json:"last_name" db:"last_name"`
	Email            string    `json:"email" db:"email"`
	Phone            *string   `json:"phone" db:"phone"`
	DateOfBirth      *string   `json:"date_of_birth" db:"date_of_birth"`
	Gender           *string   `json:"gender" db:"gender"`
	BloodGroup       *string   `json:"blood_group" db:"blood_group"`
	Address          *string   `json:"address" db:"address"`
	EmergencyContact *string   `json:"emergency_contact" db:"emergency_contact"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// PatientRequest carries the writable patient fields for create and update.
// Optional fields are pointers so an absent field binds as NULL.
type PatientRequest struct {
	FirstName        string  `json:"first_name" form:"first_name"`
	LastName         string  `json:"last_name" form:"last_name"`
	Email            string  `json:"email" form:"email"`
	Phone            *string `json:"phone" form:"phone"`
	DateOfBirth      *string `json:"date_of_birth" form:"date_of_birth"`
	Gender           *string `json:"gender" form:"gender"`
	BloodGroup       *string `json:"blood_group" form:"blood_group"`
	Address          *string `json:"address" form:"address"`
	EmergencyContact *string `json:"emergency_contact" form:"emergency_contact"`
}

// Normalize collapses empty optional fields to nil so they bind as NULL
// instead of empty strings. All undefined-to-null coercion happens here.
func (r *PatientRequest) Normalize() {
	r.Phone = emptyToNil(r.Phone)
	r.DateOfBirth = emptyToNil(r.DateOfBirth)
	r.Gender = emptyToNil(r.Gender)
	r.BloodGroup = emptyToNil(r.BloodGroup)
	r.Address = emptyToNil(r.Address)
	r.EmergencyContact = emptyToNil(r.EmergencyContact)
}

func emptyToNil(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
