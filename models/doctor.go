package models

import (
	"time"
)

// Doctor represents a row of the doctors table. Doctors are read-only from
// the API's perspective; there are no mutation endpoints for them.
type Doctor struct {
	DoctorID       int       `json:"doctor_id" db:"doctor_id"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Specialization string    `json:"specialization" db:"specialization"`
	Available      bool      `json:"available" db:"available"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
