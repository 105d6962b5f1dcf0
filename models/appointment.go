package models

import (
	"time"
)

// Appointment status values. Any member of the set is accepted on update
// regardless of the current value; there is no transition ordering.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// Appointment represents a row of the appointments table. Date and time are
// kept as text so responses carry the stored values verbatim.
type Appointment struct {
	AppointmentID   int       `json:"appointment_id" db:"appointment_id"`
	PatientID       int       `json:"patient_id" db:"patient_id"`
	DoctorID        int       `json:"doctor_id" db:"doctor_id"`
	AppointmentDate string    `json:"appointment_date" db:"appointment_date"`
	AppointmentTime string    `json:"appointment_time" db:"appointment_time"`
	Reason          *string   `json:"reason" db:"reason"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// AppointmentDetail is an appointment joined with the names the listing
// endpoints attach. Which joins are populated depends on the listing: the
// patient-scoped listing omits the patient's own name and vice versa.
type AppointmentDetail struct {
	Appointment
	PatientFirstName *string `json:"patient_first_name,omitempty"`
	PatientLastName  *string `json:"patient_last_name,omitempty"`
	DoctorFirstName  *string `json:"doctor_first_name,omitempty"`
	DoctorLastName   *string `json:"doctor_last_name,omitempty"`
	Specialization   *string `json:"specialization,omitempty"`
}

// AppointmentRequest carries the writable fields for booking an appointment.
type AppointmentRequest struct {
	PatientID       int     `json:"patient_id" form:"patient_id"`
	DoctorID        int     `json:"doctor_id" form:"doctor_id"`
	AppointmentDate string  `json:"appointment_date" form:"appointment_date"`
	AppointmentTime string  `json:"appointment_time" form:"appointment_time"`
	Reason          *string `json:"reason" form:"reason"`
}

// Normalize collapses an empty reason to nil so it binds as NULL.
func (r *AppointmentRequest) Normalize() {
	r.Reason = emptyToNil(r.Reason)
}

// StatusUpdateRequest carries the body of a status-only update.
type StatusUpdateRequest struct {
	Status string `json:"status" form:"status"`
}

// ValidStatus reports whether s is a member of the appointment status set.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
