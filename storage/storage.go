package storage

import (
	"context"
	"errors"

	"github.com/jais-samman14/hospital-management-backend/models"
)

// Sentinel errors handlers translate into response envelopes.
var (
	// ErrNotFound is returned when a lookup or mutation matches zero rows.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a patient insert violates the
	// unique email constraint.
	ErrDuplicateEmail = errors.New("email already exists")
)

// PatientStore is the patient persistence contract.
type PatientStore interface {
	List(ctx context.Context) ([]models.Patient, error)
	GetByID(ctx context.Context, id int) (*models.Patient, error)
	Create(ctx context.Context, req *models.PatientRequest) (int, error)
	Update(ctx context.Context, id int, req *models.PatientRequest) error
	Delete(ctx context.Context, id int) error
}

// DoctorStore is the doctor persistence contract. Doctors are read-only.
type DoctorStore interface {
	List(ctx context.Context) ([]models.Doctor, error)
	ListAvailable(ctx context.Context) ([]models.Doctor, error)
	ListBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error)
	GetByID(ctx context.Context, id int) (*models.Doctor, error)
}

// AppointmentStore is the appointment persistence contract.
type AppointmentStore interface {
	List(ctx context.Context) ([]models.AppointmentDetail, error)
	ListByPatient(ctx context.Context, patientID int) ([]models.AppointmentDetail, error)
	ListByDoctor(ctx context.Context, doctorID int) ([]models.AppointmentDetail, error)
	Create(ctx context.Context, req *models.AppointmentRequest) (int, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	Delete(ctx context.Context, id int) error
}
