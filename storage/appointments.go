package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/jais-samman14/hospital-management-backend/models"
)

const appointmentColumns = `a.appointment_id, a.patient_id, a.doctor_id,
	a.appointment_date::text, a.appointment_time::text, a.reason, a.status, a.created_at`

// PostgresAppointmentStore implements AppointmentStore over the shared pool.
type PostgresAppointmentStore struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewPostgresAppointmentStore(pool *pgxpool.Pool, log *zap.Logger) *PostgresAppointmentStore {
	return &PostgresAppointmentStore{pool: pool, log: log}
}

// List returns every appointment joined with patient and doctor names.
func (s *PostgresAppointmentStore) List(ctx context.Context) ([]models.AppointmentDetail, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentColumns+`,
		        p.first_name AS patient_first_name, p.last_name AS patient_last_name,
		        d.first_name AS doctor_first_name, d.last_name AS doctor_last_name,
		        d.specialization
		 FROM appointments a
		 JOIN patients p ON a.patient_id = p.patient_id
		 JOIN doctors d ON a.doctor_id = d.doctor_id
		 ORDER BY a.appointment_date DESC, a.appointment_time DESC`)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	appointments := make([]models.AppointmentDetail, 0)
	for rows.Next() {
		var a models.AppointmentDetail
		if err := rows.Scan(&a.AppointmentID, &a.PatientID, &a.DoctorID,
			&a.AppointmentDate, &a.AppointmentTime, &a.Reason, &a.Status, &a.CreatedAt,
			&a.PatientFirstName, &a.PatientLastName,
			&a.DoctorFirstName, &a.DoctorLastName, &a.Specialization); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

// ListByPatient returns a patient's appointments joined with doctor details.
func (s *PostgresAppointmentStore) ListByPatient(ctx context.Context, patientID int) ([]models.AppointmentDetail, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentColumns+`,
		        d.first_name AS doctor_first_name, d.last_name AS doctor_last_name,
		        d.specialization
		 FROM appointments a
		 JOIN doctors d ON a.doctor_id = d.doctor_id
		 WHERE a.patient_id = $1
		 ORDER BY a.appointment_date DESC, a.appointment_time DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list appointments for patient %d: %w", patientID, err)
	}
	defer rows.Close()

	appointments := make([]models.AppointmentDetail, 0)
	for rows.Next() {
		var a models.AppointmentDetail
		if err := rows.Scan(&a.AppointmentID, &a.PatientID, &a.DoctorID,
			&a.AppointmentDate, &a.AppointmentTime, &a.Reason, &a.Status, &a.CreatedAt,
			&a.DoctorFirstName, &a.DoctorLastName, &a.Specialization); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appointments for patient %d: %w", patientID, err)
	}
	return appointments, nil
}

// ListByDoctor returns a doctor's appointments joined with patient names.
func (s *PostgresAppointmentStore) ListByDoctor(ctx context.Context, doctorID int) ([]models.AppointmentDetail, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentColumns+`,
		        p.first_name AS patient_first_name, p.last_name AS patient_last_name
		 FROM appointments a
		 JOIN patients p ON a.patient_id = p.patient_id
		 WHERE a.doctor_id = $1
		 ORDER BY a.appointment_date DESC, a.appointment_time DESC`, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list appointments for doctor %d: %w", doctorID, err)
	}
	defer rows.Close()

	appointments := make([]models.AppointmentDetail, 0)
	for rows.Next() {
		var a models.AppointmentDetail
		if err := rows.Scan(&a.AppointmentID, &a.PatientID, &a.DoctorID,
			&a.AppointmentDate, &a.AppointmentTime, &a.Reason, &a.Status, &a.CreatedAt,
			&a.PatientFirstName, &a.PatientLastName); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appointments for doctor %d: %w", doctorID, err)
	}
	return appointments, nil
}

// Create inserts a new appointment. Status is left to the store default
// ('scheduled'). Foreign keys are enforced by the store, not checked here.
func (s *PostgresAppointmentStore) Create(ctx context.Context, req *models.AppointmentRequest) (int, error) {
	var id int
	err := s.pool.QueryRow(ctx,
		`INSERT INTO appointments (patient_id, doctor_id, appointment_date, appointment_time, reason)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING appointment_id`,
		req.PatientID, req.DoctorID, req.AppointmentDate, req.AppointmentTime, req.Reason).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create appointment: %w", err)
	}
	s.log.Info("appointment created", zap.Int("appointment_id", id),
		zap.Int("patient_id", req.PatientID), zap.Int("doctor_id", req.DoctorID))
	return id, nil
}

func (s *PostgresAppointmentStore) UpdateStatus(ctx context.Context, id int, status string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE appointments SET status = $1 WHERE appointment_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update appointment %d status: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresAppointmentStore) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE appointment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.log.Info("appointment deleted", zap.Int("appointment_id", id))
	return nil
}
