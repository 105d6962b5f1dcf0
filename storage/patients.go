package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/jais-samman14/hospital-management-backend/models"
)

// pgUniqueViolation is the Postgres error code for a unique constraint breach.
const pgUniqueViolation = "23505"

const patientColumns = `patient_id, first_name, last_name, email, phone,
	date_of_birth::text, gender, blood_group, address, emergency_contact, created_at`

// PostgresPatientStore implements PatientStore over the shared pool. Every
// query goes through the pool, which acquires a connection and releases it
// on every exit path.
type PostgresPatientStore struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewPostgresPatientStore(pool *pgxpool.Pool, log *zap.Logger) *PostgresPatientStore {
	return &PostgresPatientStore{pool: pool, log: log}
}

func (s *PostgresPatientStore) List(ctx context.Context) ([]models.Patient, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+patientColumns+` FROM patients ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		var p models.Patient
		if err := scanPatient(rows, &p); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *PostgresPatientStore) GetByID(ctx context.Context, id int) (*models.Patient, error) {
	var p models.Patient
	row := s.pool.QueryRow(ctx,
		`SELECT `+patientColumns+` FROM patients WHERE patient_id = $1`, id)
	if err := scanPatient(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient %d: %w", id, err)
	}
	return &p, nil
}

func (s *PostgresPatientStore) Create(ctx context.Context, req *models.PatientRequest) (int, error) {
	var id int
	err := s.pool.QueryRow(ctx,
		`INSERT INTO patients (first_name, last_name, email, phone, date_of_birth,
		     gender, blood_group, address, emergency_contact)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING patient_id`,
		req.FirstName, req.LastName, req.Email, req.Phone, req.DateOfBirth,
		req.Gender, req.BloodGroup, req.Address, req.EmergencyContact).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("create patient: %w", err)
	}
	s.log.Info("patient created", zap.Int("patient_id", id))
	return id, nil
}

// Update overwrites every mutable field unconditionally; there are no
// partial-patch semantics.
func (s *PostgresPatientStore) Update(ctx context.Context, id int, req *models.PatientRequest) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE patients SET first_name = $1, last_name = $2, email = $3, phone = $4,
		     date_of_birth = $5, gender = $6, blood_group = $7, address = $8,
		     emergency_contact = $9
		 WHERE patient_id = $10`,
		req.FirstName, req.LastName, req.Email, req.Phone, req.DateOfBirth,
		req.Gender, req.BloodGroup, req.Address, req.EmergencyContact, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("update patient %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresPatientStore) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM patients WHERE patient_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.log.Info("patient deleted", zap.Int("patient_id", id))
	return nil
}

func scanPatient(row pgx.Row, p *models.Patient) error {
	return row.Scan(&p.PatientID, &p.FirstName, &p.LastName, &p.Email, &p.Phone,
		&p.DateOfBirth, &p.Gender, &p.BloodGroup, &p.Address,
		&p.EmergencyContact, &p.CreatedAt)
}
