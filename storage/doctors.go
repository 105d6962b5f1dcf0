package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/jais-samman14/hospital-management-backend/models"
)

const doctorColumns = `doctor_id, first_name, last_name, specialization, available, created_at`

// PostgresDoctorStore implements DoctorStore over the shared pool.
type PostgresDoctorStore struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func NewPostgresDoctorStore(pool *pgxpool.Pool, log *zap.Logger) *PostgresDoctorStore {
	return &PostgresDoctorStore{pool: pool, log: log}
}

func (s *PostgresDoctorStore) List(ctx context.Context) ([]models.Doctor, error) {
	return s.queryDoctors(ctx,
		`SELECT `+doctorColumns+` FROM doctors ORDER BY created_at DESC`)
}

func (s *PostgresDoctorStore) ListAvailable(ctx context.Context) ([]models.Doctor, error) {
	return s.queryDoctors(ctx,
		`SELECT `+doctorColumns+` FROM doctors WHERE available = TRUE ORDER BY created_at DESC`)
}

// ListBySpecialization returns only available doctors of the given
// specialization, matching the listing contract.
func (s *PostgresDoctorStore) ListBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	return s.queryDoctors(ctx,
		`SELECT `+doctorColumns+` FROM doctors
		 WHERE specialization = $1 AND available = TRUE
		 ORDER BY created_at DESC`, specialization)
}

func (s *PostgresDoctorStore) GetByID(ctx context.Context, id int) (*models.Doctor, error) {
	var d models.Doctor
	err := s.pool.QueryRow(ctx,
		`SELECT `+doctorColumns+` FROM doctors WHERE doctor_id = $1`, id).
		Scan(&d.DoctorID, &d.FirstName, &d.LastName, &d.Specialization, &d.Available, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get doctor %d: %w", id, err)
	}
	return &d, nil
}

func (s *PostgresDoctorStore) queryDoctors(ctx context.Context, sql string, args ...any) ([]models.Doctor, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	doctors := make([]models.Doctor, 0)
	for rows.Next() {
		var d models.Doctor
		if err := rows.Scan(&d.DoctorID, &d.FirstName, &d.LastName,
			&d.Specialization, &d.Available, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}
