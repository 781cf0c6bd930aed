package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"healthsync-backend/internal/models"
)

// PatientStore defines the persistence contract for patient records.
type PatientStore interface {
	CreatePatient(ctx context.Context, patient *models.Patient) error
	FindByCredentials(ctx context.Context, email, patientID string) (*models.Patient, error)
	GetPatient(ctx context.Context, patientID string) (*models.Patient, error)
}

// PgPatientStore is the pgx-backed PatientStore.
type PgPatientStore struct {
	db *pgxpool.Pool
}

// Compile-time check that PgPatientStore implements PatientStore
var _ PatientStore = (*PgPatientStore)(nil)

// NewPgPatientStore creates a new PgPatientStore instance
func NewPgPatientStore(db *pgxpool.Pool) *PgPatientStore {
	return &PgPatientStore{db: db}
}

// CreatePatient inserts a new patient row inside a transaction. A unique
// violation on patient_id rolls back and returns ErrDuplicatePatientID.
func (s *PgPatientStore) CreatePatient(ctx context.Context, p *models.Patient) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO patient_details
		 (patient_id, full_name, gender, date_of_birth, blood_group,
		  phone_number, email, address, city, state, country, height_cm, weight_kg)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.PatientID, p.FullName, p.Gender, p.DateOfBirth, p.BloodGroup,
		p.PhoneNumber, p.Email, p.Address, p.City, p.State, p.Country,
		p.HeightCm, p.WeightKg)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicatePatientID
		}
		return err
	}

	return tx.Commit(ctx)
}

// FindByCredentials looks up a patient whose email AND patient_id both
// match exactly. A partial match is not authentication.
func (s *PgPatientStore) FindByCredentials(ctx context.Context, email, patientID string) (*models.Patient, error) {
	var p models.Patient
	err := s.db.QueryRow(ctx,
		`SELECT patient_id, full_name
		 FROM patient_details
		 WHERE email = $1
		   AND patient_id = $2`,
		email, patientID).Scan(&p.PatientID, &p.FullName)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

// GetPatient loads the profile fields shown on the dashboard.
func (s *PgPatientStore) GetPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	var p models.Patient
	err := s.db.QueryRow(ctx,
		`SELECT patient_id, full_name, gender, date_of_birth, blood_group
		 FROM patient_details
		 WHERE patient_id = $1`,
		patientID).Scan(&p.PatientID, &p.FullName, &p.Gender, &p.DateOfBirth, &p.BloodGroup)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}
