package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"healthsync-backend/internal/dto"
	"healthsync-backend/internal/models"
)

// VitalStore defines the persistence contract for vital readings.
type VitalStore interface {
	CreateVital(ctx context.Context, patientID string, req *dto.AddVitalsRequest) (int64, error)
	ListVitals(ctx context.Context, patientID string) ([]models.VitalReading, error)
}

// PgVitalStore is the pgx-backed VitalStore.
type PgVitalStore struct {
	db *pgxpool.Pool
}

// Compile-time check that PgVitalStore implements VitalStore
var _ VitalStore = (*PgVitalStore)(nil)

// NewPgVitalStore creates a new PgVitalStore instance
func NewPgVitalStore(db *pgxpool.Pool) *PgVitalStore {
	return &PgVitalStore{db: db}
}

// CreateVital inserts a reading for patientID inside a transaction and
// returns the store-assigned vital_id. recorded_at takes the column
// default. Any failure rolls back.
func (s *PgVitalStore) CreateVital(ctx context.Context, patientID string, req *dto.AddVitalsRequest) (int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var vitalID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO patient_vitals
		 (patient_id, heart_rate_bpm, systolic_bp_mmhg, diastolic_bp_mmhg,
		  body_temperature_c, respiratory_rate, oxygen_saturation, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING vital_id`,
		patientID, req.HeartRateBPM, req.SystolicBPmmHg, req.DiastolicBPmmHg,
		req.BodyTemperatureC, req.RespiratoryRate, req.OxygenSaturation,
		req.Notes).Scan(&vitalID)

	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return vitalID, nil
}

// ListVitals returns every reading for patientID ordered by recorded_at
// ascending, so the last element is the most recent.
func (s *PgVitalStore) ListVitals(ctx context.Context, patientID string) ([]models.VitalReading, error) {
	rows, err := s.db.Query(ctx,
		`SELECT vital_id, patient_id, recorded_at,
		        heart_rate_bpm, systolic_bp_mmhg, diastolic_bp_mmhg,
		        body_temperature_c, respiratory_rate, oxygen_saturation, notes
		 FROM patient_vitals
		 WHERE patient_id = $1
		 ORDER BY recorded_at`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []models.VitalReading
	for rows.Next() {
		var v models.VitalReading
		if err := rows.Scan(&v.VitalID, &v.PatientID, &v.RecordedAt,
			&v.HeartRateBPM, &v.SystolicBPmmHg, &v.DiastolicBPmmHg,
			&v.BodyTemperatureC, &v.RespiratoryRate, &v.OxygenSaturation,
			&v.Notes); err != nil {
			return nil, err
		}
		readings = append(readings, v)
	}

	return readings, rows.Err()
}
