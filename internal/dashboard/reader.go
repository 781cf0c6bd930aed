package dashboard

import (
	"context"
	"errors"
	"time"

	"healthsync-backend/internal/config"
	"healthsync-backend/internal/middleware"
	"healthsync-backend/internal/models"
	"healthsync-backend/internal/store"
)

var (
	// ErrNoToken is returned when the token query parameter is absent.
	ErrNoToken = errors.New("no token provided")
	// ErrInvalidToken is returned for a token that fails verification.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrNoData is returned when the token verifies but the patient has no
	// profile row or no readings.
	ErrNoData = errors.New("no data found for this patient")
)

// PatientView is everything the dashboard renders for one patient:
// profile, computed age, the full reading series ordered by recorded_at
// ascending, and the latest reading.
type PatientView struct {
	Patient  *models.Patient
	AgeYears int
	Readings []models.VitalReading
	Latest   models.VitalReading
}

// Reader loads a patient's dashboard data from a query-string token.
//
// Passing the token in the query string is a weaker transport than the
// Authorization header used by the vitals API, since query strings can
// leak via logs and browser history. Kept as a known limitation.
type Reader struct {
	patients store.PatientStore
	vitals   store.VitalStore
	jwt      *config.JWTConfig
}

// NewReader creates a new Reader instance
func NewReader(patients store.PatientStore, vitals store.VitalStore, jwt *config.JWTConfig) *Reader {
	return &Reader{patients: patients, vitals: vitals, jwt: jwt}
}

// Load verifies the token and assembles the patient view. Read-only.
func (rd *Reader) Load(ctx context.Context, token string) (*PatientView, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	claims, err := middleware.ValidateToken(token, rd.jwt)
	if err != nil {
		return nil, ErrInvalidToken
	}

	patient, err := rd.patients.GetPatient(ctx, claims.PatientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoData
		}
		return nil, err
	}

	readings, err := rd.vitals.ListVitals(ctx, claims.PatientID)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, ErrNoData
	}

	return &PatientView{
		Patient:  patient,
		AgeYears: ageYears(patient.DateOfBirth, time.Now()),
		Readings: readings,
		Latest:   readings[len(readings)-1],
	}, nil
}

// ageYears computes whole years as floor(days since dob / 365). The
// 365-day divisor drifts slightly around leap-year boundaries; that
// approximation is intentional.
func ageYears(dob, now time.Time) int {
	days := int(now.Sub(dob).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days / 365
}
