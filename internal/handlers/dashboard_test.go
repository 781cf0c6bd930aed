package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthsync-backend/internal/dashboard"
	"healthsync-backend/internal/middleware"
	"healthsync-backend/internal/models"
)

func dashboardHandlerWith(patients *MockPatientStore, vitals *MockVitalStore) *DashboardHandler {
	cfg := testConfig()
	reader := dashboard.NewReader(patients, vitals, &cfg.JWT)
	return NewDashboardHandler(reader, zerolog.Nop())
}

func getDashboard(t *testing.T, h *DashboardHandler, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.View(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestDashboardNoToken(t *testing.T) {
	h := dashboardHandlerWith(&MockPatientStore{}, &MockVitalStore{})

	rec := getDashboard(t, h, "/dashboard")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token provided. Please log in.")
}

func TestDashboardInvalidToken(t *testing.T) {
	h := dashboardHandlerWith(&MockPatientStore{}, &MockVitalStore{})

	rec := getDashboard(t, h, "/dashboard?token=garbage")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token.")
}

func TestDashboardNoData(t *testing.T) {
	cfg := testConfig()
	patients := &MockPatientStore{
		GetPatientFunc: func(ctx context.Context, patientID string) (*models.Patient, error) {
			return &models.Patient{PatientID: patientID, FullName: "Asha Rao",
				DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)}, nil
		},
	}
	vitals := &MockVitalStore{
		ListVitalsFunc: func(ctx context.Context, patientID string) ([]models.VitalReading, error) {
			return nil, nil
		},
	}
	h := dashboardHandlerWith(patients, vitals)

	token, err := middleware.GenerateToken("P100", "Asha Rao", &cfg.JWT)
	require.NoError(t, err)

	rec := getDashboard(t, h, "/dashboard?token="+token)

	assert.Contains(t, rec.Body.String(), "No data found for this patient.")
}

func TestDashboardRendersPatientView(t *testing.T) {
	cfg := testConfig()
	gender := "F"
	bloodGroup := "O+"
	hr := 72.0
	sys, dia, spo2 := 120.0, 80.0, 98.0

	patients := &MockPatientStore{
		GetPatientFunc: func(ctx context.Context, patientID string) (*models.Patient, error) {
			return &models.Patient{
				PatientID:   patientID,
				FullName:    "Asha Rao",
				Gender:      &gender,
				BloodGroup:  &bloodGroup,
				DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	vitals := &MockVitalStore{
		ListVitalsFunc: func(ctx context.Context, patientID string) ([]models.VitalReading, error) {
			return []models.VitalReading{{
				VitalID:          1,
				PatientID:        patientID,
				RecordedAt:       time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
				HeartRateBPM:     &hr,
				SystolicBPmmHg:   &sys,
				DiastolicBPmmHg:  &dia,
				OxygenSaturation: &spo2,
			}}, nil
		},
	}
	h := dashboardHandlerWith(patients, vitals)

	token, err := middleware.GenerateToken("P100", "Asha Rao", &cfg.JWT)
	require.NoError(t, err)

	rec := getDashboard(t, h, "/dashboard?token="+token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "Asha Rao")
	assert.Contains(t, body, "O+")
	assert.Contains(t, body, "72")            // latest heart rate KPI
	assert.Contains(t, body, "120 / 80")      // latest blood pressure KPI
	assert.Contains(t, body, "98%")           // latest SpO2 KPI
	assert.Contains(t, body, "heart_rate")    // embedded chart series
	assert.NotContains(t, body, "No token")   // no inline error
}
