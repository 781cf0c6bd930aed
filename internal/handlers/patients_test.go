package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthsync-backend/internal/config"
	"healthsync-backend/internal/dto"
	"healthsync-backend/internal/middleware"
	"healthsync-backend/internal/models"
	"healthsync-backend/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour},
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterMissingRequiredField(t *testing.T) {
	patients := &MockPatientStore{}
	h := NewPatientsHandler(patients, testConfig())

	// date_of_birth absent
	rec := postJSON(t, h.Register, "/patients/add",
		`{"patient_id":"P100","full_name":"Asha Rao"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
	// Validation failures never reach the store
	assert.Equal(t, int32(0), patients.CreatePatientCallCount)
}

func TestRegisterInvalidDateOfBirth(t *testing.T) {
	patients := &MockPatientStore{}
	h := NewPatientsHandler(patients, testConfig())

	rec := postJSON(t, h.Register, "/patients/add",
		`{"patient_id":"P100","full_name":"Asha Rao","date_of_birth":"01-01-1990"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int32(0), patients.CreatePatientCallCount)
}

func TestRegisterSuccess(t *testing.T) {
	var created *models.Patient
	patients := &MockPatientStore{
		CreatePatientFunc: func(ctx context.Context, p *models.Patient) error {
			created = p
			return nil
		},
	}
	h := NewPatientsHandler(patients, testConfig())

	rec := postJSON(t, h.Register, "/patients/add",
		`{"patient_id":"P100","full_name":"Asha Rao","date_of_birth":"1990-01-01"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.RegisterPatientResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "P100", resp.PatientID)
	assert.Equal(t, "Patient registered successfully", resp.Message)

	require.NotNil(t, created)
	assert.Equal(t, "P100", created.PatientID)
	assert.Equal(t, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), created.DateOfBirth)
	// Country defaults when omitted
	assert.Equal(t, "India", created.Country)
}

func TestRegisterDuplicatePatientID(t *testing.T) {
	patients := &MockPatientStore{
		CreatePatientFunc: func(ctx context.Context, p *models.Patient) error {
			return store.ErrDuplicatePatientID
		},
	}
	h := NewPatientsHandler(patients, testConfig())

	rec := postJSON(t, h.Register, "/patients/add",
		`{"patient_id":"P100","full_name":"Asha Rao","date_of_birth":"1990-01-01"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Patient ID already exists")
}

func TestLoginMissingFields(t *testing.T) {
	h := NewPatientsHandler(&MockPatientStore{}, testConfig())

	rec := postJSON(t, h.Login, "/login", `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
}

func TestLoginInvalidCredentials(t *testing.T) {
	patients := &MockPatientStore{
		FindByCredentialsFunc: func(ctx context.Context, email, patientID string) (*models.Patient, error) {
			return nil, store.ErrNotFound
		},
	}
	h := NewPatientsHandler(patients, testConfig())

	rec := postJSON(t, h.Login, "/login", `{"email":"a@x.com","patient_id":"P999"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or patient ID")
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	cfg := testConfig()
	patients := &MockPatientStore{
		FindByCredentialsFunc: func(ctx context.Context, email, patientID string) (*models.Patient, error) {
			assert.Equal(t, "a@x.com", email)
			assert.Equal(t, "P100", patientID)
			return &models.Patient{PatientID: "P100", FullName: "Asha Rao"}, nil
		},
	}
	h := NewPatientsHandler(patients, cfg)

	rec := postJSON(t, h.Login, "/login", `{"email":"a@x.com","patient_id":"P100"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "Bearer", resp.TokenType)

	claims, err := middleware.ValidateToken(resp.AccessToken, &cfg.JWT)
	require.NoError(t, err)
	assert.Equal(t, "P100", claims.PatientID)
	assert.Equal(t, "Asha Rao", claims.Name)
}
