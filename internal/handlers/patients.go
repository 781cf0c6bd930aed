package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"healthsync-backend/internal/config"
	"healthsync-backend/internal/dto"
	"healthsync-backend/internal/middleware"
	"healthsync-backend/internal/models"
	"healthsync-backend/internal/store"
	"healthsync-backend/internal/utils"
)

// PatientsHandler handles patient registration and login
type PatientsHandler struct {
	patients store.PatientStore
	config   *config.Config
}

// NewPatientsHandler creates a new PatientsHandler instance
func NewPatientsHandler(patients store.PatientStore, cfg *config.Config) *PatientsHandler {
	return &PatientsHandler{patients: patients, config: cfg}
}

// Register handles patient registration
// @Summary Register a new patient
// @Description Create a patient record with a caller-supplied patient id
// @Tags patients
// @Accept json
// @Produce json
// @Param request body dto.RegisterPatientRequest true "Patient registration data"
// @Success 200 {object} dto.RegisterPatientResponse "Patient registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields or store error"
// @Failure 409 {object} dto.ErrorResponse "Patient ID already exists"
// @Router /patients/add [post]
func (h *PatientsHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	// Validate required fields before touching the store
	if req.PatientID == "" || req.FullName == "" || req.DateOfBirth == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "patient_id, full_name and date_of_birth are required")
		return
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid date_of_birth format", "Use YYYY-MM-DD format")
		return
	}

	country := "India"
	if req.Country != nil && *req.Country != "" {
		country = *req.Country
	}

	patient := models.Patient{
		PatientID:   req.PatientID,
		FullName:    req.FullName,
		Gender:      req.Gender,
		DateOfBirth: dob,
		BloodGroup:  req.BloodGroup,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     country,
		HeightCm:    req.HeightCm,
		WeightKg:    req.WeightKg,
	}

	if err := h.patients.CreatePatient(r.Context(), &patient); err != nil {
		if errors.Is(err, store.ErrDuplicatePatientID) {
			utils.WriteErrorResponse(w, http.StatusConflict, "Patient ID already exists", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.RegisterPatientResponse{
		Message:   "Patient registered successfully",
		PatientID: patient.PatientID,
	})
}

// Login handles patient login.
//
// Authentication is the registered email + patient id pair; there is no
// password. This weakness is preserved deliberately.
// @Summary Login patient
// @Description Authenticate with email and patient id and receive a bearer token
// @Tags patients
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /login [post]
func (h *PatientsHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if req.Email == "" || req.PatientID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Email and patient_id are required")
		return
	}

	// Both fields must match exactly; a partial match is not authentication
	patient, err := h.patients.FindByCredentials(r.Context(), req.Email, req.PatientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid email or patient ID", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	token, err := middleware.GenerateToken(patient.PatientID, patient.FullName, &h.config.JWT)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Message:     "Login successful",
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
