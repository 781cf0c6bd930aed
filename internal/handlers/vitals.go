package handlers

import (
	"encoding/json"
	"net/http"

	"healthsync-backend/internal/dto"
	"healthsync-backend/internal/middleware"
	"healthsync-backend/internal/store"
	"healthsync-backend/internal/utils"
)

// VitalsHandler handles vital-sign recording
type VitalsHandler struct {
	vitals store.VitalStore
}

// NewVitalsHandler creates a new VitalsHandler instance
func NewVitalsHandler(vitals store.VitalStore) *VitalsHandler {
	return &VitalsHandler{vitals: vitals}
}

// AddVitals records a vital reading for the authenticated patient
// @Summary Record a vital reading
// @Description Store a timestamped vital-sign reading for the patient bound to the bearer token
// @Tags vitals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddVitalsRequest true "Vital-sign fields, all optional"
// @Success 200 {object} dto.AddVitalsResponse "Vitals added successfully"
// @Failure 400 {object} dto.ErrorResponse "Store error"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /vitals/add [post]
func (h *VitalsHandler) AddVitals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Identity comes from the verified token, never from the request body.
	patientID, ok := middleware.PatientIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Token missing", "Patient not authenticated")
		return
	}

	var req dto.AddVitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	vitalID, err := h.vitals.CreateVital(r.Context(), patientID, &req)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AddVitalsResponse{
		Message: "Vitals added successfully",
		VitalID: vitalID,
	})
}
