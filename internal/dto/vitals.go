package dto

// AddVitalsRequest represents the request payload for recording a vital
// reading. Every field is optional and independently nullable; no range
// checks are applied. The payload deliberately has no patient_id field:
// the reading is always stored under the authenticated token's identity.
type AddVitalsRequest struct {
	HeartRateBPM     *float64 `json:"heart_rate_bpm,omitempty"`
	SystolicBPmmHg   *float64 `json:"systolic_bp_mmHg,omitempty"`
	DiastolicBPmmHg  *float64 `json:"diastolic_bp_mmHg,omitempty"`
	BodyTemperatureC *float64 `json:"body_temperature_c,omitempty"`
	RespiratoryRate  *float64 `json:"respiratory_rate,omitempty"`
	OxygenSaturation *float64 `json:"oxygen_saturation,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

// AddVitalsResponse represents the response after a reading is stored
type AddVitalsResponse struct {
	Message string `json:"message"`
	VitalID int64  `json:"vital_id"`
}
