package dto

// RegisterPatientRequest represents the request payload for patient registration
type RegisterPatientRequest struct {
	PatientID   string   `json:"patient_id" validate:"required"`
	FullName    string   `json:"full_name" validate:"required"`
	DateOfBirth string   `json:"date_of_birth" validate:"required"` // YYYY-MM-DD
	Gender      *string  `json:"gender,omitempty"`
	BloodGroup  *string  `json:"blood_group,omitempty"`
	PhoneNumber *string  `json:"phone_number,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Address     *string  `json:"address,omitempty"`
	City        *string  `json:"city,omitempty"`
	State       *string  `json:"state,omitempty"`
	Country     *string  `json:"country,omitempty"` // defaults to "India" when omitted
	HeightCm    *float64 `json:"height_cm,omitempty"`
	WeightKg    *float64 `json:"weight_kg,omitempty"`
}

// RegisterPatientResponse represents the response after successful registration
type RegisterPatientResponse struct {
	Message   string `json:"message"`
	PatientID string `json:"patient_id"`
}
