package dto

// LoginRequest represents the request payload for patient login.
// There is no password: a patient authenticates with the email and
// patient id pair they registered with. This is a documented weakness
// of the system, not an omission.
type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	PatientID string `json:"patient_id" validate:"required"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
