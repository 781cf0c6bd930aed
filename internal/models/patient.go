package models

import "time"

// Patient represents one row in patient_details. The patient_id is supplied
// by the caller at registration and never changes afterwards.
type Patient struct {
	PatientID   string    `json:"patient_id" db:"patient_id"`
	FullName    string    `json:"full_name" db:"full_name"`
	Gender      *string   `json:"gender" db:"gender"`
	DateOfBirth time.Time `json:"date_of_birth" db:"date_of_birth"`
	BloodGroup  *string   `json:"blood_group" db:"blood_group"`
	PhoneNumber *string   `json:"phone_number" db:"phone_number"`
	Email       *string   `json:"email" db:"email"`
	Address     *string   `json:"address" db:"address"`
	City        *string   `json:"city" db:"city"`
	State       *string   `json:"state" db:"state"`
	Country     string    `json:"country" db:"country"`
	HeightCm    *float64  `json:"height_cm" db:"height_cm"`
	WeightKg    *float64  `json:"weight_kg" db:"weight_kg"`
}
