package models

import "time"

// VitalReading represents one row in patient_vitals. Readings are
// append-only: there is no update or delete path. vital_id is assigned by
// the store on insert and recorded_at defaults to the insert time.
type VitalReading struct {
	VitalID          int64     `json:"vital_id" db:"vital_id"`
	PatientID        string    `json:"patient_id" db:"patient_id"`
	RecordedAt       time.Time `json:"recorded_at" db:"recorded_at"`
	HeartRateBPM     *float64  `json:"heart_rate_bpm" db:"heart_rate_bpm"`
	SystolicBPmmHg   *float64  `json:"systolic_bp_mmHg" db:"systolic_bp_mmhg"`
	DiastolicBPmmHg  *float64  `json:"diastolic_bp_mmHg" db:"diastolic_bp_mmhg"`
	BodyTemperatureC *float64  `json:"body_temperature_c" db:"body_temperature_c"`
	RespiratoryRate  *float64  `json:"respiratory_rate" db:"respiratory_rate"`
	OxygenSaturation *float64  `json:"oxygen_saturation" db:"oxygen_saturation"`
	Notes            *string   `json:"notes" db:"notes"`
}
