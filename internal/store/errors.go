package store

import "errors"

var (
	// ErrDuplicatePatientID is returned when registration collides with an
	// existing patient_id. The failed transaction is rolled back; no
	// partial row persists.
	ErrDuplicatePatientID = errors.New("patient id already exists")

	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
)
