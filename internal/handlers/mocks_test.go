package handlers

import (
	"context"
	"errors"
	"sync/atomic"

	"healthsync-backend/internal/dto"
	"healthsync-backend/internal/models"
	"healthsync-backend/internal/store"
)

// Compile-time checks that the mocks implement the store contracts
var (
	_ store.PatientStore = (*MockPatientStore)(nil)
	_ store.VitalStore   = (*MockVitalStore)(nil)
)

// MockPatientStore is a mock implementation of store.PatientStore.
type MockPatientStore struct {
	CreatePatientFunc     func(ctx context.Context, patient *models.Patient) error
	FindByCredentialsFunc func(ctx context.Context, email, patientID string) (*models.Patient, error)
	GetPatientFunc        func(ctx context.Context, patientID string) (*models.Patient, error)

	CreatePatientCallCount int32
}

func (m *MockPatientStore) CreatePatient(ctx context.Context, patient *models.Patient) error {
	atomic.AddInt32(&m.CreatePatientCallCount, 1)
	if m.CreatePatientFunc != nil {
		return m.CreatePatientFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientStore) FindByCredentials(ctx context.Context, email, patientID string) (*models.Patient, error) {
	if m.FindByCredentialsFunc != nil {
		return m.FindByCredentialsFunc(ctx, email, patientID)
	}
	return nil, errors.New("FindByCredentialsFunc not implemented in mock")
}

func (m *MockPatientStore) GetPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	if m.GetPatientFunc != nil {
		return m.GetPatientFunc(ctx, patientID)
	}
	return nil, errors.New("GetPatientFunc not implemented in mock")
}

// MockVitalStore is a mock implementation of store.VitalStore.
type MockVitalStore struct {
	CreateVitalFunc func(ctx context.Context, patientID string, req *dto.AddVitalsRequest) (int64, error)
	ListVitalsFunc  func(ctx context.Context, patientID string) ([]models.VitalReading, error)
}

func (m *MockVitalStore) CreateVital(ctx context.Context, patientID string, req *dto.AddVitalsRequest) (int64, error) {
	if m.CreateVitalFunc != nil {
		return m.CreateVitalFunc(ctx, patientID, req)
	}
	return 0, errors.New("CreateVitalFunc not implemented in mock")
}

func (m *MockVitalStore) ListVitals(ctx context.Context, patientID string) ([]models.VitalReading, error) {
	if m.ListVitalsFunc != nil {
		return m.ListVitalsFunc(ctx, patientID)
	}
	return nil, errors.New("ListVitalsFunc not implemented in mock")
}
