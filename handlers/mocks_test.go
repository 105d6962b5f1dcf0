package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/jais-samman14/hospital-management-backend/models"
	"github.com/jais-samman14/hospital-management-backend/storage"
)

// Compile-time checks that the mocks satisfy the store contracts.
var (
	_ storage.PatientStore     = (*mockPatientStore)(nil)
	_ storage.DoctorStore      = (*mockDoctorStore)(nil)
	_ storage.AppointmentStore = (*mockAppointmentStore)(nil)
	_ Pinger                   = (*mockPinger)(nil)
)

var errMockNotImplemented = errors.New("not implemented in mock")

type mockPatientStore struct {
	ListFunc    func(ctx context.Context) ([]models.Patient, error)
	GetByIDFunc func(ctx context.Context, id int) (*models.Patient, error)
	CreateFunc  func(ctx context.Context, req *models.PatientRequest) (int, error)
	UpdateFunc  func(ctx context.Context, id int, req *models.PatientRequest) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *mockPatientStore) List(ctx context.Context) ([]models.Patient, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errMockNotImplemented
}

func (m *mockPatientStore) GetByID(ctx context.Context, id int) (*models.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errMockNotImplemented
}

func (m *mockPatientStore) Create(ctx context.Context, req *models.PatientRequest) (int, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return 0, errMockNotImplemented
}

func (m *mockPatientStore) Update(ctx context.Context, id int, req *models.PatientRequest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return errMockNotImplemented
}

func (m *mockPatientStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errMockNotImplemented
}

type mockDoctorStore struct {
	ListFunc                 func(ctx context.Context) ([]models.Doctor, error)
	ListAvailableFunc        func(ctx context.Context) ([]models.Doctor, error)
	ListBySpecializationFunc func(ctx context.Context, specialization string) ([]models.Doctor, error)
	GetByIDFunc              func(ctx context.Context, id int) (*models.Doctor, error)
}

func (m *mockDoctorStore) List(ctx context.Context) ([]models.Doctor, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errMockNotImplemented
}

func (m *mockDoctorStore) ListAvailable(ctx context.Context) ([]models.Doctor, error) {
	if m.ListAvailableFunc != nil {
		return m.ListAvailableFunc(ctx)
	}
	return nil, errMockNotImplemented
}

func (m *mockDoctorStore) ListBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error) {
	if m.ListBySpecializationFunc != nil {
		return m.ListBySpecializationFunc(ctx, specialization)
	}
	return nil, errMockNotImplemented
}

func (m *mockDoctorStore) GetByID(ctx context.Context, id int) (*models.Doctor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errMockNotImplemented
}

type mockAppointmentStore struct {
	ListFunc          func(ctx context.Context) ([]models.AppointmentDetail, error)
	ListByPatientFunc func(ctx context.Context, patientID int) ([]models.AppointmentDetail, error)
	ListByDoctorFunc  func(ctx context.Context, doctorID int) ([]models.AppointmentDetail, error)
	CreateFunc        func(ctx context.Context, req *models.AppointmentRequest) (int, error)
	UpdateStatusFunc  func(ctx context.Context, id int, status string) error
	DeleteFunc        func(ctx context.Context, id int) error
}

func (m *mockAppointmentStore) List(ctx context.Context) ([]models.AppointmentDetail, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errMockNotImplemented
}

func (m *mockAppointmentStore) ListByPatient(ctx context.Context, patientID int) ([]models.AppointmentDetail, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, errMockNotImplemented
}

func (m *mockAppointmentStore) ListByDoctor(ctx context.Context, doctorID int) ([]models.AppointmentDetail, error) {
	if m.ListByDoctorFunc != nil {
		return m.ListByDoctorFunc(ctx, doctorID)
	}
	return nil, errMockNotImplemented
}

func (m *mockAppointmentStore) Create(ctx context.Context, req *models.AppointmentRequest) (int, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return 0, errMockNotImplemented
}

func (m *mockAppointmentStore) UpdateStatus(ctx context.Context, id int, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return errMockNotImplemented
}

func (m *mockAppointmentStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errMockNotImplemented
}

type mockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// decodeBody reads a response body into a generic envelope map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
	return body
}
