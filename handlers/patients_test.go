package handlers

import (
	"context"
	"errors"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jais-samman14/hospital-management-backend/models"
	"github.com/jais-samman14/hospital-management-backend/storage"
)

func newPatientApp(store storage.PatientStore) *fiber.App {
	app := fiber.New()
	h := NewPatientHandler(store, zap.NewNop())
	app.Get("/api/patients", h.List)
	app.Post("/api/patients", h.Create)
	app.Get("/api/patients/:id", h.GetByID)
	app.Put("/api/patients/:id", h.Update)
	app.Delete("/api/patients/:id", h.Delete)
	return app
}

func strPtr(s string) *string { return &s }

func TestListPatients(t *testing.T) {
	phone := "555-0101"
	store := &mockPatientStore{
		ListFunc: func(ctx context.Context) ([]models.Patient, error) {
			return []models.Patient{
				{PatientID: 2, FirstName: "Asha", LastName: "Verma", Email: "asha@example.com", Phone: &phone, CreatedAt: time.Now()},
				{PatientID: 1, FirstName: "Ravi", LastName: "Kumar", Email: "ravi@example.com", CreatedAt: time.Now()},
			}, nil
		},
	}
	app := newPatientApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/patients", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	data := body["data"].([]any)
	assert.Len(t, data, 2)
	first := data[0].(map[string]any)
	assert.Equal(t, float64(2), first["patient_id"])
	assert.Equal(t, "asha@example.com", first["email"])
}

func TestListPatientsEmptyTable(t *testing.T) {
	store := &mockPatientStore{
		ListFunc: func(ctx context.Context) ([]models.Patient, error) {
			return []models.Patient{}, nil
		},
	}
	app := newPatientApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/patients", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, []any{}, body["data"])
}

func TestListPatientsStoreFailure(t *testing.T) {
	store := &mockPatientStore{
		ListFunc: func(ctx context.Context) ([]models.Patient, error) {
			return nil, errors.New("connection refused")
		},
	}
	app := newPatientApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/patients", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to fetch patients", body["error"])
}

func TestGetPatientByID(t *testing.T) {
	store := &mockPatientStore{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Patient, error) {
			if id != 7 {
				return nil, storage.ErrNotFound
			}
			return &models.Patient{PatientID: 7, FirstName: "Ravi", LastName: "Kumar", Email: "ravi@example.com"}, nil
		},
	}
	app := newPatientApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/patients/7", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(7), data["patient_id"])
	assert.Nil(t, data["phone"])
}

func TestGetPatientNotFound(t *testing.T) {
	store := &mockPatientStore{
		GetByIDFunc: func(ctx context.Context, id int) (*models.Patient, error) {
			return nil, storage.ErrNotFound
		},
	}
	app := newPatientApp(store)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/patients/999", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Patient not found", body["error"])
}

func TestCreatePatient(t *testing.T) {
	var captured *models.PatientRequest
	store := &mockPatientStore{
		CreateFunc: func(ctx context.Context, req *models.PatientRequest) (int, error) {
			captured = req
			return 42, nil
		},
	}
	app := newPatientApp(store)

	payload := `{"first_name":"Asha","last_name":"Verma","email":"asha@example.com","phone":"","gender":"female"}`
	req := httptest.NewRequest("POST", "/api/patients", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Patient created successfully", body["message"])
	assert.Equal(t, float64(42), body["patient_id"])

	require.NotNil(t, captured)
	assert.Nil(t, captured.Phone, "empty optional field must bind as NULL")
	require.NotNil(t, captured.Gender)
	assert.Equal(t, "female", *captured.Gender)
}

func TestCreatePatientFromForm(t *testing.T) {
	store := &mockPatientStore{
		CreateFunc: func(ctx context.Context, req *models.PatientRequest) (int, error) {
			return 5, nil
		},
	}
	app := newPatientApp(store)

	form := url.Values{}
	form.Set("first_name", "Ravi")
	form.Set("last_name", "Kumar")
	form.Set("email", "ravi@example.com")
	req := httptest.NewRequest("POST", "/api/patients", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}

func TestCreatePatientMissingRequiredFields(t *testing.T) {
	store := &mockPatientStore{}
	app := newPatientApp(store)

	req := httptest.NewRequest("POST", "/api/patients", strings.NewReader(`{"first_name":"Asha"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "First name, last name, and email are required", body["error"])
}

func TestCreatePatientDuplicateEmail(t *testing.T) {
	store := &mockPatientStore{
		CreateFunc: func(ctx context.Context, req *models.PatientRequest) (int, error) {
			return 0, storage.ErrDuplicateEmail
		},
	}
	app := newPatientApp(store)

	payload := `{"first_name":"Asha","last_name":"Verma","email":"asha@example.com"}`
	req := httptest.NewRequest("POST", "/api/patients", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Email already exists", body["error"])
}

func TestCreatePatientStoreFailureStaysGeneric(t *testing.T) {
	store := &mockPatientStore{
		CreateFunc: func(ctx context.Context, req *models.PatientRequest) (int, error) {
			return 0, errors.New("relation patients does not exist")
		},
	}
	app := newPatientApp(store)

	payload := `{"first_name":"Asha","last_name":"Verma","email":"asha@example.com"}`
	req := httptest.NewRequest("POST", "/api/patients", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Failed to create patient", body["error"],
		"underlying store detail must not leak to the client")
}

func TestUpdatePatient(t *testing.T) {
	store := &mockPatientStore{
		UpdateFunc: func(ctx context.Context, id int, req *models.PatientRequest) error {
			assert.Equal(t, 3, id)
			return nil
		},
	}
	app := newPatientApp(store)

	payload := `{"first_name":"Asha","last_name":"Verma","email":"asha@example.com"}`
	req := httptest.NewRequest("PUT", "/api/patients/3", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Patient updated successfully", body["message"])
}

func TestUpdatePatientMissingRequiredFields(t *testing.T) {
	storeCalled := false
	store := &mockPatientStore{
		UpdateFunc: func(ctx context.Context, id int, req *models.PatientRequest) error {
			storeCalled = true
			return nil
		},
	}
	app := newPatientApp(store)

	req := httptest.NewRequest("PUT", "/api/patients/3", strings.NewReader(`{"first_name":"Asha"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "First name, last name, and email are required", body["error"])
	assert.False(t, storeCalled, "invalid update must never reach the store")
}

func TestUpdatePatientNotFound(t *testing.T) {
	store := &mockPatientStore{
		UpdateFunc: func(ctx context.Context, id int, req *models.PatientRequest) error {
			return storage.ErrNotFound
		},
	}
	app := newPatientApp(store)

	payload := `{"first_name":"Asha","last_name":"Verma","email":"asha@example.com"}`
	req := httptest.NewRequest("PUT", "/api/patients/999", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDeletePatient(t *testing.T) {
	store := &mockPatientStore{
		DeleteFunc: func(ctx context.Context, id int) error {
			assert.Equal(t, 4, id)
			return nil
		},
	}
	app := newPatientApp(store)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/patients/4", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Patient deleted successfully", body["message"])
}

func TestDeletePatientNotFound(t *testing.T) {
	store := &mockPatientStore{
		DeleteFunc: func(ctx context.Context, id int) error {
			return storage.ErrNotFound
		},
	}
	app := newPatientApp(store)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/patients/999", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Patient not found", body["error"])
}
