package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jais-samman14/hospital-management-backend/models"
	"github.com/jais-samman14/hospital-management-backend/storage"
)

// AppointmentHandler serves the /api/appointments routes.
type AppointmentHandler struct {
	store storage.AppointmentStore
	log   *zap.Logger
}

func NewAppointmentHandler(store storage.AppointmentStore, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{store: store, log: log}
}

// List handles GET /api/appointments.
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	appointments, err := h.store.List(c.Context())
	if err != nil {
		h.log.Error("failed to fetch appointments", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch appointments")
	}
	return respondList(c, len(appointments), appointments)
}

// ListByPatient handles GET /api/appointments/patient/:patientId.
func (h *AppointmentHandler) ListByPatient(c *fiber.Ctx) error {
	patientID, err := strconv.Atoi(c.Params("patientId"))
	if err != nil {
		return respondList(c, 0, []models.AppointmentDetail{})
	}

	appointments, err := h.store.ListByPatient(c.Context(), patientID)
	if err != nil {
		h.log.Error("failed to fetch patient appointments",
			zap.Int("patient_id", patientID), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch patient appointments")
	}
	return respondList(c, len(appointments), appointments)
}

// ListByDoctor handles GET /api/appointments/doctor/:doctorId.
func (h *AppointmentHandler) ListByDoctor(c *fiber.Ctx) error {
	doctorID, err := strconv.Atoi(c.Params("doctorId"))
	if err != nil {
		return respondList(c, 0, []models.AppointmentDetail{})
	}

	appointments, err := h.store.ListByDoctor(c.Context(), doctorID)
	if err != nil {
		h.log.Error("failed to fetch doctor appointments",
			zap.Int("doctor_id", doctorID), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch doctor appointments")
	}
	return respondList(c, len(appointments), appointments)
}

// Create handles POST /api/appointments. Status defaults to scheduled at the
// store; a missing reason is stored as NULL.
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var req models.AppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Patient ID, Doctor ID, Date, and Time are required")
	}

	if req.PatientID == 0 || req.DoctorID == 0 || req.AppointmentDate == "" || req.AppointmentTime == "" {
		return respondError(c, fiber.StatusBadRequest, "Patient ID, Doctor ID, Date, and Time are required")
	}
	req.Normalize()

	id, err := h.store.Create(c.Context(), &req)
	if err != nil {
		h.log.Error("failed to create appointment", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to create appointment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":        true,
		"message":        "Appointment booked successfully",
		"appointment_id": id,
	})
}

// UpdateStatus handles PUT /api/appointments/:id/status. Any member of the
// status set is accepted regardless of the current value.
func (h *AppointmentHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Appointment not found")
	}

	var req models.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid status")
	}
	if !models.ValidStatus(req.Status) {
		return respondError(c, fiber.StatusBadRequest, "Invalid status")
	}

	if err := h.store.UpdateStatus(c.Context(), id, req.Status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Appointment not found")
		}
		h.log.Error("failed to update appointment status",
			zap.Int("appointment_id", id), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to update appointment status")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appointment status updated successfully",
	})
}

// Delete handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Appointment not found")
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Appointment not found")
		}
		h.log.Error("failed to delete appointment", zap.Int("appointment_id", id), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete appointment")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Appointment deleted successfully",
	})
}
