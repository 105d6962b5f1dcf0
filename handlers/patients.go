package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jais-samman14/hospital-management-backend/models"
	"github.com/jais-samman14/hospital-management-backend/storage"
)

// PatientHandler serves the /api/patients routes.
type PatientHandler struct {
	store storage.PatientStore
	log   *zap.Logger
}

func NewPatientHandler(store storage.PatientStore, log *zap.Logger) *PatientHandler {
	return &PatientHandler{store: store, log: log}
}

// List handles GET /api/patients.
func (h *PatientHandler) List(c *fiber.Ctx) error {
	patients, err := h.store.List(c.Context())
	if err != nil {
		h.log.Error("failed to fetch patients", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch patients")
	}
	return respondList(c, len(patients), patients)
}

// GetByID handles GET /api/patients/:id.
func (h *PatientHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Patient not found")
	}

	patient, err := h.store.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Patient not found")
		}
		h.log.Error("failed to fetch patient", zap.Int("patient_id", id), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch patient")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    patient,
	})
}

// Create handles POST /api/patients.
func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var req models.PatientRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "First name, last name, and email are required")
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return respondError(c, fiber.StatusBadRequest, "First name, last name, and email are required")
	}
	req.Normalize()

	id, err := h.store.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return respondError(c, fiber.StatusBadRequest, "Email already exists")
		}
		// Detail stays in the server log only.
		h.log.Error("failed to create patient", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to create patient")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Patient created successfully",
		"patient_id": id,
	})
}

// Update handles PUT /api/patients/:id. Every mutable field is overwritten;
// omitted optional fields are written as NULL, matching create.
func (h *PatientHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Patient not found")
	}

	var req models.PatientRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "First name, last name, and email are required")
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return respondError(c, fiber.StatusBadRequest, "First name, last name, and email are required")
	}
	req.Normalize()

	if err := h.store.Update(c.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, "Patient not found")
		case errors.Is(err, storage.ErrDuplicateEmail):
			return respondError(c, fiber.StatusBadRequest, "Email already exists")
		}
		h.log.Error("failed to update patient", zap.Int("patient_id", id), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to update patient")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Patient updated successfully",
	})
}

// Delete handles DELETE /api/patients/:id. Deletion is physical.
func (h *PatientHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Patient not found")
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Patient not found")
		}
		h.log.Error("failed to delete patient", zap.Int("patient_id", id), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to delete patient")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Patient deleted successfully",
	})
}
