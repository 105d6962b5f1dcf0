package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jais-samman14/hospital-management-backend/storage"
)

// DoctorHandler serves the /api/doctors routes. Doctors are read-only.
type DoctorHandler struct {
	store storage.DoctorStore
	log   *zap.Logger
}

func NewDoctorHandler(store storage.DoctorStore, log *zap.Logger) *DoctorHandler {
	return &DoctorHandler{store: store, log: log}
}

// List handles GET /api/doctors.
func (h *DoctorHandler) List(c *fiber.Ctx) error {
	doctors, err := h.store.List(c.Context())
	if err != nil {
		h.log.Error("failed to fetch doctors", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch doctors")
	}
	return respondList(c, len(doctors), doctors)
}

// ListAvailable handles GET /api/doctors/available.
func (h *DoctorHandler) ListAvailable(c *fiber.Ctx) error {
	doctors, err := h.store.ListAvailable(c.Context())
	if err != nil {
		h.log.Error("failed to fetch available doctors", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch available doctors")
	}
	return respondList(c, len(doctors), doctors)
}

// ListBySpecialization handles GET /api/doctors/specialization/:specialization.
func (h *DoctorHandler) ListBySpecialization(c *fiber.Ctx) error {
	specialization := c.Params("specialization")
	doctors, err := h.store.ListBySpecialization(c.Context(), specialization)
	if err != nil {
		h.log.Error("failed to fetch doctors by specialization",
			zap.String("specialization", specialization), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch doctors by specialization")
	}
	return respondList(c, len(doctors), doctors)
}

// GetByID handles GET /api/doctors/:id.
func (h *DoctorHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return respondError(c, fiber.StatusNotFound, "Doctor not found")
	}

	doctor, err := h.store.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, "Doctor not found")
		}
		h.log.Error("failed to fetch doctor", zap.Int("doctor_id", id), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch doctor")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    doctor,
	})
}
