package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/application/usecase"
)

// NoteHandler maneja las peticiones HTTP para Note (protegido).
type NoteHandler struct {
	uc *usecase.NoteUseCase
}

// NewNoteHandler construye el handler.
func NewNoteHandler(uc *usecase.NoteUseCase) *NoteHandler {
	return &NoteHandler{uc: uc}
}

// Create crea una nota; si trae recordatorio lo programa tras persistir.
func (h *NoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una nota por ID.
func (h *NoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "nota no encontrada")
	}
	return c.JSON(out)
}

// List lista todas las notas, más recientes primero.
func (h *NoteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update aplica los campos presentes; con recordatorio nuevo lo reprograma.
func (h *NoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "nota no encontrada")
	}
	return c.JSON(out)
}

// Delete elimina la nota.
func (h *NoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "nota eliminada"})
}
