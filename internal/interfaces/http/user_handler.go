package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/application/usecase"
)

// Campos editables de un usuario. Cualquier otra clave en el body rechaza la
// petición completa.
var allowedUserUpdates = map[string]struct{}{
	"firstName": {},
	"lastName":  {},
	"email":     {},
	"role":      {},
	"status":    {},
}

// UserHandler maneja las peticiones HTTP para User (protegido, solo admin).
// Todas las operaciones quedan acotadas a la empresa del token.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create crea un usuario en la empresa del solicitante.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un usuario de la empresa del solicitante.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado")
	}
	return c.JSON(out)
}

// List lista los usuarios de la empresa del solicitante.
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update edita un usuario. Cualquier clave del body fuera de la whitelist
// (firstName, lastName, email, role, status) rechaza la petición con 400.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return invalidBody(c)
	}
	for key := range raw {
		if _, ok := allowedUserUpdates[key]; !ok {
			return badRequest(c, "Invalid updates")
		}
	}
	var in dto.UpdateUserRequest
	if err := json.Unmarshal(c.Body(), &in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "usuario no encontrado")
	}
	return c.JSON(out)
}

// Delete elimina un usuario de la empresa del solicitante.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetCompanyID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuario eliminado"})
}
