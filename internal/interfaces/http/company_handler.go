package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/application/usecase"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// CompanyHandler perfil de la empresa del token (protegido). Las secciones del
// perfil se editan por partes con PATCH.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Get devuelve la empresa del solicitante.
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "empresa no encontrada")
	}
	return c.JSON(out)
}

// Update reemplaza los campos generales y/o el perfil completo (PUT).
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateProfile(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "empresa no encontrada")
	}
	return c.JSON(out)
}

// UpdateLogo actualiza solo el logo (PATCH /logo).
func (h *CompanyHandler) UpdateLogo(c *fiber.Ctx) error {
	var in dto.UpdateLogoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateLogo(c.Context(), GetCompanyID(c), in.Logo)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "empresa no encontrada")
	}
	return c.JSON(out)
}

// UpdateAbout actualiza solo la descripción (PATCH /about).
func (h *CompanyHandler) UpdateAbout(c *fiber.Ctx) error {
	var in dto.UpdateAboutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateAbout(c.Context(), GetCompanyID(c), in.About)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "empresa no encontrada")
	}
	return c.JSON(out)
}

// UpdateBusinessHours actualiza solo el horario (PATCH /business-hours).
func (h *CompanyHandler) UpdateBusinessHours(c *fiber.Ctx) error {
	var in entity.BusinessHours
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateBusinessHours(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "empresa no encontrada")
	}
	return c.JSON(out)
}

// UpdateContact actualiza solo el contacto (PATCH /contact).
func (h *CompanyHandler) UpdateContact(c *fiber.Ctx) error {
	var in entity.ContactInfo
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateContact(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "empresa no encontrada")
	}
	return c.JSON(out)
}

// UpdateSocialMedia actualiza solo las redes (PATCH /social-media).
func (h *CompanyHandler) UpdateSocialMedia(c *fiber.Ctx) error {
	var in entity.SocialMedia
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateSocialMedia(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "empresa no encontrada")
	}
	return c.JSON(out)
}
