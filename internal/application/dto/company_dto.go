package dto

import "github.com/jhoicas/Flota-api/internal/domain/entity"

// UpdateCompanyProfileRequest reemplazo completo del perfil de empresa (PUT).
type UpdateCompanyProfileRequest struct {
	Name    *string                `json:"name"`
	Email   *string                `json:"email"`
	Phone   *string                `json:"phone"`
	Address *string                `json:"address"`
	Profile *entity.CompanyProfile `json:"profile"`
}

// UpdateLogoRequest actualización puntual del logo.
type UpdateLogoRequest struct {
	Logo string `json:"logo"`
}

// UpdateAboutRequest actualización puntual de la descripción.
type UpdateAboutRequest struct {
	About string `json:"about"`
}
