package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// CompanyUseCase perfil de empresa del back-office. Las secciones del perfil
// se editan por partes con $set de rutas del sub-documento.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// GetProfile devuelve la empresa del solicitante. Devuelve (nil, nil) si no existe.
func (uc *CompanyUseCase) GetProfile(ctx context.Context, companyID string) (*entity.Company, error) {
	return uc.repo.GetByID(ctx, companyID)
}

// UpdateProfile reemplaza los campos generales y/o el perfil completo (PUT).
func (uc *CompanyUseCase) UpdateProfile(ctx context.Context, companyID string, in dto.UpdateCompanyProfileRequest) (*entity.Company, error) {
	set := map[string]any{"updatedAt": time.Now()}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.Phone != nil {
		set["phone"] = *in.Phone
	}
	if in.Address != nil {
		set["address"] = *in.Address
	}
	if in.Profile != nil {
		set["profile"] = *in.Profile
	}
	return uc.repo.SetProfileFields(ctx, companyID, set)
}

// UpdateLogo actualiza solo el logo del perfil.
func (uc *CompanyUseCase) UpdateLogo(ctx context.Context, companyID, logo string) (*entity.Company, error) {
	return uc.setProfileSection(ctx, companyID, "profile.logo", logo)
}

// UpdateAbout actualiza solo la descripción del perfil.
func (uc *CompanyUseCase) UpdateAbout(ctx context.Context, companyID, about string) (*entity.Company, error) {
	return uc.setProfileSection(ctx, companyID, "profile.about", about)
}

// UpdateBusinessHours actualiza solo el horario de atención.
func (uc *CompanyUseCase) UpdateBusinessHours(ctx context.Context, companyID string, hours entity.BusinessHours) (*entity.Company, error) {
	return uc.setProfileSection(ctx, companyID, "profile.businessHours", hours)
}

// UpdateContact actualiza solo los datos de contacto.
func (uc *CompanyUseCase) UpdateContact(ctx context.Context, companyID string, contact entity.ContactInfo) (*entity.Company, error) {
	return uc.setProfileSection(ctx, companyID, "profile.contact", contact)
}

// UpdateSocialMedia actualiza solo los enlaces a redes sociales.
func (uc *CompanyUseCase) UpdateSocialMedia(ctx context.Context, companyID string, social entity.SocialMedia) (*entity.Company, error) {
	return uc.setProfileSection(ctx, companyID, "profile.socialMedia", social)
}

func (uc *CompanyUseCase) setProfileSection(ctx context.Context, companyID, path string, value any) (*entity.Company, error) {
	return uc.repo.SetProfileFields(ctx, companyID, map[string]any{
		path:        value,
		"updatedAt": time.Now(),
	})
}
