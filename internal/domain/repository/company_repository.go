package repository

import (
	"context"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para Company y su perfil.
type CompanyRepository interface {
	Create(ctx context.Context, c *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetFirst devuelve la primera empresa registrada (el perfil de empresa del
	// back-office opera sobre una sola compañía).
	GetFirst(ctx context.Context) (*entity.Company, error)
	Update(ctx context.Context, id string, c *entity.Company) (*entity.Company, error)
	// SetProfileFields aplica $set de rutas del sub-documento profile
	// (ej. "profile.logo") y devuelve la empresa actualizada.
	SetProfileFields(ctx context.Context, id string, set map[string]any) (*entity.Company, error)
}
