package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// DriverUseCase casos de uso CRUD para conductores.
type DriverUseCase struct {
	repo repository.DriverRepository
}

// NewDriverUseCase construye el caso de uso.
func NewDriverUseCase(repo repository.DriverRepository) *DriverUseCase {
	return &DriverUseCase{repo: repo}
}

// Create valida y crea un conductor.
func (uc *DriverUseCase) Create(ctx context.Context, d *entity.Driver) (*entity.Driver, error) {
	if err := validateDriver(d); err != nil {
		return nil, err
	}
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// GetByID obtiene un conductor. Devuelve (nil, nil) si no existe.
func (uc *DriverUseCase) GetByID(ctx context.Context, id string) (*entity.Driver, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista todos los conductores, opcionalmente filtrados por estado.
func (uc *DriverUseCase) List(ctx context.Context, status string) ([]*entity.Driver, error) {
	if status != "" {
		if !entity.ValidDriverStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		return uc.repo.ListByStatus(ctx, status)
	}
	return uc.repo.List(ctx)
}

// Update valida y reemplaza los campos editables. Devuelve (nil, nil) si el id
// no existe.
func (uc *DriverUseCase) Update(ctx context.Context, id string, d *entity.Driver) (*entity.Driver, error) {
	if err := validateDriver(d); err != nil {
		return nil, err
	}
	d.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, id, d)
}

// Delete elimina el conductor. Id inexistente devuelve domain.ErrNotFound.
func (uc *DriverUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func validateDriver(d *entity.Driver) error {
	if d.FirstName == "" || d.LastName == "" || d.EmployeeID == "" {
		return domain.ErrInvalidInput
	}
	if d.Status == "" {
		d.Status = entity.DriverStatusActive
	}
	if !entity.ValidDriverStatus(d.Status) {
		return domain.ErrInvalidInput
	}
	return nil
}
