package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// VehicleUseCase casos de uso CRUD + búsqueda para vehículos.
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// Create valida y crea un vehículo. VIN o placa duplicados devuelven
// domain.ErrDuplicate (índice único).
func (uc *VehicleUseCase) Create(ctx context.Context, v *entity.Vehicle) (*entity.Vehicle, error) {
	if err := validateVehicle(v); err != nil {
		return nil, err
	}
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// GetByID obtiene un vehículo. Devuelve (nil, nil) si no existe.
func (uc *VehicleUseCase) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista todos los vehículos, opcionalmente filtrados por estado.
func (uc *VehicleUseCase) List(ctx context.Context, status string) ([]*entity.Vehicle, error) {
	if status != "" {
		if !entity.ValidVehicleStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		return uc.repo.ListByStatus(ctx, status)
	}
	return uc.repo.List(ctx)
}

// Update valida y reemplaza los campos editables del vehículo. Devuelve
// (nil, nil) si el id no existe.
func (uc *VehicleUseCase) Update(ctx context.Context, id string, v *entity.Vehicle) (*entity.Vehicle, error) {
	if err := validateVehicle(v); err != nil {
		return nil, err
	}
	v.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, id, v)
}

// Delete elimina el vehículo. Id inexistente devuelve domain.ErrNotFound.
func (uc *VehicleUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Search busca por texto (make/model/placa), estado, año y rango de kilometraje.
func (uc *VehicleUseCase) Search(ctx context.Context, q repository.VehicleSearch) ([]*entity.Vehicle, error) {
	if q.Status != "" && !entity.ValidVehicleStatus(q.Status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.Search(ctx, q)
}

func validateVehicle(v *entity.Vehicle) error {
	if v.Make == "" || v.Model == "" || v.VIN == "" || v.LicensePlate == "" || v.Year == 0 {
		return domain.ErrInvalidInput
	}
	if v.Status == "" {
		v.Status = entity.VehicleStatusActive
	}
	if !entity.ValidVehicleStatus(v.Status) {
		return domain.ErrInvalidInput
	}
	if v.FuelType != "" && !entity.ValidFuelType(v.FuelType) {
		return domain.ErrInvalidInput
	}
	return nil
}
