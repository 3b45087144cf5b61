package repository

import (
	"context"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// VehicleSearch filtros del buscador de vehículos. Text aplica a make, model
// y licensePlate como substring case-insensitive.
type VehicleSearch struct {
	Text       string
	Status     string
	Year       int
	MinMileage *float64
	MaxMileage *float64
}

// VehicleRepository puerto de persistencia para Vehicle.
type VehicleRepository interface {
	Create(ctx context.Context, v *entity.Vehicle) error
	GetByID(ctx context.Context, id string) (*entity.Vehicle, error)
	List(ctx context.Context) ([]*entity.Vehicle, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Vehicle, error)
	Update(ctx context.Context, id string, v *entity.Vehicle) (*entity.Vehicle, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q VehicleSearch) ([]*entity.Vehicle, error)
}
