package repository

import (
	"context"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// DriverRepository puerto de persistencia para Driver.
type DriverRepository interface {
	Create(ctx context.Context, d *entity.Driver) error
	GetByID(ctx context.Context, id string) (*entity.Driver, error)
	List(ctx context.Context) ([]*entity.Driver, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Driver, error)
	Update(ctx context.Context, id string, d *entity.Driver) (*entity.Driver, error)
	Delete(ctx context.Context, id string) error
}
