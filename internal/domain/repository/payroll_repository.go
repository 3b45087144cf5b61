package repository

import (
	"context"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// PayrollRepository puerto de persistencia para PayrollEntry.
type PayrollRepository interface {
	Create(ctx context.Context, p *entity.PayrollEntry) error
	GetByID(ctx context.Context, id string) (*entity.PayrollEntry, error)
	List(ctx context.Context) ([]*entity.PayrollEntry, error)
	Update(ctx context.Context, id string, p *entity.PayrollEntry) (*entity.PayrollEntry, error)
	Delete(ctx context.Context, id string) error
}
