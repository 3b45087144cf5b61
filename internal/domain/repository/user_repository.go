package repository

import (
	"context"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para User. Todas las operaciones de
// lectura/escritura por empresa reciben companyID para aislar el scope.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	DeleteByIDAndCompany(ctx context.Context, id, companyID string) error
}
