package repository

import (
	"context"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// NoteRepository puerto de persistencia para Note.
type NoteRepository interface {
	Create(ctx context.Context, n *entity.Note) error
	GetByID(ctx context.Context, id string) (*entity.Note, error)
	List(ctx context.Context) ([]*entity.Note, error)
	// UpdateFields aplica $set solo de los campos provistos y devuelve la nota actualizada.
	UpdateFields(ctx context.Context, id string, set map[string]any) (*entity.Note, error)
	Delete(ctx context.Context, id string) error
}
