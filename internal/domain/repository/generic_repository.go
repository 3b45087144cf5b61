package repository

import "context"

// Document registro sin esquema de una colección lógica.
type Document = map[string]any

// GenericRepository CRUD + búsqueda dinámica sobre cualquier colección lógica
// sin handler dedicado. El filtro de Search se construye a partir de los query
// params crudos (sufijos _gt/_lt/_gte/_lte, substring case-insensitive).
type GenericRepository interface {
	List(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	Create(ctx context.Context, collection string, doc Document) (Document, error)
	Update(ctx context.Context, collection, id string, doc Document) (Document, error)
	Delete(ctx context.Context, collection, id string) error
	Search(ctx context.Context, collection string, params map[string]string) ([]Document, error)
}
