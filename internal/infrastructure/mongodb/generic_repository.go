package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

var _ repository.GenericRepository = (*GenericRepo)(nil)

// GenericRepo CRUD + búsqueda dinámica sobre cualquier colección lógica. Los
// documentos se manejan sin esquema (map); la validación de qué colecciones
// se exponen vive en la capa HTTP.
type GenericRepo struct {
	gw *Gateway
}

// NewGenericRepository construye el adaptador genérico de colecciones.
func NewGenericRepository(g *Gateway) *GenericRepo {
	return &GenericRepo{gw: g}
}

// List devuelve todos los documentos de la colección.
func (r *GenericRepo) List(ctx context.Context, collection string) ([]repository.Document, error) {
	cursor, err := r.gw.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	docs := []repository.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	return docs, nil
}

// Get obtiene un documento por ID. Sin coincidencia devuelve (nil, nil).
func (r *GenericRepo) Get(ctx context.Context, collection, id string) (repository.Document, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc repository.Document
	if err := r.gw.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s by id: %w", collection, err)
	}
	return doc, nil
}

// Create inserta el documento y lo devuelve con su _id asignado.
func (r *GenericRepo) Create(ctx context.Context, collection string, doc repository.Document) (repository.Document, error) {
	res, err := r.gw.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("insert %s: %w", collection, err)
	}
	doc["_id"] = res.InsertedID
	return doc, nil
}

// Update aplica $set de los campos provistos y devuelve el documento
// actualizado. Id inexistente devuelve (nil, nil).
func (r *GenericRepo) Update(ctx context.Context, collection, id string, doc repository.Document) (repository.Document, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	// El _id nunca es mutable.
	delete(doc, "_id")
	var updated repository.Document
	err = r.gw.Collection(collection).FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": doc},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update %s: %w", collection, err)
	}
	return updated, nil
}

// Delete elimina el documento. Id inexistente devuelve domain.ErrNotFound.
func (r *GenericRepo) Delete(ctx context.Context, collection, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.gw.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", collection, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search filtra la colección con el filtro dinámico construido a partir de los
// query params crudos.
func (r *GenericRepo) Search(ctx context.Context, collection string, params map[string]string) ([]repository.Document, error) {
	filter := BuildSearchFilter(params)
	cursor, err := r.gw.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", collection, err)
	}
	docs := []repository.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	return docs, nil
}
