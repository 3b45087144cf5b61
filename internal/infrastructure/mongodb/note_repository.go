package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo implementación del puerto NoteRepository sobre MongoDB.
type NoteRepo struct {
	coll *mongo.Collection
}

// NewNoteRepository construye el adaptador de persistencia para notas.
func NewNoteRepository(g *Gateway) *NoteRepo {
	return &NoteRepo{coll: g.Collection(CollNotes)}
}

// Create inserta la nota.
func (r *NoteRepo) Create(ctx context.Context, n *entity.Note) error {
	res, err := r.coll.InsertOne(ctx, n)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	n.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID obtiene una nota por ID. Sin coincidencia devuelve (nil, nil).
func (r *NoteRepo) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var n entity.Note
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get note by id: %w", err)
	}
	return &n, nil
}

// List devuelve todas las notas, más recientes primero.
func (r *NoteRepo) List(ctx context.Context) ([]*entity.Note, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find notes: %w", err)
	}
	list := []*entity.Note{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return list, nil
}

// UpdateFields aplica $set solo de los campos provistos. Devuelve (nil, nil)
// si el id no existe.
func (r *NoteRepo) UpdateFields(ctx context.Context, id string, set map[string]any) (*entity.Note, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var updated entity.Note
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update note: %w", err)
	}
	return &updated, nil
}

// Delete elimina la nota. Id inexistente devuelve domain.ErrNotFound.
func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
