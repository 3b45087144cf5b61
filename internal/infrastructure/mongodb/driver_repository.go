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

var _ repository.DriverRepository = (*DriverRepo)(nil)

// DriverRepo implementación del puerto DriverRepository sobre MongoDB.
type DriverRepo struct {
	coll *mongo.Collection
}

// NewDriverRepository construye el adaptador de persistencia para conductores.
func NewDriverRepository(g *Gateway) *DriverRepo {
	return &DriverRepo{coll: g.Collection(CollDrivers)}
}

// Create inserta el conductor.
func (r *DriverRepo) Create(ctx context.Context, d *entity.Driver) error {
	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		return fmt.Errorf("insert driver: %w", err)
	}
	d.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID obtiene un conductor por ID. Sin coincidencia devuelve (nil, nil).
func (r *DriverRepo) GetByID(ctx context.Context, id string) (*entity.Driver, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var d entity.Driver
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver by id: %w", err)
	}
	return &d, nil
}

// List devuelve todos los conductores.
func (r *DriverRepo) List(ctx context.Context) ([]*entity.Driver, error) {
	return r.find(ctx, bson.M{})
}

// ListByStatus devuelve los conductores con el estado dado.
func (r *DriverRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Driver, error) {
	return r.find(ctx, bson.M{"status": status})
}

// Update reemplaza los campos editables y devuelve el documento actualizado.
// Devuelve (nil, nil) si el id no existe.
func (r *DriverRepo) Update(ctx context.Context, id string, d *entity.Driver) (*entity.Driver, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{
		"firstName":     d.FirstName,
		"lastName":      d.LastName,
		"employeeId":    d.EmployeeID,
		"status":        d.Status,
		"contactNumber": d.ContactNumber,
		"email":         d.Email,
		"licenseNumber": d.LicenseNumber,
		"licenseExpiry": d.LicenseExpiry,
		"updatedAt":     d.UpdatedAt,
	}
	var updated entity.Driver
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update driver: %w", err)
	}
	return &updated, nil
}

// Delete elimina el conductor. Id inexistente devuelve domain.ErrNotFound.
func (r *DriverRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete driver: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DriverRepo) find(ctx context.Context, filter bson.M) ([]*entity.Driver, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find drivers: %w", err)
	}
	list := []*entity.Driver{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode drivers: %w", err)
	}
	return list, nil
}
