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

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación del puerto VehicleRepository sobre MongoDB.
type VehicleRepo struct {
	coll *mongo.Collection
}

// NewVehicleRepository construye el adaptador de persistencia para vehículos.
func NewVehicleRepository(g *Gateway) *VehicleRepo {
	return &VehicleRepo{coll: g.Collection(CollVehicles)}
}

// Create inserta el vehículo. VIN o placa duplicados devuelven domain.ErrDuplicate.
func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	res, err := r.coll.InsertOne(ctx, v)
	if err != nil {
		if err = mapWriteErr(err); errors.Is(err, domain.ErrDuplicate) {
			return err
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	v.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID obtiene un vehículo por ID. Sin coincidencia devuelve (nil, nil).
func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var v entity.Vehicle
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle by id: %w", err)
	}
	return &v, nil
}

// List devuelve todos los vehículos.
func (r *VehicleRepo) List(ctx context.Context) ([]*entity.Vehicle, error) {
	return r.find(ctx, bson.M{})
}

// ListByStatus devuelve los vehículos con el estado dado.
func (r *VehicleRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Vehicle, error) {
	return r.find(ctx, bson.M{"status": status})
}

// Update reemplaza los campos editables y devuelve el documento actualizado.
// Devuelve (nil, nil) si el id no existe.
func (r *VehicleRepo) Update(ctx context.Context, id string, v *entity.Vehicle) (*entity.Vehicle, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{
		"make":               v.Make,
		"model":              v.Model,
		"year":               v.Year,
		"vin":                v.VIN,
		"licensePlate":       v.LicensePlate,
		"registrationExpiry": v.RegistrationExpiry,
		"status":             v.Status,
		"fuelType":           v.FuelType,
		"currentMileage":     v.CurrentMileage,
		"lastServiceDate":    v.LastServiceDate,
		"updatedAt":          v.UpdatedAt,
	}
	var updated entity.Vehicle
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if err = mapWriteErr(err); errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	return &updated, nil
}

// Delete elimina el vehículo. Id inexistente devuelve domain.ErrNotFound.
func (r *VehicleRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search construye el filtro a partir de los criterios del buscador.
func (r *VehicleRepo) Search(ctx context.Context, q repository.VehicleSearch) ([]*entity.Vehicle, error) {
	filter := bson.M{}
	if q.Text != "" {
		re := primitive.Regex{Pattern: q.Text, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"make": re},
			bson.M{"model": re},
			bson.M{"licensePlate": re},
		}
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.Year != 0 {
		filter["year"] = q.Year
	}
	if q.MinMileage != nil || q.MaxMileage != nil {
		cond := bson.M{}
		if q.MinMileage != nil {
			cond["$gte"] = *q.MinMileage
		}
		if q.MaxMileage != nil {
			cond["$lte"] = *q.MaxMileage
		}
		filter["currentMileage"] = cond
	}
	return r.find(ctx, filter)
}

func (r *VehicleRepo) find(ctx context.Context, filter bson.M) ([]*entity.Vehicle, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find vehicles: %w", err)
	}
	list := []*entity.Vehicle{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}
	return list, nil
}
