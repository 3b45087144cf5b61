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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre MongoDB.
type ExpenseRepo struct {
	coll *mongo.Collection
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(g *Gateway) *ExpenseRepo {
	return &ExpenseRepo{coll: g.Collection(CollExpenses)}
}

// Create inserta el gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	res, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID obtiene un gasto por ID. Sin coincidencia devuelve (nil, nil).
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var e entity.Expense
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense by id: %w", err)
	}
	return &e, nil
}

// List devuelve todos los gastos ordenados por fecha descendente.
func (r *ExpenseRepo) List(ctx context.Context) ([]*entity.Expense, error) {
	return r.find(ctx, bson.M{})
}

// ListByVehicle devuelve los gastos de un vehículo.
func (r *ExpenseRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]*entity.Expense, error) {
	oid, err := parseID(vehicleID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"vehicleId": oid})
}

// ListByDriver devuelve los gastos asociados a un conductor.
func (r *ExpenseRepo) ListByDriver(ctx context.Context, driverID string) ([]*entity.Expense, error) {
	oid, err := parseID(driverID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"driverId": oid})
}

// Update reemplaza los campos editables y devuelve el documento actualizado.
// Devuelve (nil, nil) si el id no existe.
func (r *ExpenseRepo) Update(ctx context.Context, id string, e *entity.Expense) (*entity.Expense, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{
		"expenseType": e.ExpenseType,
		"amount":      e.Amount,
		"date":        e.Date,
		"vehicleId":   e.VehicleID,
		"driverId":    e.DriverID,
		"description": e.Description,
		"status":      e.Status,
		"updatedAt":   e.UpdatedAt,
	}
	return r.findOneAndSet(ctx, oid, set)
}

// UpdateStatus cambia solo el estado del gasto.
func (r *ExpenseRepo) UpdateStatus(ctx context.Context, id, status string) (*entity.Expense, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOneAndSet(ctx, oid, bson.M{"status": status})
}

// Delete elimina el gasto. Id inexistente devuelve domain.ErrNotFound.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SummaryByType agrupa todos los gastos por tipo con total y conteo.
func (r *ExpenseRepo) SummaryByType(ctx context.Context) ([]repository.ExpenseTypeSummary, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":         "$expenseType",
			"totalAmount": bson.M{"$sum": "$amount"},
			"count":       bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"totalAmount": -1}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("expense summary: %w", err)
	}
	out := []repository.ExpenseTypeSummary{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode expense summary: %w", err)
	}
	return out, nil
}

func (r *ExpenseRepo) findOneAndSet(ctx context.Context, oid primitive.ObjectID, set bson.M) (*entity.Expense, error) {
	var updated entity.Expense
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return &updated, nil
}

func (r *ExpenseRepo) find(ctx context.Context, filter bson.M) ([]*entity.Expense, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find expenses: %w", err)
	}
	list := []*entity.Expense{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	return list, nil
}
