package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación para los reportes del dashboard. Ambas
// operaciones comparten el mismo pipeline parametrizado sobre la colección de
// gastos: match por tipo y rango de fechas, suma, conteo y push de registros.
type ReportRepo struct {
	expenses *mongo.Collection
	vehicles *mongo.Collection
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(g *Gateway) *ReportRepo {
	return &ReportRepo{
		expenses: g.Collection(CollExpenses),
		vehicles: g.Collection(CollVehicles),
	}
}

func matchStage(expenseType string, from, to time.Time) bson.D {
	return bson.D{{Key: "$match", Value: bson.M{
		"expenseType": expenseType,
		"date":        bson.M{"$gte": from, "$lte": to},
	}}}
}

// AggregateExpenses suma todos los gastos del tipo dado en [from, to]. Sin
// coincidencias devuelve un agregado en cero con lista vacía, nunca error.
func (r *ReportRepo) AggregateExpenses(ctx context.Context, expenseType string, from, to time.Time) (*repository.ExpenseAggregate, error) {
	pipeline := mongo.Pipeline{
		matchStage(expenseType, from, to),
		bson.D{{Key: "$group", Value: bson.M{
			"_id":               nil,
			"totalCost":         bson.M{"$sum": "$amount"},
			"totalTransactions": bson.M{"$sum": 1},
			"expenses":          bson.M{"$push": "$$ROOT"},
		}}},
	}
	cursor, err := r.expenses.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate expenses: %w", err)
	}
	var results []repository.ExpenseAggregate
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode expense aggregate: %w", err)
	}
	if len(results) == 0 {
		return &repository.ExpenseAggregate{Expenses: []entity.Expense{}}, nil
	}
	agg := results[0]
	if agg.Expenses == nil {
		agg.Expenses = []entity.Expense{}
	}
	return &agg, nil
}

type vehicleGroupRow struct {
	VehicleID         primitive.ObjectID `bson:"_id"`
	TotalCost         float64            `bson:"totalCost"`
	TotalTransactions int                `bson:"totalTransactions"`
	Expenses          []entity.Expense   `bson:"expenses"`
	Vehicles          []entity.Vehicle   `bson:"vehicleInfo"`
}

// AggregateExpensesByVehicle agrupa por vehículo, enriquece cada grupo con el
// vehículo referenciado vía $lookup y ordena por costo total descendente.
func (r *ReportRepo) AggregateExpensesByVehicle(ctx context.Context, expenseType string, from, to time.Time) ([]repository.VehicleExpenseGroup, error) {
	pipeline := mongo.Pipeline{
		matchStage(expenseType, from, to),
		bson.D{{Key: "$group", Value: bson.M{
			"_id":               "$vehicleId",
			"totalCost":         bson.M{"$sum": "$amount"},
			"totalTransactions": bson.M{"$sum": 1},
			"expenses":          bson.M{"$push": "$$ROOT"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CollVehicles,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "vehicleInfo",
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "totalCost", Value: -1}}}},
	}
	cursor, err := r.expenses.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate expenses by vehicle: %w", err)
	}
	var rows []vehicleGroupRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode vehicle expense groups: %w", err)
	}
	groups := make([]repository.VehicleExpenseGroup, 0, len(rows))
	for _, row := range rows {
		g := repository.VehicleExpenseGroup{
			VehicleID:         row.VehicleID.Hex(),
			TotalCost:         row.TotalCost,
			TotalTransactions: row.TotalTransactions,
			Expenses:          row.Expenses,
		}
		if g.Expenses == nil {
			g.Expenses = []entity.Expense{}
		}
		// El vehículo referenciado puede haber sido eliminado; el grupo se
		// devuelve igual, sin enriquecer.
		if len(row.Vehicles) > 0 {
			v := row.Vehicles[0]
			g.Vehicle = &v
		}
		groups = append(groups, g)
	}
	return groups, nil
}
