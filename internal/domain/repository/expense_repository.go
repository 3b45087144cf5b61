package repository

import (
	"context"

	"github.com/jhoicas/Flota-api/internal/domain/entity"
)

// ExpenseTypeSummary total de gastos agrupado por tipo.
type ExpenseTypeSummary struct {
	ExpenseType string  `json:"expenseType" bson:"_id"`
	TotalAmount float64 `json:"totalAmount" bson:"totalAmount"`
	Count       int     `json:"count" bson:"count"`
}

// ExpenseRepository puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	List(ctx context.Context) ([]*entity.Expense, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]*entity.Expense, error)
	ListByDriver(ctx context.Context, driverID string) ([]*entity.Expense, error)
	Update(ctx context.Context, id string, e *entity.Expense) (*entity.Expense, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Expense, error)
	Delete(ctx context.Context, id string) error
	SummaryByType(ctx context.Context) ([]ExpenseTypeSummary, error)
}
