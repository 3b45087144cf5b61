package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// ExpenseUseCase casos de uso para gastos de la flota.
type ExpenseUseCase struct {
	repo     repository.ExpenseRepository
	vehicles repository.VehicleRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, vehicles repository.VehicleRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, vehicles: vehicles}
}

// Create valida y crea un gasto. El vehículo referenciado debe existir
// (domain.ErrNotFound si no).
func (uc *ExpenseUseCase) Create(ctx context.Context, e *entity.Expense) (*entity.Expense, error) {
	if err := validateExpense(e); err != nil {
		return nil, err
	}
	vehicle, err := uc.vehicles.GetByID(ctx, e.VehicleID.Hex())
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetByID obtiene un gasto. Devuelve (nil, nil) si no existe.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista todos los gastos, más recientes primero.
func (uc *ExpenseUseCase) List(ctx context.Context) ([]*entity.Expense, error) {
	return uc.repo.List(ctx)
}

// ListByVehicle lista los gastos del vehículo dado.
func (uc *ExpenseUseCase) ListByVehicle(ctx context.Context, vehicleID string) ([]*entity.Expense, error) {
	return uc.repo.ListByVehicle(ctx, vehicleID)
}

// ListByDriver lista los gastos del conductor dado.
func (uc *ExpenseUseCase) ListByDriver(ctx context.Context, driverID string) ([]*entity.Expense, error) {
	return uc.repo.ListByDriver(ctx, driverID)
}

// Update valida y reemplaza los campos editables. Devuelve (nil, nil) si el id
// no existe.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, e *entity.Expense) (*entity.Expense, error) {
	if err := validateExpense(e); err != nil {
		return nil, err
	}
	e.UpdatedAt = time.Now()
	return uc.repo.Update(ctx, id, e)
}

// UpdateStatus cambia el estado de aprobación del gasto.
func (uc *ExpenseUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Expense, error) {
	if !entity.ValidExpenseStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.UpdateStatus(ctx, id, status)
}

// Delete elimina el gasto. Id inexistente devuelve domain.ErrNotFound.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Summary totales de gasto agrupados por tipo, ordenados por monto descendente.
func (uc *ExpenseUseCase) Summary(ctx context.Context) ([]repository.ExpenseTypeSummary, error) {
	return uc.repo.SummaryByType(ctx)
}

func validateExpense(e *entity.Expense) error {
	if !entity.ValidExpenseType(e.ExpenseType) {
		return domain.ErrInvalidInput
	}
	if e.Amount <= 0 || e.VehicleID.IsZero() || e.Date.IsZero() {
		return domain.ErrInvalidInput
	}
	if e.Status == "" {
		e.Status = entity.ExpenseStatusPending
	}
	if !entity.ValidExpenseStatus(e.Status) {
		return domain.ErrInvalidInput
	}
	return nil
}
