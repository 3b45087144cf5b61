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

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

// PayrollRepo implementación del puerto PayrollRepository sobre MongoDB.
type PayrollRepo struct {
	coll *mongo.Collection
}

// NewPayrollRepository construye el adaptador de persistencia para nómina.
func NewPayrollRepository(g *Gateway) *PayrollRepo {
	return &PayrollRepo{coll: g.Collection(CollPayroll)}
}

// Create inserta la entrada de nómina. El índice único sobre
// (driverName, month, year) convierte el duplicado en domain.ErrDuplicate.
func (r *PayrollRepo) Create(ctx context.Context, p *entity.PayrollEntry) error {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		if err = mapWriteErr(err); errors.Is(err, domain.ErrDuplicate) {
			return err
		}
		return fmt.Errorf("insert payroll entry: %w", err)
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID obtiene una entrada por ID. Sin coincidencia devuelve (nil, nil).
func (r *PayrollRepo) GetByID(ctx context.Context, id string) (*entity.PayrollEntry, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var p entity.PayrollEntry
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payroll entry by id: %w", err)
	}
	return &p, nil
}

// List devuelve todas las entradas de nómina.
func (r *PayrollRepo) List(ctx context.Context) ([]*entity.PayrollEntry, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find payroll entries: %w", err)
	}
	list := []*entity.PayrollEntry{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode payroll entries: %w", err)
	}
	return list, nil
}

// Update reemplaza los campos editables y devuelve el documento actualizado.
// Devuelve (nil, nil) si el id no existe.
func (r *PayrollRepo) Update(ctx context.Context, id string, p *entity.PayrollEntry) (*entity.PayrollEntry, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{
		"driverId":    p.DriverID,
		"driverName":  p.DriverName,
		"employeeId":  p.EmployeeID,
		"month":       p.Month,
		"year":        p.Year,
		"basicSalary": p.BasicSalary,
		"allowances":  p.Allowances,
		"deductions":  p.Deductions,
		"netPay":      p.NetPay,
		"status":      p.Status,
		"paymentDate": p.PaymentDate,
		"updatedAt":   p.UpdatedAt,
	}
	var updated entity.PayrollEntry
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
		return nil, fmt.Errorf("update payroll entry: %w", err)
	}
	return &updated, nil
}

// Delete elimina la entrada. Id inexistente devuelve domain.ErrNotFound.
func (r *PayrollRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete payroll entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
