package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Flota-api/internal/domain"
	"github.com/jhoicas/Flota-api/internal/domain/entity"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)
var _ repository.ContractRepository = (*ContractRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre MongoDB.
type InvoiceRepo struct {
	coll *mongo.Collection
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(g *Gateway) *InvoiceRepo {
	return &InvoiceRepo{coll: g.Collection(CollInvoices)}
}

// Create inserta la factura. Un invoiceNumber repetido devuelve domain.ErrDuplicate
// (garantizado por el índice único, no por una consulta previa).
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	res, err := r.coll.InsertOne(ctx, inv)
	if err != nil {
		if err = mapWriteErr(err); errors.Is(err, domain.ErrDuplicate) {
			return err
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	inv.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID obtiene una factura por ID. Sin coincidencia devuelve (nil, nil).
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var inv entity.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&inv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}
	return &inv, nil
}

// List devuelve todas las facturas, más recientes primero.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	return r.find(ctx, bson.M{})
}

// ListByContract devuelve las facturas de un contrato, más recientes primero.
func (r *InvoiceRepo) ListByContract(ctx context.Context, contractID string) ([]*entity.Invoice, error) {
	oid, err := parseID(contractID)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"contractId": oid})
}

// UpdateFields aplica $set de los campos indicados. Devuelve (nil, nil) si el
// id no existe.
func (r *InvoiceRepo) UpdateFields(ctx context.Context, id string, set map[string]any) (*entity.Invoice, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOneAndUpdate(ctx, oid, bson.M{"$set": set})
}

// AddPayment agrega el pago al arreglo payments y deja la factura en "paid".
// El estado se marca pagado con cualquier abono, también parcial.
func (r *InvoiceRepo) AddPayment(ctx context.Context, id string, p entity.Payment) (*entity.Invoice, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{
		"$push": bson.M{"payments": p},
		"$set": bson.M{
			"status":    entity.InvoiceStatusPaid,
			"updatedAt": time.Now(),
		},
	}
	return r.findOneAndUpdate(ctx, oid, update)
}

// MarkSent marca la factura como enviada y registra sentAt.
func (r *InvoiceRepo) MarkSent(ctx context.Context, id string, at time.Time) (*entity.Invoice, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{
		"status":    entity.InvoiceStatusSent,
		"sentAt":    at,
		"updatedAt": at,
	}}
	return r.findOneAndUpdate(ctx, oid, update)
}

// Delete elimina la factura. Id inexistente devuelve domain.ErrNotFound.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Stats agrupa las facturas por estado y calcula totales globales.
func (r *InvoiceRepo) Stats(ctx context.Context) (*repository.InvoiceStats, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":         "$status",
			"count":       bson.M{"$sum": 1},
			"totalAmount": bson.M{"$sum": "$total"},
		}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("invoice stats: %w", err)
	}
	byStatus := []repository.InvoiceStatusGroup{}
	if err := cursor.All(ctx, &byStatus); err != nil {
		return nil, fmt.Errorf("decode invoice stats: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("count invoices: %w", err)
	}

	var totalAmount float64
	for _, g := range byStatus {
		totalAmount += g.TotalAmount
	}

	return &repository.InvoiceStats{
		ByStatus:      byStatus,
		TotalInvoices: total,
		TotalAmount:   totalAmount,
	}, nil
}

func (r *InvoiceRepo) findOneAndUpdate(ctx context.Context, oid primitive.ObjectID, update bson.M) (*entity.Invoice, error) {
	var updated entity.Invoice
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return &updated, nil
}

func (r *InvoiceRepo) find(ctx context.Context, filter bson.M) ([]*entity.Invoice, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find invoices: %w", err)
	}
	list := []*entity.Invoice{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode invoices: %w", err)
	}
	return list, nil
}

// ContractRepo acceso de solo lectura a la colección de contratos. El CRUD de
// contratos vive en el router genérico; aquí solo se valida existencia.
type ContractRepo struct {
	coll *mongo.Collection
}

// NewContractRepository construye el adaptador de contratos.
func NewContractRepository(g *Gateway) *ContractRepo {
	return &ContractRepo{coll: g.Collection(CollContracts)}
}

// Exists indica si el contrato referenciado existe.
func (r *ContractRepo) Exists(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("contract exists: %w", err)
	}
	return n > 0, nil
}
