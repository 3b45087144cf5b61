// Package mongodb implementa la capa de persistencia sobre MongoDB: el gateway
// de conexión, los repositorios por entidad, el repositorio genérico de
// colecciones y las consultas de agregación de reportes.
package mongodb

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/Flota-api/pkg/config"
)

// Nombres de las colecciones lógicas con repositorio dedicado.
const (
	CollVehicles  = "vehicles"
	CollDrivers   = "drivers"
	CollExpenses  = "expenses"
	CollInvoices  = "invoices"
	CollContracts = "contracts"
	CollPayroll   = "payrollentries"
	CollNotes     = "notes"
	CollUsers     = "users"
	CollCompanies = "companies"
)

// Gateway sostiene la conexión única al almacén de documentos y expone
// colecciones por nombre lógico. Connect es idempotente y Collection es seguro
// de llamar antes o después de Connect: los handles del driver no hacen I/O
// hasta la primera operación, así que un uso previo a Connect aflora como
// error de conectividad en esa operación (el caller responde 5xx).
type Gateway struct {
	client *mongo.Client
	db     *mongo.Database

	mu        sync.Mutex
	connected bool
}

// NewGateway construye el gateway sin abrir la conexión todavía.
// Falla solo si el URI es inválido.
func NewGateway(cfg config.MongoConfig) (*Gateway, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongodb: URI inválido: %w", err)
	}
	return &Gateway{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Connect abre la conexión si no existe y verifica con un ping.
// Llamadas repetidas con la conexión abierta no tienen efecto.
func (g *Gateway) Connect(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.connected {
		return nil
	}
	if err := g.client.Connect(ctx); err != nil {
		return fmt.Errorf("mongodb: conectar: %w", err)
	}
	if err := g.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: ping: %w", err)
	}
	g.connected = true
	return nil
}

// Collection devuelve el handle de la colección lógica.
func (g *Gateway) Collection(name string) *mongo.Collection {
	return g.db.Collection(name)
}

// Ping verifica la conectividad con el almacén (usado por /health).
func (g *Gateway) Ping(ctx context.Context) error {
	if err := g.Connect(ctx); err != nil {
		return err
	}
	return g.client.Ping(ctx, readpref.Primary())
}

// Close cierra la conexión. Seguro de llamar sin conexión abierta.
func (g *Gateway) Close(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.connected {
		return nil
	}
	g.connected = false
	return g.client.Disconnect(ctx)
}

// EnsureIndexes crea los índices únicos que sostienen las garantías de
// unicidad en escritura: VIN y placa de vehículo, número de factura, email de
// usuario y (driverName, month, year) de nómina. Un insert duplicado devuelve
// error de clave duplicada que los repositorios traducen a domain.ErrDuplicate.
func (g *Gateway) EnsureIndexes(ctx context.Context) error {
	if err := g.Connect(ctx); err != nil {
		return err
	}
	unique := options.Index().SetUnique(true)

	specs := []struct {
		coll   string
		models []mongo.IndexModel
	}{
		{CollVehicles, []mongo.IndexModel{
			{Keys: bson.D{{Key: "vin", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "licensePlate", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		}},
		{CollInvoices, []mongo.IndexModel{
			{Keys: bson.D{{Key: "invoiceNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "contractId", Value: 1}}},
		}},
		{CollUsers, []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		}},
		{CollPayroll, []mongo.IndexModel{
			{Keys: bson.D{{Key: "driverName", Value: 1}, {Key: "month", Value: 1}, {Key: "year", Value: 1}}, Options: unique},
		}},
		{CollExpenses, []mongo.IndexModel{
			{Keys: bson.D{{Key: "expenseType", Value: 1}, {Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "vehicleId", Value: 1}}},
		}},
	}

	for _, s := range specs {
		if _, err := g.Collection(s.coll).Indexes().CreateMany(ctx, s.models); err != nil {
			return fmt.Errorf("mongodb: índices de %s: %w", s.coll, err)
		}
	}
	return nil
}
