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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre MongoDB.
type CompanyRepo struct {
	coll *mongo.Collection
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(g *Gateway) *CompanyRepo {
	return &CompanyRepo{coll: g.Collection(CollCompanies)}
}

// Create inserta la empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID obtiene una empresa por ID. Sin coincidencia devuelve (nil, nil).
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var c entity.Company
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by id: %w", err)
	}
	return &c, nil
}

// GetFirst devuelve la primera empresa registrada. Sin documentos devuelve
// (nil, nil).
func (r *CompanyRepo) GetFirst(ctx context.Context) (*entity.Company, error) {
	var c entity.Company
	err := r.coll.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}})).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get first company: %w", err)
	}
	return &c, nil
}

// Update reemplaza los campos mutables de la empresa y devuelve la versión
// actualizada. Id inexistente devuelve (nil, nil).
func (r *CompanyRepo) Update(ctx context.Context, id string, c *entity.Company) (*entity.Company, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var updated entity.Company
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":                  c.Name,
			"nit":                   c.NIT,
			"status":                c.Status,
			"subscriptionExpiresAt": c.SubscriptionExpiresAt,
			"updatedAt":             c.UpdatedAt,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return &updated, nil
}

// SetProfileFields aplica $set de rutas del sub-documento profile
// (ej. "profile.logo", "profile.contact.email") y devuelve la empresa
// actualizada. Id inexistente devuelve (nil, nil).
func (r *CompanyRepo) SetProfileFields(ctx context.Context, id string, set map[string]any) (*entity.Company, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var updated entity.Company
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update company profile: %w", err)
	}
	return &updated, nil
}
