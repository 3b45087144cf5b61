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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre MongoDB. Las
// operaciones por empresa incluyen company en el filtro para que un usuario
// nunca pueda leer o modificar cuentas de otra compañía.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(g *Gateway) *UserRepo {
	return &UserRepo{coll: g.Collection(CollUsers)}
}

// Create inserta el usuario. Email duplicado (índice único) devuelve
// domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID obtiene un usuario por ID sin scope de empresa (uso interno del
// middleware de autenticación). Sin coincidencia devuelve (nil, nil).
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

// GetByIDAndCompany obtiene un usuario por ID dentro de la empresa dada.
func (r *UserRepo) GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	cid, err := parseID(companyID)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid, "company": cid})
}

// GetByEmail obtiene un usuario por email. Sin coincidencia devuelve (nil, nil).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// ListByCompany devuelve los usuarios de la empresa.
func (r *UserRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.User, error) {
	cid, err := parseID(companyID)
	if err != nil {
		return nil, err
	}
	cursor, err := r.coll.Find(ctx, bson.M{"company": cid}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	list := []*entity.User{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return list, nil
}

// Update reemplaza los campos mutables del usuario.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": u.ID}, bson.M{"$set": bson.M{
		"firstName":    u.FirstName,
		"lastName":     u.LastName,
		"email":        u.Email,
		"passwordHash": u.PasswordHash,
		"role":         u.Role,
		"status":       u.Status,
		"updatedAt":    u.UpdatedAt,
	}})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeleteByIDAndCompany elimina el usuario dentro de la empresa dada. Id
// inexistente (o de otra empresa) devuelve domain.ErrUserNotFound.
func (r *UserRepo) DeleteByIDAndCompany(ctx context.Context, id, companyID string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	cid, err := parseID(companyID)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "company": cid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var u entity.User
	if err := r.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
