package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Flota-api/internal/domain"
)

// parseID convierte un id hex en ObjectID. Un formato inválido se traduce a
// domain.ErrInvalidID para que el handler responda 400 en lugar de 500.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// mapWriteErr traduce errores de escritura del driver a errores de dominio.
func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicate
	}
	return err
}
