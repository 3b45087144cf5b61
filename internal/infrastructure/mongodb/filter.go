package mongodb

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Operadores de rango aceptados como sufijo de query param (campo_gte=100).
var rangeOperators = map[string]string{
	"gt":  "$gt",
	"lt":  "$lt",
	"gte": "$gte",
	"lte": "$lte",
}

// Parámetros reservados que se excluyen del filtro. page/limit/sort se aceptan
// pero hoy no se aplican a paginación ni orden.
var reservedParams = map[string]bool{
	"page":  true,
	"limit": true,
	"sort":  true,
}

// BuildSearchFilter construye el filtro de búsqueda dinámica a partir de los
// query params crudos:
//
//   - "campo_gt/_lt/_gte/_lte=N" → condición numérica de rango sobre "campo";
//     varios sufijos sobre el mismo campo se combinan en una sola condición.
//   - valor no numérico sin sufijo → substring case-insensitive ($regex, "i").
//   - valor numérico sin sufijo → igualdad.
func BuildSearchFilter(params map[string]string) bson.M {
	filter := bson.M{}

	for key, value := range params {
		if reservedParams[key] {
			continue
		}

		if field, op, ok := splitRangeSuffix(key); ok {
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				// Sufijo de rango con valor no numérico: se trata como campo literal.
				filter[key] = value
				continue
			}
			cond, _ := filter[field].(bson.M)
			if cond == nil {
				cond = bson.M{}
			}
			cond[op] = n
			filter[field] = cond
			continue
		}

		if n, err := strconv.ParseFloat(value, 64); err == nil {
			filter[key] = n
			continue
		}
		filter[key] = bson.M{"$regex": primitive.Regex{Pattern: value, Options: "i"}}
	}

	return filter
}

// splitRangeSuffix separa "precio_gte" en ("precio", "$gte", true).
func splitRangeSuffix(key string) (field, op string, ok bool) {
	idx := strings.LastIndex(key, "_")
	if idx <= 0 || idx == len(key)-1 {
		return "", "", false
	}
	mongoOp, known := rangeOperators[key[idx+1:]]
	if !known {
		return "", "", false
	}
	return key[:idx], mongoOp, true
}
