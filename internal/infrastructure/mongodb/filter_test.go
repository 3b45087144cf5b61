package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests BuildSearchFilter
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildSearchFilter_TextoGeneraRegexCaseInsensitive(t *testing.T) {
	filter := BuildSearchFilter(map[string]string{"make": "toyo"})

	cond, ok := filter["make"].(bson.M)
	require.True(t, ok, "un valor de texto debe generar una condición $regex")
	rx, ok := cond["$regex"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "toyo", rx.Pattern)
	assert.Equal(t, "i", rx.Options, "la búsqueda de texto debe ser case-insensitive")
}

func TestBuildSearchFilter_NumeroGeneraIgualdad(t *testing.T) {
	filter := BuildSearchFilter(map[string]string{"year": "2021"})

	assert.Equal(t, float64(2021), filter["year"],
		"un valor numérico sin sufijo debe filtrar por igualdad")
}

func TestBuildSearchFilter_SufijosDeRangoSeCombinan(t *testing.T) {
	filter := BuildSearchFilter(map[string]string{
		"mileage_gte": "10000",
		"mileage_lte": "50000",
	})

	cond, ok := filter["mileage"].(bson.M)
	require.True(t, ok, "los sufijos _gte/_lte deben colapsar en un solo campo")
	assert.Equal(t, float64(10000), cond["$gte"])
	assert.Equal(t, float64(50000), cond["$lte"])
	assert.Len(t, cond, 2)
}

func TestBuildSearchFilter_GtYLt(t *testing.T) {
	filter := BuildSearchFilter(map[string]string{
		"amount_gt": "100",
		"amount_lt": "500.5",
	})

	cond, ok := filter["amount"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, float64(100), cond["$gt"])
	assert.Equal(t, 500.5, cond["$lt"])
}

func TestBuildSearchFilter_ParamsReservadosSeIgnoran(t *testing.T) {
	filter := BuildSearchFilter(map[string]string{
		"page":   "2",
		"limit":  "25",
		"sort":   "-createdAt",
		"status": "active",
	})

	assert.NotContains(t, filter, "page")
	assert.NotContains(t, filter, "limit")
	assert.NotContains(t, filter, "sort")
	assert.Contains(t, filter, "status", "los campos normales sí deben filtrarse")
}

func TestBuildSearchFilter_SufijoConValorNoNumerico_CampoLiteral(t *testing.T) {
	// "fecha_gte=ayer" no es un rango numérico válido: se conserva como campo tal cual.
	filter := BuildSearchFilter(map[string]string{"fecha_gte": "ayer"})

	assert.Equal(t, "ayer", filter["fecha_gte"])
	assert.NotContains(t, filter, "fecha")
}

func TestBuildSearchFilter_SinParams_FiltroVacio(t *testing.T) {
	filter := BuildSearchFilter(map[string]string{})
	assert.Empty(t, filter)
}
