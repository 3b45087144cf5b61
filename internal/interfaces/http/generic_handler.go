package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Flota-api/internal/application/dto"
	"github.com/jhoicas/Flota-api/internal/domain/repository"
)

// ResourceDescriptor describe una colección lógica expuesta por el router
// genérico: recursos con CRUD + búsqueda pero sin handler dedicado.
type ResourceDescriptor struct {
	// Name segmento de ruta (ej. "contracts" → /api/contracts).
	Name string
	// Collection nombre de la colección en el almacén.
	Collection string
}

// GenericResources colecciones lógicas servidas por el router genérico.
var GenericResources = []ResourceDescriptor{
	{Name: "contracts", Collection: "contracts"},
	{Name: "fuel-records", Collection: "fuelrecords"},
	{Name: "maintenance-records", Collection: "maintenancerecords"},
	{Name: "trips", Collection: "trips"},
	{Name: "documents", Collection: "documents"},
}

// GenericHandler CRUD + búsqueda dinámica sobre una colección lógica. Una
// instancia por descriptor; todas comparten el mismo repositorio.
type GenericHandler struct {
	repo       repository.GenericRepository
	collection string
}

// NewGenericHandler construye el handler para una colección.
func NewGenericHandler(repo repository.GenericRepository, collection string) *GenericHandler {
	return &GenericHandler{repo: repo, collection: collection}
}

// List devuelve todos los documentos de la colección.
func (h *GenericHandler) List(c *fiber.Ctx) error {
	out, err := h.repo.List(c.Context(), h.collection)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get obtiene un documento por ID.
func (h *GenericHandler) Get(c *fiber.Ctx) error {
	out, err := h.repo.Get(c.Context(), h.collection, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "documento no encontrado")
	}
	return c.JSON(out)
}

// Create inserta el documento tal como llega.
func (h *GenericHandler) Create(c *fiber.Ctx) error {
	var doc repository.Document
	if err := c.BodyParser(&doc); err != nil {
		return invalidBody(c)
	}
	out, err := h.repo.Create(c.Context(), h.collection, doc)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update aplica los campos del body sobre el documento.
func (h *GenericHandler) Update(c *fiber.Ctx) error {
	var doc repository.Document
	if err := c.BodyParser(&doc); err != nil {
		return invalidBody(c)
	}
	out, err := h.repo.Update(c.Context(), h.collection, c.Params("id"), doc)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "documento no encontrado")
	}
	return c.JSON(out)
}

// Delete elimina el documento.
func (h *GenericHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), h.collection, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "registro eliminado"})
}

// Search filtra la colección con los query params crudos: sufijos
// _gt/_lt/_gte/_lte para rangos numéricos y substring case-insensitive para
// strings. page, limit y sort se aceptan pero no se aplican.
func (h *GenericHandler) Search(c *fiber.Ctx) error {
	params := map[string]string{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})
	out, err := h.repo.Search(c.Context(), h.collection, params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegisterGenericRoutes monta las rutas CRUD + /search de cada descriptor.
func RegisterGenericRoutes(group fiber.Router, repo repository.GenericRepository, resources []ResourceDescriptor) {
	for _, res := range resources {
		h := NewGenericHandler(repo, res.Collection)
		g := group.Group("/" + res.Name)
		g.Get("/search", h.Search)
		g.Get("/", h.List)
		g.Post("/", h.Create)
		g.Get("/:id", h.Get)
		g.Put("/:id", h.Update)
		g.Delete("/:id", h.Delete)
	}
}
