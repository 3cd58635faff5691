package http

import (
	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/catalog-import/internal/application/catalog"
	"github.com/jhoicas/catalog-import/internal/infrastructure/postgres"
	"github.com/jhoicas/catalog-import/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ImportUC    *appcatalog.ImportUseCase
	ReportUC    *appcatalog.ReportUseCase
	CatalogRepo *postgres.CatalogRepo // nil si el destino Postgres está deshabilitado
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	var reader catalogReader
	if deps.CatalogRepo != nil {
		reader = deps.CatalogRepo
	}
	RegisterCatalogRoutes(app, NewCatalogHandler(deps.ImportUC, deps.ReportUC, reader), deps.JWTSecret)
}

// RegisterCatalogRoutes registra las rutas del catálogo sobre un handler ya construido.
func RegisterCatalogRoutes(app *fiber.App, h *CatalogHandler, jwtSecret string) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(jwtSecret))

	// Importación (solo admin)
	admin := protected.Group("/admin", RequireRole(jwt.RoleAdmin))
	admin.Post("/catalog/import", h.Import)

	// Consulta (admin o editor)
	catalog := protected.Group("/catalog", RequireRole(jwt.RoleAdmin, jwt.RoleEditor))
	catalog.Get("/report", h.Report)
	catalog.Get("/products", h.List)
}
