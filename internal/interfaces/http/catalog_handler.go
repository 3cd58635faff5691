package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/catalog-import/internal/application/catalog"
	"github.com/jhoicas/catalog-import/internal/application/dto"
	"github.com/jhoicas/catalog-import/internal/domain"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

// importRunner lo implementa *catalog.ImportUseCase.
type importRunner interface {
	Run(ctx context.Context) (*dto.ImportResult, error)
}

// reportRunner lo implementa *catalog.ReportUseCase.
type reportRunner interface {
	Run(ctx context.Context) (*dto.CatalogReport, error)
}

// catalogReader lo implementa *postgres.CatalogRepo.
type catalogReader interface {
	List(ctx context.Context, limit, offset int) ([]entity.CatalogItem, error)
	Count(ctx context.Context) (int, error)
}

// CatalogHandler maneja la importación y consulta del catálogo.
type CatalogHandler struct {
	importUC importRunner
	reportUC reportRunner
	reader   catalogReader
}

// NewCatalogHandler construye el handler. reader puede ser nil (sin Postgres).
func NewCatalogHandler(importUC importRunner, reportUC reportRunner, reader catalogReader) *CatalogHandler {
	return &CatalogHandler{importUC: importUC, reportUC: reportUC, reader: reader}
}

// Import godoc
// @Summary      Importar catálogo
// @Description  Descarga el export CSV, filtra los productos vendibles y escribe los destinos configurados.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        items  query  bool  false  "Incluir la lista completa de productos"
// @Success      200  {object}  dto.ImportResult
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/admin/catalog/import [post]
func (h *CatalogHandler) Import(c *fiber.Ctx) error {
	out, err := h.importUC.Run(c.UserContext())
	if err != nil {
		return writeCatalogError(c, err)
	}
	if out.Accepted == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_PRODUCTS", Message: "no se encontraron productos válidos"})
	}
	if !c.QueryBool("items", false) {
		out.Items = nil
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte del catálogo
// @Description  Jerarquía de categorías, marcas, precios y stock por bodega del export completo.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CatalogReport
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/catalog/report [get]
func (h *CatalogHandler) Report(c *fiber.Ctx) error {
	out, err := h.reportUC.Run(c.UserContext())
	if err != nil {
		return writeCatalogError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos importados
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.CatalogItemListResponse
// @Failure      503     {object}  dto.ErrorResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	if h.reader == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_DISABLED", Message: "el catálogo no se persiste en base de datos"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()

	items, err := h.reader.List(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	total, err := h.reader.Count(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CatalogItemListResponse{
		Items: appcatalog.ToCatalogItemResponses(items),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// writeCatalogError traduce los errores de dominio a status HTTP.
func writeCatalogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrTransport):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SOURCE_UNAVAILABLE", Message: err.Error()})
	case errors.Is(err, domain.ErrOutputWrite):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "OUTPUT_WRITE_FAILED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
