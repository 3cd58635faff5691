package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domaincatalog "github.com/jhoicas/catalog-import/internal/domain/catalog"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

// SkipReason motivo por el que una fila no genera producto.
type SkipReason string

const (
	SkipNone        SkipReason = ""
	SkipMissingName SkipReason = "missing_name"
	SkipDeleted     SkipReason = "deleted"
	SkipInactive    SkipReason = "inactive"
	SkipOutOfStock  SkipReason = "out_of_stock"
	SkipNoPrice     SkipReason = "no_price"
)

// fallbackSKULen largo del SKU generado cuando el export no trae uno.
const fallbackSKULen = 8

// IDGenerator genera identificadores únicos (uuid por defecto).
type IDGenerator func() string

// TransformerConfig reglas de normalización.
type TransformerConfig struct {
	RootLabel       string // nivel raíz a quitar de la categoría ("Tüm Ürünler")
	DefaultCategory string // categoría cuando la ruta queda vacía ("Genel")
	DescriptionMax  int    // en runas; 0 = sin recorte
}

// Transformer decide si una fila es vendible y construye el CatalogItem.
type Transformer struct {
	cfg   TransformerConfig
	newID IDGenerator
}

// NewTransformer construye el transformer. newID nil usa uuid.NewString.
func NewTransformer(cfg TransformerConfig, newID IDGenerator) *Transformer {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Transformer{cfg: cfg, newID: newID}
}

// Transform devuelve el producto o el motivo del descarte. Nunca falla: los valores
// que no se pueden parsear quedan en su valor por defecto y la fila sigue el filtrado.
func (t *Transformer) Transform(row entity.RawProductRow) (*entity.CatalogItem, SkipReason) {
	name := strings.TrimSpace(row.Name)
	if name == "" {
		return nil, SkipMissingName
	}
	if domaincatalog.ParseFlag(row.Deleted) {
		return nil, SkipDeleted
	}
	if !domaincatalog.ParseFlag(row.Active) {
		return nil, SkipInactive
	}
	stock := domaincatalog.AggregateStock(row.StockValues())
	if stock <= 0 {
		return nil, SkipOutOfStock
	}
	price := domaincatalog.FinalPrice(
		domaincatalog.ParsePrice(row.SalePrice),
		domaincatalog.ParsePrice(row.DiscountPrice),
	)
	if !price.GreaterThan(decimal.Zero) {
		return nil, SkipNoPrice
	}

	description := domaincatalog.TruncateRunes(domaincatalog.SanitizeHTML(row.Description), t.cfg.DescriptionMax)
	if description == "" {
		description = strings.TrimSpace(strings.TrimSpace(row.Brand) + " " + name)
	}

	sku := strings.TrimSpace(row.SKU)
	if sku == "" {
		sku = domaincatalog.TruncateRunes(t.newID(), fallbackSKULen)
	}

	return &entity.CatalogItem{
		ID:            t.newID(),
		Name:          name,
		Description:   description,
		Price:         price,
		StockQuantity: stock,
		Category:      domaincatalog.NormalizeCategory(row.Categories, t.cfg.RootLabel, t.cfg.DefaultCategory),
		ImageURL:      strings.TrimSpace(row.ImageURL),
		SKU:           sku,
		IsActive:      true,
	}, SkipNone
}
