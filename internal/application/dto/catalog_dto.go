package dto

import "encoding/json"

// CatalogItemResponse salida de un producto normalizado (mismo formato que el JSON exportado).
// Price va como número JSON sin pasar por float64.
type CatalogItemResponse struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Price         json.Number `json:"price"`
	StockQuantity int         `json:"stock_quantity"`
	Category      string      `json:"category"`
	ImageURL      string      `json:"image_url"`
	SKU           string      `json:"sku"`
	IsActive      bool        `json:"is_active"`
}

// CatalogItemSample resumen de un producto para logs y respuestas de importación.
type CatalogItemSample struct {
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
	Stock int         `json:"stock"`
}

// ImportResult resultado de una corrida de importación.
type ImportResult struct {
	Processed int                   `json:"processed"` // filas de datos leídas
	Accepted  int                   `json:"accepted"`  // filas que pasaron los filtros
	Emitted   int                   `json:"emitted"`   // productos entregados tras aplicar el límite
	Skipped   map[string]int        `json:"skipped"`   // filas descartadas por motivo
	Outputs   []string              `json:"outputs"`   // destinos escritos
	Sample    []CatalogItemSample   `json:"sample_products"`
	Items     []CatalogItemResponse `json:"items,omitempty"`
}

// CatalogItemListResponse lista paginada de productos persistidos.
type CatalogItemListResponse struct {
	Items []CatalogItemResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
