package entity

import "github.com/shopspring/decimal"

// CatalogItem producto normalizado y vendible listo para consumidores del catálogo.
// Se crea una vez por fila aceptada y no se modifica después.
type CatalogItem struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal // precio final: indirimli si es > 0, si no el de venta
	StockQuantity int             // suma de todas las bodegas
	Category      string          // ruta normalizada "Nivel > Nivel"
	ImageURL      string
	SKU           string
	IsActive      bool
}
