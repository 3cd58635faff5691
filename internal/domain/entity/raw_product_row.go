package entity

// RawProductRow fila del CSV ya mapeada por nombre de columna.
// Las columnas ausentes quedan en "" (sin valores nil ni lookups dinámicos).
type RawProductRow struct {
	Line          int // número de fila de datos (1 = primera fila después del header)
	Name          string
	Description   string
	SalePrice     string
	DiscountPrice string
	Stocks        []WarehouseStock
	Categories    string
	ImageURL      string
	SKU           string
	Brand         string
	Active        string
	Deleted       string
}

// StockValues devuelve los valores crudos de stock en el orden de las columnas.
func (r RawProductRow) StockValues() []string {
	out := make([]string, 0, len(r.Stocks))
	for _, s := range r.Stocks {
		out = append(out, s.Raw)
	}
	return out
}
