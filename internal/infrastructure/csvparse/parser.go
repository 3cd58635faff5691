// Package csvparse convierte el export CSV de productos en filas tipadas.
// Las columnas se buscan por nombre de header (no por posición).
package csvparse

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

// Headers del export ikas. Cada campo acepta alias para el listado "Kategorili Ürün Listesi".
var (
	ColName          = []string{"İsim", "Ürün"}
	ColDescription   = []string{"Açıklama"}
	ColSalePrice     = []string{"Satış Fiyatı"}
	ColDiscountPrice = []string{"İndirimli Fiyatı"}
	ColCategories    = []string{"Kategoriler", "Kategori"}
	ColImageURL      = []string{"Resim URL"}
	ColSKU           = []string{"SKU"}
	ColBrand         = []string{"Marka"}
	ColActive        = []string{"Varyant Aktiflik"}
	ColDeleted       = []string{"Silindi mi?"}
)

// StockPrefix prefijo de las columnas de stock por bodega ("Stok:Ana Depo").
const StockPrefix = "Stok:"

// Parser lector del CSV. Sin columnas de stock configuradas usa todas las "Stok:*".
type Parser struct {
	stockColumns []string
}

// NewParser construye el parser.
func NewParser(stockColumns []string) *Parser {
	cols := make([]string, 0, len(stockColumns))
	for _, c := range stockColumns {
		cols = append(cols, normalizeHeader(c))
	}
	return &Parser{stockColumns: cols}
}

// header índice de columnas resuelto una vez por documento.
type header struct {
	index      map[string]int
	warehouses []entity.Warehouse
	stockIdx   []int
}

// Parse lee el header y una fila tipada por cada registro siguiente, en orden.
// Un documento vacío o con header ilegible no tiene filas; filas cortas o largas se toleran.
func (p *Parser) Parse(text string) ([]entity.RawProductRow, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	first, err := r.Read()
	if err != nil {
		return []entity.RawProductRow{}, nil
	}
	h := p.resolveHeader(first)

	rows := make([]entity.RawProductRow, 0)
	line := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// registro ilegible: se descarta igual que una fila sin nombre
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		rows = append(rows, h.row(line, record))
	}
	return rows, nil
}

func (p *Parser) resolveHeader(record []string) header {
	h := header{index: make(map[string]int, len(record))}
	for i, name := range record {
		name = normalizeHeader(name)
		if _, dup := h.index[name]; !dup {
			h.index[name] = i
		}
	}

	if len(p.stockColumns) > 0 {
		for _, col := range p.stockColumns {
			idx, ok := h.index[col]
			if !ok {
				idx = -1
			}
			h.stockIdx = append(h.stockIdx, idx)
			h.warehouses = append(h.warehouses, entity.Warehouse{Name: warehouseName(col), Column: col})
		}
		return h
	}

	for i, name := range record {
		name = normalizeHeader(name)
		if strings.HasPrefix(name, StockPrefix) && h.index[name] == i {
			h.stockIdx = append(h.stockIdx, i)
			h.warehouses = append(h.warehouses, entity.Warehouse{Name: warehouseName(name), Column: name})
		}
	}
	return h
}

func (h header) row(line int, record []string) entity.RawProductRow {
	row := entity.RawProductRow{
		Line:          line,
		Name:          h.get(record, ColName),
		Description:   h.get(record, ColDescription),
		SalePrice:     h.get(record, ColSalePrice),
		DiscountPrice: h.get(record, ColDiscountPrice),
		Categories:    h.get(record, ColCategories),
		ImageURL:      h.get(record, ColImageURL),
		SKU:           h.get(record, ColSKU),
		Brand:         h.get(record, ColBrand),
		Active:        h.get(record, ColActive),
		Deleted:       h.get(record, ColDeleted),
		Stocks:        make([]entity.WarehouseStock, 0, len(h.stockIdx)),
	}
	for i, idx := range h.stockIdx {
		row.Stocks = append(row.Stocks, entity.WarehouseStock{
			Warehouse: h.warehouses[i].Name,
			Raw:       field(record, idx),
		})
	}
	return row
}

// get devuelve el valor de la primera columna (alias) presente en el header; "" si no existe.
func (h header) get(record []string, names []string) string {
	for _, n := range names {
		if idx, ok := h.index[normalizeHeader(n)]; ok {
			return field(record, idx)
		}
	}
	return ""
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// normalizeHeader quita BOM y espacios y normaliza a NFC ("İ" puede venir descompuesta).
func normalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return norm.NFC.String(strings.TrimSpace(s))
}

func warehouseName(column string) string {
	return strings.TrimSpace(strings.TrimPrefix(column, StockPrefix))
}
