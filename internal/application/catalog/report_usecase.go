package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-import/internal/application/dto"
	"github.com/jhoicas/catalog-import/internal/domain"
	domaincatalog "github.com/jhoicas/catalog-import/internal/domain/catalog"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

// Niveles de la ruta usados por el reporte (el nivel 1 es la raíz "Tüm Ürünler").
const (
	levelMain   = 2
	levelSub    = 3
	levelDetail = 4
)

// ReportUseCase analiza el export completo (sin filtrar): jerarquía de categorías,
// marcas, precios y stock por bodega.
type ReportUseCase struct {
	source CatalogSource
	parser RowParser
	topN   int
}

// NewReportUseCase construye el caso de uso. topN <= 0 devuelve todas las entradas.
func NewReportUseCase(source CatalogSource, parser RowParser, topN int) *ReportUseCase {
	return &ReportUseCase{source: source, parser: parser, topN: topN}
}

// Run obtiene el catálogo y calcula el reporte. Misma política de fallo que la importación.
func (uc *ReportUseCase) Run(ctx context.Context) (*dto.CatalogReport, error) {
	text, err := uc.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrTransport, uc.source.Describe(), err)
	}
	rows, err := uc.parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsear CSV: %w", err)
	}
	return BuildReport(rows, uc.topN), nil
}

// BuildReport calcula el reporte sobre las filas. Un nivel ausente no cuenta para ese nivel;
// un nivel presente pero vacío tampoco se cuenta como categoría.
func BuildReport(rows []entity.RawProductRow, topN int) *dto.CatalogReport {
	depths := make(map[int]int)
	mainCats := make(map[string]int)
	sub := make(map[string]int)
	detail := make(map[string]int)
	brands := make(map[string]int)
	warehouses := make(map[string]int)
	var warehouseOrder []string

	var (
		saleSum, discountSum, rateSum    decimal.Decimal
		saleRows, discountRows, rateRows int
	)
	hundred := decimal.NewFromInt(100)

	for _, row := range rows {
		h := domaincatalog.DecomposeCategoryPath(row.Categories, domaincatalog.CategoryDelimiter)
		depths[h.Depth()]++
		countLevel(h, levelMain, mainCats)
		countLevel(h, levelSub, sub)
		countLevel(h, levelDetail, detail)

		if b := strings.TrimSpace(row.Brand); b != "" {
			brands[b]++
		}

		sale := domaincatalog.ParsePrice(row.SalePrice)
		discount := domaincatalog.ParsePrice(row.DiscountPrice)
		if sale.IsPositive() {
			saleSum = saleSum.Add(sale)
			saleRows++
		}
		if discount.IsPositive() {
			discountSum = discountSum.Add(discount)
			discountRows++
		}
		// una "rebaja" mayor al precio de lista no es descuento
		if sale.IsPositive() && discount.IsPositive() && discount.LessThan(sale) {
			rateSum = rateSum.Add(sale.Sub(discount).Div(sale).Mul(hundred))
			rateRows++
		}

		for _, s := range row.Stocks {
			if _, ok := warehouses[s.Warehouse]; !ok {
				warehouseOrder = append(warehouseOrder, s.Warehouse)
			}
			warehouses[s.Warehouse] += domaincatalog.ParseStock(s.Raw)
		}
	}

	report := &dto.CatalogReport{
		TotalRows:         len(rows),
		DepthDistribution: depthDistribution(depths),
		MainCategories:    topCounts(mainCats, topN),
		SubCategories:     topCounts(sub, topN),
		DetailCategories:  topCounts(detail, topN),
		Brands:            topCounts(brands, topN),
		Prices: dto.PriceStats{
			PricedRows:       saleRows,
			DiscountedRows:   discountRows,
			AvgSalePrice:     average(saleSum, saleRows),
			AvgDiscountPrice: average(discountSum, discountRows),
			AvgDiscountRate:  average(rateSum, rateRows),
		},
		WarehouseStock: make([]dto.NameCount, 0, len(warehouseOrder)),
	}
	for _, w := range warehouseOrder {
		report.WarehouseStock = append(report.WarehouseStock, dto.NameCount{Name: w, Count: warehouses[w]})
	}
	return report
}

func countLevel(h entity.CategoryHierarchy, n int, counts map[string]int) {
	level, ok := h.Level(n)
	if !ok {
		return
	}
	if level = strings.TrimSpace(level); level != "" {
		counts[level]++
	}
}

// topCounts ordena por cantidad desc y nombre asc; n <= 0 devuelve todo.
func topCounts(counts map[string]int, n int) []dto.NameCount {
	out := make([]dto.NameCount, 0, len(counts))
	for name, c := range counts {
		out = append(out, dto.NameCount{Name: name, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func depthDistribution(depths map[int]int) []dto.DepthCount {
	out := make([]dto.DepthCount, 0, len(depths))
	for d, rows := range depths {
		out = append(out, dto.DepthCount{Depth: d, Rows: rows})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

func average(sum decimal.Decimal, n int) string {
	if n == 0 {
		return decimal.Zero.StringFixed(2)
	}
	return sum.Div(decimal.NewFromInt(int64(n))).StringFixed(2)
}
