// Package pdf genera la lista de precios imprimible del catálogo importado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fuente    │  Fecha + cantidad de productos  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  por categoría:                                              │
//	│    CATEGORÍA                                                 │
//	│    TABLA: SKU | Producto | Stok | Fiyat                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR a la fuente + leyenda                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appcatalog "github.com/jhoicas/catalog-import/internal/application/catalog"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

var _ appcatalog.CatalogSink = (*PriceList)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// PriceList destino PDF: lista de precios agrupada por categoría.
type PriceList struct {
	path   string
	title  string
	source string
	now    func() time.Time
}

// NewPriceList construye el generador. source se imprime en el encabezado y
// en el QR del pie; puede ir vacío.
func NewPriceList(path, title, source string) *PriceList {
	if title == "" {
		title = "Lista de precios"
	}
	return &PriceList{path: path, title: title, source: source, now: time.Now}
}

// Name identifica el destino en logs y en ImportResult.Outputs.
func (g *PriceList) Name() string { return "pdf:" + g.path }

// Write genera el PDF y lo guarda en disco.
func (g *PriceList) Write(ctx context.Context, items []entity.CatalogItem) error {
	b, err := g.Generate(ctx, items)
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.path, b, 0o644); err != nil {
		return fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	return nil
}

// Generate genera el PDF y devuelve sus bytes.
func (g *PriceList) Generate(ctx context.Context, items []entity.CatalogItem) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(len(items)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, group := range groupByCategory(items) {
		m.AddRows(categoryRow(group.name))
		m.AddRows(tableHeaderRow())
		m.AddRows(tableDetailRows(group.items)...)
		m.AddRows(row.New(3))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *PriceList) headerRow(count int) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Fuente: "+nonEmpty(g.source, "—"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(strconv.Itoa(count)+" productos", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9,
			}),
		),
	)
}

func categoryRow(name string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(strings.ToUpper(name), props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary,
			Top: 1.5, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		h("SKU", 2, align.Left),
		h("Producto", 6, align.Left),
		h("Stok", 2, align.Center),
		h("Fiyat", 2, align.Right),
	)
}

// tableDetailRows: una fila por producto.
func tableDetailRows(items []entity.CatalogItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(it.SKU, props.Text{Size: 7.5, Top: 1, Left: 1})),
			col.New(6).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.Itoa(it.StockQuantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(it.Price)+" TL", props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func (g *PriceList) footerRows() []core.Row {
	legend := "Precios vigentes al momento de la importación. Sujetos a cambios sin previo aviso."
	if g.source == "" || !strings.HasPrefix(g.source, "http") {
		return []core.Row{row.New(10).Add(col.New(12).Add(
			text.New(legend, props.Text{Size: 7, Color: colorGray, Top: 2}),
		))}
	}
	return []core.Row{row.New(30).Add(
		col.New(3).Add(code.NewQr(g.source, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Escanea el código QR para descargar el catálogo original.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New(legend, props.Text{Size: 7, Top: 14, Left: 3, Color: colorGray}),
		),
	)}
}

// ── helpers ───────────────────────────────────────────────────────────────────

type categoryGroup struct {
	name  string
	items []entity.CatalogItem
}

// groupByCategory agrupa conservando el orden de primera aparición.
func groupByCategory(items []entity.CatalogItem) []categoryGroup {
	index := make(map[string]int)
	var groups []categoryGroup
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(groups)
			index[it.Category] = i
			groups = append(groups, categoryGroup{name: it.Category})
		}
		groups[i].items = append(groups[i].items, it)
	}
	return groups
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con punto de miles y coma decimal.
// Ej: 1250.5 → "1.250,50", 89.9 → "89,90"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}
