package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/jhoicas/catalog-import/internal/application/catalog"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

func newTransformer() *appcatalog.Transformer {
	return appcatalog.NewTransformer(appcatalog.TransformerConfig{
		RootLabel:       "Tüm Ürünler",
		DefaultCategory: "Genel",
		DescriptionMax:  500,
	}, seqIDs())
}

func TestTransform_FilaValida(t *testing.T) {
	row := entity.RawProductRow{
		Name:          "  Onarıcı Şampuan ",
		Description:   "<p>Kuru&nbsp;saçlar <b>için</b></p>",
		SalePrice:     "150,00 TL",
		DiscountPrice: "120",
		Stocks: []entity.WarehouseStock{
			{Warehouse: "Ana Depo", Raw: "3"},
			{Warehouse: "Mağaza", Raw: "abc"},
			{Warehouse: "Depo 2", Raw: "2"},
		},
		Categories: "Tüm Ürünler > Saç Bakımı > Şampuan",
		ImageURL:   " https://cdn/x.jpg ",
		SKU:        "SMP-1",
		Brand:      "Marka",
		Active:     "TRUE",
		Deleted:    "false",
	}

	item, reason := newTransformer().Transform(row)
	require.NotNil(t, item)
	assert.Equal(t, appcatalog.SkipNone, reason)
	assert.Equal(t, "id-1", item.ID)
	assert.Equal(t, "Onarıcı Şampuan", item.Name)
	assert.Equal(t, "Kuru saçlar için", item.Description)
	assert.Equal(t, "120", item.Price.String(), "el precio con descuento tiene prioridad")
	assert.Equal(t, 5, item.StockQuantity)
	assert.Equal(t, "Saç Bakımı > Şampuan", item.Category)
	assert.Equal(t, "https://cdn/x.jpg", item.ImageURL)
	assert.Equal(t, "SMP-1", item.SKU)
	assert.True(t, item.IsActive)
}

func TestTransform_SinDescuentoUsaPrecioDeVenta(t *testing.T) {
	row := validRow("Ruj")
	row.SalePrice = "89.90"
	row.DiscountPrice = "0"

	item, _ := newTransformer().Transform(row)
	require.NotNil(t, item)
	assert.Equal(t, "89.9", item.Price.String())
}

func TestTransform_Descartes(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entity.RawProductRow)
		want   appcatalog.SkipReason
	}{
		{"nombre vacío", func(r *entity.RawProductRow) { r.Name = "   " }, appcatalog.SkipMissingName},
		{"eliminado", func(r *entity.RawProductRow) { r.Deleted = " True " }, appcatalog.SkipDeleted},
		{"inactivo", func(r *entity.RawProductRow) { r.Active = "false" }, appcatalog.SkipInactive},
		{"activo vacío", func(r *entity.RawProductRow) { r.Active = "" }, appcatalog.SkipInactive},
		{"sin stock", func(r *entity.RawProductRow) { r.Stocks[0].Raw = "0" }, appcatalog.SkipOutOfStock},
		{"stock negativo", func(r *entity.RawProductRow) { r.Stocks[0].Raw = "-4" }, appcatalog.SkipOutOfStock},
		{"sin columnas de stock", func(r *entity.RawProductRow) { r.Stocks = nil }, appcatalog.SkipOutOfStock},
		{"sin precio", func(r *entity.RawProductRow) { r.SalePrice = ""; r.DiscountPrice = "" }, appcatalog.SkipNoPrice},
		{"precio ilegible", func(r *entity.RawProductRow) { r.SalePrice = "TL" }, appcatalog.SkipNoPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := validRow("X")
			tc.mutate(&row)
			item, reason := newTransformer().Transform(row)
			assert.Nil(t, item)
			assert.Equal(t, tc.want, reason)
		})
	}
}

func TestTransform_DescripcionFallbackMarcaNombre(t *testing.T) {
	row := validRow("Ruj")
	row.Brand = "Flormar"
	row.Description = "<p> </p>"

	item, _ := newTransformer().Transform(row)
	require.NotNil(t, item)
	assert.Equal(t, "Flormar Ruj", item.Description)

	row.Brand = ""
	item, _ = newTransformer().Transform(row)
	require.NotNil(t, item)
	assert.Equal(t, "Ruj", item.Description)
}

func TestTransform_DescripcionRecortada(t *testing.T) {
	row := validRow("Ruj")
	row.Description = strings.Repeat("ş", 600)

	item, _ := newTransformer().Transform(row)
	require.NotNil(t, item)
	assert.Equal(t, 500, len([]rune(item.Description)))
}

func TestTransform_CategoriaYSKUPorDefecto(t *testing.T) {
	row := validRow("Ruj")
	row.Categories = ""
	row.SKU = " "

	item, _ := newTransformer().Transform(row)
	require.NotNil(t, item)
	assert.Equal(t, "Genel", item.Category)
	assert.Equal(t, "id-1", item.SKU, "SKU generado a partir de un id")
	assert.Equal(t, "id-2", item.ID)
}
