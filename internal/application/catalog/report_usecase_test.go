package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/jhoicas/catalog-import/internal/application/catalog"
	"github.com/jhoicas/catalog-import/internal/application/dto"
	"github.com/jhoicas/catalog-import/internal/domain"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
	"github.com/jhoicas/catalog-import/internal/infrastructure/csvparse"
)

func TestBuildReport(t *testing.T) {
	rows := []entity.RawProductRow{
		{
			Categories: "Tüm Ürünler>Saç Bakımı>Şampuan>Kuru Saç", Brand: "A",
			SalePrice: "100", DiscountPrice: "80",
			Stocks: []entity.WarehouseStock{{Warehouse: "Ana Depo", Raw: "3"}, {Warehouse: "Mağaza", Raw: "1"}},
		},
		{
			Categories: "Tüm Ürünler>Saç Bakımı>Şampuan", Brand: "B",
			SalePrice: "200",
			Stocks:    []entity.WarehouseStock{{Warehouse: "Ana Depo", Raw: "2"}, {Warehouse: "Mağaza", Raw: "x"}},
		},
		{
			Categories: "Tüm Ürünler>Makyaj> ", Brand: "A",
			Stocks: []entity.WarehouseStock{{Warehouse: "Ana Depo", Raw: "-1"}},
		},
		{Categories: ""},
	}

	r := appcatalog.BuildReport(rows, 0)

	assert.Equal(t, 4, r.TotalRows)
	assert.Equal(t, []dto.DepthCount{{Depth: 0, Rows: 1}, {Depth: 3, Rows: 2}, {Depth: 4, Rows: 1}}, r.DepthDistribution)
	assert.Equal(t, []dto.NameCount{{Name: "Saç Bakımı", Count: 2}, {Name: "Makyaj", Count: 1}}, r.MainCategories)
	assert.Equal(t, []dto.NameCount{{Name: "Şampuan", Count: 2}}, r.SubCategories, "un nivel vacío no cuenta")
	assert.Equal(t, []dto.NameCount{{Name: "Kuru Saç", Count: 1}}, r.DetailCategories)
	assert.Equal(t, []dto.NameCount{{Name: "A", Count: 2}, {Name: "B", Count: 1}}, r.Brands)

	assert.Equal(t, 2, r.Prices.PricedRows)
	assert.Equal(t, 1, r.Prices.DiscountedRows)
	assert.Equal(t, "150.00", r.Prices.AvgSalePrice)
	assert.Equal(t, "80.00", r.Prices.AvgDiscountPrice)
	assert.Equal(t, "20.00", r.Prices.AvgDiscountRate)

	assert.Equal(t, []dto.NameCount{{Name: "Ana Depo", Count: 5}, {Name: "Mağaza", Count: 1}}, r.WarehouseStock)
}

func TestBuildReport_TasaIgnoraRecargos(t *testing.T) {
	rows := []entity.RawProductRow{
		{SalePrice: "100", DiscountPrice: "80"},
		{SalePrice: "100", DiscountPrice: "150"},
		{SalePrice: "100", DiscountPrice: "100"},
	}
	r := appcatalog.BuildReport(rows, 0)

	assert.Equal(t, "20.00", r.Prices.AvgDiscountRate, "solo cuentan filas con descuento menor al precio de lista")
	assert.Equal(t, 3, r.Prices.DiscountedRows)
	assert.Equal(t, "110.00", r.Prices.AvgDiscountPrice)
}

func TestBuildReport_TopN(t *testing.T) {
	rows := []entity.RawProductRow{
		{Brand: "C"}, {Brand: "B"}, {Brand: "B"}, {Brand: "A"}, {Brand: "A"},
	}
	r := appcatalog.BuildReport(rows, 2)
	assert.Equal(t, []dto.NameCount{{Name: "A", Count: 2}, {Name: "B", Count: 2}}, r.Brands, "empate se ordena por nombre")
	assert.Equal(t, "0.00", r.Prices.AvgSalePrice)
}

func TestReportUseCase_Run(t *testing.T) {
	src := &fakeSource{text: csvHeader + "Ruj,,10,,1,Tüm Ürünler>Makyaj,,R-1,Flormar,false,true\n"}
	r, err := appcatalog.NewReportUseCase(src, csvparse.NewParser(nil), 10).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, r.TotalRows, "el reporte no filtra filas")
	assert.Equal(t, []dto.NameCount{{Name: "Makyaj", Count: 1}}, r.MainCategories)

	_, err = appcatalog.NewReportUseCase(&fakeSource{err: errors.New("timeout")}, csvparse.NewParser(nil), 10).Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrTransport)
}
