package catalog_test

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

type fakeSource struct {
	text  string
	err   error
	calls int
}

func (s *fakeSource) Fetch(context.Context) (string, error) {
	s.calls++
	return s.text, s.err
}

func (s *fakeSource) Describe() string { return "fake://catalog.csv" }

type fakeSink struct {
	name   string
	err    error
	writes [][]entity.CatalogItem
}

func (s *fakeSink) Name() string { return s.name }

func (s *fakeSink) Write(_ context.Context, items []entity.CatalogItem) error {
	if s.err != nil {
		return s.err
	}
	s.writes = append(s.writes, items)
	return nil
}

// seqIDs generador determinístico: id-1, id-2, ...
func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func validRow(name string) entity.RawProductRow {
	return entity.RawProductRow{
		Name:       name,
		SalePrice:  "100",
		Stocks:     []entity.WarehouseStock{{Warehouse: "Ana Depo", Raw: "5"}},
		Categories: "Tüm Ürünler>Makyaj",
		Active:     "true",
		Deleted:    "false",
		SKU:        "SKU-" + name,
	}
}
