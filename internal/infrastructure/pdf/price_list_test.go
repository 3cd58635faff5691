package pdf_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-import/internal/domain/entity"
	"github.com/jhoicas/catalog-import/internal/infrastructure/pdf"
)

func TestPriceList_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lista.pdf")
	gen := pdf.NewPriceList(path, "", "https://example.com/catalog.csv")
	assert.Equal(t, "pdf:"+path, gen.Name())

	items := []entity.CatalogItem{
		{ID: "1", Name: "Sampuan", Price: decimal.RequireFromString("89.9"), StockQuantity: 4, Category: "Sac Bakimi", SKU: "S-1", IsActive: true},
		{ID: "2", Name: "Ruj", Price: decimal.NewFromInt(1250), StockQuantity: 1, Category: "Makyaj", SKU: "R-1", IsActive: true},
	}
	require.NoError(t, gen.Write(context.Background(), items))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "el archivo debe ser un PDF")
}

func TestPriceList_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pdf.NewPriceList("unused.pdf", "x", "").Generate(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
