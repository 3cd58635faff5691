package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-import/internal/application/dto"
)

func TestWriteTable_AlineaPorAnchoVisible(t *testing.T) {
	var buf bytes.Buffer
	writeTable(&buf, []string{"Ürün", "Fiyat"}, [][]string{
		{"Şampuan", "80"},
		{"口紅", "120.5"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Ürün     Fiyat", lines[0])
	assert.Equal(t, "-------  -----", lines[1])
	assert.Equal(t, "Şampuan  80", lines[2])
	assert.Equal(t, "口紅     120.5", lines[3])
	assert.Equal(t, runewidth.StringWidth(lines[2][:strings.Index(lines[2], "80")]), runewidth.StringWidth(lines[3][:strings.Index(lines[3], "120.5")]))
}

func TestWriteTable_RecortaCeldasLargas(t *testing.T) {
	var buf bytes.Buffer
	writeTable(&buf, []string{"Ürün"}, [][]string{{strings.Repeat("a", 100)}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, maxCellWidth, runewidth.StringWidth(lines[2]))
	assert.True(t, strings.HasSuffix(lines[2], "…"))
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, &dto.ImportResult{
		Processed: 3, Accepted: 1, Emitted: 1,
		Outputs: []string{"json:/tmp/p.json"},
		Sample:  []dto.CatalogItemSample{{Name: "Ruj", Price: "89.9", Stock: 2}},
	})
	out := buf.String()
	assert.Contains(t, out, "Procesadas: 3  Aceptadas: 1  Exportadas: 1")
	assert.Contains(t, out, "  -> json:/tmp/p.json")
	assert.Contains(t, out, "1  Ruj   89.9   2")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeYAML(&buf, &dto.CatalogReport{
		TotalRows:      2,
		MainCategories: []dto.NameCount{{Name: "Makyaj", Count: 2}},
	}))
	out := buf.String()
	assert.Contains(t, out, "total_rows: 2")
	assert.Contains(t, out, "main_categories:\n  - name: Makyaj\n    count: 2")
}
