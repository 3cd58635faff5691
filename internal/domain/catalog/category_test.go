package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-import/internal/domain/catalog"
)

func TestDecomposeCategoryPath_Niveles(t *testing.T) {
	h := catalog.DecomposeCategoryPath("Tüm Ürünler>Saç Bakımı>Şampuan>Kuru Saç", '>')

	require.Equal(t, 4, h.Depth())
	assert.Equal(t, []string{"Tüm Ürünler", "Saç Bakımı", "Şampuan", "Kuru Saç"}, h.Levels)

	lvl, ok := h.Level(2)
	assert.True(t, ok)
	assert.Equal(t, "Saç Bakımı", lvl)

	lvl, ok = h.Level(5)
	assert.False(t, ok, "el nivel 5 no existe: debe ser ausente")
	assert.Equal(t, "", lvl)

	_, ok = h.Level(0)
	assert.False(t, ok)
}

func TestDecomposeCategoryPath_SegmentosSinRecortar(t *testing.T) {
	h := catalog.DecomposeCategoryPath("Tüm Ürünler > Makyaj", '>')
	assert.Equal(t, []string{"Tüm Ürünler ", " Makyaj"}, h.Levels)
}

func TestDecomposeCategoryPath_VacioSinNiveles(t *testing.T) {
	h := catalog.DecomposeCategoryPath("", '>')
	assert.Equal(t, 0, h.Depth())
	_, ok := h.Level(1)
	assert.False(t, ok)
}

func TestNormalizeCategory(t *testing.T) {
	const root, def = "Tüm Ürünler", "Genel"
	cases := []struct {
		raw  string
		want string
	}{
		{"Tüm Ürünler>Saç Bakımı>Şampuan", "Saç Bakımı > Şampuan"},
		{"Tüm Ürünler > Makyaj > Ruj", "Makyaj > Ruj"},
		{"Makyaj>Ruj", "Makyaj > Ruj"},
		{"Tüm Ürünler", def},
		{"Tüm Ürünler>", def},
		{"", def},
		{"  ", def},
		{"Cilt Bakımı>>Serum", "Cilt Bakımı > Serum"},
		// la raíz solo se quita como primer nivel
		{"Makyaj>Tüm Ürünler", "Makyaj > Tüm Ürünler"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, catalog.NormalizeCategory(tc.raw, root, def), "raw=%q", tc.raw)
	}
}

// Una ruta que solo contiene la raíz cae en la categoría por defecto, no en el texto de la raíz.
func TestNormalizeCategory_SoloRaizUsaDefecto(t *testing.T) {
	assert.Equal(t, "Genel", catalog.NormalizeCategory("Tüm Ürünler", "Tüm Ürünler", "Genel"))
	assert.Equal(t, "Genel", catalog.NormalizeCategory(" Tüm Ürünler > ", "Tüm Ürünler", "Genel"))
}
