package catalog

import (
	"strings"

	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

// CategoryDelimiter separador de niveles en la columna "Kategoriler".
const CategoryDelimiter = '>'

// CategorySeparator separador legible usado en la categoría normalizada.
const CategorySeparator = " > "

// DecomposeCategoryPath divide la ruta en niveles; cada segmento se conserva tal cual.
// Una ruta vacía no tiene niveles.
func DecomposeCategoryPath(raw string, delim rune) entity.CategoryHierarchy {
	h := entity.CategoryHierarchy{Path: raw}
	if raw == "" {
		return h
	}
	h.Levels = strings.Split(raw, string(delim))
	return h
}

// NormalizeCategory quita el nivel raíz (ej. "Tüm Ürünler"), recorta espacios de cada
// segmento, descarta segmentos vacíos y une con " > ". Sin niveles → fallback.
func NormalizeCategory(raw, rootLabel, fallback string) string {
	h := DecomposeCategoryPath(raw, CategoryDelimiter)
	parts := make([]string, 0, h.Depth())
	for i, level := range h.Levels {
		level = strings.TrimSpace(level)
		if i == 0 && rootLabel != "" && level == rootLabel {
			continue
		}
		if level == "" {
			continue
		}
		parts = append(parts, level)
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, CategorySeparator)
}
