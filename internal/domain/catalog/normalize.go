// Package catalog contiene las reglas puras de normalización de campos del export de productos.
// Todas las funciones son totales: ante un valor inutilizable devuelven el valor por defecto
// documentado (0, "") en lugar de un error.
package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var priceStripRe = regexp.MustCompile(`[^0-9.]`)

// ParsePrice quita todo lo que no sea dígito o punto y parsea el resto.
// Ej: "₺1250.50" → 1250.5, "1.250,50 TL" → 1.2505 (la coma se descarta), "abc" → 0.
func ParsePrice(raw string) decimal.Decimal {
	cleaned := priceStripRe.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseStock parsea una cantidad entera. Vacío, inválido o negativo → 0.
func ParseStock(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// AggregateStock suma el stock de todas las bodegas.
func AggregateStock(values []string) int {
	total := 0
	for _, v := range values {
		total += ParseStock(v)
	}
	return total
}

// FinalPrice aplica la preferencia del precio con descuento sobre el precio de lista.
func FinalPrice(sale, discount decimal.Decimal) decimal.Decimal {
	if discount.GreaterThan(decimal.Zero) {
		return discount
	}
	return sale
}

// ParseFlag interpreta las columnas booleanas del export ("true"/"false", sin importar mayúsculas).
func ParseFlag(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "true")
}

// TruncateRunes corta s a max runas sin partir caracteres multibyte. max <= 0 no corta.
func TruncateRunes(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	i := 0
	for pos := range s {
		if i == max {
			return s[:pos]
		}
		i++
	}
	return s
}
