package catalog

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// tagRe strip permisivo: cualquier "<...>" incluyendo atributos y saltos de línea.
var tagRe = regexp.MustCompile(`<[^>]*>`)

// maxSanitizePasses tope de pasadas para HTML codificado varias veces (&amp;lt;b&amp;gt;).
const maxSanitizePasses = 16

// SanitizeHTML quita etiquetas, decodifica entidades, normaliza a NFC y colapsa espacios.
// Repite el paso hasta que el texto no cambia, así SanitizeHTML(SanitizeHTML(x)) == SanitizeHTML(x)
// incluso cuando la entrada trae etiquetas escapadas como "&lt;p&gt;".
func SanitizeHTML(raw string) string {
	s := raw
	for i := 0; i < maxSanitizePasses; i++ {
		next := sanitizePass(s)
		if next == s {
			return next
		}
		s = next
	}
	return s
}

func sanitizePass(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
