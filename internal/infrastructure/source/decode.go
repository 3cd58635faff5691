// Package source implementa las fuentes del export crudo: HTTP y archivo local.
package source

import (
	"fmt"
	"mime"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText convierte el contenido a UTF-8 según el charset (vacío = UTF-8) y quita el BOM.
// Bytes inválidos en UTF-8 se reemplazan por U+FFFD en lugar de fallar.
func DecodeText(b []byte, charset string) (string, error) {
	var enc encoding.Encoding = unicode.UTF8
	if cs := strings.TrimSpace(charset); cs != "" {
		e, err := htmlindex.Get(cs)
		if err != nil {
			return "", fmt.Errorf("charset %q no soportado: %w", cs, err)
		}
		enc = e
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), b)
	if err != nil {
		return "", fmt.Errorf("decodificar %s: %w", charset, err)
	}
	return string(out), nil
}

// charsetFromContentType extrae el parámetro charset de un Content-Type ("text/csv; charset=windows-1254").
func charsetFromContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}
