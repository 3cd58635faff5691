package source

import (
	"context"
	"fmt"
	"os"
)

// FileSource lee el export desde un archivo local.
type FileSource struct {
	path    string
	charset string
}

// NewFileSource construye la fuente. charset vacío = UTF-8.
func NewFileSource(path, charset string) *FileSource {
	return &FileSource{path: path, charset: charset}
}

// Describe identifica la fuente en logs y errores.
func (s *FileSource) Describe() string { return s.path }

// Fetch lee y decodifica el archivo completo.
func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("leer archivo: %w", err)
	}
	return DecodeText(b, s.charset)
}
