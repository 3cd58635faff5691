// Package jsonfile escribe el catálogo normalizado como un arreglo JSON indentado.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	appcatalog "github.com/jhoicas/catalog-import/internal/application/catalog"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

var _ appcatalog.CatalogSink = (*Sink)(nil)

// Sink destino archivo JSON (UTF-8, indentado, sin escapar caracteres no ASCII ni HTML).
type Sink struct {
	path string
}

// NewSink construye el destino.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// Name identifica el destino en logs y en ImportResult.Outputs.
func (s *Sink) Name() string { return "json:" + s.path }

// Write serializa los productos y reemplaza el archivo de forma atómica (temp + rename).
func (s *Sink) Write(ctx context.Context, items []entity.CatalogItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Marshal(items)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("renombrar a %s: %w", s.path, err)
	}
	return nil
}

// Marshal produce el documento: arreglo JSON con 2 espacios de indentación.
// Una lista vacía se escribe como "[]".
func Marshal(items []entity.CatalogItem) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(appcatalog.ToCatalogItemResponses(items)); err != nil {
		return nil, fmt.Errorf("serializar catálogo: %w", err)
	}
	return buf.Bytes(), nil
}
