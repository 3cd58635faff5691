package catalog

import (
	"context"

	"github.com/jhoicas/catalog-import/internal/application/dto"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

// CatalogSource obtiene el export crudo (HTTP o archivo local) ya decodificado a UTF-8.
type CatalogSource interface {
	Fetch(ctx context.Context) (string, error)
	Describe() string
}

// RowParser convierte el texto delimitado en filas tipadas, en el orden del archivo.
type RowParser interface {
	Parse(text string) ([]entity.RawProductRow, error)
}

// CatalogSink recibe la lista final (acotada y ordenada) de productos.
type CatalogSink interface {
	Name() string
	Write(ctx context.Context, items []entity.CatalogItem) error
}

// ImportObserver recibe el progreso de una corrida. Es solo informativo: no puede abortarla.
type ImportObserver interface {
	Fetched(source string, size int)
	Parsed(rows int)
	RowAccepted(item entity.CatalogItem, accepted int)
	RowSkipped(row entity.RawProductRow, reason SkipReason)
	Written(sink string, count int)
	Completed(result *dto.ImportResult)
}

// NopObserver observer que no hace nada.
type NopObserver struct{}

func (NopObserver) Fetched(string, int) {}
func (NopObserver) Parsed(int) {}
func (NopObserver) RowAccepted(entity.CatalogItem, int) {}
func (NopObserver) RowSkipped(entity.RawProductRow, SkipReason) {}
func (NopObserver) Written(string, int) {}
func (NopObserver) Completed(*dto.ImportResult) {}
