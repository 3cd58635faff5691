package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/catalog-import/internal/application/dto"
	"github.com/jhoicas/catalog-import/internal/domain"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

// ImportConfig parámetros de una corrida.
type ImportConfig struct {
	MaxItems   int  // límite de productos emitidos; <= 0 sin límite
	SampleSize int  // productos incluidos en ImportResult.Sample
	WriteEmpty bool // si es false y no hay productos aceptados no se escribe ningún destino
}

// ImportUseCase orquesta: fetch → parse → transform/filter → límite → destinos.
type ImportUseCase struct {
	source      CatalogSource
	parser      RowParser
	transformer *Transformer
	sinks       []CatalogSink
	observer    ImportObserver
	cfg         ImportConfig

	mu sync.Mutex // una importación a la vez (el API puede recibir llamadas concurrentes)
}

// NewImportUseCase construye el caso de uso. observer nil usa NopObserver.
func NewImportUseCase(
	source CatalogSource,
	parser RowParser,
	transformer *Transformer,
	sinks []CatalogSink,
	observer ImportObserver,
	cfg ImportConfig,
) *ImportUseCase {
	if observer == nil {
		observer = NopObserver{}
	}
	return &ImportUseCase{
		source:      source,
		parser:      parser,
		transformer: transformer,
		sinks:       sinks,
		observer:    observer,
		cfg:         cfg,
	}
}

// Run ejecuta una importación completa. Si la fuente falla no se procesa nada (ErrTransport);
// si un destino falla la corrida falla (ErrOutputWrite). Los problemas por fila nunca abortan.
func (uc *ImportUseCase) Run(ctx context.Context) (*dto.ImportResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	text, err := uc.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrTransport, uc.source.Describe(), err)
	}
	uc.observer.Fetched(uc.source.Describe(), len(text))

	rows, err := uc.parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsear CSV: %w", err)
	}
	uc.observer.Parsed(len(rows))

	accepted, skipped := uc.filter(rows)
	emitted := Bound(accepted, uc.cfg.MaxItems)

	result := &dto.ImportResult{
		Processed: len(rows),
		Accepted:  len(accepted),
		Emitted:   len(emitted),
		Skipped:   skipped,
		Outputs:   []string{},
		Sample:    sample(emitted, uc.cfg.SampleSize),
		Items:     ToCatalogItemResponses(emitted),
	}

	if len(accepted) == 0 && !uc.cfg.WriteEmpty {
		uc.observer.Completed(result)
		return result, nil
	}

	for _, sink := range uc.sinks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := sink.Write(ctx, emitted); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrOutputWrite, sink.Name(), err)
		}
		result.Outputs = append(result.Outputs, sink.Name())
		uc.observer.Written(sink.Name(), len(emitted))
	}

	uc.observer.Completed(result)
	return result, nil
}

// filter aplica el Transformer a cada fila en orden y cuenta los descartes por motivo.
func (uc *ImportUseCase) filter(rows []entity.RawProductRow) ([]entity.CatalogItem, map[string]int) {
	items := make([]entity.CatalogItem, 0, len(rows))
	skipped := make(map[string]int)
	for _, row := range rows {
		item, reason := uc.transformer.Transform(row)
		if item == nil {
			skipped[string(reason)]++
			uc.observer.RowSkipped(row, reason)
			continue
		}
		items = append(items, *item)
		uc.observer.RowAccepted(*item, len(items))
	}
	return items, skipped
}

// Bound devuelve los primeros max productos conservando el orden. max <= 0 no recorta.
func Bound(items []entity.CatalogItem, max int) []entity.CatalogItem {
	if max <= 0 || len(items) <= max {
		return items
	}
	return items[:max]
}

func sample(items []entity.CatalogItem, n int) []dto.CatalogItemSample {
	if n < 0 {
		n = 0
	}
	out := make([]dto.CatalogItemSample, 0, n)
	for i := 0; i < len(items) && i < n; i++ {
		out = append(out, toSample(items[i]))
	}
	return out
}
