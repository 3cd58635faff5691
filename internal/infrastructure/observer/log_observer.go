// Package observer publica el progreso de las importaciones en el log estructurado.
package observer

import (
	appcatalog "github.com/jhoicas/catalog-import/internal/application/catalog"
	"github.com/jhoicas/catalog-import/internal/application/dto"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
	"github.com/jhoicas/catalog-import/pkg/logger"
)

var _ appcatalog.ImportObserver = (*LogObserver)(nil)

// LogObserver registra cada etapa. Los primeros sampleSize productos aceptados
// se loguean en info; los descartes van en debug.
type LogObserver struct {
	log        *logger.Logger
	sampleSize int
}

// NewLogObserver construye el observer. log nil descarta todo.
func NewLogObserver(log *logger.Logger, sampleSize int) *LogObserver {
	if log == nil {
		log = logger.Nop()
	}
	return &LogObserver{log: log.Component("import"), sampleSize: sampleSize}
}

func (o *LogObserver) Fetched(source string, size int) {
	o.log.Info().Str("source", source).Int("bytes", size).Msg("catálogo descargado")
}

func (o *LogObserver) Parsed(rows int) {
	o.log.Info().Int("rows", rows).Msg("CSV parseado")
}

func (o *LogObserver) RowAccepted(item entity.CatalogItem, accepted int) {
	if accepted > o.sampleSize {
		return
	}
	o.log.Info().
		Int("n", accepted).
		Str("name", item.Name).
		Str("price", item.Price.String()).
		Int("stock", item.StockQuantity).
		Str("category", item.Category).
		Msg("producto de muestra")
}

func (o *LogObserver) RowSkipped(row entity.RawProductRow, reason appcatalog.SkipReason) {
	o.log.Debug().
		Int("line", row.Line).
		Str("name", row.Name).
		Str("reason", string(reason)).
		Msg("fila descartada")
}

func (o *LogObserver) Written(sink string, count int) {
	o.log.Info().Str("sink", sink).Int("count", count).Msg("destino escrito")
}

func (o *LogObserver) Completed(result *dto.ImportResult) {
	ev := o.log.Info().
		Int("processed", result.Processed).
		Int("accepted", result.Accepted).
		Int("emitted", result.Emitted).
		Strs("outputs", result.Outputs)
	for reason, n := range result.Skipped {
		ev = ev.Int("skipped_"+reason, n)
	}
	ev.Msg("importación finalizada")
}
