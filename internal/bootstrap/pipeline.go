// Package bootstrap arma el pipeline de importación a partir de la configuración.
// Lo comparten cmd/importer y cmd/api.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appcatalog "github.com/jhoicas/catalog-import/internal/application/catalog"
	"github.com/jhoicas/catalog-import/internal/infrastructure/csvparse"
	"github.com/jhoicas/catalog-import/internal/infrastructure/jsonfile"
	"github.com/jhoicas/catalog-import/internal/infrastructure/observer"
	"github.com/jhoicas/catalog-import/internal/infrastructure/pdf"
	"github.com/jhoicas/catalog-import/internal/infrastructure/postgres"
	"github.com/jhoicas/catalog-import/internal/infrastructure/source"
	"github.com/jhoicas/catalog-import/internal/infrastructure/sqlite"
	"github.com/jhoicas/catalog-import/internal/infrastructure/xmlfeed"
	"github.com/jhoicas/catalog-import/pkg/config"
	"github.com/jhoicas/catalog-import/pkg/logger"
)

// reportTopN entradas por distribución en el reporte.
const reportTopN = 10

// Pipeline componentes listos para usar.
type Pipeline struct {
	Import      *appcatalog.ImportUseCase
	Report      *appcatalog.ReportUseCase
	CatalogRepo *postgres.CatalogRepo // nil si Postgres está deshabilitado
	Sinks       []appcatalog.CatalogSink
	pool        *pgxpool.Pool
}

// Close libera la conexión a Postgres si se abrió.
func (p *Pipeline) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// NewSource elige la fuente: archivo local si CATALOG_SOURCE_PATH está definido, si no HTTP.
func NewSource(cfg config.CatalogConfig) appcatalog.CatalogSource {
	if cfg.SourcePath != "" {
		return source.NewFileSource(cfg.SourcePath, cfg.SourceCharset)
	}
	return source.NewHTTPSource(cfg.SourceURL, cfg.FetchTimeout)
}

// NewPipeline construye fuente, parser, transformer, destinos y casos de uso.
// Con Postgres habilitado abre el pool y crea la tabla si no existe.
func NewPipeline(ctx context.Context, cfg *config.Config, log *logger.Logger, writeEmpty bool) (*Pipeline, error) {
	src := NewSource(cfg.Catalog)
	parser := csvparse.NewParser(cfg.Catalog.StockColumns)
	transformer := appcatalog.NewTransformer(appcatalog.TransformerConfig{
		RootLabel:       cfg.Catalog.RootLabel,
		DefaultCategory: cfg.Catalog.DefaultCategory,
		DescriptionMax:  cfg.Catalog.DescriptionMax,
	}, nil)

	p := &Pipeline{}
	p.Sinks = append(p.Sinks, jsonfile.NewSink(cfg.Output.JSONPath))
	if cfg.Output.SQLitePath != "" {
		p.Sinks = append(p.Sinks, sqlite.NewSink(cfg.Output.SQLitePath))
	}
	if cfg.Output.XMLPath != "" {
		p.Sinks = append(p.Sinks, xmlfeed.NewSink(cfg.Output.XMLPath, ""))
	}
	if cfg.Output.PDFPath != "" {
		p.Sinks = append(p.Sinks, pdf.NewPriceList(cfg.Output.PDFPath, "", src.Describe()))
	}
	if cfg.DB.Enabled {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		repo := postgres.NewCatalogRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		p.pool = pool
		p.CatalogRepo = repo
		p.Sinks = append(p.Sinks, repo)
	}

	for _, s := range p.Sinks {
		log.Debug().Str("sink", s.Name()).Msg("destino habilitado")
	}

	p.Import = appcatalog.NewImportUseCase(
		src, parser, transformer, p.Sinks,
		observer.NewLogObserver(log, cfg.Catalog.SampleSize),
		appcatalog.ImportConfig{
			MaxItems:   cfg.Catalog.MaxItems,
			SampleSize: cfg.Catalog.SampleSize,
			WriteEmpty: writeEmpty,
		},
	)
	p.Report = appcatalog.NewReportUseCase(src, parser, reportTopN)
	return p, nil
}
