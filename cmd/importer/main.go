// Command importer ejecuta una importación del catálogo y termina.
//
//	importer           importa y escribe los destinos configurados
//	importer -report   imprime el reporte de categorías en YAML (no escribe destinos)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/catalog-import/internal/application/dto"
	"github.com/jhoicas/catalog-import/internal/bootstrap"
	"github.com/jhoicas/catalog-import/pkg/config"
	"github.com/jhoicas/catalog-import/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	reportOnly := flag.Bool("report", false, "imprimir el reporte de categorías en YAML")
	tokenRole := flag.String("token", "", "emitir un token JWT para el rol indicado (admin, editor)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return 1
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   os.Stderr,
	})

	if *tokenRole != "" {
		tok, err := mintToken(cfg.JWT, *tokenRole)
		if err != nil {
			log.Error().Err(err).Msg("emitir token")
			return 1
		}
		fmt.Fprintln(os.Stdout, tok)
		return 0
	}

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("configuración inválida")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// El CLI siempre deja un archivo de salida, aunque sea una lista vacía.
	p, err := bootstrap.NewPipeline(ctx, cfg, log, true)
	if err != nil {
		log.Error().Err(err).Msg("inicializar pipeline")
		return 1
	}
	defer p.Close()

	if *reportOnly {
		report, err := p.Report.Run(ctx)
		if err != nil {
			log.Error().Err(err).Msg("reporte del catálogo")
			return 1
		}
		if err := writeYAML(os.Stdout, report); err != nil {
			log.Error().Err(err).Msg("escribir reporte")
			return 1
		}
		return 0
	}

	log.Info().Str("env", cfg.App.Env).Str("app", cfg.App.Name).Msg("iniciando importación")
	result, err := p.Import.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("importación fallida")
		return 1
	}

	printSummary(os.Stdout, result)
	return 0
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func printSummary(w io.Writer, result *dto.ImportResult) {
	fmt.Fprintf(w, "Procesadas: %d  Aceptadas: %d  Exportadas: %d\n", result.Processed, result.Accepted, result.Emitted)
	for _, out := range result.Outputs {
		fmt.Fprintf(w, "  -> %s\n", out)
	}
	if len(result.Sample) == 0 {
		return
	}
	fmt.Fprintln(w)
	rows := make([][]string, 0, len(result.Sample))
	for i, s := range result.Sample {
		rows = append(rows, []string{strconv.Itoa(i + 1), s.Name, s.Price.String(), strconv.Itoa(s.Stock)})
	}
	writeTable(w, []string{"#", "Ürün", "Fiyat", "Stok"}, rows)
}
