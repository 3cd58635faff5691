// Package sqlite guarda una foto del catálogo normalizado en un archivo SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	appcatalog "github.com/jhoicas/catalog-import/internal/application/catalog"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

var _ appcatalog.CatalogSink = (*Sink)(nil)

const schema = `
CREATE TABLE catalog_products (
	position       INTEGER PRIMARY KEY,
	id             TEXT NOT NULL UNIQUE,
	name           TEXT NOT NULL,
	description    TEXT NOT NULL,
	price          TEXT NOT NULL,
	stock_quantity INTEGER NOT NULL,
	category       TEXT NOT NULL,
	image_url      TEXT NOT NULL,
	sku            TEXT NOT NULL,
	is_active      INTEGER NOT NULL
)`

// Sink destino SQLite: recrea la tabla catalog_products en cada corrida.
// price se guarda como texto decimal para no perder precisión.
type Sink struct {
	path string
}

// NewSink construye el destino.
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// Name identifica el destino en logs y en ImportResult.Outputs.
func (s *Sink) Name() string { return "sqlite:" + s.path }

// Write reemplaza el contenido de la tabla dentro de una transacción.
func (s *Sink) Write(ctx context.Context, items []entity.CatalogItem) error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("abrir sqlite: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS catalog_products`); err != nil {
		return fmt.Errorf("drop catalog_products: %w", err)
	}
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create catalog_products: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `CREATE INDEX idx_catalog_products_category ON catalog_products(category)`); err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_products (position, id, name, description, price, stock_quantity, category, image_url, sku, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, it := range items {
		if _, err := stmt.ExecContext(ctx,
			i+1, it.ID, it.Name, it.Description, it.Price.String(), it.StockQuantity,
			it.Category, it.ImageURL, it.SKU, it.IsActive,
		); err != nil {
			return fmt.Errorf("insert producto %d (%s): %w", i+1, it.SKU, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
