package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"

	appcatalog "github.com/jhoicas/catalog-import/internal/application/catalog"
	"github.com/jhoicas/catalog-import/internal/domain/entity"
)

var _ appcatalog.CatalogSink = (*CatalogRepo)(nil)

//go:embed migrations/001_catalog_products.sql
var catalogSchema string

const insertCatalogProduct = `
	INSERT INTO catalog_products (id, position, name, description, price, stock_quantity, category, image_url, sku, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// CatalogRepo destino PostgreSQL: cada importación reemplaza la tabla catalog_products
// dentro de una transacción (si falla, queda el catálogo anterior).
type CatalogRepo struct {
	db TxBeginner
}

// NewCatalogRepository construye el adaptador. Pasar el pool.
func NewCatalogRepository(db TxBeginner) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// Name identifica el destino en logs y en ImportResult.Outputs.
func (r *CatalogRepo) Name() string { return "postgres:catalog_products" }

// EnsureSchema crea la tabla si no existe.
func (r *CatalogRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, catalogSchema); err != nil {
		return fmt.Errorf("crear esquema catalog_products: %w", err)
	}
	return nil
}

// Write borra el catálogo anterior e inserta los productos en orden.
func (r *CatalogRepo) Write(ctx context.Context, items []entity.CatalogItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM catalog_products`); err != nil {
		return fmt.Errorf("limpiar catalog_products: %w", err)
	}

	batch := &pgx.Batch{}
	for i, it := range items {
		batch.Queue(insertCatalogProduct,
			it.ID, i+1, it.Name, it.Description, it.Price, it.StockQuantity,
			it.Category, it.ImageURL, it.SKU, it.IsActive,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for i := range items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("insert producto %d (%s): %w", i+1, items[i].SKU, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("cerrar batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List devuelve los productos de la última importación en su orden original.
func (r *CatalogRepo) List(ctx context.Context, limit, offset int) ([]entity.CatalogItem, error) {
	query := `
		SELECT id, name, description, price, stock_quantity, category, image_url, sku, is_active
		FROM catalog_products ORDER BY position LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list catalog_products: %w", err)
	}
	defer rows.Close()

	var list []entity.CatalogItem
	for rows.Next() {
		var it entity.CatalogItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Description, &it.Price, &it.StockQuantity,
			&it.Category, &it.ImageURL, &it.SKU, &it.IsActive,
		); err != nil {
			return nil, fmt.Errorf("scan catalog_product: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// Count cantidad de productos persistidos.
func (r *CatalogRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM catalog_products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count catalog_products: %w", err)
	}
	return n, nil
}
