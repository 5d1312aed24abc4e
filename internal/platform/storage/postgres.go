package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/siamscreen/stocksync/internal/platform/models"
	"github.com/siamscreen/stocksync/internal/platform/storage/gen/postgres/public/table"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	pgmodels "github.com/siamscreen/stocksync/internal/platform/storage/gen/postgres/public/model"
)

// Postgres is storage for products and their variants.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// FindProducts returns products matching any of provided SKUs or stock
// product IDs. Empty key lists are skipped; with no keys at all no query
// is made.
func (p Postgres) FindProducts(ctx context.Context, skus, stockIDs []string) ([]models.Product, error) {
	condition := matchCondition(table.Product.Sku, table.Product.StockProductID, skus, stockIDs)
	if condition == nil {
		return nil, nil
	}

	var dbProducts []pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(condition).
		QueryContext(ctx, p.db, &dbProducts)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't query products: %w", err)
	}

	products := make([]models.Product, 0, len(dbProducts))
	for ix := range dbProducts {
		products = append(products, *fromDBProduct(&dbProducts[ix]))
	}

	return products, nil
}

// FindVariants returns variants matching any of provided SKUs or stock
// variant IDs.
func (p Postgres) FindVariants(ctx context.Context, skus, stockIDs []string) ([]models.Variant, error) {
	condition := matchCondition(table.ProductVariant.Sku, table.ProductVariant.StockVariantID, skus, stockIDs)
	if condition == nil {
		return nil, nil
	}

	var dbVariants []pgmodels.ProductVariant
	err := table.ProductVariant.SELECT(table.ProductVariant.AllColumns).
		WHERE(condition).
		QueryContext(ctx, p.db, &dbVariants)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't query variants: %w", err)
	}

	variants := make([]models.Variant, 0, len(dbVariants))
	for ix := range dbVariants {
		variants = append(variants, *fromDBVariant(&dbVariants[ix]))
	}

	return variants, nil
}

// CreateProduct inserts product and returns its new ID.
func (p Postgres) CreateProduct(ctx context.Context, product *models.Product) (int32, error) {
	columnList := table.Product.AllColumns.Except(table.Product.ID, table.Product.CreatedAt)

	dbProduct := ToDBProduct(product)
	err := table.Product.INSERT(columnList).
		MODEL(dbProduct).
		RETURNING(table.Product.ID).
		QueryContext(ctx, p.db, dbProduct)
	if err != nil {
		return 0, fmt.Errorf("can't insert product into database: %w", err)
	}

	return dbProduct.ID, nil
}

// UpdateProduct overwrites product row identified by product.ID.
func (p Postgres) UpdateProduct(ctx context.Context, product *models.Product) error {
	columnList := table.Product.AllColumns.Except(table.Product.ID, table.Product.CreatedAt)

	dbProduct := ToDBProduct(product)
	dbProduct.UpdatedAt = nowPtr()

	result, err := table.Product.UPDATE(columnList).
		MODEL(dbProduct).
		WHERE(table.Product.ID.EQ(pg.Int32(product.ID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update product: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update product: no matching row")
	}

	return nil
}

// CreateVariants inserts variants in one statement, silently skipping rows
// conflicting with already stored SKUs or stock variant IDs. It returns
// the number of actually inserted rows.
func (p Postgres) CreateVariants(ctx context.Context, variants []models.Variant) (int32, error) {
	if len(variants) == 0 {
		return 0, nil
	}

	columnList := table.ProductVariant.AllColumns.Except(table.ProductVariant.ID, table.ProductVariant.CreatedAt)

	dbVariants := make([]pgmodels.ProductVariant, 0, len(variants))
	for ix := range variants {
		dbVariants = append(dbVariants, *ToDBVariant(&variants[ix]))
	}

	result, err := table.ProductVariant.INSERT(columnList).
		MODELS(dbVariants).
		ON_CONFLICT().
		DO_NOTHING().
		ExecContext(ctx, p.db)
	if err != nil {
		return 0, fmt.Errorf("can't insert variants into database: %w", err)
	}

	created, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("can't read inserted variants number: %w", err)
	}

	return int32(created), nil
}

// CreateVariant inserts a single variant.
func (p Postgres) CreateVariant(ctx context.Context, variant *models.Variant) error {
	columnList := table.ProductVariant.AllColumns.Except(table.ProductVariant.ID, table.ProductVariant.CreatedAt)

	_, err := table.ProductVariant.INSERT(columnList).
		MODEL(ToDBVariant(variant)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't insert variant into database: %w", err)
	}

	return nil
}

// UpdateVariant overwrites variant row identified by variant.ID.
func (p Postgres) UpdateVariant(ctx context.Context, variant *models.Variant) error {
	columnList := table.ProductVariant.AllColumns.Except(table.ProductVariant.ID, table.ProductVariant.CreatedAt)

	dbVariant := ToDBVariant(variant)
	dbVariant.UpdatedAt = nowPtr()

	result, err := table.ProductVariant.UPDATE(columnList).
		MODEL(dbVariant).
		WHERE(table.ProductVariant.ID.EQ(pg.Int32(variant.ID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update variant: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update variant: no matching row")
	}

	return nil
}

// UpdateVariantStock sets stock quantity of variant with provided SKU.
// It reports whether any variant matched.
func (p Postgres) UpdateVariantStock(ctx context.Context, sku string, qty int32) (bool, error) {
	result, err := table.ProductVariant.UPDATE().
		SET(
			table.ProductVariant.StockQty.SET(pg.Int32(qty)),
			table.ProductVariant.UpdatedAt.SET(pg.TimestampzT(time.Now().UTC())),
		).
		WHERE(table.ProductVariant.Sku.EQ(pg.String(sku))).
		ExecContext(ctx, p.db)
	if err != nil {
		return false, fmt.Errorf("can't update variant stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("can't read updated variants number: %w", err)
	}

	return rowsAffected > 0, nil
}

// UpdateProductStock sets stock quantity and last sync time of the
// STOCK-sourced product with provided SKU. It reports whether any product
// matched.
func (p Postgres) UpdateProductStock(ctx context.Context, sku string, qty int32, syncedAt time.Time) (bool, error) {
	result, err := table.Product.UPDATE().
		SET(
			table.Product.StockQty.SET(pg.Int32(qty)),
			table.Product.LastSyncAt.SET(pg.TimestampzT(syncedAt)),
			table.Product.UpdatedAt.SET(pg.TimestampzT(time.Now().UTC())),
		).
		WHERE(pg.AND(
			table.Product.Sku.EQ(pg.String(sku)),
			table.Product.Source.EQ(pg.String(string(models.SourceStock))),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return false, fmt.Errorf("can't update product stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("can't read updated products number: %w", err)
	}

	return rowsAffected > 0, nil
}

// SyncStatus returns per-source product counts and the time of the most
// recent product sync.
func (p Postgres) SyncStatus(ctx context.Context) (*models.SyncStatus, error) {
	var counts []struct {
		Source string
		Count  int64
	}
	err := table.Product.SELECT(
		table.Product.Source.AS("source"),
		pg.COUNT(table.Product.ID).AS("count"),
	).
		GROUP_BY(table.Product.Source).
		QueryContext(ctx, p.db, &counts)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't count products: %w", err)
	}

	status := models.SyncStatus{}
	for ix := range counts {
		switch models.ProductSource(counts[ix].Source) {
		case models.SourceStock:
			status.StockProducts = counts[ix].Count
		case models.SourceLocal:
			status.LocalProducts = counts[ix].Count
		}
		status.TotalProducts += counts[ix].Count
	}

	lastSyncAt, err := p.lastSyncAt(ctx)
	if err != nil {
		return nil, err
	}
	status.LastSyncAt = lastSyncAt

	return &status, nil
}

func (p Postgres) lastSyncAt(ctx context.Context) (*time.Time, error) {
	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.LastSyncAt).
		WHERE(table.Product.LastSyncAt.IS_NOT_NULL()).
		ORDER_BY(table.Product.LastSyncAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &product)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("can't query last sync time: %w", err)
	}

	return product.LastSyncAt, nil
}

func matchCondition(skuColumn, stockIDColumn pg.ColumnString, skus, stockIDs []string) pg.BoolExpression {
	conditions := make([]pg.BoolExpression, 0, 2)
	if len(skus) > 0 {
		conditions = append(conditions, skuColumn.IN(toStringExpressions(skus)...))
	}
	if len(stockIDs) > 0 {
		conditions = append(conditions, stockIDColumn.IN(toStringExpressions(stockIDs)...))
	}
	if len(conditions) == 0 {
		return nil
	}

	return pg.OR(conditions...)
}

func toStringExpressions(values []string) []pg.Expression {
	expressions := make([]pg.Expression, 0, len(values))
	for ix := range values {
		expressions = append(expressions, pg.String(values[ix]))
	}
	return expressions
}

func nowPtr() *time.Time {
	now := time.Now().UTC()
	return &now
}
