// Package syncer reconciles pages of the external Stock API catalog into
// local storage. A page is the unit of work: the driving caller requests
// pages one by one so every call fits a bounded execution budget, and
// re-running a page is always safe because each sync is a full overwrite.
package syncer

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/siamscreen/stocksync/internal/attrs"
	"github.com/siamscreen/stocksync/internal/platform"
	"github.com/siamscreen/stocksync/internal/platform/models"
	"github.com/siamscreen/stocksync/internal/stockapi"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Catalog --filename catalog.go
//go:generate mockery --name Storage --filename storage.go

// Catalog lists products and stock balances from the Stock API.
type Catalog interface {
	ListProducts(ctx context.Context, page, pageSize int, updatedAfter *time.Time) (*stockapi.ProductPage, error)
	ListStockLevels(ctx context.Context, page, pageSize int, filters stockapi.StockFilters) (*stockapi.StockLevelPage, error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is local products and variants storage.
type Storage interface {
	// FindProducts returns products matching any of the SKUs or Stock API ids.
	FindProducts(ctx context.Context, skus, stockIDs []string) ([]models.Product, error)
	// FindVariants returns variants matching any of the SKUs or Stock API ids.
	FindVariants(ctx context.Context, skus, stockIDs []string) ([]models.Variant, error)
	// CreateProduct inserts a product and returns its id.
	CreateProduct(ctx context.Context, product *models.Product) (int32, error)
	// UpdateProduct overwrites a product by id.
	UpdateProduct(ctx context.Context, product *models.Product) error
	// CreateVariants inserts variants in one batch, skipping rows colliding
	// on a uniqueness constraint. Returns the number of inserted rows.
	CreateVariants(ctx context.Context, variants []models.Variant) (int32, error)
	// CreateVariant inserts a single variant.
	CreateVariant(ctx context.Context, variant *models.Variant) error
	// UpdateVariant overwrites a variant by id.
	UpdateVariant(ctx context.Context, variant *models.Variant) error
	// UpdateVariantStock overwrites the stock quantity of the variant with
	// the provided SKU. Returns false if no such variant exists.
	UpdateVariantStock(ctx context.Context, sku string, qty int32) (bool, error)
	// UpdateProductStock overwrites the stock quantity and sync timestamp of
	// the STOCK-sourced product with the provided SKU. Returns false if no
	// such product exists.
	UpdateProductStock(ctx context.Context, sku string, qty int32, syncedAt time.Time) (bool, error)
	// SyncStatus returns aggregate counts and the last sync timestamp.
	SyncStatus(ctx context.Context) (*models.SyncStatus, error)
}

// Option is custom configuration of Syncer.
type Option func(s *Syncer)

// Syncer reconciles external catalog pages into local storage.
type Syncer struct {
	catalog       Catalog
	storage       Storage
	pageSize      int
	stockPageSize int
	clock         Clock
}

// NewSyncer returns new Syncer.
func NewSyncer(catalog Catalog, storage Storage, pageSize, stockPageSize int, ops ...Option) *Syncer {
	syn := &Syncer{
		catalog:       catalog,
		storage:       storage,
		pageSize:      pageSize,
		stockPageSize: stockPageSize,
		clock:         systemClock{},
	}

	for _, op := range ops {
		op(syn)
	}

	return syn
}

// SyncPage reconciles exactly one page of external products into local
// storage. A page-fetch failure aborts the call; every failure after a
// successful fetch is isolated to the entity that caused it, so a single bad
// product never stops the page.
func (s *Syncer) SyncPage(
	ctx context.Context,
	page int,
	mode models.SyncMode,
	updatedAfter *time.Time,
) (*models.SyncPageResult, error) {
	switch mode {
	case models.SyncModeFull:
		updatedAfter = nil
	case models.SyncModeIncremental:
		if updatedAfter == nil {
			return nil, platform.ErrMissingCursor
		}
	default:
		return nil, fmt.Errorf("unknown sync mode %q", mode)
	}

	fetched, err := s.catalog.ListProducts(ctx, page, s.pageSize, updatedAfter)
	if err != nil {
		return nil, fmt.Errorf("can't fetch catalog page: %w", err)
	}

	lookups, err := s.lookupExisting(ctx, fetched.Items)
	if err != nil {
		return nil, fmt.Errorf("can't look up existing records: %w", err)
	}

	result := &models.SyncPageResult{
		Mode:          mode,
		Page:          fetched.Pagination.Page,
		TotalPages:    fetched.Pagination.TotalPages,
		TotalProducts: fetched.Pagination.Total,
		HasMore:       fetched.Pagination.Page < fetched.Pagination.TotalPages,
		Products:      make([]models.SyncProductEntry, 0, len(fetched.Items)),
	}

	for ix := range fetched.Items {
		s.syncProduct(ctx, &fetched.Items[ix], lookups, result)
	}

	return result, nil
}

// pageLookups holds the existing local records matching one page, keyed by
// SKU and by Stock API id.
type pageLookups struct {
	productsBySKU     map[string]models.Product
	productsByStockID map[string]models.Product
	variantsBySKU     map[string]models.Variant
	variantsByStockID map[string]models.Variant
}

// lookupExisting resolves all local products and variants matching the page
// with two bulk queries, so database round-trips stay constant regardless of
// page size.
func (s *Syncer) lookupExisting(ctx context.Context, items []stockapi.Product) (*pageLookups, error) {
	productSKUs := make([]string, 0, len(items))
	productIDs := make([]string, 0, len(items))
	variantSKUs := make([]string, 0, len(items))
	variantIDs := make([]string, 0, len(items))

	for ix := range items {
		productSKUs = appendKey(productSKUs, items[ix].SKU)
		productIDs = appendKey(productIDs, items[ix].ID)
		for vix := range items[ix].Variants {
			variantSKUs = appendKey(variantSKUs, items[ix].Variants[vix].SKU)
			variantIDs = appendKey(variantIDs, items[ix].Variants[vix].ID)
		}
	}

	lookups := &pageLookups{
		productsBySKU:     map[string]models.Product{},
		productsByStockID: map[string]models.Product{},
		variantsBySKU:     map[string]models.Variant{},
		variantsByStockID: map[string]models.Variant{},
	}

	errGroup, egCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		products, err := s.storage.FindProducts(egCtx, productSKUs, productIDs)
		if err != nil {
			return fmt.Errorf("can't find products: %w", err)
		}
		for ix := range products {
			lookups.productsBySKU[products[ix].SKU] = products[ix]
			if products[ix].StockProductID != nil {
				lookups.productsByStockID[*products[ix].StockProductID] = products[ix]
			}
		}
		return nil
	})

	errGroup.Go(func() error {
		variants, err := s.storage.FindVariants(egCtx, variantSKUs, variantIDs)
		if err != nil {
			return fmt.Errorf("can't find variants: %w", err)
		}
		for ix := range variants {
			lookups.variantsBySKU[variants[ix].SKU] = variants[ix]
			if variants[ix].StockVariantID != nil {
				lookups.variantsByStockID[*variants[ix].StockVariantID] = variants[ix]
			}
		}
		return nil
	})

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}

	return lookups, nil
}

// syncProduct reconciles one external product and its variants. Failures are
// recorded into the page result and never propagated.
func (s *Syncer) syncProduct(
	ctx context.Context,
	ext *stockapi.Product,
	lookups *pageLookups,
	result *models.SyncPageResult,
) {
	entry := models.SyncProductEntry{
		SKU:      ext.SKU,
		Name:     ext.Name,
		Variants: len(ext.Variants),
	}

	existing := lookups.matchProduct(ext)
	projected := s.projectProduct(ext, existing)

	var err error
	if existing != nil {
		entry.Status = models.ProductSyncUpdated
		err = s.storage.UpdateProduct(ctx, projected)
	} else {
		entry.Status = models.ProductSyncCreated
		projected.ID, err = s.storage.CreateProduct(ctx, projected)
	}

	if err != nil {
		entry.Status = models.ProductSyncError
		entry.Error = lo.ToPtr(err.Error())
		result.Errors = append(result.Errors, fmt.Sprintf("product %s: %s", ext.SKU, err.Error()))
		result.Products = append(result.Products, entry)
		return
	}

	if len(ext.Variants) > 0 {
		s.syncVariants(ctx, ext, projected.ID, lookups, result)
	}

	if entry.Status == models.ProductSyncCreated {
		result.CreatedProducts++
	} else {
		result.UpdatedProducts++
	}
	result.Products = append(result.Products, entry)
}

// syncVariants classifies the product's variants as new or existing, then
// batch-creates the new ones and updates the existing ones concurrently.
// Variant failures land in the page error list without failing the product.
func (s *Syncer) syncVariants(
	ctx context.Context,
	ext *stockapi.Product,
	productID int32,
	lookups *pageLookups,
	result *models.SyncPageResult,
) {
	newVariants := make([]models.Variant, 0, len(ext.Variants))
	existingVariants := make([]models.Variant, 0, len(ext.Variants))

	for ix := range ext.Variants {
		existing := lookups.matchVariant(&ext.Variants[ix])
		projected := s.projectVariant(&ext.Variants[ix], productID, existing)
		if existing == nil {
			newVariants = append(newVariants, *projected)
		} else {
			existingVariants = append(existingVariants, *projected)
		}
	}

	result.CreatedVariants += s.createVariants(ctx, newVariants, result)
	result.UpdatedVariants += s.updateVariants(ctx, existingVariants, result)
}

func (s *Syncer) createVariants(ctx context.Context, variants []models.Variant, result *models.SyncPageResult) int {
	if len(variants) == 0 {
		return 0
	}

	created, err := s.storage.CreateVariants(ctx, variants)
	if err == nil {
		return int(created)
	}

	// The batch failed as a whole. Retry row by row so only the genuinely
	// failing rows surface as errors.
	createdCount := 0
	for ix := range variants {
		if rowErr := s.storage.CreateVariant(ctx, &variants[ix]); rowErr != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("variant %s: %s", variants[ix].SKU, rowErr.Error()))
			continue
		}
		createdCount++
	}

	return createdCount
}

// updateVariants issues all updates concurrently and awaits their collective
// completion; one failed update never cancels its siblings.
func (s *Syncer) updateVariants(ctx context.Context, variants []models.Variant, result *models.SyncPageResult) int {
	if len(variants) == 0 {
		return 0
	}

	failures := make([]error, len(variants))
	wg := sync.WaitGroup{}
	for ix := range variants {
		wg.Add(1)
		go func(ix int) {
			defer wg.Done()
			failures[ix] = s.storage.UpdateVariant(ctx, &variants[ix])
		}(ix)
	}
	wg.Wait()

	updated := 0
	for ix := range failures {
		if failures[ix] != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("variant %s: %s", variants[ix].SKU, failures[ix].Error()))
			continue
		}
		updated++
	}

	return updated
}

// matchProduct resolves the local identity of an external product. A Stock
// API id match is authoritative even if the SKU text has since changed
// upstream.
func (l *pageLookups) matchProduct(ext *stockapi.Product) *models.Product {
	if product, ok := l.productsByStockID[ext.ID]; ok {
		return &product
	}
	if product, ok := l.productsBySKU[ext.SKU]; ok {
		return &product
	}
	return nil
}

func (l *pageLookups) matchVariant(ext *stockapi.Variant) *models.Variant {
	if variant, ok := l.variantsByStockID[ext.ID]; ok {
		return &variant
	}
	if variant, ok := l.variantsBySKU[ext.SKU]; ok {
		return &variant
	}
	return nil
}

// projectProduct computes the full local record for an external product.
// Every field is overwritten on every sync; there is no field-level merge.
func (s *Syncer) projectProduct(ext *stockapi.Product, existing *models.Product) *models.Product {
	cost := unitCost(ext.LastCost, ext.StandardCost)

	product := &models.Product{
		SKU:            ext.SKU,
		StockProductID: lo.ToPtr(ext.ID),
		Name:           ext.Name,
		Description:    ext.Description,
		Category:       ext.Category,
		Barcode:        ext.Barcode,
		Unit:           ext.Unit,
		ItemType:       resolveItemType(ext),
		Source:         models.SourceStock,
		BasePrice:      cost,
		CostPrice:      cost,
		StockQty:       floorQty(ext.TotalStock),
		ReorderPoint:   floorQty(ext.ReorderPoint),
		HasVariants:    ext.HasVariants,
		LastSyncAt:     s.clock.Now(),
	}

	if existing != nil {
		product.ID = existing.ID
		product.CreatedAt = existing.CreatedAt
	}

	return product
}

func (s *Syncer) projectVariant(ext *stockapi.Variant, productID int32, existing *models.Variant) *models.Variant {
	resolved := attrs.Resolve(ext.Name, lo.Map(ext.Options, func(option stockapi.VariantOption, _ int) attrs.Option {
		return attrs.Option(option)
	}))

	variant := &models.Variant{
		ProductID:      productID,
		StockVariantID: lo.ToPtr(ext.ID),
		SKU:            ext.SKU,
		Name:           ext.Name,
		Size:           resolved.Size,
		Color:          resolved.Color,
		Barcode:        ext.Barcode,
		SellPrice:      lo.FromPtr(ext.SellPrice),
		CostPrice:      lo.FromPtr(ext.CostPrice),
		StockQty:       floorQty(ext.StockQty),
	}

	if existing != nil {
		variant.ID = existing.ID
		variant.CreatedAt = existing.CreatedAt
	}

	return variant
}

// categoryItemTypes maps known category names to item type classifications
// for external products without an explicit item type.
var categoryItemTypes = map[string]string{
	"วัตถุดิบ": models.ItemTypeRawMaterial,
	"ผ้า":      models.ItemTypeRawMaterial,
	"หมึก":     models.ItemTypeRawMaterial,
	"บริการ":   models.ItemTypeService,
}

func resolveItemType(ext *stockapi.Product) string {
	if ext.ItemType != nil && *ext.ItemType != "" {
		return *ext.ItemType
	}
	if ext.Category != nil {
		if itemType, ok := categoryItemTypes[strings.TrimSpace(*ext.Category)]; ok {
			return itemType
		}
	}
	return models.ItemTypeFinishedGood
}

func unitCost(lastCost, standardCost *float64) float64 {
	if lastCost != nil {
		return *lastCost
	}
	if standardCost != nil {
		return *standardCost
	}
	return 0
}

func floorQty(qty float64) int32 {
	return int32(math.Floor(qty))
}

func appendKey(keys []string, key string) []string {
	if key == "" {
		return keys
	}
	return append(keys, key)
}

// WithClock sets Syncer's custom Clock.
func WithClock(c Clock) Option {
	return func(s *Syncer) {
		s.clock = c
	}
}
