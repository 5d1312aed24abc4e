package syncer_test

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/siamscreen/stocksync/internal/platform"
	"github.com/siamscreen/stocksync/internal/platform/models"
	"github.com/siamscreen/stocksync/internal/stockapi"
	"github.com/siamscreen/stocksync/internal/syncer"
	"github.com/siamscreen/stocksync/internal/syncer/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
var (
	pageSize      = 20
	stockPageSize = 100
	loc           = func() *time.Location {
		loc, err := time.LoadLocation("Etc/UTC")
		if err != nil {
			panic(err)
		}
		return loc
	}()
	now = time.Date(2024, time.May, 2, 10, 30, 0, 0, loc)

	shirt = stockapi.Product{
		ID:           "sp-1",
		SKU:          "TS-001",
		Name:         "เสื้อยืดคอกลม",
		Category:     lo.ToPtr("เสื้อยืด"),
		Unit:         lo.ToPtr("ตัว"),
		LastCost:     lo.ToPtr(85.5),
		StandardCost: lo.ToPtr(80.0),
		TotalStock:   25.7,
		ReorderPoint: 5,
		HasVariants:  true,
		Variants: []stockapi.Variant{
			{
				ID:   "sv-1",
				SKU:  "TS-001-M-RED",
				Name: "M / แดง",
				Options: []stockapi.VariantOption{
					{Type: "ไซส์", Value: "M"},
					{Type: "สี", Value: "แดง"},
				},
				SellPrice: lo.ToPtr(250.0),
				CostPrice: lo.ToPtr(90.0),
				StockQty:  12.9,
			},
			{
				ID:        "sv-2",
				SKU:       "TS-001-XL-RED",
				Name:      "XL / แดง",
				SellPrice: lo.ToPtr(270.0),
				CostPrice: lo.ToPtr(95.0),
				StockQty:  3,
			},
		},
	}

	ink = stockapi.Product{
		ID:           "sp-2",
		SKU:          "INK-BLK",
		Name:         "หมึกพิมพ์ดำ",
		Category:     lo.ToPtr("หมึก"),
		StandardCost: lo.ToPtr(420.0),
		TotalStock:   8,
	}
)

func wantShirt(id int32) *models.Product {
	return &models.Product{
		ID:             id,
		SKU:            "TS-001",
		StockProductID: lo.ToPtr("sp-1"),
		Name:           "เสื้อยืดคอกลม",
		Category:       lo.ToPtr("เสื้อยืด"),
		Unit:           lo.ToPtr("ตัว"),
		ItemType:       models.ItemTypeFinishedGood,
		Source:         models.SourceStock,
		BasePrice:      85.5,
		CostPrice:      85.5,
		StockQty:       25,
		ReorderPoint:   5,
		HasVariants:    true,
		LastSyncAt:     &now,
	}
}

func wantInk(id int32) *models.Product {
	return &models.Product{
		ID:             id,
		SKU:            "INK-BLK",
		StockProductID: lo.ToPtr("sp-2"),
		Name:           "หมึกพิมพ์ดำ",
		Category:       lo.ToPtr("หมึก"),
		ItemType:       models.ItemTypeRawMaterial,
		Source:         models.SourceStock,
		BasePrice:      420,
		CostPrice:      420,
		StockQty:       8,
		LastSyncAt:     &now,
	}
}

func wantVariantM(id, productID int32) models.Variant {
	return models.Variant{
		ID:             id,
		ProductID:      productID,
		StockVariantID: lo.ToPtr("sv-1"),
		SKU:            "TS-001-M-RED",
		Name:           "M / แดง",
		Size:           "M",
		Color:          "แดง",
		SellPrice:      250,
		CostPrice:      90,
		StockQty:       12,
	}
}

func wantVariantXL(id, productID int32) models.Variant {
	return models.Variant{
		ID:             id,
		ProductID:      productID,
		StockVariantID: lo.ToPtr("sv-2"),
		SKU:            "TS-001-XL-RED",
		Name:           "XL / แดง",
		Size:           "XL",
		Color:          "แดง",
		SellPrice:      270,
		CostPrice:      95,
		StockQty:       3,
	}
}

func newSyncer(catalog *mocks.Catalog, storage *mocks.Storage) *syncer.Syncer {
	return syncer.NewSyncer(catalog, storage, pageSize, stockPageSize, syncer.WithClock(fakeClock{now: &now}))
}

func TestUnitSyncPage(t *testing.T) {
	catalog := mocks.NewCatalog(t)
	storage := mocks.NewStorage(t)

	catalog.On("ListProducts", mock.Anything, 1, pageSize, (*time.Time)(nil)).
		Return(&stockapi.ProductPage{
			Items:      []stockapi.Product{shirt, ink},
			Pagination: stockapi.Pagination{Page: 1, PageSize: pageSize, Total: 30, TotalPages: 2},
		}, nil)

	storage.On("FindProducts", mock.Anything, []string{"TS-001", "INK-BLK"}, []string{"sp-1", "sp-2"}).
		Return([]models.Product{*wantInk(7)}, nil)
	storage.On("FindVariants", mock.Anything,
		[]string{"TS-001-M-RED", "TS-001-XL-RED"}, []string{"sv-1", "sv-2"}).
		Return([]models.Variant{wantVariantXL(41, 11)}, nil)

	storage.On("CreateProduct", mock.Anything, wantShirt(0)).Return(int32(11), nil)
	storage.On("UpdateProduct", mock.Anything, wantInk(7)).Return(nil)
	storage.On("CreateVariants", mock.Anything, []models.Variant{wantVariantM(0, 11)}).Return(int32(1), nil)
	storage.On("UpdateVariant", mock.Anything, lo.ToPtr(wantVariantXL(41, 11))).Return(nil)

	syn := newSyncer(catalog, storage)

	result, err := syn.SyncPage(context.TODO(), 1, models.SyncModeFull, nil)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 1, result.CreatedProducts, "should create the new product")
	assert.Equal(t, 1, result.UpdatedProducts, "should update the existing product")
	assert.Equal(t, 1, result.CreatedVariants, "should batch-create the new variant")
	assert.Equal(t, 1, result.UpdatedVariants, "should update the existing variant")
	assert.Empty(t, result.Errors, "shouldn't report any errors")
	assert.True(t, result.HasMore, "should report more pages")
	assert.Equal(t, 2, result.TotalPages, "should relay total pages")
	assert.Equal(t, 30, result.TotalProducts, "should relay total products")
	assert.Equal(t, []models.SyncProductEntry{
		{SKU: "TS-001", Name: "เสื้อยืดคอกลม", Status: models.ProductSyncCreated, Variants: 2},
		{SKU: "INK-BLK", Name: "หมึกพิมพ์ดำ", Status: models.ProductSyncUpdated},
	}, result.Products, "should report per-product outcomes")
}

func TestUnitSyncPageIdempotent(t *testing.T) {
	// A repeated run over unchanged data must classify everything as an
	// update and create nothing.
	catalog := mocks.NewCatalog(t)
	storage := mocks.NewStorage(t)

	catalog.On("ListProducts", mock.Anything, 2, pageSize, (*time.Time)(nil)).
		Return(&stockapi.ProductPage{
			Items:      []stockapi.Product{shirt},
			Pagination: stockapi.Pagination{Page: 2, PageSize: pageSize, Total: 21, TotalPages: 2},
		}, nil)

	storage.On("FindProducts", mock.Anything, []string{"TS-001"}, []string{"sp-1"}).
		Return([]models.Product{*wantShirt(11)}, nil)
	storage.On("FindVariants", mock.Anything,
		[]string{"TS-001-M-RED", "TS-001-XL-RED"}, []string{"sv-1", "sv-2"}).
		Return([]models.Variant{wantVariantM(40, 11), wantVariantXL(41, 11)}, nil)

	storage.On("UpdateProduct", mock.Anything, wantShirt(11)).Return(nil)
	storage.On("UpdateVariant", mock.Anything, lo.ToPtr(wantVariantM(40, 11))).Return(nil)
	storage.On("UpdateVariant", mock.Anything, lo.ToPtr(wantVariantXL(41, 11))).Return(nil)

	syn := newSyncer(catalog, storage)

	result, err := syn.SyncPage(context.TODO(), 2, models.SyncModeFull, nil)

	require.NoError(t, err, "shouldn't return any error")
	assert.Zero(t, result.CreatedProducts, "shouldn't create any products")
	assert.Zero(t, result.CreatedVariants, "shouldn't create any variants")
	assert.Equal(t, 1, result.UpdatedProducts, "should update the product")
	assert.Equal(t, 2, result.UpdatedVariants, "should update both variants")
	assert.False(t, result.HasMore, "last page shouldn't report more pages")
}

func TestUnitSyncPageStockIDMatchWins(t *testing.T) {
	// One local record matches the incoming SKU, a different one matches the
	// Stock API id. The id match is authoritative; no duplicate is created.
	renamed := *wantInk(9)
	renamed.SKU = "INK-BLK-OLD"

	skuCollision := *wantInk(8)
	skuCollision.StockProductID = nil

	catalog := mocks.NewCatalog(t)
	storage := mocks.NewStorage(t)

	catalog.On("ListProducts", mock.Anything, 1, pageSize, (*time.Time)(nil)).
		Return(&stockapi.ProductPage{
			Items:      []stockapi.Product{ink},
			Pagination: stockapi.Pagination{Page: 1, PageSize: pageSize, Total: 1, TotalPages: 1},
		}, nil)

	storage.On("FindProducts", mock.Anything, []string{"INK-BLK"}, []string{"sp-2"}).
		Return([]models.Product{skuCollision, renamed}, nil)
	storage.On("FindVariants", mock.Anything, []string{}, []string{}).
		Return(nil, nil)

	storage.On("UpdateProduct", mock.Anything, wantInk(9)).Return(nil)

	syn := newSyncer(catalog, storage)

	result, err := syn.SyncPage(context.TODO(), 1, models.SyncModeFull, nil)

	require.NoError(t, err, "shouldn't return any error")
	assert.Zero(t, result.CreatedProducts, "shouldn't create a duplicate")
	assert.Equal(t, 1, result.UpdatedProducts, "should update the id-matched record")
}

func TestUnitSyncPageErrorIsolation(t *testing.T) {
	catalog := mocks.NewCatalog(t)
	storage := mocks.NewStorage(t)

	plain := ink
	plain.ID = "sp-3"
	plain.SKU = "INK-WHT"

	catalog.On("ListProducts", mock.Anything, 1, pageSize, (*time.Time)(nil)).
		Return(&stockapi.ProductPage{
			Items:      []stockapi.Product{ink, plain},
			Pagination: stockapi.Pagination{Page: 1, PageSize: pageSize, Total: 2, TotalPages: 1},
		}, nil)

	storage.On("FindProducts", mock.Anything, []string{"INK-BLK", "INK-WHT"}, []string{"sp-2", "sp-3"}).
		Return(nil, nil)
	storage.On("FindVariants", mock.Anything, []string{}, []string{}).
		Return(nil, nil)

	storage.On("CreateProduct", mock.Anything, wantInk(0)).Return(int32(0), assert.AnError)
	failing := wantInk(0)
	failing.SKU = "INK-WHT"
	failing.StockProductID = lo.ToPtr("sp-3")
	storage.On("CreateProduct", mock.Anything, failing).Return(int32(13), nil)

	syn := newSyncer(catalog, storage)

	result, err := syn.SyncPage(context.TODO(), 1, models.SyncModeFull, nil)

	require.NoError(t, err, "a failing product shouldn't fail the page")
	assert.Equal(t, 1, result.CreatedProducts, "should create the healthy product")
	require.Len(t, result.Errors, 1, "should report exactly one error")
	assert.Contains(t, result.Errors[0], "INK-BLK", "error should name the failing product")
	require.Len(t, result.Products, 2, "should report both products")
	assert.Equal(t, models.ProductSyncError, result.Products[0].Status, "failing product should be marked")
	require.NotNil(t, result.Products[0].Error, "failing product should carry its message")
	assert.Equal(t, models.ProductSyncCreated, result.Products[1].Status, "healthy product should be created")
}

func TestUnitSyncPageVariantBatchFallback(t *testing.T) {
	catalog := mocks.NewCatalog(t)
	storage := mocks.NewStorage(t)

	catalog.On("ListProducts", mock.Anything, 1, pageSize, (*time.Time)(nil)).
		Return(&stockapi.ProductPage{
			Items:      []stockapi.Product{shirt},
			Pagination: stockapi.Pagination{Page: 1, PageSize: pageSize, Total: 1, TotalPages: 1},
		}, nil)

	storage.On("FindProducts", mock.Anything, []string{"TS-001"}, []string{"sp-1"}).
		Return(nil, nil)
	storage.On("FindVariants", mock.Anything,
		[]string{"TS-001-M-RED", "TS-001-XL-RED"}, []string{"sv-1", "sv-2"}).
		Return(nil, nil)

	storage.On("CreateProduct", mock.Anything, wantShirt(0)).Return(int32(11), nil)
	storage.On("CreateVariants", mock.Anything,
		[]models.Variant{wantVariantM(0, 11), wantVariantXL(0, 11)}).
		Return(int32(0), assert.AnError)
	storage.On("CreateVariant", mock.Anything, lo.ToPtr(wantVariantM(0, 11))).Return(nil)
	storage.On("CreateVariant", mock.Anything, lo.ToPtr(wantVariantXL(0, 11))).Return(assert.AnError)

	syn := newSyncer(catalog, storage)

	result, err := syn.SyncPage(context.TODO(), 1, models.SyncModeFull, nil)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 1, result.CreatedVariants, "should create the healthy row individually")
	require.Len(t, result.Errors, 1, "only the genuinely failing row should be reported")
	assert.Contains(t, result.Errors[0], "TS-001-XL-RED", "error should name the failing variant")
	assert.Equal(t, 1, result.CreatedProducts, "variant failures shouldn't fail the product")
}

func TestUnitSyncPageVariantUpdateIsolation(t *testing.T) {
	catalog := mocks.NewCatalog(t)
	storage := mocks.NewStorage(t)

	catalog.On("ListProducts", mock.Anything, 1, pageSize, (*time.Time)(nil)).
		Return(&stockapi.ProductPage{
			Items:      []stockapi.Product{shirt},
			Pagination: stockapi.Pagination{Page: 1, PageSize: pageSize, Total: 1, TotalPages: 1},
		}, nil)

	storage.On("FindProducts", mock.Anything, []string{"TS-001"}, []string{"sp-1"}).
		Return([]models.Product{*wantShirt(11)}, nil)
	storage.On("FindVariants", mock.Anything,
		[]string{"TS-001-M-RED", "TS-001-XL-RED"}, []string{"sv-1", "sv-2"}).
		Return([]models.Variant{wantVariantM(40, 11), wantVariantXL(41, 11)}, nil)

	storage.On("UpdateProduct", mock.Anything, wantShirt(11)).Return(nil)
	storage.On("UpdateVariant", mock.Anything, lo.ToPtr(wantVariantM(40, 11))).Return(assert.AnError)
	storage.On("UpdateVariant", mock.Anything, lo.ToPtr(wantVariantXL(41, 11))).Return(nil)

	syn := newSyncer(catalog, storage)

	result, err := syn.SyncPage(context.TODO(), 1, models.SyncModeFull, nil)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, 1, result.UpdatedVariants, "sibling update should still land")
	require.Len(t, result.Errors, 1, "should report the failed update")
	assert.Contains(t, result.Errors[0], "TS-001-M-RED", "error should name the failing variant")
	assert.Equal(t, models.ProductSyncUpdated, result.Products[0].Status,
		"variant failures shouldn't fail the product")
}

func TestUnitSyncPageIncremental(t *testing.T) {
	t.Run("cursor forwarded to catalog", func(t *testing.T) {
		cursor := now.Add(-24 * time.Hour)

		catalog := mocks.NewCatalog(t)
		storage := mocks.NewStorage(t)

		catalog.On("ListProducts", mock.Anything, 1, pageSize, &cursor).
			Return(&stockapi.ProductPage{
				Pagination: stockapi.Pagination{Page: 1, TotalPages: 1},
			}, nil)
		storage.On("FindProducts", mock.Anything, []string{}, []string{}).Return(nil, nil)
		storage.On("FindVariants", mock.Anything, []string{}, []string{}).Return(nil, nil)

		syn := newSyncer(catalog, storage)

		result, err := syn.SyncPage(context.TODO(), 1, models.SyncModeIncremental, &cursor)

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, models.SyncModeIncremental, result.Mode, "should relay the mode")
	})

	t.Run("missing cursor error", func(t *testing.T) {
		catalog := mocks.NewCatalog(t)
		storage := mocks.NewStorage(t)

		syn := newSyncer(catalog, storage)

		result, err := syn.SyncPage(context.TODO(), 1, models.SyncModeIncremental, nil)

		require.ErrorIs(t, err, platform.ErrMissingCursor, "should return missing cursor error")
		assert.Nil(t, result, "shouldn't return a partial result")
	})

	t.Run("full mode ignores cursor", func(t *testing.T) {
		cursor := now.Add(-24 * time.Hour)

		catalog := mocks.NewCatalog(t)
		storage := mocks.NewStorage(t)

		catalog.On("ListProducts", mock.Anything, 1, pageSize, (*time.Time)(nil)).
			Return(&stockapi.ProductPage{
				Pagination: stockapi.Pagination{Page: 1, TotalPages: 1},
			}, nil)
		storage.On("FindProducts", mock.Anything, []string{}, []string{}).Return(nil, nil)
		storage.On("FindVariants", mock.Anything, []string{}, []string{}).Return(nil, nil)

		syn := newSyncer(catalog, storage)

		_, err := syn.SyncPage(context.TODO(), 1, models.SyncModeFull, &cursor)

		require.NoError(t, err, "shouldn't return any error")
	})
}

func TestUnitSyncPageFetchError(t *testing.T) {
	catalog := mocks.NewCatalog(t)
	storage := mocks.NewStorage(t)

	catalog.On("ListProducts", mock.Anything, 3, pageSize, (*time.Time)(nil)).
		Return(nil, assert.AnError)

	syn := newSyncer(catalog, storage)

	result, err := syn.SyncPage(context.TODO(), 3, models.SyncModeFull, nil)

	require.ErrorContains(t, err, "can't fetch catalog page", "should return error about failed fetch")
	require.ErrorIs(t, err, assert.AnError, "should return error containing assert.AnError")
	assert.Nil(t, result, "a page-fetch failure produces no partial result")
}

func TestUnitSyncPageUnknownMode(t *testing.T) {
	catalog := mocks.NewCatalog(t)
	storage := mocks.NewStorage(t)

	syn := newSyncer(catalog, storage)

	result, err := syn.SyncPage(context.TODO(), 1, models.SyncMode("weekly"), nil)

	require.ErrorContains(t, err, "unknown sync mode", "should reject unknown modes")
	assert.Nil(t, result, "shouldn't return a result")
}

func TestUnitStatus(t *testing.T) {
	want := &models.SyncStatus{
		LastSyncAt:    &now,
		StockProducts: 120,
		LocalProducts: 14,
		TotalProducts: 134,
	}

	catalog := mocks.NewCatalog(t)
	storage := mocks.NewStorage(t)
	storage.On("SyncStatus", mock.Anything).Return(want, nil)

	syn := newSyncer(catalog, storage)

	got, err := syn.Status(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, want, got, "should relay storage aggregate")
}

type fakeClock struct {
	now *time.Time
}

func (c fakeClock) Now() *time.Time {
	return c.now
}
