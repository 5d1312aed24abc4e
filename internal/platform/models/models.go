package models

import "time"

// SyncMode selects between a full catalog sweep and a sweep filtered
// to remote changes since a cursor timestamp.
type SyncMode string

// Sync modes.
const (
	SyncModeFull        SyncMode = "full"
	SyncModeIncremental SyncMode = "incremental"
)

// ProductSource tells whether a product is synced from the Stock API
// or was created directly in the ERP.
type ProductSource string

// Product sources.
const (
	SourceStock ProductSource = "STOCK"
	SourceLocal ProductSource = "LOCAL"
)

// Item type classifications.
const (
	ItemTypeFinishedGood = "FINISHED_GOOD"
	ItemTypeRawMaterial  = "RAW_MATERIAL"
	ItemTypeService      = "SERVICE"
)

// Product is the durable local product record. It is identified either by its
// SKU or by its link to a Stock API product (StockProductID); the two keys
// address the same logical entity.
type Product struct {
	ID             int32
	SKU            string
	StockProductID *string
	Name           string
	Description    *string
	Category       *string
	Barcode        *string
	Unit           *string
	ItemType       string
	Source         ProductSource
	BasePrice      float64
	CostPrice      float64
	StockQty       int32
	ReorderPoint   int32
	HasVariants    bool
	LastSyncAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time

	Variants []Variant
}

// Variant is a product variant, unique by SKU or by StockVariantID with the
// same dual-identity rule as its parent. Size and color are derived
// attributes, never copied verbatim from the Stock API.
type Variant struct {
	ID             int32
	ProductID      int32
	StockVariantID *string
	SKU            string
	Name           string
	Size           string
	Color          string
	Barcode        *string
	SellPrice      float64
	CostPrice      float64
	StockQty       int32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// ProductSyncStatus is the outcome tag of a single product within a page.
type ProductSyncStatus string

// Product sync outcomes.
const (
	ProductSyncCreated ProductSyncStatus = "created"
	ProductSyncUpdated ProductSyncStatus = "updated"
	ProductSyncError   ProductSyncStatus = "error"
)

// SyncProductEntry is the per-product outcome of a page sync.
type SyncProductEntry struct {
	SKU      string
	Name     string
	Status   ProductSyncStatus
	Variants int
	Error    *string
}

// SyncPageResult describes reconciling exactly one page of the external
// catalog. It has no identity beyond the call that produced it and is never
// persisted.
type SyncPageResult struct {
	Mode            SyncMode
	Page            int
	TotalPages      int
	TotalProducts   int
	HasMore         bool
	CreatedProducts int
	UpdatedProducts int
	CreatedVariants int
	UpdatedVariants int
	Errors          []string
	Products        []SyncProductEntry
}

// SyncStatus is a read-only aggregate over local storage.
type SyncStatus struct {
	LastSyncAt    *time.Time
	StockProducts int64
	LocalProducts int64
	TotalProducts int64
}

// StockLevelSyncResult describes a quantity-only sweep over the Stock API
// stock-balance listing.
type StockLevelSyncResult struct {
	UpdatedVariants int
	UpdatedProducts int
	Skipped         int
	Errors          []string
}
