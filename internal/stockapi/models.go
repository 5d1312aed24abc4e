package stockapi

import "time"

// Pagination is the paging envelope returned by Stock API list endpoints.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Product is one product as reported by the Stock API. Records are read-only
// to this service and are superseded entirely by each subsequent fetch.
type Product struct {
	ID           string    `json:"id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	Barcode      *string   `json:"barcode"`
	Unit         *string   `json:"unit"`
	ItemType     *string   `json:"itemType"`
	StandardCost *float64  `json:"standardCost"`
	LastCost     *float64  `json:"lastCost"`
	TotalStock   float64   `json:"totalStock"`
	ReorderPoint float64   `json:"reorderPoint"`
	HasVariants  bool      `json:"hasVariants"`
	Variants     []Variant `json:"variants"`
}

// Variant is one product variant as reported by the Stock API.
type Variant struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Barcode   *string         `json:"barcode"`
	Options   []VariantOption `json:"options"`
	CostPrice *float64        `json:"costPrice"`
	SellPrice *float64        `json:"sellPrice"`
	StockQty  float64         `json:"stockQty"`
}

// VariantOption is a structured option of a variant, mapping an option-type
// label (e.g. "ไซส์", "สี") to its value.
type VariantOption struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ProductPage is one page of the product listing.
type ProductPage struct {
	Items      []Product  `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// StockLevel is one stock balance entry.
type StockLevel struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	QtyOnHand float64 `json:"qtyOnHand"`
	Location  *string `json:"location"`
	Warehouse *string `json:"warehouse"`
}

// StockSummary aggregates one stock-balance listing.
type StockSummary struct {
	TotalItems int `json:"totalItems"`
	LowStock   int `json:"lowStock"`
}

// StockLevelPage is one page of the stock-balance listing.
type StockLevelPage struct {
	Items      []StockLevel  `json:"items"`
	Summary    *StockSummary `json:"summary"`
	Pagination Pagination    `json:"pagination"`
}

// StockFilters narrows a stock-balance listing.
type StockFilters struct {
	Location  *string
	Warehouse *string
	LowStock  bool
}

// MovementType is the kind of a stock movement document.
type MovementType string

// Stock movement types.
const (
	MovementReceive  MovementType = "RECEIVE"
	MovementIssue    MovementType = "ISSUE"
	MovementTransfer MovementType = "TRANSFER"
	MovementAdjust   MovementType = "ADJUST"
)

// MovementLine is one line of a stock movement.
type MovementLine struct {
	SKU          string   `json:"sku"`
	FromLocation *string  `json:"fromLocation,omitempty"`
	ToLocation   *string  `json:"toLocation,omitempty"`
	Qty          float64  `json:"qty"`
	UnitCost     *float64 `json:"unitCost,omitempty"`
	Note         *string  `json:"note,omitempty"`
}

// MovementRequest creates a stock movement document. The Stock API applies
// lines all-or-nothing; no partial-line semantics exist.
type MovementRequest struct {
	Type   MovementType   `json:"type"`
	RefNo  *string        `json:"refNo,omitempty"`
	Note   *string        `json:"note,omitempty"`
	Reason *string        `json:"reason,omitempty"`
	Lines  []MovementLine `json:"lines"`
}

// MovementResult confirms a created stock movement.
type MovementResult struct {
	DocNumber  string `json:"docNumber"`
	Status     string `json:"status"`
	LinesCount int    `json:"linesCount"`
}

// ConnectionStatus is the outcome of a non-fatal health check.
type ConnectionStatus struct {
	Connected bool
	Name      *string
	Error     *string
}

type companyResponse struct {
	Name string `json:"name"`
}

// UpdatedAfterFormat formats a cursor timestamp the way the Stock API expects
// its updated_after filter.
func UpdatedAfterFormat(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
