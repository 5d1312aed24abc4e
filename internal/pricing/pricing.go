// Package pricing computes order totals from heterogeneous line-item
// components. All functions are pure and deterministic; collaborators call
// them whenever items, prints, addons, fees or discount change and persist
// the recomputed totals back onto the order.
package pricing

import "github.com/samber/lo"

// AddonType is the charging mode of an addon.
type AddonType string

// Addon charging modes.
const (
	// AddonPerPiece is charged per unit of item quantity.
	AddonPerPiece AddonType = "PER_PIECE"
	// AddonPerOrder is charged once regardless of quantity.
	AddonPerOrder AddonType = "PER_ORDER"
)

// Print is a print position with a flat per-piece price.
type Print struct {
	UnitPrice float64
}

// Addon is an extra service on a line item. Quantity, when set, overrides the
// item quantity for PER_PIECE addons.
type Addon struct {
	Type      AddonType
	UnitPrice float64
	Quantity  *int
}

// Item is one order line with its base price and pricing components.
type Item struct {
	BasePrice float64
	Quantity  int
	Prints    []Print
	Addons    []Addon
}

// Fee is an order-level charge.
type Fee struct {
	Amount float64
}

// Order aggregates line items, fees and a discount.
type Order struct {
	Items    []Item
	Fees     []Fee
	Discount float64
}

// Totals are the denormalized order totals.
type Totals struct {
	SubtotalItems float64
	SubtotalFees  float64
	Discount      float64
	TotalAmount   float64
}

// ItemSubtotal returns the full price of one line item:
// base price and prints scale with quantity, addons follow their charging
// mode.
func ItemSubtotal(item Item) float64 {
	quantity := float64(item.Quantity)

	subtotal := quantity * item.BasePrice
	subtotal += quantity * printsPerPiece(item.Prints)

	for _, addon := range item.Addons {
		switch addon.Type {
		case AddonPerOrder:
			subtotal += addon.UnitPrice
		default:
			addonQty := quantity
			if addon.Quantity != nil {
				addonQty = float64(*addon.Quantity)
			}
			subtotal += addonQty * addon.UnitPrice
		}
	}

	return subtotal
}

// ItemUnitPrice returns the informational per-piece price of one line item.
// PER_ORDER addons are excluded by definition.
func ItemUnitPrice(item Item) float64 {
	perPieceAddons := lo.SumBy(item.Addons, func(addon Addon) float64 {
		if addon.Type == AddonPerOrder {
			return 0
		}
		return addon.UnitPrice
	})

	return item.BasePrice + printsPerPiece(item.Prints) + perPieceAddons
}

// OrderTotal returns the order-level totals. The total amount is floored at
// zero: an order total is never negative even when the discount exceeds the
// subtotals.
func OrderTotal(order Order) Totals {
	totals := Totals{
		SubtotalItems: lo.SumBy(order.Items, ItemSubtotal),
		SubtotalFees:  lo.SumBy(order.Fees, func(fee Fee) float64 { return fee.Amount }),
		Discount:      order.Discount,
	}

	totals.TotalAmount = totals.SubtotalItems + totals.SubtotalFees - totals.Discount
	if totals.TotalAmount < 0 {
		totals.TotalAmount = 0
	}

	return totals
}

// ProfitMargin returns the margin percentage of an order, or nil when the
// total amount is not positive (margin on zero revenue is not meaningful).
func ProfitMargin(totalAmount, totalCost float64) *float64 {
	if totalAmount <= 0 {
		return nil
	}

	margin := (totalAmount - totalCost) / totalAmount * 100

	return &margin
}

func printsPerPiece(prints []Print) float64 {
	return lo.SumBy(prints, func(print Print) float64 { return print.UnitPrice })
}
