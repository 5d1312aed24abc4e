package syncer

import (
	"context"
	"fmt"

	"github.com/siamscreen/stocksync/internal/platform/models"
	"github.com/siamscreen/stocksync/internal/stockapi"
)

// Status returns the last sync timestamp and product counts grouped by
// source. It is a read-only aggregate over local storage.
func (s *Syncer) Status(ctx context.Context) (*models.SyncStatus, error) {
	status, err := s.storage.SyncStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't read sync status: %w", err)
	}

	return status, nil
}

// SyncStockLevels sweeps the whole stock-balance listing and overwrites only
// stock quantities, matching by SKU. Entries without a matching variant fall
// back to a product-level match; entries matching neither are skipped. A
// failing entry never stops the sweep.
func (s *Syncer) SyncStockLevels(ctx context.Context) (*models.StockLevelSyncResult, error) {
	result := &models.StockLevelSyncResult{}

	for page := 1; ; page++ {
		fetched, err := s.catalog.ListStockLevels(ctx, page, s.stockPageSize, stockapi.StockFilters{})
		if err != nil {
			return nil, fmt.Errorf("can't fetch stock levels page %d: %w", page, err)
		}

		for ix := range fetched.Items {
			s.syncStockLevel(ctx, &fetched.Items[ix], result)
		}

		if page >= fetched.Pagination.TotalPages {
			break
		}
	}

	return result, nil
}

func (s *Syncer) syncStockLevel(ctx context.Context, level *stockapi.StockLevel, result *models.StockLevelSyncResult) {
	qty := floorQty(level.QtyOnHand)

	found, err := s.storage.UpdateVariantStock(ctx, level.SKU, qty)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("stock level %s: %s", level.SKU, err.Error()))
		return
	}
	if found {
		result.UpdatedVariants++
		return
	}

	found, err = s.storage.UpdateProductStock(ctx, level.SKU, qty, *s.clock.Now())
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("stock level %s: %s", level.SKU, err.Error()))
		return
	}
	if !found {
		result.Skipped++
		return
	}

	result.UpdatedProducts++
}
