package storage

import (
	"github.com/siamscreen/stocksync/internal/platform/models"

	pgmodels "github.com/siamscreen/stocksync/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

// ToDBProduct converts models.Product into postgres product model.
func ToDBProduct(product *models.Product) *pgmodels.Product {
	return &pgmodels.Product{
		ID:             product.ID,
		Sku:            product.SKU,
		StockProductID: product.StockProductID,
		Name:           product.Name,
		Description:    product.Description,
		Category:       product.Category,
		Barcode:        product.Barcode,
		Unit:           product.Unit,
		ItemType:       product.ItemType,
		Source:         string(product.Source),
		BasePrice:      product.BasePrice,
		CostPrice:      product.CostPrice,
		StockQty:       product.StockQty,
		ReorderPoint:   product.ReorderPoint,
		HasVariants:    product.HasVariants,
		LastSyncAt:     product.LastSyncAt,
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}
}

// ToDBVariant converts models.Variant into postgres product variant model.
func ToDBVariant(variant *models.Variant) *pgmodels.ProductVariant {
	return &pgmodels.ProductVariant{
		ID:             variant.ID,
		ProductID:      variant.ProductID,
		StockVariantID: variant.StockVariantID,
		Sku:            variant.SKU,
		Name:           variant.Name,
		Size:           variant.Size,
		Color:          variant.Color,
		Barcode:        variant.Barcode,
		SellPrice:      variant.SellPrice,
		CostPrice:      variant.CostPrice,
		StockQty:       variant.StockQty,
		CreatedAt:      variant.CreatedAt,
		UpdatedAt:      variant.UpdatedAt,
	}
}

func fromDBProduct(dbProduct *pgmodels.Product) *models.Product {
	return &models.Product{
		ID:             dbProduct.ID,
		SKU:            dbProduct.Sku,
		StockProductID: dbProduct.StockProductID,
		Name:           dbProduct.Name,
		Description:    dbProduct.Description,
		Category:       dbProduct.Category,
		Barcode:        dbProduct.Barcode,
		Unit:           dbProduct.Unit,
		ItemType:       dbProduct.ItemType,
		Source:         models.ProductSource(dbProduct.Source),
		BasePrice:      dbProduct.BasePrice,
		CostPrice:      dbProduct.CostPrice,
		StockQty:       dbProduct.StockQty,
		ReorderPoint:   dbProduct.ReorderPoint,
		HasVariants:    dbProduct.HasVariants,
		LastSyncAt:     dbProduct.LastSyncAt,
		CreatedAt:      dbProduct.CreatedAt,
		UpdatedAt:      dbProduct.UpdatedAt,
	}
}

func fromDBVariant(dbVariant *pgmodels.ProductVariant) *models.Variant {
	return &models.Variant{
		ID:             dbVariant.ID,
		ProductID:      dbVariant.ProductID,
		StockVariantID: dbVariant.StockVariantID,
		SKU:            dbVariant.Sku,
		Name:           dbVariant.Name,
		Size:           dbVariant.Size,
		Color:          dbVariant.Color,
		Barcode:        dbVariant.Barcode,
		SellPrice:      dbVariant.SellPrice,
		CostPrice:      dbVariant.CostPrice,
		StockQty:       dbVariant.StockQty,
		CreatedAt:      dbVariant.CreatedAt,
		UpdatedAt:      dbVariant.UpdatedAt,
	}
}
