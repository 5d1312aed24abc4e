package modelstesting

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/siamscreen/stocksync/internal/platform/models"
)

// FakeProduct returns models.Product with fake data.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		SKU:            faker.Word(),
		StockProductID: lo.ToPtr(faker.UUIDDigit()),
		Name:           faker.Word(),
		Description:    lo.ToPtr(faker.Sentence()),
		Category:       lo.ToPtr(faker.Word()),
		Barcode:        lo.ToPtr(faker.CCNumber()),
		Unit:           lo.ToPtr(faker.Word()),
		ItemType:       models.ItemTypeFinishedGood,
		Source:         models.SourceStock,
		BasePrice:      float64(rand.Intn(10000)) / 100,
		CostPrice:      float64(rand.Intn(10000)) / 100,
		StockQty:       rand.Int31n(1000),
		ReorderPoint:   rand.Int31n(100),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeVariant returns models.Variant with fake data.
func FakeVariant(ops ...func(v *models.Variant)) models.Variant {
	variant := models.Variant{
		StockVariantID: lo.ToPtr(faker.UUIDDigit()),
		SKU:            faker.Word(),
		Name:           faker.Word(),
		Size:           "M",
		Color:          faker.Word(),
		Barcode:        lo.ToPtr(faker.CCNumber()),
		SellPrice:      float64(rand.Intn(10000)) / 100,
		CostPrice:      float64(rand.Intn(10000)) / 100,
		StockQty:       rand.Int31n(1000),
	}

	for _, op := range ops {
		op(&variant)
	}

	return variant
}
