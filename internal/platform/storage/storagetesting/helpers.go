package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	pgmodels "github.com/siamscreen/stocksync/internal/platform/storage/gen/postgres/public/model"
	"github.com/siamscreen/stocksync/internal/platform/storage/gen/postgres/public/table"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertProducts is a helper test function to insert products.
func InsertProducts(t *testing.T, exc qrm.Executable, products ...pgmodels.Product) {
	t.Helper()

	if len(products) == 0 {
		return
	}

	toInsert := make([]pgmodels.Product, 0, len(products))
	toInsert = append(toInsert, products...)

	_, err := table.Product.INSERT(table.Product.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert products", err)
	}
}

// InsertVariants is a helper test function to insert product variants.
func InsertVariants(t *testing.T, exc qrm.Executable, variants ...pgmodels.ProductVariant) {
	t.Helper()

	if len(variants) == 0 {
		return
	}

	toInsert := make([]pgmodels.ProductVariant, 0, len(variants))
	toInsert = append(toInsert, variants...)

	_, err := table.ProductVariant.INSERT(table.ProductVariant.AllColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert variants", err)
	}
}

// GetProducts is a helper test function to get all products.
func GetProducts(t *testing.T, queryable qrm.Queryable) []pgmodels.Product {
	t.Helper()

	products := []pgmodels.Product{}
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.IS_NOT_NULL()).
		Query(queryable, &products)
	if err != nil {
		t.Fatal("can't get products", err)
	}

	return products
}

// GetVariants is a helper test function to get all product variants.
func GetVariants(t *testing.T, queryable qrm.Queryable) []pgmodels.ProductVariant {
	t.Helper()

	variants := []pgmodels.ProductVariant{}
	err := table.ProductVariant.SELECT(table.ProductVariant.AllColumns).
		WHERE(table.ProductVariant.ID.IS_NOT_NULL()).
		Query(queryable, &variants)
	if err != nil {
		t.Fatal("can't get variants", err)
	}

	return variants
}

// GetProductBySKU is a helper test function to get a product by SKU.
func GetProductBySKU(t *testing.T, queryable qrm.Queryable, sku string) *pgmodels.Product {
	t.Helper()

	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.Sku.EQ(pg.String(sku))).
		Query(queryable, &product)
	if err != nil {
		t.Fatal("can't get product by SKU", err)
	}

	return &product
}

// CleanupData is a helper test function to delete all products and variants.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.ProductVariant.DELETE().WHERE(table.ProductVariant.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete variants data", err)
	}

	_, err = table.Product.DELETE().WHERE(table.Product.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete products data", err)
	}
}
