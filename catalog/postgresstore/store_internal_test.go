package postgresstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solidkit/solidkit-go/catalog"
)

func buildTestStore(t *testing.T, options ...Option) ProductStore {
	t.Helper()

	store, err := newProductStore(nil, options...)
	assert.NoError(t, err)

	return store
}

func Test_BuildSelectQuery_EmptyFilterMatchesAnyProduct(t *testing.T) {
	store := buildTestStore(t)
	filter := catalog.BuildProductFilter().MatchingAnyProduct()

	sqlQuery, err := store.buildSelectQuery(filter)

	assert.NoError(t, err)
	assert.Contains(t, sqlQuery, `FROM "products"`)
	assert.NotContains(t, sqlQuery, "WHERE")
	assert.Contains(t, sqlQuery, `ORDER BY "product_name" ASC`)
}

func Test_BuildSelectQuery_SingleColor(t *testing.T) {
	store := buildTestStore(t)
	filter := catalog.BuildProductFilter().
		Matching().
		AnyColorOf(catalog.ColorGreen).
		Finalize()

	sqlQuery, err := store.buildSelectQuery(filter)

	assert.NoError(t, err)
	assert.Contains(t, sqlQuery, `"color" IN ('green')`)
	assert.NotContains(t, sqlQuery, `"size"`)
}

func Test_BuildSelectQuery_ColorAndSize(t *testing.T) {
	store := buildTestStore(t)
	filter := catalog.BuildProductFilter().
		Matching().
		AnyColorOf(catalog.ColorGreen, catalog.ColorBlue).
		AndAnySizeOf(catalog.SizeLarge).
		Finalize()

	sqlQuery, err := store.buildSelectQuery(filter)

	assert.NoError(t, err)
	assert.Contains(t, sqlQuery, `"color" IN ('blue', 'green')`)
	assert.Contains(t, sqlQuery, `"size" IN ('large')`)
	assert.Contains(t, sqlQuery, " AND ")
}

func Test_BuildSelectQuery_MultipleItemsAreCombinedWithOr(t *testing.T) {
	store := buildTestStore(t)
	filter := catalog.BuildProductFilter().
		Matching().
		AnyColorOf(catalog.ColorRed).
		OrMatching().
		AnySizeOf(catalog.SizeSmall).
		Finalize()

	sqlQuery, err := store.buildSelectQuery(filter)

	assert.NoError(t, err)
	assert.Contains(t, sqlQuery, `"color" IN ('red')`)
	assert.Contains(t, sqlQuery, `"size" IN ('small')`)
	assert.Contains(t, sqlQuery, " OR ")
}

func Test_BuildSelectQuery_UsesConfiguredTableName(t *testing.T) {
	store := buildTestStore(t, WithTableName("catalog_products"))
	filter := catalog.BuildProductFilter().MatchingAnyProduct()

	sqlQuery, err := store.buildSelectQuery(filter)

	assert.NoError(t, err)
	assert.Contains(t, sqlQuery, `FROM "catalog_products"`)
}

func Test_BuildInsertQuery(t *testing.T) {
	store := buildTestStore(t)

	product, err := catalog.BuildProduct("Apple", catalog.ColorGreen, catalog.SizeSmall)
	assert.NoError(t, err)

	sqlQuery, buildErr := store.buildInsertQuery(product)

	assert.NoError(t, buildErr)
	assert.Contains(t, sqlQuery, `INSERT INTO "products"`)
	assert.Contains(t, sqlQuery, `("product_name", "color", "size")`)
	assert.Contains(t, sqlQuery, "'Apple'")
	assert.Contains(t, sqlQuery, "'green'")
	assert.Contains(t, sqlQuery, "'small'")
}

func Test_Options_Validation(t *testing.T) {
	_, err := newProductStore(nil, WithTableName(""))

	assert.ErrorIs(t, err, ErrEmptyTableName)
}

func Test_NewProductStore_RejectsNilConnections(t *testing.T) {
	_, pgxErr := NewProductStoreFromPGXPool(nil)
	_, sqlErr := NewProductStoreFromSQLDB(nil)
	_, sqlxErr := NewProductStoreFromSQLX(nil)

	assert.ErrorIs(t, pgxErr, ErrNilDatabaseConnection)
	assert.ErrorIs(t, sqlErr, ErrNilDatabaseConnection)
	assert.ErrorIs(t, sqlxErr, ErrNilDatabaseConnection)
}
