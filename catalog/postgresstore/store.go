package postgresstore

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // register the postgres dialect
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/solidkit/solidkit-go/catalog"
	"github.com/solidkit/solidkit-go/internal/adapters"
)

var (
	// ErrEmptyTableName occurs when an empty table name is passed to WithTableName.
	ErrEmptyTableName = errors.New("table name must not be empty")

	// ErrNilDatabaseConnection occurs when a nil database connection is supplied.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrBuildingQueryFailed occurs when building an SQL query fails.
	ErrBuildingQueryFailed = errors.New("building the query failed")

	// ErrQueryingProductsFailed occurs when querying products from the database fails.
	ErrQueryingProductsFailed = errors.New("querying products failed")

	// ErrInsertingProductFailed occurs when inserting a product into the database fails.
	ErrInsertingProductFailed = errors.New("inserting product failed")

	// ErrScanningDBRowFailed occurs when scanning a database row fails.
	ErrScanningDBRowFailed = errors.New("scanning database row failed")

	// ErrBuildingProductFailed occurs when a database row does not map to a valid product.
	ErrBuildingProductFailed = errors.New("building product from database row failed")
)

const (
	defaultProductTableName = "products"
	colProductName          = "product_name"
	colColor                = "color"
	colSize                 = "size"
	dialectPostgres         = "postgres"
	logMsgSQLExecuted       = "executed sql for: "
	logMsgProductsQueried   = "products queried"
	logMsgProductAdded      = "product added"
	logAttrError            = "error"
	logAttrQuery            = "query"
	logAttrProductCount     = "product_count"
	logAttrProductName      = "product_name"
	logAttrDurationMS       = "duration_ms"
	logActionQuery          = "query"
	logActionAdd            = "add"
)

// ProductStore persists products in a PostgreSQL table and answers filtered queries.
type ProductStore struct {
	db               adapters.DBAdapter
	productTableName string
	logger           Logger
}

// NewProductStoreFromPGXPool creates a new ProductStore using a pgx Pool with optional configuration.
func NewProductStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (ProductStore, error) {
	if db == nil {
		return ProductStore{}, ErrNilDatabaseConnection
	}

	return newProductStore(adapters.NewPGXAdapter(db), options...)
}

// NewProductStoreFromSQLDB creates a new ProductStore using a sql.DB with optional configuration.
func NewProductStoreFromSQLDB(db *sql.DB, options ...Option) (ProductStore, error) {
	if db == nil {
		return ProductStore{}, ErrNilDatabaseConnection
	}

	return newProductStore(adapters.NewSQLAdapter(db), options...)
}

// NewProductStoreFromSQLX creates a new ProductStore using a sqlx.DB with optional configuration.
func NewProductStoreFromSQLX(db *sqlx.DB, options ...Option) (ProductStore, error) {
	if db == nil {
		return ProductStore{}, ErrNilDatabaseConnection
	}

	return newProductStore(adapters.NewSQLXAdapter(db), options...)
}

func newProductStore(db adapters.DBAdapter, options ...Option) (ProductStore, error) {
	store := ProductStore{
		db:               db,
		productTableName: defaultProductTableName,
	}

	for _, option := range options {
		if err := option(&store); err != nil {
			return ProductStore{}, err
		}
	}

	return store, nil
}

// Add inserts a product into the store.
func (s ProductStore) Add(ctx context.Context, product catalog.Product) error {
	sqlQuery, buildQueryErr := s.buildInsertQuery(product)
	if buildQueryErr != nil {
		return buildQueryErr
	}

	start := time.Now()
	_, execErr := s.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(sqlQuery, logActionAdd, duration)

	if execErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgProductAdded, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return errors.Join(ErrInsertingProductFailed, execErr)
	}

	if s.logger != nil {
		s.logger.Info(logMsgProductAdded, logAttrProductName, product.Name())
	}

	return nil
}

// Query retrieves all products matching the filter, in name order.
// An empty filter matches every product.
func (s ProductStore) Query(ctx context.Context, filter catalog.Filter) (catalog.Products, error) {
	var empty catalog.Products

	sqlQuery, buildQueryErr := s.buildSelectQuery(filter)
	if buildQueryErr != nil {
		return empty, buildQueryErr
	}

	start := time.Now()
	rows, queryErr := s.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgProductsQueried, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		}

		return empty, errors.Join(ErrQueryingProductsFailed, queryErr)
	}

	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			if s.logger != nil {
				s.logger.Warn(logMsgProductsQueried, logAttrError, closeErr.Error())
			}
		}
	}()

	products, scanErr := s.processQueryResults(rows)
	if scanErr != nil {
		return empty, scanErr
	}

	if s.logger != nil {
		s.logger.Info(
			logMsgProductsQueried,
			logAttrProductCount, len(products),
			logAttrDurationMS, s.durationToMilliseconds(duration))
	}

	return products, nil
}

func (s ProductStore) processQueryResults(rows adapters.DBRows) (catalog.Products, error) {
	var empty catalog.Products
	var name, color, size string

	products := make(catalog.Products, 0)

	for rows.Next() {
		if rowScanErr := rows.Scan(&name, &color, &size); rowScanErr != nil {
			return empty, errors.Join(ErrScanningDBRowFailed, rowScanErr)
		}

		product, buildErr := catalog.BuildProduct(name, catalog.Color(color), catalog.Size(size))
		if buildErr != nil {
			return empty, errors.Join(ErrBuildingProductFailed, buildErr)
		}

		products = append(products, product)
	}

	return products, nil
}

func (s ProductStore) buildInsertQuery(product catalog.Product) (string, error) {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(s.productTableName).
		Cols(colProductName, colColor, colSize).
		Vals(goqu.Vals{product.Name(), product.Color().String(), product.Size().String()})

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (s ProductStore) buildSelectQuery(filter catalog.Filter) (string, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.productTableName).
		Select(colProductName, colColor, colSize).
		Order(goqu.I(colProductName).Asc())

	selectStmt = addWhereClause(filter, selectStmt)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// addWhereClause translates the filter items into SQL: the colors and sizes
// of one item are matched with IN, both sides are combined with AND, and the
// items are combined with OR. An empty filter adds no WHERE clause at all.
func addWhereClause(filter catalog.Filter, selectStmt *goqu.SelectDataset) *goqu.SelectDataset {
	if len(filter.Items()) == 0 {
		return selectStmt
	}

	itemsExpressions := make([]goqu.Expression, 0, len(filter.Items()))

	for _, item := range filter.Items() {
		itemExpressions := make([]goqu.Expression, 0, 2)

		if colors := item.Colors(); len(colors) > 0 {
			colorValues := make([]string, len(colors))
			for i, color := range colors {
				colorValues[i] = color.String()
			}

			itemExpressions = append(itemExpressions, goqu.C(colColor).In(colorValues))
		}

		if sizes := item.Sizes(); len(sizes) > 0 {
			sizeValues := make([]string, len(sizes))
			for i, size := range sizes {
				sizeValues[i] = size.String()
			}

			itemExpressions = append(itemExpressions, goqu.C(colSize).In(sizeValues))
		}

		if len(itemExpressions) == 0 {
			continue
		}

		itemsExpressions = append(itemsExpressions, goqu.And(itemExpressions...))
	}

	if len(itemsExpressions) == 0 {
		return selectStmt
	}

	return selectStmt.Where(goqu.Or(itemsExpressions...))
}

// logQueryWithDuration logs SQL queries with execution time at debug level if a logger is configured.
func (s ProductStore) logQueryWithDuration(
	sqlQuery string,
	action string,
	duration time.Duration,
) {

	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, s.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (s ProductStore) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
