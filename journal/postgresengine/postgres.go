package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // register the postgres dialect
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/solidkit/solidkit-go/internal/adapters"
	"github.com/solidkit/solidkit-go/journal"
)

const (
	defaultEntryTableName        = "journal_entries"
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgBuildEntryFailed       = "failed to build entry from database row"
	logMsgBuildInsertQueryFailed = "failed to build insert query"
	logMsgDBExecFailed           = "database execution failed during entry append"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgQueryCompleted         = "query completed"
	logMsgEntriesAppended        = "entries appended"
	logMsgConcurrencyConflict    = "concurrency conflict detected"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "journal operation: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrJournalName           = "journal_name"
	logAttrEntryCount            = "entry_count"
	logAttrDurationMS            = "duration_ms"
	logAttrExpectedEntries       = "expected_entries"
	logAttrRowsAffected          = "rows_affected"
	logAttrExpectedMaxNumber     = "expected_max_number"
	logActionQuery               = "query"
	logActionAppend              = "append"
	colJournalName               = "journal_name"
	colEntryNumber               = "entry_number"
	colEntryText                 = "entry_text"
	colWrittenAt                 = "written_at"
	colMetadata                  = "metadata"
	cteContext                   = "context"
	cteVals                      = "vals"
	dialectPostgres              = "postgres"
	spanStatusOK                 = "ok"
	spanStatusError              = "error"
	aliasMaxNumber               = "max_number"
	castText                     = "?::text"
	castTimestamp                = "?::timestamp with time zone"
	castJsonb                    = "?::jsonb"
	castInt                      = "?::bigint"
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
	queryDuration     = time.Duration
)

// JournalStore represents a durable, append-only journal storage in PostgreSQL.
// It leverages a database adapter and supports customizable logging and table configuration.
type JournalStore struct {
	db               adapters.DBAdapter
	entryTableName   string
	logger           journal.Logger
	contextualLogger journal.ContextualLogger
	metricsCollector journal.MetricsCollector
	tracingCollector journal.TracingCollector
}

type queryResultRow struct {
	entryNumber journal.EntryNumberUint
	entryText   string
	writtenAt   time.Time
	metadata    []byte
}

// NewJournalStoreFromPGXPool creates a new JournalStore using a pgx Pool with optional configuration.
func NewJournalStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (JournalStore, error) {
	if db == nil {
		return JournalStore{}, journal.ErrNilDatabaseConnection
	}

	return newJournalStore(adapters.NewPGXAdapter(db), options...)
}

// NewJournalStoreFromSQLDB creates a new JournalStore using a sql.DB with optional configuration.
func NewJournalStoreFromSQLDB(db *sql.DB, options ...Option) (JournalStore, error) {
	if db == nil {
		return JournalStore{}, journal.ErrNilDatabaseConnection
	}

	return newJournalStore(adapters.NewSQLAdapter(db), options...)
}

// NewJournalStoreFromSQLX creates a new JournalStore using a sqlx.DB with optional configuration.
func NewJournalStoreFromSQLX(db *sqlx.DB, options ...Option) (JournalStore, error) {
	if db == nil {
		return JournalStore{}, journal.ErrNilDatabaseConnection
	}

	return newJournalStore(adapters.NewSQLXAdapter(db), options...)
}

func newJournalStore(db adapters.DBAdapter, options ...Option) (JournalStore, error) {
	store := JournalStore{
		db:             db,
		entryTableName: defaultEntryTableName,
	}

	for _, option := range options {
		if err := option(&store); err != nil {
			return JournalStore{}, err
		}
	}

	return store, nil
}

// Query retrieves all entries of the named journal in entry number order,
// together with the maximum entry number at the time of the query.
// The maximum entry number should be passed to a subsequent Append as the
// expected value for optimistic concurrency control.
func (s JournalStore) Query(ctx context.Context, journalName string) (
	journal.Entries,
	journal.EntryNumberUint,
	error,
) {

	var empty journal.Entries

	if journalName == "" {
		return empty, 0, journal.ErrEmptyJournalName
	}

	ctx, span := s.startSpan(ctx, "journal.query", journalName)

	sqlQuery, buildQueryErr := s.buildSelectQuery(journalName)
	if buildQueryErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgBuildSelectQueryFailed, logAttrError, buildQueryErr.Error())
		}
		s.finishSpan(span, spanStatusError)

		return empty, 0, buildQueryErr
	}

	rows, duration, queryErr := s.executeQuery(ctx, sqlQuery)
	if queryErr != nil {
		s.finishSpan(span, spanStatusError)
		return empty, 0, queryErr
	}
	defer s.closeRows(rows)

	entries, maxEntryNumber, scanErr := s.processQueryResults(rows)
	if scanErr != nil {
		s.finishSpan(span, spanStatusError)
		return empty, 0, scanErr
	}

	s.finishSpan(span, spanStatusOK)

	s.logOperation(
		ctx,
		logMsgQueryCompleted,
		logAttrJournalName, journalName,
		logAttrEntryCount, len(entries),
		logAttrDurationMS, s.durationToMilliseconds(duration))

	s.recordOperationDuration(ctx, logActionQuery, journalName, duration)

	return entries, maxEntryNumber, nil
}

// executeQuery executes the SQL query and returns rows with timing information.
func (s JournalStore) executeQuery(ctx context.Context, sqlQuery string) (
	adapters.DBRows,
	time.Duration,
	error,
) {

	start := time.Now()
	rows, queryErr := s.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		}

		return nil, duration, errors.Join(journal.ErrQueryingEntriesFailed, queryErr)
	}

	return rows, duration, nil
}

// closeRows safely closes database rows and logs any errors.
func (s JournalStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if s.logger != nil {
			s.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// processQueryResults processes database rows and converts them to journal entries.
func (s JournalStore) processQueryResults(rows adapters.DBRows) (
	journal.Entries,
	journal.EntryNumberUint,
	error,
) {

	var empty journal.Entries
	result := queryResultRow{}
	entries := make(journal.Entries, 0)
	maxEntryNumber := journal.EntryNumberUint(0)

	for rows.Next() {
		rowScanErr := rows.Scan(&result.entryNumber, &result.entryText, &result.writtenAt, &result.metadata)
		if rowScanErr != nil {
			if s.logger != nil {
				s.logger.Error(logMsgScanRowFailed, logAttrError, rowScanErr.Error())
			}

			return empty, 0, errors.Join(journal.ErrScanningDBRowFailed, rowScanErr)
		}

		entry, buildEntryErr := journal.BuildEntry(result.entryText, result.writtenAt, result.metadata)
		if buildEntryErr != nil {
			if s.logger != nil {
				s.logger.Error(logMsgBuildEntryFailed, logAttrError, buildEntryErr.Error())
			}

			return empty, 0, errors.Join(journal.ErrBuildingEntryFailed, buildEntryErr)
		}

		entry.Number = result.entryNumber
		entries = append(entries, entry)
		maxEntryNumber = result.entryNumber
	}

	return entries, maxEntryNumber, nil
}

// Append attempts to append one or multiple journal.Entry(s) onto the named journal,
// respecting the optimistic concurrency constraint expressed by expectedMaxEntryNumber.
//
// The expectedMaxEntryNumber should be the one returned by the Query before making
// the decision to append. If another writer appended in the meantime, the append
// affects no rows and journal.ErrConcurrencyConflict is returned.
func (s JournalStore) Append(
	ctx context.Context,
	journalName string,
	expectedMaxEntryNumber journal.EntryNumberUint,
	entry journal.Entry,
	additionalEntries ...journal.Entry,
) error {

	if journalName == "" {
		return journal.ErrEmptyJournalName
	}

	ctx, span := s.startSpan(ctx, "journal.append", journalName)

	allEntries := journal.Entries{entry}
	allEntries = append(allEntries, additionalEntries...)

	sqlQuery, buildQueryErr := s.buildAppendQuery(journalName, allEntries, expectedMaxEntryNumber)
	if buildQueryErr != nil {
		s.finishSpan(span, spanStatusError)
		return buildQueryErr
	}

	rowsAffected, duration, execErr := s.executeAppendQuery(ctx, sqlQuery)
	if execErr != nil {
		s.finishSpan(span, spanStatusError)
		return execErr
	}

	if err := s.validateAppendResult(ctx, rowsAffected, len(allEntries), journalName, expectedMaxEntryNumber); err != nil {
		s.finishSpan(span, spanStatusError)
		return err
	}

	s.finishSpan(span, spanStatusOK)

	s.logOperation(
		ctx,
		logMsgEntriesAppended,
		logAttrJournalName, journalName,
		logAttrEntryCount, len(allEntries),
		logAttrDurationMS, s.durationToMilliseconds(duration),
	)

	s.recordOperationDuration(ctx, logActionAppend, journalName, duration)

	return nil
}

// buildAppendQuery builds the appropriate SQL query for single or multiple entries.
func (s JournalStore) buildAppendQuery(
	journalName string,
	allEntries journal.Entries,
	expectedMaxEntryNumber journal.EntryNumberUint,
) (sqlQueryString, error) {

	var sqlQuery sqlQueryString
	var buildQueryErr error

	switch len(allEntries) {
	case 1:
		sqlQuery, buildQueryErr = s.buildInsertQueryForSingleEntry(journalName, allEntries[0], expectedMaxEntryNumber)

	default:
		sqlQuery, buildQueryErr = s.buildInsertQueryForMultipleEntries(journalName, allEntries, expectedMaxEntryNumber)
	}

	if buildQueryErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgBuildInsertQueryFailed, logAttrError, buildQueryErr.Error(), logAttrEntryCount, len(allEntries))
		}

		return "", buildQueryErr
	}

	return sqlQuery, nil
}

// executeAppendQuery executes the SQL append query and returns rows affected and duration.
func (s JournalStore) executeAppendQuery(ctx context.Context, sqlQuery string) (
	rowsAffectedInt64,
	queryDuration,
	error,
) {

	start := time.Now()
	tag, execErr := s.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	s.logQueryWithDuration(sqlQuery, logActionAppend, duration)

	if execErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return 0, duration, errors.Join(journal.ErrAppendingEntriesFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := tag.RowsAffected()
	if rowsAffectedErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgRowsAffectedFailed, logAttrError, rowsAffectedErr.Error())
		}

		return 0, duration, errors.Join(journal.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, duration, nil
}

// validateAppendResult checks if the append operation was successful and detects concurrency conflicts.
func (s JournalStore) validateAppendResult(
	ctx context.Context,
	rowsAffected int64,
	expectedEntryCount int,
	journalName string,
	expectedMaxEntryNumber journal.EntryNumberUint,
) error {

	if rowsAffected < int64(expectedEntryCount) {
		s.logOperation(
			ctx,
			logMsgConcurrencyConflict,
			logAttrJournalName, journalName,
			logAttrExpectedEntries, expectedEntryCount,
			logAttrRowsAffected, rowsAffected,
			logAttrExpectedMaxNumber, expectedMaxEntryNumber,
		)

		return journal.ErrConcurrencyConflict
	}

	return nil
}

func (s JournalStore) buildSelectQuery(journalName string) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.entryTableName).
		Select(colEntryNumber, colEntryText, colWrittenAt, colMetadata).
		Where(goqu.Ex{colJournalName: journalName}).
		Order(goqu.I(colEntryNumber).Asc())

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (s JournalStore) buildInsertQueryForSingleEntry(
	journalName string,
	entry journal.Entry,
	expectedMaxEntryNumber journal.EntryNumberUint,
) (sqlQueryString, error) {

	builder := goqu.Dialect(dialectPostgres)

	// Define the subquery for the CTE
	cteStmt := builder.
		From(s.entryTableName).
		Select(goqu.MAX(colEntryNumber).As(aliasMaxNumber)).
		Where(goqu.Ex{colJournalName: journalName})

	// Define the SELECT for the INSERT
	selectStmt := builder.
		From(cteContext).
		Select(
			goqu.V(journalName),
			goqu.L(fmt.Sprintf("COALESCE(%s, 0) + 1", aliasMaxNumber)),
			goqu.V(entry.Text),
			goqu.V(entry.WrittenAt),
			goqu.V(entry.MetadataJSON),
		).
		Where(goqu.COALESCE(goqu.C(aliasMaxNumber), 0).Eq(goqu.V(expectedMaxEntryNumber)))

	// Finalize the full INSERT query
	insertStmt := builder.
		Insert(s.entryTableName).
		Cols(colJournalName, colEntryNumber, colEntryText, colWrittenAt, colMetadata).
		FromQuery(selectStmt).
		With(cteContext, cteStmt)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgBuildInsertQueryFailed, logAttrError, toSQLErr.Error(), logAttrJournalName, journalName)
		}
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (s JournalStore) buildInsertQueryForMultipleEntries(
	journalName string,
	entries journal.Entries,
	expectedMaxEntryNumber journal.EntryNumberUint,
) (sqlQueryString, error) {

	builder := goqu.Dialect(dialectPostgres)

	// Define the subquery for the CTE
	cteStmt := builder.
		From(s.entryTableName).
		Select(goqu.MAX(colEntryNumber).As(aliasMaxNumber)).
		Where(goqu.Ex{colJournalName: journalName})

	// Create individual SELECT statements for each entry, carrying the
	// entry's offset so the final numbers come out as max_number + offset
	const colNumberOffset = "number_offset"

	unionStatements := make([]*goqu.SelectDataset, len(entries))
	for i, entry := range entries {
		unionStatements[i] = builder.
			Select(
				goqu.L(castInt, i+1).As(colNumberOffset),
				goqu.L(castText, entry.Text).As(colEntryText),
				goqu.L(castTimestamp, entry.WrittenAt).As(colWrittenAt),
				goqu.L(castJsonb, entry.MetadataJSON).As(colMetadata),
			)
	}

	// Combine all SELECT statements with UNION ALL
	valuesStmt := unionStatements[0]
	for i := 1; i < len(unionStatements); i++ {
		valuesStmt = valuesStmt.UnionAll(unionStatements[i])
	}

	// Finalize the full INSERT query
	valsEntryText := fmt.Sprintf("%s.%s", cteVals, colEntryText)
	valsWrittenAt := fmt.Sprintf("%s.%s", cteVals, colWrittenAt)
	valsMetadata := fmt.Sprintf("%s.%s", cteVals, colMetadata)
	numberExpr := fmt.Sprintf("COALESCE(%s, 0) + %s.%s", aliasMaxNumber, cteVals, colNumberOffset)

	insertStmt := builder.
		Insert(s.entryTableName).
		Cols(colJournalName, colEntryNumber, colEntryText, colWrittenAt, colMetadata).
		With(cteContext, cteStmt).
		With(cteVals, valuesStmt).
		FromQuery(
			builder.From(cteContext, cteVals).
				Select(
					goqu.V(journalName),
					goqu.L(numberExpr),
					goqu.I(valsEntryText),
					goqu.I(valsWrittenAt),
					goqu.I(valsMetadata),
				).
				Where(goqu.COALESCE(goqu.C(aliasMaxNumber), 0).Eq(goqu.V(expectedMaxEntryNumber))).
				Order(goqu.I(fmt.Sprintf("%s.%s", cteVals, colNumberOffset)).Asc()),
		)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgBuildInsertQueryFailed, logAttrError, toSQLErr.Error(), logAttrEntryCount, len(entries))
		}
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// logQueryWithDuration logs SQL queries with execution time at debug level if a logger is configured.
func (s JournalStore) logQueryWithDuration(
	sqlQuery string,
	action string,
	duration time.Duration,
) {

	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, s.durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level, preferring the
// contextual logger so trace correlation is preserved when tracing is enabled.
func (s JournalStore) logOperation(ctx context.Context, action string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
		return
	}

	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

// startSpan opens a tracing span for an operation if a tracing collector is configured.
func (s JournalStore) startSpan(ctx context.Context, name string, journalName string) (context.Context, journal.SpanContext) {
	if s.tracingCollector == nil {
		return ctx, nil
	}

	return s.tracingCollector.StartSpan(ctx, name, map[string]string{logAttrJournalName: journalName})
}

// finishSpan closes a tracing span if one was started.
func (s JournalStore) finishSpan(span journal.SpanContext, status string) {
	if s.tracingCollector == nil || span == nil {
		return
	}

	s.tracingCollector.FinishSpan(span, status, nil)
}

// recordOperationDuration feeds the configured metrics collector, preferring
// the context-aware interface when the collector implements it.
func (s JournalStore) recordOperationDuration(
	ctx context.Context,
	action string,
	journalName string,
	duration time.Duration,
) {

	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		"action":           action,
		logAttrJournalName: journalName,
	}

	metricName := "journal_" + action + "_duration"

	if contextualCollector, ok := s.metricsCollector.(journal.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricName, duration, labels)
		return
	}

	s.metricsCollector.RecordDuration(metricName, duration, labels)
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (s JournalStore) durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
