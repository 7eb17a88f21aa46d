package journal

import (
	"errors"
)

var (
	// ErrEmptyTableName is returned when an empty table name is supplied to an engine option.
	ErrEmptyTableName = errors.New("empty table name supplied")

	// ErrEmptyJournalName is returned when an engine operation is invoked without a journal name.
	ErrEmptyJournalName = errors.New("journal name must not be empty")

	// ErrNilDatabaseConnection is returned when an engine is constructed from a nil connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrConcurrencyConflict is returned when an append raced against another writer and lost.
	ErrConcurrencyConflict = errors.New("concurrency error, no rows were affected")

	// ErrBuildingQueryFailed is returned when an SQL statement could not be built.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrQueryingEntriesFailed is returned when reading entries from the database fails.
	ErrQueryingEntriesFailed = errors.New("querying entries failed")

	// ErrAppendingEntriesFailed is returned when writing entries to the database fails.
	ErrAppendingEntriesFailed = errors.New("appending entries failed")

	// ErrScanningDBRowFailed is returned when a database row could not be scanned.
	ErrScanningDBRowFailed = errors.New("scanning database row failed")

	// ErrGettingRowsAffectedFailed is returned when the affected row count is unavailable.
	ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")

	// ErrBuildingEntryFailed is returned when a database row does not form a valid entry.
	ErrBuildingEntryFailed = errors.New("building entry from database row failed")
)

// EntryNumberUint is a type alias for uint, representing the per-journal entry number.
type EntryNumberUint = uint
