package postgresstore

// Logger interface for SQL query logging, operational messages, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option defines a functional option for configuring a ProductStore.
type Option func(*ProductStore) error

// WithTableName sets the product table name for the ProductStore.
func WithTableName(tableName string) Option {
	return func(s *ProductStore) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		s.productTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the ProductStore.
// SQL queries with execution timing are logged at debug level, operational
// messages at info level, and failures at warn or error level.
func WithLogger(logger Logger) Option {
	return func(s *ProductStore) error {
		s.logger = logger
		return nil
	}
}
