package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreUnavailable wraps every failure of the underlying database or
	// file system: connection loss, timeouts, failed statements.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrChatNotFound is returned when the requested conversation has never
	// been written.
	ErrChatNotFound = errors.New("chat was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the conversation was modified after the caller read it.
	ErrVersionConflict = errors.New("chat version conflict occurred")

	// ErrImageNotFound is returned when an image name does not resolve to a
	// stored file.
	ErrImageNotFound = errors.New("image was not found")

	// ErrInvalidImageName is returned for names that are empty or try to
	// escape the image directory.
	ErrInvalidImageName = errors.New("invalid image name")

	// ErrUnsupportedDSN is returned when no backend can be derived from the
	// configured DSN.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are wrapped together with
// [ErrStoreUnavailable] when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
