// Package store persists conversations, the per-user chat index and
// uploaded images.
//
// Two SQL backends are supported behind the same repositories: PostgreSQL
// via the pgx stdlib driver and SQLite via go-sqlite3. The backend is
// chosen from the DSN. Queries are built with squirrel using the
// placeholder format of the selected dialect, and every conversation
// carries an optimistic-concurrency version that is bumped by each write.
//
// Driver failures are wrapped with [ErrStoreUnavailable]; domain outcomes
// are reported with [ErrChatNotFound] and [ErrVersionConflict].
package store
