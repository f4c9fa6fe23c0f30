// Package journal records the outcome of every storage operation.
//
// Entries are written through GORM into the storage_journal table when a
// database is configured; otherwise the Nop recorder discards them. Recording
// is best effort: the caller logs a failed write and carries on.
//
// # HTTP Endpoints
//
//   - GET /journal : Returns the most recent entries (supports ?limit=N, max 500).
package journal
