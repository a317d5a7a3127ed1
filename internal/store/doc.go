// Package store provides a SQLite-backed advancement registry with per-player
// progress. *Store implements host.Server, so it stands in for a running
// server when advancements are managed from the command line.
//
// Tables:
//   - advancements: rendered documents keyed by "namespace:key"
//   - criteria: criterion names per advancement, in document order
//   - awards: criteria awarded to each player
//
// Removing an advancement cascades to its criteria and awards. Reloading an
// advancement keeps awards for criteria that still exist.
//
// # Ordering
//
// Write order is recorded in seq INTEGER columns (a logical clock), never
// timestamps. Queries order by position or seq and then by key, so results
// are identical across runs.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
