// Package report implements the daily error-event reconciliation pipeline.
//
// One run covers one calendar day:
//
//  1. DayWindow turns the requested date into a half-open unix-second
//     interval [midnight, next midnight).
//  2. LoadEvents reads the client and server CSV exports (local files or
//     s3:// objects) and keeps only in-window rows.
//  3. LoadRegistry reads the cheater registry, collapsing duplicate rows to
//     the earliest ban per player.
//  4. Join inner-joins both streams on error_id; Exclude drops pairs whose
//     player was banned strictly before the event's server-side day; Project
//     renames the survivors into the persisted report shape.
//  5. EnsureSchema/AppendRecords persist the result. The table is created
//     idempotently and rows are only ever appended, so re-running a day
//     duplicates its rows.
//
// The stages are pure functions over in-memory slices; Service only wires
// them together sequentially. Any stage failure aborts the run before the
// sink is written.
//
// The package also serves read-only HTTP queries over the report table
// (Handler), used by the serve command.
package report
