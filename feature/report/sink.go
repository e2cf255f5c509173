package report

import (
	"fmt"

	"event-reconciler/feature/report/models"

	"gorm.io/gorm"
)

// createReportTable matches the original report store schema exactly.
const createReportTable = `CREATE TABLE IF NOT EXISTS report (
	timestamp integer,
	player_id integer,
	event_id integer,
	error_id text,
	json_server text,
	json_client text
)`

// appendBatchSize bounds the row count per INSERT statement.
const appendBatchSize = 500

// EnsureSchema creates the report table if it does not exist. It is
// idempotent and never drops or alters existing rows.
func EnsureSchema(db *gorm.DB) error {
	if err := db.Exec(createReportTable).Error; err != nil {
		return fmt.Errorf("%w: creating report table: %w", ErrSinkUnavailable, err)
	}
	return nil
}

// AppendRecords appends the records to the report table in batches.
// There is no uniqueness constraint: re-running a day appends a second full
// copy of its records, which is accepted behavior.
func AppendRecords(db *gorm.DB, records []models.ReportRecord) error {
	if len(records) == 0 {
		return nil
	}

	if err := db.CreateInBatches(records, appendBatchSize).Error; err != nil {
		return fmt.Errorf("%w: appending report records: %w", ErrSinkUnavailable, err)
	}
	return nil
}
