package report

import (
	"testing"
	"time"

	"event-reconciler/feature/report/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func sampleRecords(n int) []models.ReportRecord {
	ts := time.Date(2021, 1, 5, 12, 0, 0, 0, time.Local).Unix()
	records := make([]models.ReportRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, models.ReportRecord{
			Timestamp:  ts + int64(i),
			PlayerID:   int64(i + 1),
			EventID:    5,
			ErrorID:    "E1",
			JSONServer: "s",
			JSONClient: "c",
		})
	}
	return records
}

func TestEnsureSchema(t *testing.T) {
	t.Run("Creates Table", func(t *testing.T) {
		db := openTestDB(t)

		require.NoError(t, EnsureSchema(db))
		assert.True(t, db.Migrator().HasTable("report"))
	})

	t.Run("Idempotent And Preserves Rows", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, EnsureSchema(db))
		require.NoError(t, AppendRecords(db, sampleRecords(3)))

		// Second ensure must neither fail nor touch existing rows.
		require.NoError(t, EnsureSchema(db))

		var count int64
		require.NoError(t, db.Model(&models.ReportRecord{}).Count(&count).Error)
		assert.EqualValues(t, 3, count)
	})
}

func TestAppendRecords(t *testing.T) {
	t.Run("Appends Rows", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, EnsureSchema(db))

		require.NoError(t, AppendRecords(db, sampleRecords(2)))

		var rows []models.ReportRecord
		require.NoError(t, db.Order("timestamp").Find(&rows).Error)
		assert.Equal(t, sampleRecords(2), rows)
	})

	t.Run("Rerun Duplicates Rows", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, EnsureSchema(db))

		require.NoError(t, AppendRecords(db, sampleRecords(2)))
		require.NoError(t, AppendRecords(db, sampleRecords(2)))

		var count int64
		require.NoError(t, db.Model(&models.ReportRecord{}).Count(&count).Error)
		assert.EqualValues(t, 4, count)
	})

	t.Run("Empty Set Is A No-Op", func(t *testing.T) {
		db := openTestDB(t)

		// No table exists; an empty append must not touch the store at all.
		require.NoError(t, AppendRecords(db, nil))
	})

	t.Run("Write Failure", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		db, err := gorm.Open(mysql.New(mysql.Config{
			Conn:                      sqlDB,
			SkipInitializeWithVersion: true,
		}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `report`").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err = AppendRecords(db, sampleRecords(1))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSinkUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
