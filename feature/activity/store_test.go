package activity

import (
	"context"
	"regexp"
	"testing"
	"time"

	"file-agent/feature/files"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStore_Observe(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `tool_activities`")).
		WithArgs("write_file", "report.txt", true, "", int64(10), int64(25), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	store.Observe(context.Background(), files.Invocation{
		Operation: "write_file",
		Filename:  "report.txt",
		Success:   true,
		Size:      10,
		Duration:  25 * time.Millisecond,
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ObserveFailureIsLogged(t *testing.T) {
	db, mock := setupMockDB(t)
	core, logs := observer.New(zap.WarnLevel)
	store := NewStore(db, zap.New(core))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `tool_activities`")).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	assert.NotPanics(t, func() {
		store.Observe(context.Background(), files.Invocation{Operation: "read_file", ErrorKind: files.ErrorKindNotFound})
	})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Failed to record tool activity", logs.All()[0].Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Recent(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db, nil)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "operation", "filename", "success", "error", "size", "duration_ms", "created_at"}).
		AddRow(2, "read_file", "missing.txt", false, "File 'missing.txt' not found", 0, 1, now).
		AddRow(1, "write_file", "a.txt", true, "", 3, 4, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `tool_activities` ORDER BY id desc LIMIT")).WillReturnRows(rows)

	records, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint(2), records[0].ID)
	assert.False(t, records[0].Success)
	assert.Equal(t, "File 'missing.txt' not found", records[0].Error)
	assert.Equal(t, "write_file", records[1].Operation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_RecentError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db, nil)

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	records, err := store.Recent(context.Background(), 10)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, records)
}

func TestRecord_TableName(t *testing.T) {
	assert.Equal(t, "tool_activities", Record{}.TableName())
}
