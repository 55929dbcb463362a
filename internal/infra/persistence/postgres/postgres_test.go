package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"contacts/config"
	"contacts/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubGooseUp(t *testing.T) *bool {
	t.Helper()

	called := false
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		called = true

		return nil
	}

	return &called
}

func TestPrepareDatabase(t *testing.T) {
	t.Run("pings and migrates when enabled", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer sqlDB.Close()
		mock.ExpectPing()
		migrated := stubGooseUp(t)

		cfg := &config.Config{Migration: &config.MigrationConfig{AutoMigrate: true}}
		require.NoError(t, prepareDatabase(context.Background(), sqlDB, cfg, newDiscardLogger()))

		assert.True(t, *migrated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips migrations when disabled", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer sqlDB.Close()
		mock.ExpectPing()
		migrated := stubGooseUp(t)

		require.NoError(t, prepareDatabase(context.Background(), sqlDB, &config.Config{}, newDiscardLogger()))

		assert.False(t, *migrated)
	})

	t.Run("ping failure aborts start", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer sqlDB.Close()
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		migrated := stubGooseUp(t)

		cfg := &config.Config{Migration: &config.MigrationConfig{AutoMigrate: true}}
		err = prepareDatabase(context.Background(), sqlDB, cfg, newDiscardLogger())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ping PostgreSQL")
		assert.False(t, *migrated)
	})
}

func TestPoolMonitor_Observe(t *testing.T) {
	var buf bytes.Buffer
	m := &poolMonitor{logger: newBufferedLogger(&buf)}
	ctx := context.Background()

	m.observe(ctx, sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Empty(t, buf.String())

	m.observe(ctx, sql.DBStats{}, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")

	buf.Reset()
	m.observe(ctx, sql.DBStats{}, sql.DBStats{WaitCount: 1, WaitDuration: time.Second})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "avgWait=1s")
}

func TestPoolMonitor_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	m := &poolMonitor{logger: newDiscardLogger(), stats: func() sql.DBStats { return sql.DBStats{} }}

	go func() {
		m.run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
