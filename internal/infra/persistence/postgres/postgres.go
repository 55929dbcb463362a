package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"contacts/config"
	"contacts/internal/domain/lifecycle"
	"contacts/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the contacts database. The connection is verified, and the schema
// migrated when enabled, on application start.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement operations use txManager.Execute explicitly.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	monitor := &poolMonitor{logger: params.Logger, stats: sqlDB.Stats}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := prepareDatabase(startCtx, sqlDB, params.Config, params.Logger); err != nil {
				return err
			}

			go monitor.run(monitorCtx, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// prepareDatabase verifies connectivity and applies pending migrations when enabled.
func prepareDatabase(ctx context.Context, sqlDB *sql.DB, cfg *config.Config, logger *slog.Logger) error {
	pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	// Deployments that migrate out of band leave autoMigrate off
	if cfg.Migration == nil || !cfg.Migration.AutoMigrate {
		return nil
	}

	if err := Migrate(ctx, sqlDB); err != nil {
		return err
	}
	logger.Info("Database migrations applied")

	return nil
}

// poolMonitor reports connection pool contention between two samples.
type poolMonitor struct {
	logger *slog.Logger
	stats  func() sql.DBStats
}

// run samples pool stats every interval until ctx is cancelled at shutdown.
func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe logs when requests waited for a connection since the previous sample.
func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) {
	// Counters are cumulative, so only the delta says anything about this window
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return
	}
	waitDurationDelta := cur.WaitDuration - prev.WaitDuration

	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	// Short waits are normal under bursts; long ones mean the pool is undersized
	level := slog.LevelDebug
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}
	m.logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
}
