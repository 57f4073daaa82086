package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_evaluation_reports",
		SQL: `CREATE TABLE IF NOT EXISTS evaluation_reports (
  id                  UUID        PRIMARY KEY,
  filename            TEXT        NOT NULL,
  archive_key         TEXT        UNIQUE,
  record_count        INTEGER     NOT NULL CHECK (record_count >= 0),
  total_alerts        INTEGER     NOT NULL CHECK (total_alerts >= 0),
  low_stock_count     INTEGER     NOT NULL CHECK (low_stock_count >= 0),
  expiring_soon_count INTEGER     NOT NULL CHECK (expiring_soon_count >= 0),
  healthy             BOOLEAN     NOT NULL,
  evaluated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_evaluation_reports_evaluated_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_evaluation_reports_evaluated_at ON evaluation_reports (evaluated_at);`,
	},
	{
		Name: "create_index_evaluation_reports_healthy",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_evaluation_reports_healthy ON evaluation_reports (healthy);`,
	},
}

// EnsureMigrated checks if the 'evaluation_reports' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass('public.evaluation_reports') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.String("error_message", fmt.Sprintf("failed to check sentinel table: %v", err)),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.String("detail", "schema already exists, skipping migration"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.String("error_message", err.Error()),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
