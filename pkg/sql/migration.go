package sql

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/klwxsrx/hawk-session-service/pkg/log"
)

const migrationLock = "perform_migration_lock"

var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

type Migrator struct {
	db     Database
	logger log.Logger
}

func NewMigrator(db Database, logger log.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// Execute applies goose migrations found in the root of each source.
// Concurrent instances are serialized by an advisory lock.
func (m *Migrator) Execute(ctx context.Context, sources ...fs.FS) (err error) {
	release, err := withSessionLevelLock(ctx, migrationLock, m.db.DB())
	if err != nil {
		return fmt.Errorf("get migration lock: %w", err)
	}
	defer func() {
		releaseErr := release()
		if releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()

	if err = goose.SetDialect(driverName); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}

	defer goose.SetBaseFS(nil)
	for _, source := range sources {
		goose.SetBaseFS(source)
		if err = gooseUpContext(ctx, m.db.DB().DB, "."); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	m.logger.Info(ctx, "migrations applied")
	return nil
}
