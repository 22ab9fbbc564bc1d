package cmd

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/klwxsrx/hawk-session-service/pkg/log"
	"github.com/klwxsrx/hawk-session-service/pkg/sql"
)

type (
	SQLMigrations interface {
		MustRegister(sources ...fs.FS)
	}

	sqlMigrations struct {
		ctx    context.Context
		db     sql.Database
		logger log.Logger
	}
)

func NewSQLMigrations(
	ctx context.Context,
	db sql.Database,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:    ctx,
		db:     db,
		logger: logger,
	}
}

// MustRegister applies the sources right away, a failed migration is fatal.
func (s *sqlMigrations) MustRegister(sources ...fs.FS) {
	if len(sources) == 0 {
		return
	}

	err := sql.NewMigrator(s.db, s.logger).Execute(s.ctx, sources...)
	if err != nil {
		panic(fmt.Errorf("execute migrations: %w", err))
	}
}
