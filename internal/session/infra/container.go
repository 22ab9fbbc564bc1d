package infra

import (
	"github.com/klwxsrx/hawk-session-service/data/sql/session"
	"github.com/klwxsrx/hawk-session-service/internal/pkg/cmd"
	"github.com/klwxsrx/hawk-session-service/internal/session/domain"
	"github.com/klwxsrx/hawk-session-service/internal/session/infra/memory"
	"github.com/klwxsrx/hawk-session-service/internal/session/infra/sql"
	"github.com/klwxsrx/hawk-session-service/pkg/lazy"
	pkgsql "github.com/klwxsrx/hawk-session-service/pkg/sql"
)

type RepositoryContainer struct {
	AccountRepo lazy.Loader[domain.AccountRepository]
	TokenRepo   lazy.Loader[domain.TokenRepository]
}

func NewSQLContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[RepositoryContainer] {
	return lazy.New(func() (RepositoryContainer, error) {
		dbMigrations.MustLoad().MustRegister(session.Migrations)

		return RepositoryContainer{
			AccountRepo: lazy.New(func() (domain.AccountRepository, error) {
				return sql.NewAccountRepository(db.MustLoad()), nil
			}),
			TokenRepo: lazy.New(func() (domain.TokenRepository, error) {
				return sql.NewTokenRepository(db.MustLoad()), nil
			}),
		}, nil
	})
}

// NewMemoryContainer keeps state in process, used for local runs and tests.
func NewMemoryContainer(
	accountRepo *memory.AccountRepository,
	tokenRepo *memory.TokenRepository,
) lazy.Loader[RepositoryContainer] {
	return lazy.Value(RepositoryContainer{
		AccountRepo: lazy.Value[domain.AccountRepository](accountRepo),
		TokenRepo:   lazy.Value[domain.TokenRepository](tokenRepo),
	})
}
