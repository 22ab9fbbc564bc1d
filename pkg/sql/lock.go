package sql

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/jmoiron/sqlx"
)

// withSessionLevelLock holds a postgres advisory lock on a dedicated connection until release.
func withSessionLevelLock(ctx context.Context, name string, db *sqlx.DB) (release func() error, err error) {
	lockID, err := getLockIDByName(name)
	if err != nil {
		return nil, err
	}

	conn, err := db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("get connection for %s: %w", name, err)
	}

	_, err = conn.ExecContext(ctx, "select pg_advisory_lock($1)", lockID)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("get lock for %s: %w", name, err)
	}

	return func() error {
		defer conn.Close()

		var released bool
		err := conn.GetContext(ctx, &released, "select pg_advisory_unlock($1)", lockID)
		if err != nil {
			return fmt.Errorf("release lock for %s: %w", name, err)
		}
		if !released {
			return fmt.Errorf("release lock for %s: lock wasn't released", name)
		}

		return nil
	}, nil
}

func getLockIDByName(name string) (int64, error) {
	hash := fnv.New64a()
	_, err := hash.Write([]byte(name))
	if err != nil {
		return 0, fmt.Errorf("create hash for lock with name %s: %w", name, err)
	}

	return int64(hash.Sum64()), nil
}
