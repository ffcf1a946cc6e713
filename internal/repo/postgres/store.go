// Package postgres is the PostgreSQL repo.Store. Statements are built with
// ent's dialect/sql builder and run through an ent SQL driver.
package postgres

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/Alijeyrad/dental_backend/internal/repo"
)

type Store struct {
	*queries
	drv *entsql.Driver
}

var _ repo.Store = (*Store)(nil)

func New(drv *entsql.Driver) *Store {
	return &Store{queries: &queries{ex: drv}, drv: drv}
}

func (s *Store) WithTx(ctx context.Context, fn repo.TxFunc) error {
	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(ctx, &queries{ex: tx}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.drv.DB().PingContext(ctx)
}

func (s *Store) Close() error {
	return s.drv.Close()
}
