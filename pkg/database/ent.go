package database

import (
	"context"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/Alijeyrad/dental_backend/config"
)

// NewDriver opens the clinic database and wraps it in an ent SQL driver.
func NewDriver(ctx context.Context, cfg config.DatabaseConfig) (*entsql.Driver, error) {
	db, err := Open(ctx, FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	return entsql.OpenDB(dialect.Postgres, db), nil
}
