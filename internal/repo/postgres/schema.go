package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"entgo.io/ent/dialect"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the DDL applied by Migrate.
func Schema() string {
	return schemaSQL
}

// Migrate creates any missing table or index. It is safe to run repeatedly.
func Migrate(ctx context.Context, drv dialect.ExecQuerier) error {
	if err := drv.Exec(ctx, schemaSQL, []any{}, nil); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
