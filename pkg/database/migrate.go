package database

import (
	"context"
	_ "embed"
	"fmt"

	"go-jobboard-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the DDL applied by Migrate.
func Schema() string {
	return schemaSQL
}

// Migrate applies the embedded schema. Every statement is idempotent so it is
// safe to run on each start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	logger.Log.Info().Msg("database schema up to date")
	return nil
}
