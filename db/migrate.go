package db

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS seed_plans (
	id         SERIAL PRIMARY KEY,
	ref        UUID NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	stage_type TEXT NOT NULL,
	size       INTEGER NOT NULL,
	orderings  TEXT[] NOT NULL DEFAULT '{}',
	settings   JSONB NOT NULL DEFAULT '{}',
	seeds      JSONB NOT NULL,
	stage      JSONB NOT NULL,
	export_url TEXT,
	created_by TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT seed_plans_name_key UNIQUE (name),
	CONSTRAINT chk_seed_plans_stage_type CHECK (stage_type IN ('single_elimination', 'double_elimination', 'round_robin'))
);

CREATE INDEX IF NOT EXISTS idx_seed_plans_created_at ON seed_plans (created_at DESC);
`

// Migrate creates the tables the service needs when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
