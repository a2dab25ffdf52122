package repo

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
)

// statements are applied in order inside one transaction. Every statement is idempotent.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
	account_id bigserial PRIMARY KEY,
	email text NOT NULL UNIQUE,
	password_hash text NOT NULL,
	role text NOT NULL DEFAULT 'contributor' CHECK (role IN ('contributor', 'moderator', 'admin')),
	created_at timestamptz NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS activities (
	activity_id bigserial PRIMARY KEY,
	title text NOT NULL,
	description text NOT NULL,
	category text[] NOT NULL DEFAULT '{}',
	age_group text[] NOT NULL DEFAULT '{}',
	group_size text[] NOT NULL DEFAULT '{}',
	tags text[] NOT NULL DEFAULT '{}',
	materials text NOT NULL DEFAULT 'Low Prep',
	make_it_easier text,
	make_it_harder text,
	status text NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved')),
	popularity bigint NOT NULL DEFAULT 0,
	submitted_by bigint REFERENCES accounts (account_id) ON DELETE SET NULL,
	created_at timestamptz NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS activities_status_created_idx ON activities (status, created_at DESC, activity_id DESC)`,
	`CREATE INDEX IF NOT EXISTS activities_created_idx ON activities (created_at DESC, activity_id DESC)`,
	`CREATE INDEX IF NOT EXISTS activities_category_idx ON activities USING gin (category)`,
	`CREATE INDEX IF NOT EXISTS activities_age_group_idx ON activities USING gin (age_group)`,
	`CREATE INDEX IF NOT EXISTS activities_group_size_idx ON activities USING gin (group_size)`,
	`CREATE INDEX IF NOT EXISTS activities_tags_idx ON activities USING gin (tags)`,
	`CREATE TABLE IF NOT EXISTS favorites (
	account_id bigint NOT NULL REFERENCES accounts (account_id) ON DELETE CASCADE,
	activity_id bigint NOT NULL REFERENCES activities (activity_id) ON DELETE CASCADE,
	created_at timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (account_id, activity_id)
)`,
	`CREATE OR REPLACE FUNCTION increment_popularity(activity_ids bigint[]) RETURNS void
LANGUAGE sql AS $$
	UPDATE activities SET popularity = popularity + 1 WHERE activity_id = ANY (activity_ids);
$$`,
}

type Schema struct {
	db *bun.DB
}

func NewSchema(db *bun.DB) *Schema {
	return &Schema{db: db}
}

func (r *Schema) Migrate(ctx context.Context) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for i, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
			log.Debug().
				Str("evt.name", "schema.migrate.statement").
				Int("index", i).
				Msg("applied schema statement")
		}
		return nil
	})
}
