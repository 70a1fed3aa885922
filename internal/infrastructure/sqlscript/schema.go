// Package sqlscript renders the PostgreSQL bootstrap script.
package sqlscript

// Extensions required by the schema.
var extensionStatements = []string{
	"CREATE EXTENSION IF NOT EXISTS pgcrypto;",
	"CREATE EXTENSION IF NOT EXISTS ltree;",
}

var schemaStatements = []string{
	"CREATE SCHEMA IF NOT EXISTS media;",
	"CREATE SCHEMA IF NOT EXISTS users;",
	"CREATE SCHEMA IF NOT EXISTS interaction;",
	"CREATE SCHEMA IF NOT EXISTS auth;",
}

// tableBlocks holds each table definition followed by its indexes. Every
// statement is guarded so it is a no-op on a provisioned database.
var tableBlocks = [][]string{
	{
		`CREATE TABLE IF NOT EXISTS media.media (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  external_id VARCHAR(255),
  media_type VARCHAR(255) NOT NULL,
  media_class LTREE NOT NULL,
  title VARCHAR(255) NOT NULL,
  release_date DATE,
  country_of_origin VARCHAR(255),
  creators VARCHAR(255)[],
  cover_url VARCHAR(255),
  description VARCHAR(255),
  attributes JSONB NOT NULL DEFAULT '{}'::jsonb,
  search_vector TSVECTOR,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_media_external_id_unique ON media.media (external_id);",
		"CREATE INDEX IF NOT EXISTS idx_media_type ON media.media (media_type);",
		"CREATE INDEX IF NOT EXISTS idx_media_title ON media.media (title);",
		"CREATE INDEX IF NOT EXISTS idx_media_attributes ON media.media USING GIN (attributes);",
	},
	{
		`CREATE TABLE IF NOT EXISTS media.external_links (
  media_id UUID NOT NULL REFERENCES media.media(id) ON DELETE CASCADE,
  source_name VARCHAR(255) NOT NULL,
  external_key VARCHAR(255) NOT NULL,
  PRIMARY KEY (source_name, external_key)
);`,
		"CREATE INDEX IF NOT EXISTS idx_external_links_media_id ON media.external_links (media_id);",
	},
	{
		`CREATE TABLE IF NOT EXISTS users.users (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  email VARCHAR(255) UNIQUE NOT NULL,
  password_hash TEXT NOT NULL,
  settings JSONB NOT NULL DEFAULT '{}'::jsonb,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
	{
		`CREATE TABLE IF NOT EXISTS interaction.user_media (
  user_id UUID NOT NULL REFERENCES users.users(id) ON DELETE CASCADE,
  media_id UUID NOT NULL REFERENCES media.media(id) ON DELETE CASCADE,
  status VARCHAR(255) NOT NULL DEFAULT 'planned' CHECK (status IN ('planned', 'in-progress', 'completed', 'dropped')),
  progress INT,
  rating SMALLINT CHECK (rating >= 1 AND rating <= 10),
  notes VARCHAR(255),
  started_at TIMESTAMPTZ,
  completed_at TIMESTAMPTZ,
  meta_snapshot JSONB NOT NULL DEFAULT '{}'::jsonb,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  PRIMARY KEY (user_id, media_id)
);`,
		"CREATE INDEX IF NOT EXISTS idx_user_media_user_status ON interaction.user_media (user_id, status);",
		"CREATE INDEX IF NOT EXISTS idx_user_media_media_id ON interaction.user_media (media_id);",
	},
	{
		`CREATE TABLE IF NOT EXISTS interaction.user_lists (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  user_id UUID NOT NULL REFERENCES users.users(id) ON DELETE CASCADE,
  name VARCHAR(255) NOT NULL,
  description VARCHAR(255),
  is_public BOOLEAN NOT NULL DEFAULT FALSE,
  list_type VARCHAR(255) NOT NULL DEFAULT 'static' CHECK (list_type IN ('static', 'smart')),
  filter_definition JSONB,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  UNIQUE (user_id, name)
);`,
	},
	{
		`CREATE TABLE IF NOT EXISTS interaction.list_items (
  list_id UUID NOT NULL REFERENCES interaction.user_lists(id) ON DELETE CASCADE,
  media_id UUID NOT NULL REFERENCES media.media(id) ON DELETE CASCADE,
  position INT,
  added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  PRIMARY KEY (list_id, media_id)
);`,
	},
	{
		`CREATE TABLE IF NOT EXISTS auth.login_events (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  user_id UUID REFERENCES users.users(id) ON DELETE SET NULL,
  event_time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
}

// seedUserMediaStatement copies every list item into the interaction table.
const seedUserMediaStatement = `INSERT INTO interaction.user_media (user_id, media_id, status, progress, rating, notes, meta_snapshot)
SELECT l.user_id, li.media_id, 'planned', NULL, NULL, NULL, '{}'::jsonb
FROM interaction.user_lists l
JOIN interaction.list_items li ON li.list_id = l.id
ON CONFLICT (user_id, media_id) DO NOTHING;`
