package database

import (
	"context"
	"fmt"
	"log"
)

// Schema statements are idempotent so startup can run them unconditionally.
// Reference tables (divisions, districts) are filled by the location seeder.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS divisions (
		id      BIGINT PRIMARY KEY,
		name    VARCHAR(100) NOT NULL UNIQUE,
		bn_name VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS districts (
		id          BIGINT PRIMARY KEY,
		division_id BIGINT NOT NULL REFERENCES divisions(id),
		name        VARCHAR(100) NOT NULL,
		bn_name     VARCHAR(100) NOT NULL,
		UNIQUE (division_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		username      VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(20) NOT NULL DEFAULT 'candidate',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id                   BIGSERIAL PRIMARY KEY,
		user_id              BIGINT NOT NULL UNIQUE REFERENCES users(id),
		slug                 VARCHAR(100) NOT NULL UNIQUE,
		full_name_en         VARCHAR(255),
		full_name_bn         VARCHAR(255),
		division_id          BIGINT NOT NULL REFERENCES divisions(id),
		district_id          BIGINT NOT NULL REFERENCES districts(id),
		constituency_no      INT NOT NULL,
		photo_url            VARCHAR(500),
		designation          VARCHAR(255),
		brief_intro          TEXT,
		intro_bn             TEXT,
		political_journey    TEXT,
		political_journey_bn TEXT,
		personal_profile     TEXT,
		personal_profile_bn  TEXT,
		vision               TEXT,
		vision_bn            TEXT,
		facebook_link        VARCHAR(500),
		responsible_person   VARCHAR(255),
		email                VARCHAR(255),
		created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (district_id, constituency_no)
	)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		id            BIGSERIAL PRIMARY KEY,
		candidate_id  BIGINT REFERENCES candidates(id) ON DELETE CASCADE,
		name          VARCHAR(255) NOT NULL,
		role          VARCHAR(255),
		photo_url     VARCHAR(500),
		facebook_link VARCHAR(500),
		linkedin_link VARCHAR(500)
	)`,
	`CREATE TABLE IF NOT EXISTS media_gallery (
		id           BIGSERIAL PRIMARY KEY,
		candidate_id BIGINT NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
		file_url     VARCHAR(500) NOT NULL,
		file_type    VARCHAR(20) NOT NULL DEFAULT 'image',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id             BIGSERIAL PRIMARY KEY,
		candidate_slug VARCHAR(100) NOT NULL,
		name           VARCHAR(255) NOT NULL,
		email          VARCHAR(255) NOT NULL,
		subject        VARCHAR(500) NOT NULL,
		message        TEXT NOT NULL,
		status         VARCHAR(10) NOT NULL DEFAULT 'unread',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_messages_slug ON contact_messages (candidate_slug)`,
	`CREATE INDEX IF NOT EXISTS idx_contact_messages_status ON contact_messages (status)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_district ON candidates (district_id)`,
}

// InitSchema applies the schema at startup.
func (db *PostgresDB) InitSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	log.Println("[DATABASE] Applying schema...")

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}

	log.Println("[DATABASE] Schema applied")
	return nil
}
