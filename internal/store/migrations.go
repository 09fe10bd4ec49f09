package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes. Stops and venue sets
// are stored as JSON blobs; the engine only ever reads and writes them
// whole.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS outings (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			date          TEXT NOT NULL,
			stops         TEXT NOT NULL,
			total_comfort INTEGER NOT NULL,
			created_at    TEXT NOT NULL,
			updated_at    TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS preferences (
			id                      INTEGER PRIMARY KEY CHECK (id = 1),
			noise_sensitivity       INTEGER NOT NULL,
			light_sensitivity       INTEGER NOT NULL,
			spaciousness_preference INTEGER NOT NULL,
			location                TEXT,
			other_needs             TEXT,
			updated_at              TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS search_results (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			query      TEXT NOT NULL,
			location   TEXT,
			venues     TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_outings_date ON outings(date)`,
		`CREATE INDEX IF NOT EXISTS idx_search_results_created ON search_results(created_at)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
