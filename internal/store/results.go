package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/comfrt/comfrt/internal/venue"
)

// SearchResult is one persisted search: the query, its location, and the
// enriched venues it returned. The latest one is what follow-up messages
// filter against.
type SearchResult struct {
	ID        int64
	Query     string
	Location  string
	Venues    []venue.Venue
	CreatedAt time.Time
}

// SaveSearchResult persists a search result set and returns its ID.
func (db *DB) SaveSearchResult(query, location string, venues []venue.Venue) (int64, error) {
	blob, err := json.Marshal(venues)
	if err != nil {
		return 0, err
	}
	result, err := db.conn.Exec(
		"INSERT INTO search_results (query, location, venues, created_at) VALUES (?, ?, ?, ?)",
		query, location, string(blob), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetLatestSearchResult returns the most recent search, or nil if none
// have been saved.
func (db *DB) GetLatestSearchResult() (*SearchResult, error) {
	row := db.conn.QueryRow(
		"SELECT id, query, location, venues, created_at FROM search_results ORDER BY id DESC LIMIT 1",
	)

	var sr SearchResult
	var location sql.NullString
	var blob, createdAt string
	err := row.Scan(&sr.ID, &sr.Query, &location, &blob, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(blob), &sr.Venues); err != nil {
		return nil, err
	}
	sr.Location = location.String
	sr.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &sr, nil
}

// PruneSearchResults keeps only the newest keep rows.
func (db *DB) PruneSearchResults(keep int) error {
	_, err := db.conn.Exec(
		`DELETE FROM search_results WHERE id NOT IN
		 (SELECT id FROM search_results ORDER BY id DESC LIMIT ?)`,
		keep,
	)
	return err
}
