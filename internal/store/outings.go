package store

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/comfrt/comfrt/internal/outing"
)

// SaveOuting inserts or updates an outing. A missing ID gets a fresh ULID,
// a missing name or date gets a default, and the total comfort score is
// recomputed from the stops before the write.
func (db *DB) SaveOuting(o *outing.Outing) error {
	now := time.Now().UTC()
	if o.ID == "" {
		o.ID = "outing-" + strings.ToLower(ulid.Make().String())
		o.CreatedAt = now
	}
	if o.Name == "" {
		o.Name = "My Outing"
	}
	if o.Date == "" {
		o.Date = now.Format("2006-01-02")
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
	o.TotalComfort = outing.TotalComfort(o.Stops)

	stops, err := json.Marshal(o.Stops)
	if err != nil {
		return err
	}

	_, err = db.conn.Exec(
		`INSERT INTO outings (id, name, date, stops, total_comfort, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   date = excluded.date,
		   stops = excluded.stops,
		   total_comfort = excluded.total_comfort,
		   updated_at = excluded.updated_at`,
		o.ID, o.Name, o.Date, string(stops), o.TotalComfort,
		o.CreatedAt.Format(time.RFC3339), o.UpdatedAt.Format(time.RFC3339),
	)
	return err
}

// GetOuting returns an outing by ID, or nil if it does not exist.
func (db *DB) GetOuting(id string) (*outing.Outing, error) {
	row := db.conn.QueryRow(
		"SELECT id, name, date, stops, total_comfort, created_at, updated_at FROM outings WHERE id = ?",
		id,
	)
	return scanOuting(row)
}

// ListOutings returns all outings, newest first.
func (db *DB) ListOutings() ([]outing.Outing, error) {
	rows, err := db.conn.Query(
		"SELECT id, name, date, stops, total_comfort, created_at, updated_at FROM outings ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var outings []outing.Outing
	for rows.Next() {
		var o outing.Outing
		var stops, createdAt, updatedAt string
		if err := rows.Scan(&o.ID, &o.Name, &o.Date, &stops, &o.TotalComfort, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(stops), &o.Stops); err != nil {
			return nil, err
		}
		o.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		o.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		outings = append(outings, o)
	}
	return outings, rows.Err()
}

// DeleteOuting removes an outing. Deleting an unknown ID is not an error.
func (db *DB) DeleteOuting(id string) error {
	_, err := db.conn.Exec("DELETE FROM outings WHERE id = ?", id)
	return err
}

func scanOuting(row *sql.Row) (*outing.Outing, error) {
	var o outing.Outing
	var stops, createdAt, updatedAt string
	err := row.Scan(&o.ID, &o.Name, &o.Date, &stops, &o.TotalComfort, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(stops), &o.Stops); err != nil {
		return nil, err
	}
	o.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	o.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &o, nil
}
