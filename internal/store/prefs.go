package store

import (
	"database/sql"
	"time"

	"github.com/comfrt/comfrt/internal/venue"
)

// SavePreferences stores the user's sensitivity preferences, clamping each
// scale into range first. There is a single preferences row per database.
func (db *DB) SavePreferences(prefs venue.Preferences) error {
	prefs = prefs.Clamp()
	_, err := db.conn.Exec(
		`INSERT INTO preferences
		 (id, noise_sensitivity, light_sensitivity, spaciousness_preference, location, other_needs, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   noise_sensitivity = excluded.noise_sensitivity,
		   light_sensitivity = excluded.light_sensitivity,
		   spaciousness_preference = excluded.spaciousness_preference,
		   location = excluded.location,
		   other_needs = excluded.other_needs,
		   updated_at = excluded.updated_at`,
		prefs.NoiseSensitivity, prefs.LightSensitivity, prefs.SpaciousnessPreference,
		prefs.Location, prefs.OtherNeeds, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetPreferences returns the stored preferences, or the neutral defaults
// when none have been saved.
func (db *DB) GetPreferences() (venue.Preferences, error) {
	row := db.conn.QueryRow(
		`SELECT noise_sensitivity, light_sensitivity, spaciousness_preference, location, other_needs
		 FROM preferences WHERE id = 1`,
	)

	var prefs venue.Preferences
	var location, otherNeeds sql.NullString
	err := row.Scan(
		&prefs.NoiseSensitivity, &prefs.LightSensitivity, &prefs.SpaciousnessPreference,
		&location, &otherNeeds,
	)
	if err == sql.ErrNoRows {
		return venue.DefaultPreferences(), nil
	}
	if err != nil {
		return venue.Preferences{}, err
	}
	prefs.Location = location.String
	prefs.OtherNeeds = otherNeeds.String
	return prefs.Clamp(), nil
}
