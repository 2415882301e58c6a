// Package store persists RSVP flags for returning visitors. Persistence is
// an external concern layered around the calendar engine: the engine keeps
// its in-memory map, the store records toggles durably and seeds new
// sessions for a known visitor.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// RSVPStore is a sqlite-backed record of visitor attendance flags.
type RSVPStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the RSVP database at the given path.
// ":memory:" is accepted for tests.
func Open(path string) (*RSVPStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open rsvp database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS rsvps (
		visitor_id TEXT NOT NULL,
		event_id   TEXT NOT NULL,
		attending  INTEGER NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (visitor_id, event_id)
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create rsvps table: %w", err)
	}

	return &RSVPStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *RSVPStore) Close() error {
	return s.db.Close()
}

// SetRSVP upserts the attendance flag for (visitor, event).
func (s *RSVPStore) SetRSVP(visitorID, eventID string, attending bool) error {
	_, err := s.db.Exec(`
		INSERT INTO rsvps (visitor_id, event_id, attending, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(visitor_id, event_id) DO UPDATE SET
			attending = excluded.attending,
			updated_at = CURRENT_TIMESTAMP
	`, visitorID, eventID, boolToInt(attending))
	if err != nil {
		return fmt.Errorf("upsert rsvp: %w", err)
	}
	return nil
}

// RSVPsForVisitor returns all stored flags for a visitor, toggled-off
// entries included, matching the engine's retain-on-false semantics.
func (s *RSVPStore) RSVPsForVisitor(visitorID string) (map[string]bool, error) {
	rows, err := s.db.Query(`
		SELECT event_id, attending FROM rsvps WHERE visitor_id = ?
	`, visitorID)
	if err != nil {
		return nil, fmt.Errorf("query rsvps: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var eventID string
		var attending int
		if err := rows.Scan(&eventID, &attending); err != nil {
			return nil, err
		}
		out[eventID] = attending != 0
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
