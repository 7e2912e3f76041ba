// Package reminder drives the once-per-day expired-items alert. The
// decision itself is pure; the persisted day marker lives in the local
// sqlite database so a cold start on the same calendar day never re-fires.
package reminder

import (
	"database/sql"
	"fmt"
)

// ShouldFire reports whether the alert should be shown: there must be at
// least one expired item and the alert must not have been shown for today
// already. Pure; callers persist the new day marker on fire.
func ShouldFire(expiredCount int, today, lastShownDay string) bool {
	return expiredCount > 0 && lastShownDay != today
}

// Store reads and writes the single persisted reminder day marker.
// Single-writer contract: the caller serializes concurrent foreground
// checks; the store only guarantees idempotence against the persisted day.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// LastShownDay returns the persisted day marker, empty when the alert has
// never fired.
func (s *Store) LastShownDay() (string, error) {
	var day string
	err := s.db.QueryRow(`SELECT last_shown_day FROM reminder_state WHERE id = 1`).Scan(&day)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read reminder state: %w", err)
	}
	return day, nil
}

// MarkShown records that the alert fired on day.
func (s *Store) MarkShown(day string) error {
	_, err := s.db.Exec(`
INSERT INTO reminder_state(id, last_shown_day) VALUES(1, ?)
ON CONFLICT(id) DO UPDATE SET last_shown_day=excluded.last_shown_day
`, day)
	if err != nil {
		return fmt.Errorf("persist reminder day %q: %w", day, err)
	}
	return nil
}

// Check reads the marker, decides, and persists the new marker when firing.
// Repeated calls with the same today after a fire never fire again,
// including across process restarts.
func (s *Store) Check(expiredCount int, today string) (bool, error) {
	last, err := s.LastShownDay()
	if err != nil {
		return false, err
	}
	if !ShouldFire(expiredCount, today, last) {
		return false, nil
	}
	if err := s.MarkShown(today); err != nil {
		return false, err
	}
	return true, nil
}
