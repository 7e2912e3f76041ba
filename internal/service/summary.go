package service

import (
	"database/sql"
	"time"

	"github.com/123ang/expiry-alert-cli/internal/expiry"
	"github.com/123ang/expiry-alert-cli/internal/reminder"
)

// CheckReminder runs the at-most-once-per-day reminder decision for the
// given expired count. It is called after the summary output has been
// rendered, the CLI analogue of the app reaching the foreground. The
// persisted day marker makes repeat invocations on the same calendar day
// no-ops, including across process restarts.
func CheckReminder(sqldb *sql.DB, expiredCount int, now time.Time, loc *time.Location) (bool, error) {
	store := reminder.NewStore(sqldb)
	return store.Check(expiredCount, expiry.CivilDay(now, loc))
}
