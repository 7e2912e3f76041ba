// Package expiry canonicalizes raw expiry-date strings to a calendar day in
// the viewer's timezone and buckets items into freshness states. All
// functions are pure: "now" and the timezone are explicit inputs so behavior
// is reproducible in tests.
package expiry

import (
	"strings"
	"time"

	"github.com/123ang/expiry-alert-cli/internal/model"
)

// soonWindowDays is the inclusive upper bound of the ExpiringSoon bucket.
const soonWindowDays = 5

const dayLayout = "2006-01-02"

// Timestamp layouts tried in order: fractional seconds first so a backend
// timestamp near midnight is never shifted to the previous calendar day by
// a failed fractional parse falling back to a bare-date read.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Classification is the derived expiry view of one item. DaysUntil is
// meaningful only when Tracked is true; unparseable dates are treated as
// "no expiry tracked" and bucket as Fresh.
type Classification struct {
	LocalExpiryDay string
	DaysUntil      int
	State          model.FreshnessState
	Tracked        bool
}

// Classify canonicalizes raw to a local calendar day and buckets it.
// Bucketing: DaysUntil <= 0 is Expired (items expiring today count as
// already expired; downstream reminder counts depend on this), 1 through 5
// is ExpiringSoon, above 5 is Fresh.
func Classify(raw string, now time.Time, loc *time.Location) Classification {
	raw = strings.TrimSpace(raw)
	day, ok := localExpiryDay(raw, loc)
	if !ok {
		return Classification{LocalExpiryDay: day, State: model.Fresh}
	}

	expiry, err := time.ParseInLocation(dayLayout, day, loc)
	if err != nil {
		return Classification{LocalExpiryDay: day, State: model.Fresh}
	}
	days := civilDaysBetween(now.In(loc), expiry)

	state := model.Fresh
	switch {
	case days <= 0:
		state = model.Expired
	case days <= soonWindowDays:
		state = model.ExpiringSoon
	}
	return Classification{LocalExpiryDay: day, DaysUntil: days, State: state, Tracked: true}
}

// localExpiryDay returns the canonical YYYY-MM-DD day for raw in loc, and
// whether raw actually parsed. Strings carrying a time-of-day are parsed as
// timestamps and converted into loc before taking the day; bare dates are
// read directly in loc. When nothing parses, the leading ten characters are
// returned verbatim as a best-effort day.
func localExpiryDay(raw string, loc *time.Location) (string, bool) {
	if raw == "" {
		return "", false
	}
	if strings.ContainsRune(raw, ':') {
		for _, layout := range timestampLayouts {
			if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
				return t.In(loc).Format(dayLayout), true
			}
		}
	} else if len(raw) >= len(dayLayout) {
		if t, err := time.ParseInLocation(dayLayout, raw[:len(dayLayout)], loc); err == nil {
			return t.Format(dayLayout), true
		}
	}
	if len(raw) > len(dayLayout) {
		return raw[:len(dayLayout)], false
	}
	return raw, false
}

// CivilDay formats now as a calendar day in loc.
func CivilDay(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(dayLayout)
}

// civilDaysBetween counts calendar days from a's day to b's day using date
// arithmetic, not elapsed-hours division, so DST transitions cannot skew
// the delta.
func civilDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

// ClassifyItem derives the expiry fields for one item.
func ClassifyItem(item model.FoodItem, now time.Time, loc *time.Location) model.ClassifiedItem {
	c := Classify(item.ExpiryDate, now, loc)
	return model.ClassifiedItem{
		FoodItem:       item,
		LocalExpiryDay: c.LocalExpiryDay,
		DaysUntil:      c.DaysUntil,
		State:          c.State,
	}
}

// ClassifyAll derives the expiry fields for a snapshot, preserving order.
func ClassifyAll(items []model.FoodItem, now time.Time, loc *time.Location) []model.ClassifiedItem {
	out := make([]model.ClassifiedItem, 0, len(items))
	for _, item := range items {
		out = append(out, ClassifyItem(item, now, loc))
	}
	return out
}

// Count folds a classified snapshot into aggregate freshness counts. The
// buckets partition the snapshot, so Total always equals their sum.
func Count(items []model.ClassifiedItem) model.Counts {
	counts := model.Counts{Total: len(items)}
	for _, item := range items {
		switch item.State {
		case model.Expired:
			counts.Expired++
		case model.ExpiringSoon:
			counts.ExpiringSoon++
		default:
			counts.Fresh++
		}
	}
	return counts
}
