package i18n_test

import (
	"testing"

	"github.com/123ang/expiry-alert-cli/internal/i18n"
)

func TestPickMatchesSupportedLanguages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag  string
		key  string
		want string
	}{
		{"en", "category_fruits", "Fruits"},
		{"ms", "category_fruits", "Buah-buahan"},
		{"zh-Hant", "category_fruits", "水果"},
		{"zh-TW", "category_fruits", "水果"},
		{"ja", "category_fruits", "果物"},
		{"ja-JP", "category_fruits", "果物"},
	}
	for _, tc := range cases {
		tr := i18n.Pick(tc.tag)
		if got := tr.Get(tc.key); got != tc.want {
			t.Fatalf("tag %s: expected %q, got %q", tc.tag, tc.want, got)
		}
	}
}

func TestPickFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"", "not-a-tag", "fr", "de-DE"} {
		tr := i18n.Pick(tag)
		if got := tr.Get("category_fruits"); got != "Fruits" {
			t.Fatalf("tag %q: expected English fallback, got %q", tag, got)
		}
	}
}

func TestLookupReportsMissingKeys(t *testing.T) {
	t.Parallel()

	// The Japanese table is intentionally partial; a miss must report
	// false so callers can fall back to the raw record name.
	tr := i18n.Pick("ja")
	if _, ok := tr.Lookup("category_supplements"); ok {
		t.Fatalf("expected category_supplements to be missing from ja table")
	}
	if got := tr.Get("category_supplements"); got != "category_supplements" {
		t.Fatalf("Get on a miss should return the key, got %q", got)
	}
	if _, ok := tr.Lookup("category_fruits"); !ok {
		t.Fatalf("expected category_fruits in ja table")
	}
}

func TestSupportedListsEnglishFirst(t *testing.T) {
	t.Parallel()

	supported := i18n.Supported()
	if len(supported) != 4 || supported[0] != "en" {
		t.Fatalf("unexpected supported list: %v", supported)
	}
}
