package i18n

import (
	"sort"

	"golang.org/x/text/language"
)

// Table is an immutable key -> string mapping for one language. Tables are
// allowed to be partial; callers fall back to the record's raw name when a
// key is missing.
type Table struct {
	tag     language.Tag
	strings map[string]string
}

// New builds a table from an explicit key map. The application ships with
// built-in tables via Pick; New exists for callers that overlay or stub
// translations.
func New(tag language.Tag, strings map[string]string) Table {
	return Table{tag: tag, strings: strings}
}

// Tag returns the BCP-47 tag the table was built for.
func (t Table) Tag() language.Tag { return t.tag }

// Lookup returns the translated string for key and whether a real
// translation exists. A missing key reports false so callers can fall back.
func (t Table) Lookup(key string) (string, bool) {
	if t.strings == nil {
		return "", false
	}
	s, ok := t.strings[key]
	return s, ok
}

// Get returns the translation for key, or the key itself when no translation
// exists.
func (t Table) Get(key string) string {
	if s, ok := t.Lookup(key); ok {
		return s
	}
	return key
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range supportedOrder {
		tags = append(tags, language.MustParse(l))
	}
	return language.NewMatcher(tags)
}()

// Pick returns the best built-in table for a user-supplied language tag.
// Unknown or malformed tags fall back to English.
func Pick(tag string) Table {
	parsed, err := language.Parse(tag)
	if err != nil {
		parsed = language.English
	}
	_, index, _ := matcher.Match(parsed)
	name := supportedOrder[index]
	return Table{tag: language.MustParse(name), strings: locales[name]}
}

// Supported lists the built-in language tags, English first.
func Supported() []string {
	out := make([]string, len(supportedOrder))
	copy(out, supportedOrder)
	sort.Stable(sort.StringSlice(out[1:]))
	return out
}
