package runtime

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortedStrings returns a locale-collated copy of values, for presenting
// the contents of a Setlike[string]/Maplike[K]'s Values()/Keys() slice to a
// user in a natural reading order. WebIDL mandates insertion order for
// maplike/setlike iteration (see Setlike.Values, Maplike.Keys); this
// function never touches iteration order itself; it only gives a caller
// that wants a sorted *display* a correct way to get one without reaching
// for Go's byte-wise sort.Strings, which gets non-ASCII collation wrong.
func SortedStrings(values []string, lang language.Tag) []string {
	out := make([]string, len(values))
	copy(out, values)
	c := collate.New(lang)
	c.SortStrings(out)
	return out
}
