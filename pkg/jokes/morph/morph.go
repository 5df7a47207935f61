package morph

import "strings"

// Table maps word endings to the suffixes that may replace them when
// generating keyword variants for a tag name.
//
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	replacements map[string][]string
	// ending -> tag names that must not use it
	dontDo map[string]map[string]struct{}
}

// endingOrder fixes the iteration order of the ending keys so candidate
// generation is deterministic.
var endingOrder = []string{"", "S", "ED", "ES", "IES", "Y", "ING", "TION", "TATION", "ER", "OR"}

var defaultReplacements = map[string][]string{
	"":       {"", "S", "ES", "Y", "ER", "ERS", "EST", "ED", "ING", "I", "IC", "MAN"},
	"S":      {"", "ING", "ED"},
	"ED":     {""},
	"ES":     {"", "ING", "ED"},
	"IES":    {"Y", "C"},
	"Y":      {"", "ER", "ERS", "IES", "IST", "IC", "ICAL", "ICALLY"},
	"ING":    {"", "E", "ER", "ERS", "ED", "ES", "S"},
	"TION":   {"T", "TE", "TEE", "TED", "TOR", "TING"},
	"TATION": {"T", "TE", "TEE", "TED", "TOR", "TING"},
	"ER":     {"", "E", "OR", "ORS", "ATION", "ING"},
	"OR":     {"", "E", "ER", "ERS", "ATION", "ING"},
}

// New builds a Table from the per-tag suppression flags, keyed by tag name.
// Each ending's suppression list holds the tags whose flags disable it.
func New(flags map[string]Suppression) *Table {
	t := &Table{
		replacements: make(map[string][]string, len(defaultReplacements)),
		dontDo:       make(map[string]map[string]struct{}, len(endingOrder)),
	}
	for ending, reps := range defaultReplacements {
		t.replacements[ending] = append([]string(nil), reps...)
	}
	for _, ending := range endingOrder {
		names := make(map[string]struct{})
		bit := EndingFlag(ending)
		if bit != 0 {
			for name, s := range flags {
				if s.Has(bit) {
					names[name] = struct{}{}
				}
			}
		}
		t.dontDo[ending] = names
	}
	return t
}

// Endings returns the ending keys in their fixed order.
func (t *Table) Endings() []string {
	return append([]string(nil), endingOrder...)
}

// Replacements returns the replacement suffixes for an ending key.
func (t *Table) Replacements(ending string) []string {
	return append([]string(nil), t.replacements[ending]...)
}

// Suppressed reports whether the named tag skips the given ending.
func (t *Table) Suppressed(ending, name string) bool {
	_, ok := t.dontDo[ending][name]
	return ok
}

// SuppressedNames returns the tags listed under an ending.
func (t *Table) SuppressedNames(ending string) []string {
	names := make([]string, 0, len(t.dontDo[ending]))
	for name := range t.dontDo[ending] {
		names = append(names, name)
	}
	return names
}

// Candidates returns the uppercased keyword variants for a tag name, in
// table order and without duplicates.
//
// An ending applies when the uppercased name ends with it and the tag is not
// suppressed for it. A replacement that is itself an ending key is skipped
// when the tag is suppressed for that key, so -dontDoS also removes the plain
// "S" append.
func (t *Table) Candidates(name string) []string {
	upper := strings.ToUpper(name)
	seen := make(map[string]struct{})
	var out []string

	for _, ending := range endingOrder {
		if !strings.HasSuffix(upper, ending) || t.Suppressed(ending, name) {
			continue
		}
		stem := upper[:len(upper)-len(ending)]
		for _, rep := range t.replacements[ending] {
			if _, isEnding := t.replacements[rep]; isEnding && t.Suppressed(rep, name) {
				continue
			}
			cand := stem + rep
			if cand == "" {
				continue
			}
			if _, dup := seen[cand]; dup {
				continue
			}
			seen[cand] = struct{}{}
			out = append(out, cand)
		}
	}
	return out
}

// KeywordCount returns how many distinct replacement suffixes apply to a tag
// name. Used for load statistics.
func (t *Table) KeywordCount(name string) int {
	upper := strings.ToUpper(name)
	seen := make(map[string]struct{})
	for _, ending := range endingOrder {
		if strings.HasSuffix(upper, ending) && !t.Suppressed(ending, name) {
			for _, rep := range t.replacements[ending] {
				seen[rep] = struct{}{}
			}
		}
	}
	return len(seen)
}
