package tagger

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/cognicore/jokes/pkg/jokes/match"
)

// Word is one candidate word offered to the heuristics.
type Word struct {
	Raw   string // as written, joiners trimmed from the edges
	Upper string
	Text  string // the whole text, lowercased
}

// Heuristic assigns Tag whenever Match accepts a word. Trigger describes the
// rule for trace output.
type Heuristic struct {
	Tag     string
	Trigger string
	Match   func(Word) bool
}

type hit struct {
	tag     string
	trigger string
}

var harambeText = regexp.MustCompile(`^.+\shar.+$`)

// DefaultHeuristics returns the built-in word rules in evaluation order.
func DefaultHeuristics() []Heuristic {
	return []Heuristic{
		{Tag: "Apple", Trigger: "i + uppercase", Match: func(w Word) bool {
			r := []rune(w.Raw)
			return len(r) > 1 && r[0] == 'i' && unicode.IsUpper(r[1])
		}},
		{Tag: "Harambe", Trigger: "gorilla + har*", Match: func(w Word) bool {
			return strings.EqualFold(w.Raw, "gorilla") && harambeText.MatchString(w.Text)
		}},
		Suffix("Dinosaur", []string{"SAURUS"}, "THESAURUS"),
		Prefix("Cow", "MOOO"),
		Prefix("Moon", "MOON"),
		Prefix("Snow", "SNOW"),
		{Tag: "Water", Trigger: "*WATER, RAIN*", Match: func(w Word) bool {
			return strings.HasSuffix(w.Upper, "WATER") || strings.HasPrefix(w.Upper, "RAIN")
		}},
		Prefix("Weather", "RAIN"),
		Prefix("Cat", "PURR", "MEOW", "NYAN"),
		Prefix("Germany", "MEIN", "KAMPF", "LUFT"),
		Suffix("Sport", []string{"SPORT", "SPORTS"},
			"DISPORT", "DISPORTS", "GOSPORT", "GOSPORTS", "PASSPORT", "PASSPORTS",
			"TRANSPORT", "TRANSPORTS", "SPOILSPORT", "SPOILSPORTS", "COTRANSPORT", "COTRANSPORTS"),
		Suffix("Gender", []string{"SEXUAL"}, "SEXUAL"),
		Substring("Shrek", "SHREK"),
		Substring("Nazi", "NAZI"),
	}
}

// Prefix matches words starting with any of the uppercase prefixes.
func Prefix(tag string, prefixes ...string) Heuristic {
	return Heuristic{
		Tag:     tag,
		Trigger: strings.Join(prefixes, "*, ") + "*",
		Match: func(w Word) bool {
			for _, p := range prefixes {
				if strings.HasPrefix(w.Upper, p) {
					return true
				}
			}
			return false
		},
	}
}

// Suffix matches words ending with any of the uppercase suffixes, except the
// listed whole words.
func Suffix(tag string, suffixes []string, except ...string) Heuristic {
	return Heuristic{
		Tag:     tag,
		Trigger: "*" + strings.Join(suffixes, ", *"),
		Match: func(w Word) bool {
			for _, x := range except {
				if w.Upper == x {
					return false
				}
			}
			for _, s := range suffixes {
				if strings.HasSuffix(w.Upper, s) {
					return true
				}
			}
			return false
		},
	}
}

// Substring matches words containing the uppercase fragment.
func Substring(tag, fragment string) Heuristic {
	return Heuristic{
		Tag:     tag,
		Trigger: "*" + fragment + "*",
		Match: func(w Word) bool {
			return strings.Contains(w.Upper, fragment)
		},
	}
}

// initialHits runs every heuristic over every word. Rules are evaluated in
// order, so the first rule to fire for a tag names its trigger.
func (e *Engine) initialHits(text string) []hit {
	words := splitWords(text)
	if len(words) == 0 {
		return nil
	}
	lower := strings.ToLower(text)
	prepared := make([]Word, len(words))
	for i, w := range words {
		prepared[i] = Word{Raw: w, Upper: strings.ToUpper(w), Text: lower}
	}

	var hits []hit
	for _, h := range e.heuristics {
		for _, w := range prepared {
			if h.Match(w) {
				hits = append(hits, hit{tag: h.Tag, trigger: h.Trigger + " (" + w.Raw + ")"})
				break
			}
		}
	}
	return hits
}

var (
	stripJoiners = strings.NewReplacer("&", "", "-", "")
	joinerSplit  = regexp.MustCompile(`[\s&-]+`)
)

// splitWords returns the distinct words of text in three readings: split on
// whitespace, the same with joiners removed, and split on joiners too. Each
// word has leading and trailing joiners trimmed.
func splitWords(text string) []string {
	soft := match.SoftTrim(text, '&', '-')
	fields := strings.Fields(soft)

	candidates := make([]string, 0, 3*len(fields))
	candidates = append(candidates, fields...)
	for _, f := range fields {
		candidates = append(candidates, stripJoiners.Replace(f))
	}
	candidates = append(candidates, joinerSplit.Split(soft, -1)...)

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.Trim(c, "&-")
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
