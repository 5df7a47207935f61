package tagger

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/cognicore/jokes/pkg/jokes/match"
)

// keywordIndex finds which compiled keywords occur anywhere in a text, as
// plain substrings. Boundary rules are applied afterwards by match.Contains,
// and only to keywords the index reported.
type keywordIndex struct {
	ac       ahocorasick.AhoCorasick
	patterns []string
}

func newKeywordIndex(keywords []string) *keywordIndex {
	idx := &keywordIndex{}
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		idx.patterns = append(idx.patterns, kw)
	}
	if len(idx.patterns) == 0 {
		return idx
	}
	// Overlapping iteration needs standard semantics: a leftmost-longest
	// scan would hide NEW inside NEW YORK.
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.StandardMatch,
	})
	idx.ac = builder.Build(idx.patterns)
	return idx
}

// present returns the keywords found in the subject's upper-cased and
// dash-stripped forms.
func (idx *keywordIndex) present(subj match.Subject) map[string]struct{} {
	out := make(map[string]struct{})
	if len(idx.patterns) == 0 {
		return out
	}
	idx.collect(subj.Upper, out)
	if subj.Dashless != subj.Upper {
		idx.collect(subj.Dashless, out)
	}
	return out
}

func (idx *keywordIndex) collect(text string, out map[string]struct{}) {
	iter := idx.ac.IterOverlapping(text)
	for m := iter.Next(); m != nil; m = iter.Next() {
		out[idx.patterns[m.Pattern()]] = struct{}{}
	}
}
