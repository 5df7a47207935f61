package match

import (
	"strings"
	"unicode"
)

// Policy decides which characters separate words.
type Policy int

const (
	// Strict treats every character that is not an uppercase letter or a
	// digit as a word boundary.
	Strict Policy = iota
	// Combined is Strict except that '&' and '-' belong to the word, so
	// "ROCK&ROLL" is one word.
	Combined
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Combined:
		return "combined"
	}
	return "unknown"
}

func (p Policy) isBoundary(b byte) bool {
	if (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') {
		return false
	}
	if p == Combined && (b == '&' || b == '-') {
		return false
	}
	return true
}

// Contains reports whether keyword occurs in haystack as a whole word under
// the given policy. Both arguments must already be uppercased; no other
// normalization happens here.
func Contains(haystack, keyword string, policy Policy) bool {
	if keyword == "" {
		return false
	}
	from := 0
	for from <= len(haystack)-len(keyword) {
		i := strings.Index(haystack[from:], keyword)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(keyword)
		if (start == 0 || policy.isBoundary(haystack[start-1])) &&
			(end == len(haystack) || policy.isBoundary(haystack[end])) {
			return true
		}
		from = start + 1
	}
	return false
}

// Subject holds the precomputed forms of a text that keyword tests run
// against.
type Subject struct {
	Raw      string
	Upper    string
	Dashless string // Upper with '-' removed, so "cow-bell" reads as COWBELL
}

// NewSubject prepares text for matching.
func NewSubject(text string) Subject {
	upper := strings.ToUpper(text)
	return Subject{
		Raw:      text,
		Upper:    upper,
		Dashless: strings.ReplaceAll(upper, "-", ""),
	}
}

// Name tests a tag-name variant.
func (s Subject) Name(keyword string) bool {
	return Contains(s.Dashless, keyword, Strict) ||
		Contains(s.Upper, keyword, Combined)
}

// Alias tests an alias variant. Unlike names, aliases may also match across
// a hyphen in the original text.
func (s Subject) Alias(keyword string) bool {
	return Contains(s.Dashless, keyword, Strict) ||
		Contains(s.Upper, keyword, Strict) ||
		Contains(s.Upper, keyword, Combined)
}

// SoftTrim strips punctuation from the edges of each whitespace-separated
// token, leaving interior punctuation and the kept runes alone. Tokens are
// re-joined with single spaces.
func SoftTrim(s string, keep ...rune) string {
	fields := strings.Fields(s)
	out := fields[:0]
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return false
			}
			for _, k := range keep {
				if r == k {
					return false
				}
			}
			return true
		})
		if f != "" {
			out = append(out, f)
		}
	}
	return strings.Join(out, " ")
}
