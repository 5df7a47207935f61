package tagger

import "strings"

type keyKind uint8

const (
	kindName  keyKind = iota // tag name, morphology variants
	kindAlias                // alias key, plural appends
)

type cacheKey struct {
	kind keyKind
	word string
}

// matchCache memoizes keyword verdicts for one classification call.
//
// Names and aliases live in separate key spaces because they are tested with
// different variant sets. A verdict is a pure function of the key and the
// text, so the result does not depend on tag order. Derived recheck tags use
// their own "Tag~Without" name key and never reuse a seeded verdict.
type matchCache struct {
	matches    map[cacheKey]struct{}
	nonMatches map[cacheKey]struct{}
	// present holds the keywords that occur in the text as substrings.
	present map[string]struct{}
}

func newMatchCache(present map[string]struct{}) *matchCache {
	return &matchCache{
		matches:    make(map[cacheKey]struct{}),
		nonMatches: make(map[cacheKey]struct{}),
		present:    present,
	}
}

// occurs reports whether kw appears anywhere in the text.
func (c *matchCache) occurs(kw string) bool {
	_, ok := c.present[kw]
	return ok
}

// lookup returns the cached verdict and whether one exists.
func (c *matchCache) lookup(k cacheKey) (matched, known bool) {
	if _, ok := c.matches[k]; ok {
		return true, true
	}
	if _, ok := c.nonMatches[k]; ok {
		return false, true
	}
	return false, false
}

func (c *matchCache) record(k cacheKey, matched bool) {
	if matched {
		c.matches[k] = struct{}{}
		return
	}
	c.nonMatches[k] = struct{}{}
}

// seed marks a tag as already present, both as a name and as the alias key
// other tags would use to reference it.
func (c *matchCache) seed(name string) {
	c.matches[cacheKey{kindName, name}] = struct{}{}
	if key := aliasKey(name); key != "" {
		c.matches[cacheKey{kindAlias, key}] = struct{}{}
	}
}

// tagList is an insertion-ordered set of tag names.
type tagList struct {
	names []string
	index map[string]struct{}
}

func newTagList(capacity int) *tagList {
	return &tagList{
		names: make([]string, 0, capacity),
		index: make(map[string]struct{}, capacity),
	}
}

func (l *tagList) add(name string) bool {
	if _, ok := l.index[name]; ok {
		return false
	}
	l.index[name] = struct{}{}
	l.names = append(l.names, name)
	return true
}

func (l *tagList) has(name string) bool {
	_, ok := l.index[name]
	return ok
}

func (l *tagList) hasAll(names []string) bool {
	for _, n := range names {
		if !l.has(n) {
			return false
		}
	}
	return true
}

func (l *tagList) remove(name string) bool {
	if !l.has(name) {
		return false
	}
	delete(l.index, name)
	for i, n := range l.names {
		if n == name {
			l.names = append(l.names[:i], l.names[i+1:]...)
			break
		}
	}
	return true
}

func (l *tagList) slice() []string {
	return append([]string(nil), l.names...)
}

// joinKey renders a composite key such as "Bug~Fly".
func joinKey(parts ...string) string {
	return strings.Join(parts, "~")
}
