// Package tagger assigns tags to joke text using the tag registry, a set of
// word heuristics and a small table of conflict rules.
package tagger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/cognicore/jokes/pkg/jokes/match"
	"github.com/cognicore/jokes/pkg/jokes/tags"
)

// Options configures an Engine.
type Options struct {
	Logger *zap.Logger
	// TraceTriggers logs every tag hit at debug level with the keyword that
	// caused it.
	TraceTriggers bool
	// Heuristics overrides DefaultHeuristics when non-nil.
	Heuristics []Heuristic
	// Conflicts overrides DefaultConflicts when non-nil.
	Conflicts []Conflict
}

// Engine classifies text. It is safe for concurrent use; the only shared
// mutable state is the cache of derived recheck tags.
type Engine struct {
	reg        *tags.Registry
	log        *zap.Logger
	trace      bool
	heuristics []Heuristic
	conflicts  []Conflict

	compiled []*compiledTag
	byName   map[string]*compiledTag
	index    *keywordIndex

	specials sync.Map // "Tag~Without" -> *compiledTag
	group    singleflight.Group
}

type aliasEntry struct {
	raw      string
	key      string
	variants []string
}

// compiledTag holds everything needed to test one tag against a text.
type compiledTag struct {
	id         string // registry name, or "Tag~Without" for derived tags
	name       string
	minor      bool
	candidates []string
	aliases    []aliasEntry
}

// New compiles every registered tag and returns a ready engine.
func New(reg *tags.Registry, opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		reg:        reg,
		log:        log,
		trace:      opts.TraceTriggers,
		heuristics: opts.Heuristics,
		conflicts:  opts.Conflicts,
		byName:     make(map[string]*compiledTag, reg.Len()),
	}
	if e.heuristics == nil {
		e.heuristics = DefaultHeuristics()
	}
	if e.conflicts == nil {
		e.conflicts = DefaultConflicts()
	}

	table := reg.Morphology()
	variants := make(map[string][]string)
	for _, tag := range reg.Tags() {
		ct := &compiledTag{
			id:         tag.Name,
			name:       tag.Name,
			minor:      tag.Minor,
			candidates: table.Candidates(tag.Name),
			aliases:    make([]aliasEntry, 0, len(tag.Aliases)),
		}
		for _, alias := range tag.Aliases {
			key := aliasKey(alias)
			if key == "" {
				continue
			}
			v, ok := variants[key]
			if !ok {
				v = aliasVariants(key)
				variants[key] = v
			}
			ct.aliases = append(ct.aliases, aliasEntry{raw: alias, key: key, variants: v})
		}
		e.compiled = append(e.compiled, ct)
		e.byName[ct.name] = ct
	}

	var keywords []string
	for _, ct := range e.compiled {
		keywords = append(keywords, ct.candidates...)
	}
	for _, v := range variants {
		keywords = append(keywords, v...)
	}
	e.index = newKeywordIndex(keywords)

	log.Debug("Tagger ready",
		zap.Int("tags", len(e.compiled)),
		zap.Int("alias_keys", len(variants)),
		zap.Int("keywords", len(e.index.patterns)),
		zap.Int("heuristics", len(e.heuristics)),
		zap.Int("conflicts", len(e.conflicts)))
	return e
}

// aliasKey normalizes an alias for matching and caching.
func aliasKey(alias string) string {
	return strings.ToUpper(match.SoftTrim(alias, '&', '-'))
}

// aliasVariants lists the forms an alias is searched for: as written, plus
// S, plus ES for keys longer than four bytes, plus IES in place of a
// trailing Y.
func aliasVariants(key string) []string {
	out := []string{key, key + "S"}
	if len(key) > 4 {
		out = append(out, key+"ES")
	}
	if strings.HasSuffix(key, "Y") {
		out = append(out, key[:len(key)-1]+"IES")
	}
	return out
}

// Registry returns the registry the engine was built from.
func (e *Engine) Registry() *tags.Registry {
	return e.reg
}

// Classify returns the tags that apply to text.
func (e *Engine) Classify(text string) []string {
	return e.ClassifyWithSeed(text, nil)
}

// ClassifyWithSeed classifies text starting from tags already known to
// apply. Seed tags are kept unless a conflict rule removes them.
func (e *Engine) ClassifyWithSeed(text string, seed []string) []string {
	subj := match.NewSubject(text)
	cache := newMatchCache(e.index.present(subj))
	found := newTagList(len(seed) + 8)

	for _, name := range seed {
		if name == "" {
			continue
		}
		found.add(name)
		cache.seed(name)
		e.traceHit(name, "seed", name)
	}
	for _, hit := range e.initialHits(text) {
		cache.seed(hit.tag)
		if found.add(hit.tag) {
			e.traceHit(hit.tag, "heuristic", hit.trigger)
		}
	}

	for _, ct := range e.compiled {
		if found.has(ct.name) {
			continue
		}
		if e.matches(subj, ct, cache) {
			found.add(ct.name)
		}
	}

	e.resolve(subj, found, cache)
	return found.slice()
}

// HasTag reports whether the named tag's own name or aliases occur in text.
// Heuristics and conflict rules are not applied. Unknown tags never match.
func (e *Engine) HasTag(text, name string) bool {
	ct, ok := e.byName[name]
	if !ok {
		e.log.Debug("HasTag on unknown tag", zap.String("tag", name))
		return false
	}
	subj := match.NewSubject(text)
	return e.matches(subj, ct, newMatchCache(e.index.present(subj)))
}

// InitialTags returns the tags the word heuristics assign to text, without
// consulting the registry.
func (e *Engine) InitialTags(text string) []string {
	hits := e.initialHits(text)
	out := newTagList(len(hits))
	for _, h := range hits {
		out.add(h.tag)
	}
	return out.slice()
}

// TagDefinition returns a copy of the named tag's definition.
func (e *Engine) TagDefinition(name string) (tags.Tag, bool) {
	return e.reg.Tag(name)
}

// matches tests one tag against the subject: the morphology variants of its
// name unless the tag is minor, then each alias.
func (e *Engine) matches(subj match.Subject, ct *compiledTag, cache *matchCache) bool {
	if !ct.minor {
		if kw, ok := e.nameMatches(subj, ct, cache); ok {
			e.traceHit(ct.id, "name", kw)
			return true
		}
	}
	for _, alias := range ct.aliases {
		if kw, ok := e.aliasMatches(subj, alias, cache); ok {
			e.traceHit(ct.id, "alias", kw)
			return true
		}
	}
	return false
}

func (e *Engine) nameMatches(subj match.Subject, ct *compiledTag, cache *matchCache) (string, bool) {
	k := cacheKey{kindName, ct.id}
	if matched, known := cache.lookup(k); known {
		return "~" + ct.id, matched
	}
	for _, cand := range ct.candidates {
		if cache.occurs(cand) && subj.Name(cand) {
			cache.record(k, true)
			return cand, true
		}
	}
	cache.record(k, false)
	return "", false
}

func (e *Engine) aliasMatches(subj match.Subject, alias aliasEntry, cache *matchCache) (string, bool) {
	k := cacheKey{kindAlias, alias.key}
	if matched, known := cache.lookup(k); known {
		return "~" + alias.key, matched
	}
	for _, v := range alias.variants {
		if cache.occurs(v) && subj.Alias(v) {
			cache.record(k, true)
			return v, true
		}
	}
	cache.record(k, false)
	return "", false
}

func (e *Engine) traceHit(tag, via, keyword string) {
	if !e.trace {
		return
	}
	e.log.Debug("Tag triggered",
		zap.String("tag", tag),
		zap.String("via", via),
		zap.String("keyword", keyword))
}
