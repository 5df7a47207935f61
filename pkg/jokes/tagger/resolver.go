package tagger

import (
	"go.uber.org/zap"

	"github.com/cognicore/jokes/pkg/jokes/match"
)

// Recheck re-tests Tag against the text with some of its aliases removed,
// dropping it when the reduced definition no longer matches.
type Recheck struct {
	Tag string
	// Without labels the derived definition. When Aliases is empty it also
	// names a tag whose name and aliases are removed from Tag.
	Without string
	// Aliases, when set, are removed instead.
	Aliases []string
}

// Conflict fires when every tag in When was assigned.
type Conflict struct {
	When    []string
	Drop    []string
	Recheck []Recheck
}

// DefaultConflicts returns the built-in conflict rules.
func DefaultConflicts() []Conflict {
	return []Conflict{
		{
			// A fly near aircraft is about flying, not insects.
			When: []string{"Aviation", "Fly"},
			Drop: []string{"Fly"},
			Recheck: []Recheck{
				{Tag: "Bug", Without: "Fly"},
				{Tag: "Animal", Without: "Fly"},
			},
		},
		{
			When: []string{"Lightbulb", "Sex"},
			Recheck: []Recheck{
				{Tag: "Sex", Without: "Screw", Aliases: []string{"Screw", "Screwed", "Screwing"}},
			},
		},
	}
}

func (e *Engine) resolve(subj match.Subject, found *tagList, cache *matchCache) {
	for _, rule := range e.conflicts {
		if !found.hasAll(rule.When) {
			continue
		}
		for _, name := range rule.Drop {
			if found.remove(name) {
				e.traceDrop(name, rule)
			}
		}
		for _, rc := range rule.Recheck {
			if !found.has(rc.Tag) {
				continue
			}
			ct, ok := e.special(rc)
			if !ok {
				continue
			}
			if !e.matches(subj, ct, cache) {
				found.remove(rc.Tag)
				e.traceDrop(rc.Tag, rule)
			}
		}
	}
}

func (e *Engine) traceDrop(tag string, rule Conflict) {
	if !e.trace {
		return
	}
	e.log.Debug("Tag removed by conflict",
		zap.String("tag", tag),
		zap.Strings("when", rule.When))
}

// special returns the derived tag for a recheck, building it once per
// engine. Concurrent first requests for the same key share one build.
func (e *Engine) special(rc Recheck) (*compiledTag, bool) {
	id := joinKey(rc.Tag, rc.Without)
	if v, ok := e.specials.Load(id); ok {
		return v.(*compiledTag), true
	}
	v, _, _ := e.group.Do(id, func() (any, error) {
		if v, ok := e.specials.Load(id); ok {
			return v, nil
		}
		base, ok := e.byName[rc.Tag]
		if !ok {
			e.log.Debug("Recheck on unknown tag", zap.String("tag", rc.Tag))
			return nil, nil
		}
		actual, _ := e.specials.LoadOrStore(id, e.derive(id, base, rc))
		return actual, nil
	})
	if v == nil {
		return nil, false
	}
	return v.(*compiledTag), true
}

// derive copies base without the aliases the recheck removes. The derived
// tag keeps the base name, so it still matches on the name itself.
func (e *Engine) derive(id string, base *compiledTag, rc Recheck) *compiledTag {
	remove := make(map[string]struct{})
	if len(rc.Aliases) > 0 {
		for _, a := range rc.Aliases {
			remove[a] = struct{}{}
		}
	} else {
		remove[rc.Without] = struct{}{}
		if owner, ok := e.reg.Lookup(rc.Without); ok {
			for _, a := range owner.Aliases {
				remove[a] = struct{}{}
			}
		}
	}

	ct := &compiledTag{
		id:         id,
		name:       base.name,
		minor:      base.minor,
		candidates: base.candidates,
		aliases:    make([]aliasEntry, 0, len(base.aliases)),
	}
	for _, a := range base.aliases {
		if _, drop := remove[a.raw]; !drop {
			ct.aliases = append(ct.aliases, a)
		}
	}
	return ct
}

// DerivedAliases returns the aliases of the recheck definition for tag with
// the given label, if one has been built.
func (e *Engine) DerivedAliases(tag, without string) ([]string, bool) {
	v, ok := e.specials.Load(joinKey(tag, without))
	if !ok {
		return nil, false
	}
	ct := v.(*compiledTag)
	out := make([]string, len(ct.aliases))
	for i, a := range ct.aliases {
		out[i] = a.raw
	}
	return out, true
}
