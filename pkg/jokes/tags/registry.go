package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/jokes/pkg/jokes/match"
	"github.com/cognicore/jokes/pkg/jokes/morph"
)

// Options controls registry construction.
type Options struct {
	// Path is the tag definitions file read by Load.
	Path string
	// ListsDir holds the external alias-list files.
	ListsDir string
	// LoadTagLists enables alias-list enrichment.
	LoadTagLists bool
	// AliasLists overrides DefaultAliasLists when non-nil.
	AliasLists []AliasList
	// RemoveObsoleteAliases drops aliases that are plain S/ES/IES
	// inflections of another alias or of the tag name.
	RemoveObsoleteAliases bool
	Logger                *zap.Logger
}

// Registry is the ordered set of tag definitions. It is immutable once
// built; the tags it hands out by pointer must not be modified.
type Registry struct {
	order  []string
	byName map[string]*Tag
	table  *morph.Table
}

// Stats summarizes a registry.
type Stats struct {
	Tags     int
	Keywords int // name variants plus alias variants tested per text
}

// Load reads the definitions file at opts.Path and builds a registry.
func Load(opts Options) (*Registry, error) {
	// Unlike alias lists, the definitions file itself is required.
	if _, err := os.Stat(opts.Path); err != nil {
		return nil, fmt.Errorf("read tag definitions: %w", err)
	}
	lines, err := ReadLines(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("read tag definitions: %w", err)
	}
	return Build(lines, opts), nil
}

// Build parses definition lines and builds a registry: parse, enrich from
// alias lists, close aliases to a fixpoint, then dedupe and sort each tag's
// aliases.
func Build(lines []string, opts Options) *Registry {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := &Registry{byName: make(map[string]*Tag)}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		tag, err := ParseLine(line)
		if err != nil {
			log.Warn("Skipping tag definition", zap.Int("line", i+1), zap.String("text", line), zap.Error(err))
			continue
		}
		if existing, ok := r.byName[tag.Name]; ok {
			log.Warn("Duplicate tag definition replaces earlier one", zap.Int("line", i+1), zap.String("tag", tag.Name))
			*existing = tag
			continue
		}
		t := tag
		r.byName[tag.Name] = &t
		r.order = append(r.order, tag.Name)
	}

	if opts.LoadTagLists {
		lists := opts.AliasLists
		if lists == nil {
			lists = DefaultAliasLists
		}
		r.enrich(lists, opts.ListsDir, log)
	}

	passes := r.closeAliases()

	for _, name := range r.order {
		t := r.byName[name]
		t.Aliases = dedupeSorted(t.Aliases)
	}

	if opts.RemoveObsoleteAliases {
		for _, name := range r.order {
			r.byName[name].Aliases = withoutObsolete(r.byName[name])
		}
	}

	flags := make(map[string]morph.Suppression, len(r.order))
	for _, name := range r.order {
		if s := r.byName[name].Suppress; s != 0 {
			flags[name] = s
		}
	}
	r.table = morph.New(flags)

	st := r.Stats()
	log.Info("Loaded tags",
		zap.Int("tags", st.Tags),
		zap.Int("keywords", st.Keywords),
		zap.Int("closure_passes", passes))

	return r
}

func (r *Registry) enrich(lists []AliasList, dir string, log *zap.Logger) {
	for _, entry := range lists {
		tag, ok := r.byName[entry.Tag]
		if !ok {
			log.Debug("Alias list targets unknown tag", zap.String("tag", entry.Tag))
			continue
		}
		for _, list := range entry.Lists {
			path := filepath.Join(dir, list+".txt")
			lines, err := ReadLines(path)
			if err != nil {
				log.Warn("Could not read alias list", zap.String("list", list), zap.Error(err))
				continue
			}
			if len(lines) == 0 {
				log.Debug("Alias list missing or empty", zap.String("list", list), zap.String("path", path))
				continue
			}
			for _, line := range lines {
				if alias := strings.TrimSpace(line); alias != "" {
					tag.Aliases = append(tag.Aliases, alias)
				}
			}
		}
	}
}

// closeAliases unions into every tag the aliases of any tag it names as an
// alias, repeating full passes until one adds nothing. It returns the number
// of passes that added aliases.
func (r *Registry) closeAliases() int {
	passes := 0
	for {
		updated := false
		for _, name := range r.order {
			tag := r.byName[name]
			have := make(map[string]struct{}, len(tag.Aliases))
			for _, a := range tag.Aliases {
				have[a] = struct{}{}
			}
			var add []string
			for _, a := range tag.Aliases {
				ref, ok := r.byName[a]
				if !ok || ref == tag {
					continue
				}
				for _, aa := range ref.Aliases {
					if _, dup := have[aa]; !dup {
						have[aa] = struct{}{}
						add = append(add, aa)
					}
				}
			}
			if len(add) > 0 {
				tag.Aliases = append(tag.Aliases, add...)
				updated = true
			}
		}
		if !updated {
			return passes
		}
		passes++
	}
}

func dedupeSorted(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// withoutObsolete drops aliases already produced by the alias appends of a
// shorter alias or of the tag name.
func withoutObsolete(tag *Tag) []string {
	checks := append(append([]string(nil), tag.Aliases...), tag.Name)
	drop := make(map[string]struct{})
	for _, check := range checks {
		up := strings.ToUpper(check)
		for _, alias := range tag.Aliases {
			a := strings.ToUpper(alias)
			if a == up+"S" ||
				(len(check) > 4 && a == up+"ES") ||
				(strings.HasSuffix(up, "Y") && a == up[:len(up)-1]+"IES") {
				drop[alias] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(tag.Aliases))
	for _, a := range tag.Aliases {
		if _, ok := drop[a]; !ok {
			out = append(out, a)
		}
	}
	return out
}

// Lookup returns the registered tag. The result is shared and must be
// treated as read-only.
func (r *Registry) Lookup(name string) (*Tag, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Tag returns a copy of the named tag definition.
func (r *Registry) Tag(name string) (Tag, bool) {
	t, ok := r.byName[name]
	if !ok {
		return Tag{}, false
	}
	return t.Clone(), true
}

// Tags returns the registered tags in definition order. The tags are shared
// and must be treated as read-only.
func (r *Registry) Tags() []*Tag {
	out := make([]*Tag, len(r.order))
	for i, name := range r.order {
		out[i] = r.byName[name]
	}
	return out
}

// Names returns tag names in definition order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered tags.
func (r *Registry) Len() int {
	return len(r.order)
}

// Morphology returns the ending table built from the tags' suppression flags.
func (r *Registry) Morphology() *morph.Table {
	return r.table
}

// Stats counts tags and the keywords tested for them.
func (r *Registry) Stats() Stats {
	st := Stats{Tags: len(r.order)}
	for _, name := range r.order {
		tag := r.byName[name]
		if r.table != nil {
			st.Keywords += r.table.KeywordCount(tag.Name)
		}
		for _, alias := range tag.Aliases {
			st.Keywords += 2
			if len(alias) > 4 {
				st.Keywords++
			}
			if strings.HasSuffix(strings.ToUpper(alias), "Y") {
				st.Keywords++
			}
		}
	}
	return st
}

// ByEnding returns the names of tags whose name ends with the given
// suffix, case-insensitively.
func (r *Registry) ByEnding(ending string) []string {
	ending = strings.ToUpper(ending)
	var out []string
	for _, name := range r.order {
		if strings.HasSuffix(strings.ToUpper(name), ending) {
			out = append(out, name)
		}
	}
	return out
}

// Vocabulary returns every distinct word appearing in a tag name or alias,
// sorted. Spell checkers add these to their dictionary.
func (r *Registry) Vocabulary() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		for _, w := range strings.Fields(match.SoftTrim(s)) {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	for _, name := range r.order {
		tag := r.byName[name]
		add(tag.Name)
		for _, a := range tag.Aliases {
			add(a)
		}
	}
	sort.Strings(out)
	return out
}
