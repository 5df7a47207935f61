package config

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cognicore/jokes/pkg/jokes/tagger"
	"github.com/cognicore/jokes/pkg/jokes/tags"
)

// Loader loads the tag definitions and constructs the classifier
type Loader struct {
	Config Config
	Logger *zap.Logger
}

// Components holds the loaded classifier components
type Components struct {
	Registry *tags.Registry
	Engine   *tagger.Engine
}

// Load reads the tag definitions and returns initialized components
func (l *Loader) Load() (*Components, error) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	reg, err := tags.Load(tags.Options{
		Path:                  l.Config.TagsFile,
		ListsDir:              l.Config.ListsDir,
		LoadTagLists:          l.Config.LoadTagLists,
		RemoveObsoleteAliases: l.Config.RemoveObsoleteAliases,
		Logger:                log,
	})
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}

	eng := tagger.New(reg, tagger.Options{
		Logger:        log,
		TraceTriggers: l.Config.TraceTriggers,
		Conflicts:     append(tagger.DefaultConflicts(), l.Config.conflicts()...),
	})
	return &Components{Registry: reg, Engine: eng}, nil
}

// Provider returns a provider that runs Load on first use.
func (l *Loader) Provider() *tagger.Provider {
	return tagger.NewProvider(func() (*tagger.Engine, error) {
		comp, err := l.Load()
		if err != nil {
			return nil, err
		}
		return comp.Engine, nil
	})
}

func (c Config) conflicts() []tagger.Conflict {
	out := make([]tagger.Conflict, 0, len(c.Conflicts))
	for _, rule := range c.Conflicts {
		conflict := tagger.Conflict{When: rule.When, Drop: rule.Drop}
		for _, rc := range rule.Recheck {
			conflict.Recheck = append(conflict.Recheck, tagger.Recheck{
				Tag:     rc.Tag,
				Without: rc.Without,
				Aliases: rc.Aliases,
			})
		}
		out = append(out, conflict)
	}
	return out
}
