// Package nsfw decides whether a classified joke is not safe for work.
package nsfw

import (
	"go.uber.org/zap"

	"github.com/cognicore/jokes/pkg/jokes/tags"
)

// Checker flags a joke from its text and assigned tags.
type Checker interface {
	Check(text string, tagNames []string) bool
}

// Definitions resolves tag names to their definitions.
type Definitions interface {
	Lookup(name string) (*tags.Tag, bool)
}

// TagFlags flags a joke when any of its tags is defined as NSFW.
type TagFlags struct {
	defs Definitions
	log  *zap.Logger
}

// NewTagFlags returns a checker backed by the given tag definitions.
func NewTagFlags(defs Definitions, log *zap.Logger) *TagFlags {
	if log == nil {
		log = zap.NewNop()
	}
	return &TagFlags{defs: defs, log: log}
}

// AnyNSFW reports whether any named tag carries the NSFW flag. Unknown tags
// are logged and count as safe.
func (f *TagFlags) AnyNSFW(tagNames []string) bool {
	for _, name := range tagNames {
		tag, ok := f.defs.Lookup(name)
		if !ok {
			f.log.Warn("Tag does not exist", zap.String("tag", name))
			continue
		}
		if tag.NSFW {
			return true
		}
	}
	return false
}

// Check implements Checker. The text is not inspected.
func (f *TagFlags) Check(_ string, tagNames []string) bool {
	return f.AnyNSFW(tagNames)
}

// Func adapts a function to Checker.
type Func func(text string, tagNames []string) bool

// Check implements Checker.
func (fn Func) Check(text string, tagNames []string) bool {
	return fn(text, tagNames)
}
