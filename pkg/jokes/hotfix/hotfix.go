// Package hotfix re-tags stored jokes after the tag definitions change.
package hotfix

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/cognicore/jokes/pkg/jokes/batch"
	"github.com/cognicore/jokes/pkg/jokes/nsfw"
	"github.com/cognicore/jokes/pkg/jokes/store"
)

// Plan names the tags whose definitions changed.
type Plan struct {
	// Redo retags jokes whose text matches any of these tags.
	Redo []string `yaml:"redo"`
	// TagHasLess retags jokes carrying a tag that lost aliases.
	TagHasLess []string `yaml:"tag_has_less"`
	// TagHasMore retags jokes that lack a tag which now matches.
	TagHasMore []string `yaml:"tag_has_more"`
	// RedoInitial retags jokes whose heuristic tags include one of these.
	RedoInitial []string `yaml:"redo_initial"`
}

// Empty reports whether the plan selects nothing.
func (p Plan) Empty() bool {
	return len(p.Redo) == 0 && len(p.TagHasLess) == 0 && len(p.TagHasMore) == 0 && len(p.RedoInitial) == 0
}

// Tagger is the part of the classifier a hotfix needs.
type Tagger interface {
	ClassifyWithSeed(text string, seed []string) []string
	HasTag(text, tag string) bool
	InitialTags(text string) []string
}

// NeedsRetag reports whether the plan selects the joke. Checks run cheapest
// first and stop at the first hit.
func (p Plan) NeedsRetag(t Tagger, j store.Joke) bool {
	for _, tag := range j.Tags {
		if slices.Contains(p.TagHasLess, tag) {
			return true
		}
	}
	if len(p.RedoInitial) > 0 {
		for _, tag := range t.InitialTags(j.Text) {
			if slices.Contains(p.RedoInitial, tag) {
				return true
			}
		}
	}
	for _, tag := range p.TagHasMore {
		if !slices.Contains(j.Tags, tag) && t.HasTag(j.Text, tag) {
			return true
		}
	}
	for _, tag := range p.Redo {
		if t.HasTag(j.Text, tag) {
			return true
		}
	}
	return false
}

// Runner applies plans to a store.
type Runner struct {
	Store   store.Store
	Tagger  Tagger
	NSFW    nsfw.Checker
	Workers int
	Logger  *zap.Logger
}

// Report summarizes a run.
type Report struct {
	Scanned  int // jokes examined
	Retagged int // jokes reclassified
	Changed  int // reclassified jokes whose tags or NSFW flag changed
}

// Run reclassifies every stored joke the plan selects, seeding each with its
// source tags, and writes back the new tags and NSFW flag.
func (r *Runner) Run(ctx context.Context, plan Plan) (Report, error) {
	return r.apply(ctx, "retag", func(j store.Joke) ([]string, bool) {
		if !plan.NeedsRetag(r.Tagger, j) {
			return nil, false
		}
		return r.Tagger.ClassifyWithSeed(j.Text, j.SourceTags), true
	})
}

// RefreshNSFW recomputes the NSFW flag of every stored joke without
// reclassifying it.
func (r *Runner) RefreshNSFW(ctx context.Context) (Report, error) {
	return r.apply(ctx, "refresh nsfw", func(j store.Joke) ([]string, bool) {
		return j.Tags, true
	})
}

func (r *Runner) apply(ctx context.Context, op string, retag func(store.Joke) ([]string, bool)) (Report, error) {
	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	jokes, err := r.Store.ListJokes(ctx, store.ListOptions{})
	if err != nil {
		return Report{}, fmt.Errorf("%s: list jokes: %w", op, err)
	}

	var retagged, changed atomic.Int64
	err = batch.Each(ctx, len(jokes), r.Workers, func(ctx context.Context, i int) error {
		j := jokes[i]
		tags, ok := retag(j)
		if !ok {
			return nil
		}
		retagged.Add(1)
		flagged := j.SourceNSFW || (r.NSFW != nil && r.NSFW.Check(j.Text, tags))
		if slices.Equal(tags, j.Tags) && flagged == j.NSFW {
			return nil
		}
		if err := r.Store.UpdateTags(ctx, j.ID, tags, flagged); err != nil {
			return fmt.Errorf("%s: update %s: %w", op, j.ID, err)
		}
		changed.Add(1)
		log.Debug("Joke updated",
			zap.String("id", j.ID),
			zap.Strings("before", j.Tags),
			zap.Strings("after", tags),
			zap.Bool("nsfw", flagged))
		return nil
	})

	rep := Report{Scanned: len(jokes), Retagged: int(retagged.Load()), Changed: int(changed.Load())}
	if err != nil {
		return rep, err
	}
	log.Info("Hotfix complete",
		zap.String("op", op),
		zap.Int("scanned", rep.Scanned),
		zap.Int("retagged", rep.Retagged),
		zap.Int("changed", rep.Changed))
	return rep, nil
}
