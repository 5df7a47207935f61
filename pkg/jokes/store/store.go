package store

import (
	"context"
	"time"
)

// Store persists classified jokes.
type Store interface {
	Close() error

	// UpsertJoke inserts a joke or replaces the stored joke with the same ID.
	UpsertJoke(ctx context.Context, j Joke) error
	// GetJoke returns internalerr.ErrNotFound for unknown IDs.
	GetJoke(ctx context.Context, id string) (Joke, error)
	ListJokes(ctx context.Context, opts ListOptions) ([]Joke, error)
	// UpdateTags replaces a joke's classifier output.
	UpdateTags(ctx context.Context, id string, tags []string, nsfw bool) error
	// TagCounts returns how many jokes carry each tag.
	TagCounts(ctx context.Context) ([]TagCount, error)
}

// Joke is a stored joke with its classification.
type Joke struct {
	ID         string
	Text       string
	Source     string
	SourceTags []string // tags the source already assigned
	SourceNSFW bool
	Tags       []string // classifier output
	NSFW       bool
	CreatedAt  time.Time
}

// ListOptions filters ListJokes. Jokes are returned in ID order.
type ListOptions struct {
	Tag   string // only jokes carrying this tag
	Limit int    // 0 means no limit
}

// TagCount is one row of TagCounts.
type TagCount struct {
	Tag   string
	Count int
}

// UniqueStrings drops empty and repeated values, keeping first-seen order.
func UniqueStrings(in []string) []string {
	set := make(map[string]struct{}, len(in))
	var out []string
	for _, v := range in {
		if v == "" {
			continue
		}
		if _, ok := set[v]; ok {
			continue
		}
		set[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
