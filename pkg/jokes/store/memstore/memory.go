package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/jokes/pkg/jokes/internalerr"
	"github.com/cognicore/jokes/pkg/jokes/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu    sync.RWMutex
	jokes map[string]store.Joke
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{jokes: make(map[string]store.Joke)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertJoke inserts or replaces a joke, keyed by ID.
func (s *Store) UpsertJoke(ctx context.Context, j store.Joke) error {
	if j.ID == "" {
		return fmt.Errorf("%w: joke without id", internalerr.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	j.SourceTags = store.UniqueStrings(j.SourceTags)
	j.Tags = store.UniqueStrings(j.Tags)
	s.jokes[j.ID] = copyJoke(j)
	return nil
}

// GetJoke returns a joke by ID.
func (s *Store) GetJoke(ctx context.Context, id string) (store.Joke, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jokes[id]
	if !ok {
		return store.Joke{}, fmt.Errorf("joke %s: %w", id, internalerr.ErrNotFound)
	}
	return copyJoke(j), nil
}

// ListJokes returns jokes in ID order.
func (s *Store) ListJokes(ctx context.Context, opts store.ListOptions) ([]store.Joke, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.jokes))
	for id, j := range s.jokes {
		if opts.Tag != "" && !contains(j.Tags, opts.Tag) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if opts.Limit > 0 && len(ids) > opts.Limit {
		ids = ids[:opts.Limit]
	}

	out := make([]store.Joke, len(ids))
	for i, id := range ids {
		out[i] = copyJoke(s.jokes[id])
	}
	return out, nil
}

// UpdateTags replaces the classifier tags and NSFW flag of a joke.
func (s *Store) UpdateTags(ctx context.Context, id string, tags []string, nsfw bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jokes[id]
	if !ok {
		return fmt.Errorf("joke %s: %w", id, internalerr.ErrNotFound)
	}
	j.Tags = store.UniqueStrings(tags)
	j.NSFW = nsfw
	s.jokes[id] = copyJoke(j)
	return nil
}

// TagCounts counts jokes per classifier tag, most common first.
func (s *Store) TagCounts(ctx context.Context) ([]store.TagCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, j := range s.jokes {
		for _, tag := range j.Tags {
			counts[tag]++
		}
	}
	out := make([]store.TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, store.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func copyJoke(j store.Joke) store.Joke {
	j.SourceTags = append([]string(nil), j.SourceTags...)
	j.Tags = append([]string(nil), j.Tags...)
	return j
}
