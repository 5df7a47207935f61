package jokes

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/cognicore/jokes/pkg/jokes/batch"
	"github.com/cognicore/jokes/pkg/jokes/hotfix"
	"github.com/cognicore/jokes/pkg/jokes/ingest"
	"github.com/cognicore/jokes/pkg/jokes/internalerr"
	"github.com/cognicore/jokes/pkg/jokes/nsfw"
	"github.com/cognicore/jokes/pkg/jokes/store"
)

// Jokes classifies incoming jokes, flags them and stores them.
type Jokes struct {
	store  store.Store
	tagger hotfix.Tagger
	nsfw   nsfw.Checker
	log    *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// Options configures a Jokes instance
type Options struct {
	Store  store.Store
	Engine hotfix.Tagger
	// NSFW may be nil, in which case only the source flag is kept.
	NSFW   nsfw.Checker
	Logger *zap.Logger
	// Now overrides the clock used for IDs and timestamps.
	Now func() time.Time
}

// New creates a Jokes instance with the given dependencies
func New(opts Options) *Jokes {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Jokes{
		store:   opts.Store,
		tagger:  opts.Engine,
		nsfw:    opts.NSFW,
		log:     log,
		now:     now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Close cleanly shuts down the store
func (k *Jokes) Close() error {
	return k.store.Close()
}

// IngestJoke is a joke to be classified and stored
type IngestJoke struct {
	Text   string
	Source string
	Tags   []string // tags the source already assigned
	NSFW   bool     // the source's own NSFW flag
	HTML   bool     // Text is markup
}

// FromRecord converts a JSONL record.
func FromRecord(r ingest.Joke, asHTML bool) IngestJoke {
	return IngestJoke{Text: r.Text, Source: r.Source, Tags: r.Tags, NSFW: r.NSFW, HTML: asHTML}
}

// Add classifies and stores one joke.
func (k *Jokes) Add(ctx context.Context, in IngestJoke) (store.Joke, error) {
	j, err := k.prepare(in, k.newID())
	if err != nil {
		return store.Joke{}, err
	}
	k.classify(&j)
	if err := k.store.UpsertJoke(ctx, j); err != nil {
		return store.Joke{}, fmt.Errorf("store joke: %w", err)
	}
	return j, nil
}

// AddAll classifies and stores jokes on up to workers goroutines. IDs are
// assigned in input order before any work starts, so stored order matches
// input order. Jokes without text are rejected before anything is stored.
func (k *Jokes) AddAll(ctx context.Context, in []IngestJoke, workers int) ([]store.Joke, error) {
	out := make([]store.Joke, len(in))
	for i, raw := range in {
		j, err := k.prepare(raw, k.newID())
		if err != nil {
			return nil, fmt.Errorf("joke %d: %w", i, err)
		}
		out[i] = j
	}

	err := batch.Each(ctx, len(out), workers, func(ctx context.Context, i int) error {
		k.classify(&out[i])
		if err := k.store.UpsertJoke(ctx, out[i]); err != nil {
			return fmt.Errorf("store joke %s: %w", out[i].ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	k.log.Info("Jokes added", zap.Int("count", len(out)))
	return out, nil
}

// Retag applies a hotfix plan to every stored joke.
func (k *Jokes) Retag(ctx context.Context, plan hotfix.Plan, workers int) (hotfix.Report, error) {
	return k.runner(workers).Run(ctx, plan)
}

// RefreshNSFW recomputes every stored joke's NSFW flag.
func (k *Jokes) RefreshNSFW(ctx context.Context, workers int) (hotfix.Report, error) {
	return k.runner(workers).RefreshNSFW(ctx)
}

func (k *Jokes) runner(workers int) *hotfix.Runner {
	return &hotfix.Runner{
		Store:   k.store,
		Tagger:  k.tagger,
		NSFW:    k.nsfw,
		Workers: workers,
		Logger:  k.log,
	}
}

func (k *Jokes) prepare(in IngestJoke, id string) (store.Joke, error) {
	text := ingest.Clean(in.Text, in.HTML)
	if text == "" {
		return store.Joke{}, fmt.Errorf("%w: joke text is required", internalerr.ErrInvalidInput)
	}
	return store.Joke{
		ID:         id,
		Text:       text,
		Source:     in.Source,
		SourceTags: store.UniqueStrings(in.Tags),
		SourceNSFW: in.NSFW,
		CreatedAt:  k.now().UTC(),
	}, nil
}

func (k *Jokes) classify(j *store.Joke) {
	j.Tags = k.tagger.ClassifyWithSeed(j.Text, j.SourceTags)
	j.NSFW = j.SourceNSFW || (k.nsfw != nil && k.nsfw.Check(j.Text, j.Tags))
}

// newID returns a ULID; the monotonic entropy source is not safe for
// concurrent use.
func (k *Jokes) newID() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(k.now()), k.entropy).String()
}
