// Package batch classifies many texts concurrently.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Classifier is the part of the tagger the pool needs.
type Classifier interface {
	ClassifyWithSeed(text string, seed []string) []string
}

// Item is one text to classify, with tags already known to apply.
type Item struct {
	Text string
	Seed []string
}

// Each calls fn for every index in [0, n) using at most workers goroutines.
// workers <= 0 means GOMAXPROCS. The first error cancels the remaining work
// and is returned; indices not yet started are skipped.
func Each(ctx context.Context, n, workers int, fn func(ctx context.Context, i int) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Classify classifies every item and returns the tags in input order.
func Classify(ctx context.Context, c Classifier, items []Item, workers int) ([][]string, error) {
	out := make([][]string, len(items))
	err := Each(ctx, len(items), workers, func(_ context.Context, i int) error {
		out[i] = c.ClassifyWithSeed(items[i].Text, items[i].Seed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
