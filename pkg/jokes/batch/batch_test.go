package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/cognicore/jokes/pkg/jokes/tagger"
	"github.com/cognicore/jokes/pkg/jokes/tags"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestClassifyPreservesOrder(t *testing.T) {
	reg := tags.Build([]string{"Cow,Bovine", "Dog,Puppy", "Fly", "Aviation"}, tags.Options{})
	eng := tagger.New(reg, tagger.Options{})

	items := []Item{
		{Text: "A bovine walks in"},
		{Text: "My puppy"},
		{Text: "The fly on the aviation show"},
		{Text: "Nothing here", Seed: []string{"Dog"}},
	}
	for i := 0; i < 40; i++ {
		items = append(items, Item{Text: fmt.Sprintf("cow number %d", i)})
	}

	got, err := Classify(context.Background(), eng, items, 4)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if len(got) != len(items) {
		t.Fatalf("got %d results for %d items", len(got), len(items))
	}
	for i, item := range items {
		want := eng.ClassifyWithSeed(item.Text, item.Seed)
		if diff := cmp.Diff(want, got[i]); diff != "" {
			t.Errorf("item %d (-want +got):\n%s", i, diff)
		}
	}
}

func TestEachLimitsWorkers(t *testing.T) {
	var active, peak int32
	err := Each(context.Background(), 50, 3, func(context.Context, int) error {
		n := atomic.AddInt32(&active, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&active, -1)
		return nil
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	if peak > 3 {
		t.Errorf("peak concurrency %d exceeds 3", peak)
	}
}

func TestEachStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var calls int32
	err := Each(context.Background(), 1000, 1, func(_ context.Context, i int) error {
		atomic.AddInt32(&calls, 1)
		if i == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Each error = %v, want boom", err)
	}
	if c := atomic.LoadInt32(&calls); c >= 1000 {
		t.Errorf("work continued after error: %d calls", c)
	}
}

func TestClassifyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := tagger.New(tags.Build([]string{"Cow"}, tags.Options{}), tagger.Options{})
	_, err := Classify(ctx, eng, []Item{{Text: "cow"}}, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Classify error = %v, want context.Canceled", err)
	}
}

func TestClassifyEmpty(t *testing.T) {
	eng := tagger.New(tags.Build(nil, tags.Options{}), tagger.Options{})
	got, err := Classify(context.Background(), eng, nil, 0)
	if err != nil || len(got) != 0 {
		t.Errorf("Classify(nil) = %v, %v", got, err)
	}
}
