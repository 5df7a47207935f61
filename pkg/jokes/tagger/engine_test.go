package tagger

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cognicore/jokes/pkg/jokes/match"
	"github.com/cognicore/jokes/pkg/jokes/tags"
)

func newEngine(t *testing.T, lines ...string) *Engine {
	t.Helper()
	return New(tags.Build(lines, tags.Options{}), Options{})
}

func sorted(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

var zooLines = []string{
	"Animal,Mammal,Bug,Bird",
	"Mammal,Cow,Dog",
	"Cow,Bovine,Cattle",
	"Bug,Fly,Ant",
	"Fly,Flies",
	"Aviation,Airplane,Pilot",
	"Bird,Parrot",
	"Lightbulb,Light Bulb",
	"Sex,Screw,Screwed,Screwing -nsfw",
	"Happy,Glad,Joy",
	"Dog,Puppy,Hound",
	"Harambe -minor",
}

func TestClassifyNameInflection(t *testing.T) {
	e := newEngine(t, "Cow")
	got := e.Classify("I love cows today.")
	if diff := cmp.Diff([]string{"Cow"}, got); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyAviationDropsFly(t *testing.T) {
	e := newEngine(t, "Fly,Flies", "Aviation,Airplane", "Bug,Fly,Ant")

	got := e.Classify("I fixed my airplane, said the fly.")
	if diff := cmp.Diff([]string{"Aviation"}, got); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}

	// Bug survives when something other than the fly triggers it
	got = e.Classify("The pilot of the airplane swatted a fly and an ant.")
	if diff := cmp.Diff([]string{"Aviation", "Bug"}, sorted(got)); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}

	aliases, ok := e.DerivedAliases("Bug", "Fly")
	if !ok {
		t.Fatal("Bug~Fly should have been built")
	}
	if diff := cmp.Diff([]string{"Ant"}, aliases); diff != "" {
		t.Errorf("Bug~Fly aliases (-want +got):\n%s", diff)
	}
}

func TestClassifyMinorTagOnlyViaHeuristic(t *testing.T) {
	e := newEngine(t, "Harambe -minor")

	if got := e.Classify("Harambe was a legend"); len(got) != 0 {
		t.Errorf("minor tag matched on its name: %v", got)
	}
	got := e.Classify("a gorilla named Harry")
	if diff := cmp.Diff([]string{"Harambe"}, got); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyMinorTagViaAlias(t *testing.T) {
	e := newEngine(t, "Harambe,Cincinnati Zoo -minor")
	got := e.Classify("We went to the Cincinnati Zoo.")
	if diff := cmp.Diff([]string{"Harambe"}, got); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyLightbulbScrew(t *testing.T) {
	e := newEngine(t, "Lightbulb", "Sex,Screw,Screwed,Screwing -nsfw")

	got := e.Classify("How many men does it take to screw in a lightbulb?")
	if diff := cmp.Diff([]string{"Lightbulb"}, got); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}

	got = e.Classify("Forget the lightbulb, let's talk about sex and screwing.")
	if diff := cmp.Diff([]string{"Lightbulb", "Sex"}, sorted(got)); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyWithSeed(t *testing.T) {
	e := newEngine(t, "Ship,Pirate", "Cow")

	got := e.ClassifyWithSeed("Nothing to see here", []string{"Pirate", "", "Pirate"})
	if diff := cmp.Diff([]string{"Pirate", "Ship"}, sorted(got)); diff != "" {
		t.Errorf("seeded tag should count as a matched alias (-want +got):\n%s", diff)
	}

	// Seeds are not subject to matching but still go through conflicts
	e = newEngine(t, "Fly", "Aviation")
	got = e.ClassifyWithSeed("plain text", []string{"Fly", "Aviation"})
	if diff := cmp.Diff([]string{"Aviation"}, got); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyWithSeedRechecksConflicts(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		text  string
		seed  []string
		want  []string
	}{
		{
			name:  "seeded bug without its own trigger",
			lines: []string{"Fly,Flies", "Aviation,Airplane", "Bug,Fly,Ant"},
			text:  "I fixed my airplane, said the fly.",
			seed:  []string{"Bug"},
			want:  []string{"Aviation"},
		},
		{
			name:  "seeded bug named in the text",
			lines: []string{"Fly,Flies", "Aviation,Airplane", "Bug,Fly,Ant"},
			text:  "A bug and a fly boarded the airplane.",
			seed:  []string{"Bug"},
			want:  []string{"Aviation", "Bug"},
		},
		{
			name:  "seeded sex only screwed in",
			lines: []string{"Lightbulb", "Sex,Screw,Screwed,Screwing -nsfw"},
			text:  "screw in a lightbulb",
			seed:  []string{"Sex"},
			want:  []string{"Lightbulb"},
		},
		{
			name:  "seeded sex named in the text",
			lines: []string{"Lightbulb", "Sex,Screw,Screwed,Screwing -nsfw"},
			text:  "sex and a screw in a lightbulb",
			seed:  []string{"Sex"},
			want:  []string{"Lightbulb", "Sex"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, tt.lines...)
			got := e.ClassifyWithSeed(tt.text, tt.seed)
			if diff := cmp.Diff(tt.want, sorted(got)); diff != "" {
				t.Errorf("ClassifyWithSeed mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyNameVariants(t *testing.T) {
	for _, name := range []string{"Happy", "Creation", "Player", "Boxing"} {
		reg := tags.Build([]string{name}, tags.Options{})
		e := New(reg, Options{})
		cands := reg.Morphology().Candidates(name)
		if len(cands) < 2 {
			t.Fatalf("%s: expected several candidates, got %v", name, cands)
		}
		for _, cand := range cands {
			text := "well " + strings.ToLower(cand) + " indeed"
			got := e.Classify(text)
			if len(got) == 0 || got[0] != name {
				t.Errorf("Classify(%q) = %v, want %s", text, got, name)
			}
		}
	}
}

func TestClassifySuppressedVariants(t *testing.T) {
	tests := []struct {
		line  string
		forms []string
	}{
		{"Happy -dontDoY", []string{"happies", "happer", "happist"}},
		{"Creation -dontDoTION", []string{"creator", "created", "creating"}},
		{"Player -dontDoER", []string{"play", "playing", "playation"}},
		{"Boxing -dontDoING", []string{"boxer", "boxed", "box"}},
	}
	for _, tt := range tests {
		name := strings.Fields(tt.line)[0]
		plain := newEngine(t, name)
		suppressed := newEngine(t, tt.line)
		for _, form := range tt.forms {
			text := "so " + form + " today"
			if got := plain.Classify(text); len(got) != 1 || got[0] != name {
				t.Errorf("%s: Classify(%q) = %v, want [%s]", name, text, got, name)
			}
			if got := suppressed.Classify(text); len(got) != 0 {
				t.Errorf("%s: Classify(%q) = %v, want none", tt.line, text, got)
			}
		}
	}
}

func TestClassifyOverlappingKeywords(t *testing.T) {
	e := newEngine(t, "New", "New York", "York")
	got := e.Classify("I love New York")
	if diff := cmp.Diff([]string{"New", "New York", "York"}, sorted(got)); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}

	e = newEngine(t, "Cowbell")
	if got := e.Classify("more cow-bell"); len(got) != 1 || got[0] != "Cowbell" {
		t.Errorf("dash-joined name not found: %v", got)
	}
}

func TestKeywordIndexPresent(t *testing.T) {
	idx := newKeywordIndex([]string{"NEW", "NEW YORK", "YORK", "", "NEW", "COWBELL", "MOON"})
	got := idx.present(match.NewSubject("new york cow-bell"))
	var keys []string
	for k := range got {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]string{"COWBELL", "NEW", "NEW YORK", "YORK"}, sorted(keys)); diff != "" {
		t.Errorf("present mismatch (-want +got):\n%s", diff)
	}

	if got := newKeywordIndex(nil).present(match.NewSubject("anything")); len(got) != 0 {
		t.Errorf("empty index found %v", got)
	}
}

func TestClassifyEmptyInputs(t *testing.T) {
	e := newEngine(t, "Cow")
	if got := e.Classify(""); len(got) != 0 {
		t.Errorf("Classify(\"\") = %v", got)
	}

	empty := newEngine(t)
	if got := empty.Classify("Moooo, said the thesaurus"); len(got) != 1 || got[0] != "Cow" {
		t.Errorf("heuristics should work without a registry: %v", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	e := newEngine(t, zooLines...)
	text := "A happy puppy met a gorilla named Harry near the airplane"
	first := e.Classify(text)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, e.Classify(text)); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
}

func TestClassifyIndependentOfDefinitionOrder(t *testing.T) {
	texts := []string{
		"I fixed my airplane, said the fly.",
		"The pilot's dog chased an ant",
		"How many cows does it take to screw in a lightbulb?",
		"A happy puppy met a gorilla named Harry",
		"Parrots and flies, oh joy",
		"The hound was glad; the cattle were not.",
	}

	reference := newEngine(t, zooLines...)
	want := make([][]string, len(texts))
	for i, text := range texts {
		want[i] = sorted(reference.Classify(text))
	}

	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		lines := append([]string(nil), zooLines...)
		rng.Shuffle(len(lines), func(i, j int) { lines[i], lines[j] = lines[j], lines[i] })
		e := newEngine(t, lines...)
		for i, text := range texts {
			if diff := cmp.Diff(want[i], sorted(e.Classify(text))); diff != "" {
				t.Errorf("round %d, %q (-want +got):\n%s\norder: %v", round, text, diff, lines)
			}
		}
	}
}

func TestHasTag(t *testing.T) {
	e := newEngine(t, zooLines...)

	cases := []struct {
		text, tag string
		want      bool
	}{
		{"Two cows walk into a bar", "Cow", true},
		{"Two cows walk into a bar", "Mammal", true},
		{"Two cows walk into a bar", "Dog", false},
		{"Harambe forever", "Harambe", false},
		{"Anything at all", "Unicorn", false},
		// Conflicts do not apply
		{"the airplane and the fly", "Fly", true},
	}
	for _, tc := range cases {
		if got := e.HasTag(tc.text, tc.tag); got != tc.want {
			t.Errorf("HasTag(%q, %q) = %v, want %v", tc.text, tc.tag, got, tc.want)
		}
	}
}

func TestInitialTags(t *testing.T) {
	e := newEngine(t)

	cases := []struct {
		text string
		want []string
	}{
		{"I love my iPhone.", []string{"Apple"}},
		{"The gorilla was called Harold", []string{"Harambe"}},
		{"Gorillas are great", nil},
		{"A Stegosaurus walks in", []string{"Dinosaur"}},
		{"Hand me the thesaurus", nil},
		{"Moooo!", []string{"Cow"}},
		{"Fly me to the moon", []string{"Moon"}},
		{"Snowflakes everywhere", []string{"Snow"}},
		{"Saltwater taffy", []string{"Water"}},
		{"A raincoat", []string{"Water", "Weather"}},
		{"The cat went purrrr", []string{"Cat"}},
		{"Nyan cat", []string{"Cat"}},
		{"The Luftwaffe", []string{"Germany"}},
		{"I lost my passport", nil},
		{"Watching sports", []string{"Sport"}},
		{"Public transports", nil},
		{"He is bisexual", []string{"Gender"}},
		{"Sexual innuendo", nil},
		{"A Shrek-like ogre", []string{"Shrek"}},
		{"Grammar-nazi", []string{"Nazi"}},
		{"ice&snow", []string{"Snow"}},
		{"", nil},
	}
	for _, tc := range cases {
		got := e.InitialTags(tc.text)
		if diff := cmp.Diff(tc.want, got, cmp.Comparer(func(a, b []string) bool {
			return len(a) == 0 && len(b) == 0 || cmp.Equal(a, b)
		})); diff != "" {
			t.Errorf("InitialTags(%q) (-want +got):\n%s", tc.text, diff)
		}
	}
}

func TestSplitWords(t *testing.T) {
	got := splitWords("Rock&Roll -- snow-man!")
	want := []string{"Rock&Roll", "snow-man", "RockRoll", "snowman", "Rock", "Roll", "snow", "man"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("splitWords (-want +got):\n%s", diff)
	}
}

func TestCustomHeuristicsAndConflicts(t *testing.T) {
	reg := tags.Build([]string{"Pasta,Spaghetti", "Code,Spaghetti"}, tags.Options{})
	e := New(reg, Options{
		Heuristics: []Heuristic{Prefix("Italy", "MAMMA")},
		Conflicts: []Conflict{{
			When:    []string{"Italy", "Code"},
			Recheck: []Recheck{{Tag: "Code", Without: "Spaghetti", Aliases: []string{"Spaghetti"}}},
		}},
	})

	got := e.Classify("Mamma mia, spaghetti!")
	if diff := cmp.Diff([]string{"Italy", "Pasta"}, sorted(got)); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}
	if got := e.InitialTags("Moooo"); len(got) != 0 {
		t.Errorf("default heuristics should be replaced: %v", got)
	}
}

func TestTagDefinition(t *testing.T) {
	e := newEngine(t, zooLines...)

	def, ok := e.TagDefinition("Sex")
	if !ok || !def.NSFW || !def.HasAlias("Screw") {
		t.Fatalf("TagDefinition(Sex) = %+v, %v", def, ok)
	}
	def.Aliases[0] = "changed"
	again, _ := e.TagDefinition("Sex")
	if again.Aliases[0] == "changed" {
		t.Error("TagDefinition should return a copy")
	}
	if _, ok := e.TagDefinition("Unicorn"); ok {
		t.Error("unknown tag should not be defined")
	}
	if e.Registry().Len() != len(zooLines) {
		t.Errorf("Registry().Len() = %d", e.Registry().Len())
	}
}

func TestTraceTriggers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	reg := tags.Build([]string{"Cow,Bovine", "Fly", "Aviation"}, tags.Options{})
	e := New(reg, Options{Logger: zap.New(core), TraceTriggers: true})

	e.Classify("A bovine and a fly on an aviation tour. Moooo")

	hits := logs.FilterMessage("Tag triggered").All()
	via := make(map[string]string)
	for _, entry := range hits {
		fields := entry.ContextMap()
		via[fields["tag"].(string)] = fields["via"].(string)
	}
	if via["Cow"] != "heuristic" || via["Fly"] != "name" || via["Aviation"] != "name" {
		t.Errorf("trigger sources = %v", via)
	}
	if logs.FilterMessage("Tag removed by conflict").Len() != 1 {
		t.Errorf("expected one conflict removal, logs: %v", logs.All())
	}
}

func TestConcurrentClassify(t *testing.T) {
	defer goleak.VerifyNone(t)

	texts := []string{
		"I fixed my airplane, said the fly.",
		"How many men does it take to screw in a lightbulb?",
		"The pilot's dog chased an ant",
	}
	reference := newEngine(t, zooLines...)
	want := make([][]string, len(texts))
	for i, text := range texts {
		want[i] = reference.Classify(text)
	}

	// A fresh engine so the derived tags are built under contention
	e := newEngine(t, zooLines...)
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := range texts {
				idx := (i + g) % len(texts)
				if diff := cmp.Diff(want[idx], e.Classify(texts[idx])); diff != "" {
					errs <- diff
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for diff := range errs {
		t.Errorf("concurrent result differs:\n%s", diff)
	}
}

func TestProvider(t *testing.T) {
	defer goleak.VerifyNone(t)

	var calls int
	var mu sync.Mutex
	p := NewProvider(func() (*Engine, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return newEngine(t, "Cow"), nil
	})
	if p.Ready() {
		t.Fatal("provider should not be ready before first use")
	}

	var wg sync.WaitGroup
	engines := make([]*Engine, 8)
	for i := range engines {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			engines[i], _ = p.Engine()
		}(i)
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("build called %d times", calls)
	}
	for _, e := range engines {
		if e != engines[0] || e == nil {
			t.Fatal("all callers should share one engine")
		}
	}
	if !p.Ready() {
		t.Error("provider should be ready")
	}
}

func TestProviderError(t *testing.T) {
	p := NewProvider(func() (*Engine, error) {
		return nil, errBuild
	})
	if _, err := p.Engine(); !errors.Is(err, errBuild) {
		t.Errorf("Engine() error = %v", err)
	}
	if p.Ready() {
		t.Error("failed build must not report ready")
	}
}

var errBuild = errors.New("build failed")
