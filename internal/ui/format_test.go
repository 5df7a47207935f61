package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/cognicore/jokes/pkg/jokes/morph"
	"github.com/cognicore/jokes/pkg/jokes/store"
	"github.com/cognicore/jokes/pkg/jokes/tags"
)

func init() {
	color.NoColor = true
}

func TestFormatTags(t *testing.T) {
	if got := FormatTags(nil, nil); got != "(no tags)" {
		t.Errorf("FormatTags(nil) = %q", got)
	}
	if got := FormatTags([]string{"Cow", "Sex"}, func(s string) bool { return s == "Sex" }); got != "Cow, Sex" {
		t.Errorf("FormatTags = %q", got)
	}
}

func TestFormatTag(t *testing.T) {
	got := FormatTag(tags.Tag{Name: "Sex", Aliases: []string{"Screw"}, NSFW: true, Suppress: morph.SuppressY})
	want := "Sex [nsfw dontDoY]\nAliases: 1\n  Screw\n"
	if got != want {
		t.Errorf("FormatTag = %q, want %q", got, want)
	}
}

func TestFormatJoke(t *testing.T) {
	got := FormatJoke(store.Joke{ID: "01HZXABCDEFGHJKMNP", Text: "Moo", Tags: []string{"Cow"}, NSFW: true})
	if !strings.Contains(got, "DEFGHJKMNP") || !strings.Contains(got, "Tags: Cow NSFW") {
		t.Errorf("FormatJoke = %q", got)
	}
}

func TestFormatTagCounts(t *testing.T) {
	got := FormatTagCounts([]store.TagCount{{Tag: "Cow", Count: 12}})
	if got != "      12  Cow\n" {
		t.Errorf("FormatTagCounts = %q", got)
	}
}
