package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/jokes/pkg/jokes/hotfix"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	tagsFile := filepath.Join(dir, "tags.txt")
	require.NoError(t, os.WriteFile(tagsFile, []byte(strings.Join([]string{
		"# test tags",
		"Cow,Bovine",
		"Sex,Screw,Screwed,Screwing -nsfw",
		"Lightbulb",
		"Aviation,Airplane",
		"Fly",
		"",
	}, "\n")), 0o644))

	cfgFile := filepath.Join(dir, "jokes.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(
		"tags_file: "+tagsFile+"\n"+
			"load_tag_lists: false\n"+
			"database: "+filepath.Join(dir, "jokes.db")+"\n"+
			"workers: 2\n"+
			"log_level: error\n"), 0o644))
	return cfgFile
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	cfgFile := writeFixture(t)

	out, err := run(t, "", "-c", cfgFile, "classify", "I", "love", "cows")
	require.NoError(t, err)
	assert.Contains(t, out, "Cow")

	out, err = run(t, "The fly boarded an airplane", "-c", cfgFile, "classify")
	require.NoError(t, err)
	assert.Contains(t, out, "Aviation")
	assert.NotContains(t, out, "Fly")
}

func TestHasCommandUnknownTag(t *testing.T) {
	cfgFile := writeFixture(t)
	_, err := run(t, "", "-c", cfgFile, "has", "Unicorn", "a cow")
	assert.Error(t, err)
}

func TestImportAndList(t *testing.T) {
	cfgFile := writeFixture(t)
	input := filepath.Join(filepath.Dir(cfgFile), "jokes.jsonl")
	require.NoError(t, os.WriteFile(input, []byte(
		`{"text":"Two cows walk into a bar","source":"test"}`+"\n"+
			`not json`+"\n"+
			`{"text":"Screw it","source":"test"}`+"\n"), 0o644))

	out, err := run(t, "", "-c", cfgFile, "import", input)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 jokes (1 NSFW)")

	out, err = run(t, "", "-c", cfgFile, "list", "--tag", "Cow")
	require.NoError(t, err)
	assert.Contains(t, out, "Two cows walk into a bar")
	assert.NotContains(t, out, "Screw it")
}

func TestTagsFormat(t *testing.T) {
	cfgFile := writeFixture(t)
	out, err := run(t, "", "-c", cfgFile, "tags", "format")
	require.NoError(t, err)
	assert.NotContains(t, out, "#")
	assert.Contains(t, out, "Bovine")
	assert.Equal(t, 5, strings.Count(out, "\n"))
}

func TestMergePlanLeavesBaseAlone(t *testing.T) {
	redo := make([]string, 1, 4)
	redo[0] = "Cow"
	base := hotfix.Plan{Redo: redo, TagHasMore: []string{"Death"}}

	a := mergePlan(base, hotfix.Plan{Redo: []string{"Sex"}})
	b := mergePlan(base, hotfix.Plan{Redo: []string{"Fly"}, RedoInitial: []string{"Apple"}})

	assert.Equal(t, []string{"Cow"}, base.Redo)
	assert.Equal(t, []string{"Cow", "Sex"}, a.Redo)
	assert.Equal(t, []string{"Cow", "Fly"}, b.Redo)
	assert.Equal(t, []string{"Death"}, b.TagHasMore)
	assert.Equal(t, []string{"Apple"}, b.RedoInitial)
	assert.Equal(t, "", redo[:2][1], "spare capacity of the config slice is untouched")
}
