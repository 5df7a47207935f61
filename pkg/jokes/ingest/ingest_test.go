package ingest

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cognicore/jokes/pkg/jokes/internalerr"
)

func TestStripHTML(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"<p>Why did the cow</p><p>cross the road?</p>", "Why did the cow cross the road?"},
		{"Knock<br>knock", "Knock knock"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"<b>bold</b> move<script>alert(1)</script>", "bold move"},
		{"  spaced \n\t out  ", "spaced out"},
	}
	for _, tc := range cases {
		if got := StripHTML(tc.in); got != tc.want {
			t.Errorf("StripHTML(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClean(t *testing.T) {
	if got := Clean("a  <b>cow</b>", false); got != "a <b>cow</b>" {
		t.Errorf("Clean(text) = %q", got)
	}
	if got := Clean("a  <b>cow</b>", true); got != "a cow" {
		t.Errorf("Clean(html) = %q", got)
	}
}

func TestDecodeLine(t *testing.T) {
	j, err := DecodeLine([]byte(`{"text":"A cow walks in","source":"reddit","tags":["Cow"],"nsfw":true}`))
	if err != nil {
		t.Fatalf("DecodeLine: %v", err)
	}
	if j.Text != "A cow walks in" || j.Source != "reddit" || len(j.Tags) != 1 || !j.NSFW {
		t.Errorf("DecodeLine = %+v", j)
	}

	for _, bad := range []string{`{"text":`, `{"source":"x"}`, `{"text":"   "}`} {
		if _, err := DecodeLine([]byte(bad)); !errors.Is(err, internalerr.ErrMalformedLine) {
			t.Errorf("DecodeLine(%s) error = %v, want ErrMalformedLine", bad, err)
		}
	}
}

func TestReadJSONL(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	in := strings.Join([]string{
		`{"text":"first"}`,
		``,
		`not json`,
		`{"text":"second","tags":["A","B"]}`,
	}, "\n")

	jokes, err := ReadJSONL(strings.NewReader(in), zap.New(core))
	if err != nil {
		t.Fatalf("ReadJSONL: %v", err)
	}
	if len(jokes) != 2 || jokes[0].Text != "first" || jokes[1].Tags[1] != "B" {
		t.Errorf("ReadJSONL = %+v", jokes)
	}
	skipped := logs.FilterMessage("Skipping joke").All()
	if len(skipped) != 1 || skipped[0].ContextMap()["line"] != int64(3) {
		t.Errorf("expected line 3 to be skipped, logs: %v", logs.All())
	}
}
