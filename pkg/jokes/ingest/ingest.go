// Package ingest reads scraped jokes and cleans their text before
// classification.
package ingest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/cognicore/jokes/pkg/jokes/internalerr"
)

// Joke is one scraped joke as it appears in a JSONL export.
type Joke struct {
	Text   string   `json:"text"`
	Source string   `json:"source,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	NSFW   bool     `json:"nsfw,omitempty"`
}

// Validate checks if the joke has required fields
func (j *Joke) Validate() error {
	if strings.TrimSpace(j.Text) == "" {
		return fmt.Errorf("%w: joke text is required", internalerr.ErrInvalidInput)
	}
	return nil
}

// DecodeLine parses one JSONL line.
func DecodeLine(line []byte) (Joke, error) {
	var j Joke
	if err := json.Unmarshal(line, &j); err != nil {
		return Joke{}, fmt.Errorf("%w: %v", internalerr.ErrMalformedLine, err)
	}
	if err := j.Validate(); err != nil {
		return Joke{}, fmt.Errorf("%w: %v", internalerr.ErrMalformedLine, err)
	}
	return j, nil
}

// ReadJSONL reads one joke per line. Blank lines are ignored; malformed
// lines are logged and skipped. Only read errors are returned.
func ReadJSONL(r io.Reader, log *zap.Logger) ([]Joke, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var jokes []Joke
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		j, err := DecodeLine(line)
		if err != nil {
			log.Warn("Skipping joke", zap.Int("line", n), zap.Error(err))
			continue
		}
		jokes = append(jokes, j)
	}
	if err := scanner.Err(); err != nil {
		return jokes, fmt.Errorf("read jsonl: %w", err)
	}
	return jokes, nil
}

// StripHTML returns the text content of an HTML fragment with whitespace
// collapsed. Line breaks and block elements become spaces so words on
// either side stay apart.
func StripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style:
				return
			case atom.Br, atom.P, atom.Div, atom.Li, atom.Tr, atom.Td, atom.H1, atom.H2, atom.H3, atom.Blockquote:
				buf.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.Join(strings.Fields(buf.String()), " ")
}

// Clean normalizes joke text for classification, stripping markup when
// asHTML is set.
func Clean(text string, asHTML bool) string {
	if asHTML {
		return StripHTML(text)
	}
	return strings.Join(strings.Fields(text), " ")
}
