package tags

import (
	"fmt"
	"strings"

	"github.com/cognicore/jokes/pkg/jokes/internalerr"
	"github.com/cognicore/jokes/pkg/jokes/morph"
)

// Tag is a named joke category and the keywords that trigger it.
type Tag struct {
	Name    string
	Aliases []string
	NSFW    bool
	// Minor tags never trigger on their own name, only through aliases or
	// the heuristic pre-pass.
	Minor    bool
	Suppress morph.Suppression
}

// Clone returns a deep copy of the tag.
func (t Tag) Clone() Tag {
	c := t
	c.Aliases = append([]string(nil), t.Aliases...)
	return c
}

// HasAlias reports whether alias is listed verbatim.
func (t Tag) HasAlias(alias string) bool {
	for _, a := range t.Aliases {
		if a == alias {
			return true
		}
	}
	return false
}

// ParseLine parses one tag definition:
//
//	Name,alias1,alias2,... -nsfw -minor -dontDoS ...
//
// Flags may appear anywhere after a space. A line whose name is blank
// returns ErrMalformedLine.
func ParseLine(line string) (Tag, error) {
	var tag Tag

	var ok bool
	if line, ok = stripFlag(line, "nsfw"); ok {
		tag.NSFW = true
	}
	if line, ok = stripFlag(line, "minor"); ok {
		tag.Minor = true
	}
	for _, flag := range morph.FlagNames() {
		if line, ok = stripFlag(line, flag); ok {
			bit, _ := morph.ParseFlag(flag)
			tag.Suppress |= bit
		}
	}

	tokens := strings.Split(line, ",")
	tag.Name = strings.TrimSpace(tokens[0])
	if tag.Name == "" {
		return Tag{}, fmt.Errorf("%w: %q", internalerr.ErrMalformedLine, line)
	}
	for _, tok := range tokens[1:] {
		if alias := strings.TrimSpace(tok); alias != "" {
			tag.Aliases = append(tag.Aliases, alias)
		}
	}
	return tag, nil
}

// stripFlag removes every " -flag" occurrence that ends at whitespace or at
// the end of the line.
func stripFlag(line, flag string) (string, bool) {
	needle := "-" + flag
	found := false
	for from := 0; ; {
		i := strings.Index(line[from:], needle)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(needle)
		if start > 0 && isSpace(line[start-1]) && (end == len(line) || isSpace(line[end])) {
			line = line[:start-1] + line[end:]
			found = true
			from = start - 1
			continue
		}
		from = start + 1
	}
	return line, found
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// FormatLine renders a tag as a definition line with its name padded to width.
func FormatLine(tag Tag, width int) string {
	var sb strings.Builder
	sb.WriteString(tag.Name)
	for sb.Len() < width {
		sb.WriteByte(' ')
	}
	padded := sb.Len() > len(tag.Name)

	for _, alias := range tag.Aliases {
		sb.WriteByte(',')
		sb.WriteString(alias)
	}

	first := len(tag.Aliases) == 0 && padded
	flags := make([]string, 0, 2)
	if tag.NSFW {
		flags = append(flags, "nsfw")
	}
	if tag.Minor {
		flags = append(flags, "minor")
	}
	flags = append(flags, tag.Suppress.Flags()...)
	for _, f := range flags {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteByte('-')
		sb.WriteString(f)
	}
	return sb.String()
}

// Format renders tags as a definitions file body. Names are padded to the
// next multiple of four past the longest name.
func Format(list []Tag) []string {
	longest := 0
	for _, t := range list {
		if len(t.Name) > longest {
			longest = len(t.Name)
		}
	}
	width := longest + 1
	for width%4 != 0 {
		width++
	}

	lines := make([]string, len(list))
	for i, t := range list {
		lines[i] = FormatLine(t, width)
	}
	return lines
}
