package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/cognicore/jokes/pkg/jokes/store"
	"github.com/cognicore/jokes/pkg/jokes/tags"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	red   = color.New(color.FgRed, color.Bold).SprintFunc()
)

// FormatTags renders a tag list on one line, NSFW tags highlighted.
func FormatTags(names []string, isNSFW func(string) bool) string {
	if len(names) == 0 {
		return faint("(no tags)")
	}
	parts := make([]string, len(names))
	for i, name := range names {
		if isNSFW != nil && isNSFW(name) {
			parts[i] = red(name)
		} else {
			parts[i] = cyan(name)
		}
	}
	return strings.Join(parts, ", ")
}

// FormatTag renders a tag definition.
func FormatTag(tag tags.Tag) string {
	var sb strings.Builder
	sb.WriteString(bold(tag.Name))
	var flags []string
	if tag.NSFW {
		flags = append(flags, red("nsfw"))
	}
	if tag.Minor {
		flags = append(flags, "minor")
	}
	flags = append(flags, tag.Suppress.Flags()...)
	if len(flags) > 0 {
		sb.WriteString(" " + faint("[") + strings.Join(flags, " ") + faint("]"))
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %d\n", faint("Aliases:"), len(tag.Aliases))
	for _, a := range tag.Aliases {
		fmt.Fprintf(&sb, "  %s\n", a)
	}
	return sb.String()
}

// FormatJoke renders a stored joke as a list item.
func FormatJoke(j store.Joke) string {
	var sb strings.Builder
	idPrefix := j.ID
	if len(idPrefix) > 10 {
		idPrefix = idPrefix[len(idPrefix)-10:]
	}
	fmt.Fprintf(&sb, "  %s  %s\n", faint(idPrefix), j.Text)
	fmt.Fprintf(&sb, "         %s %s", faint("Tags:"), FormatTags(j.Tags, nil))
	if j.NSFW {
		sb.WriteString(" " + red("NSFW"))
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatTagCounts renders tag frequencies, one per line.
func FormatTagCounts(counts []store.TagCount) string {
	var sb strings.Builder
	for _, tc := range counts {
		fmt.Fprintf(&sb, "  %6d  %s\n", tc.Count, cyan(tc.Tag))
	}
	return sb.String()
}
