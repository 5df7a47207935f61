package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/jokes/internal/ui"
	"github.com/cognicore/jokes/pkg/jokes/internalerr"
	"github.com/cognicore/jokes/pkg/jokes/tags"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Inspect and maintain the tag definitions",
}

var tagsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a tag with its expanded aliases",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := engine()
		if err != nil {
			return err
		}
		tag, ok := eng.TagDefinition(args[0])
		if !ok {
			return fmt.Errorf("%w: %s", internalerr.ErrUnknownTag, args[0])
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.FormatTag(tag))
		return nil
	},
}

var tagsFormatCmd = &cobra.Command{
	Use:   "format",
	Short: "Rewrite the tags file with aligned names",
	Long: `Re-emit every definition in the tags file with the names padded to a
common width. Comments, blank and malformed lines are dropped. Prints to
stdout unless --write is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		write, _ := cmd.Flags().GetBool("write")

		lines, err := tags.ReadLines(cfg.TagsFile)
		if err != nil {
			return fmt.Errorf("read tags: %w", err)
		}
		var defs []tags.Tag
		for i, line := range lines {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			tag, err := tags.ParseLine(line)
			if err != nil {
				logger.Warn("Dropping tag definition", zap.Int("line", i+1), zap.Error(err))
				continue
			}
			defs = append(defs, tag)
		}

		out := strings.Join(tags.Format(defs), "\n") + "\n"
		if !write {
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		}
		if err := os.WriteFile(cfg.TagsFile, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write tags: %w", err)
		}
		logger.Info("Formatted tags file", zap.String("path", cfg.TagsFile), zap.Int("tags", len(defs)))
		return nil
	},
}

var tagsEndingCmd = &cobra.Command{
	Use:   "ending <suffix>",
	Short: "List tags whose name ends with a suffix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := engine()
		if err != nil {
			return err
		}
		for _, name := range eng.Registry().ByEnding(args[0]) {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var tagsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count tags and the keywords tested per text",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := engine()
		if err != nil {
			return err
		}
		st := eng.Registry().Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "%d tags, %d keywords\n", st.Tags, st.Keywords)
		return nil
	},
}

var tagsVocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Print every word used by tag names and aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := engine()
		if err != nil {
			return err
		}
		for _, w := range eng.Registry().Vocabulary() {
			fmt.Fprintln(cmd.OutOrStdout(), w)
		}
		return nil
	},
}

func init() {
	tagsFormatCmd.Flags().Bool("write", false, "overwrite the tags file")
	tagsCmd.AddCommand(tagsShowCmd, tagsFormatCmd, tagsEndingCmd, tagsStatsCmd, tagsVocabCmd)
	rootCmd.AddCommand(tagsCmd)
}
