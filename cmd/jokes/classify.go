package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/jokes/internal/ui"
	"github.com/cognicore/jokes/pkg/jokes/ingest"
	"github.com/cognicore/jokes/pkg/jokes/internalerr"
	"github.com/cognicore/jokes/pkg/jokes/nsfw"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Print the tags for a text",
	Long:  `Classify a text and print its tags. Reads stdin when no text is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetStringSlice("seed")
		asHTML, _ := cmd.Flags().GetBool("html")

		text, err := textInput(cmd, args)
		if err != nil {
			return err
		}
		eng, err := engine()
		if err != nil {
			return err
		}

		text = ingest.Clean(text, asHTML)
		result := eng.ClassifyWithSeed(text, seed)
		flags := nsfw.NewTagFlags(eng.Registry(), logger)
		isNSFW := func(name string) bool { return flags.AnyNSFW([]string{name}) }

		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatTags(result, isNSFW))
		if flags.Check(text, result) {
			fmt.Fprintln(cmd.OutOrStdout(), "NSFW")
		}
		return nil
	},
}

var initialCmd = &cobra.Command{
	Use:   "initial [text]",
	Short: "Print the tags the word heuristics assign",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textInput(cmd, args)
		if err != nil {
			return err
		}
		eng, err := engine()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.FormatTags(eng.InitialTags(text), nil))
		return nil
	},
}

var hasCmd = &cobra.Command{
	Use:   "has <tag> [text]",
	Short: "Check whether a tag's name or aliases occur in a text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := textInput(cmd, args[1:])
		if err != nil {
			return err
		}
		eng, err := engine()
		if err != nil {
			return err
		}
		if _, ok := eng.TagDefinition(args[0]); !ok {
			return fmt.Errorf("%w: %s", internalerr.ErrUnknownTag, args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), eng.HasTag(text, args[0]))
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringSlice("seed", nil, "tags already known to apply")
	classifyCmd.Flags().Bool("html", false, "strip HTML markup first")
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(initialCmd)
	rootCmd.AddCommand(hasCmd)
}
