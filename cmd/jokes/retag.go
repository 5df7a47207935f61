package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/cognicore/jokes/pkg/jokes/hotfix"
)

var retagCmd = &cobra.Command{
	Use:   "retag",
	Short: "Re-tag stored jokes after the tag definitions change",
	Long: `Apply the hotfix plan from the config file to every stored joke.
Flags add tags to the plan. With --nsfw-only the tags are left alone and
only the NSFW flags are recomputed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nsfwOnly, _ := cmd.Flags().GetBool("nsfw-only")
		var extra hotfix.Plan
		extra.Redo, _ = cmd.Flags().GetStringSlice("redo")
		extra.TagHasLess, _ = cmd.Flags().GetStringSlice("has-less")
		extra.TagHasMore, _ = cmd.Flags().GetStringSlice("has-more")
		extra.RedoInitial, _ = cmd.Flags().GetStringSlice("redo-initial")
		plan := mergePlan(cfg.Hotfix, extra)

		k, err := openJokes(cmd.Context())
		if err != nil {
			return err
		}
		defer k.Close()

		var rep hotfix.Report
		if nsfwOnly {
			rep, err = k.RefreshNSFW(cmd.Context(), cfg.Workers)
		} else {
			if plan.Empty() {
				return fmt.Errorf("hotfix plan is empty")
			}
			rep, err = k.Retag(cmd.Context(), plan, cfg.Workers)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Scanned %d, retagged %d, changed %d\n", rep.Scanned, rep.Retagged, rep.Changed)
		return nil
	},
}

// mergePlan returns base with the tags of extra appended. base is not
// modified.
func mergePlan(base, extra hotfix.Plan) hotfix.Plan {
	return hotfix.Plan{
		Redo:        append(slices.Clone(base.Redo), extra.Redo...),
		TagHasLess:  append(slices.Clone(base.TagHasLess), extra.TagHasLess...),
		TagHasMore:  append(slices.Clone(base.TagHasMore), extra.TagHasMore...),
		RedoInitial: append(slices.Clone(base.RedoInitial), extra.RedoInitial...),
	}
}

func init() {
	retagCmd.Flags().Bool("nsfw-only", false, "only recompute NSFW flags")
	retagCmd.Flags().StringSlice("redo", nil, "retag jokes matching these tags")
	retagCmd.Flags().StringSlice("has-less", nil, "retag jokes carrying these tags")
	retagCmd.Flags().StringSlice("has-more", nil, "retag jokes lacking these tags if they now match")
	retagCmd.Flags().StringSlice("redo-initial", nil, "retag jokes whose heuristic tags include these")
	rootCmd.AddCommand(retagCmd)
}
