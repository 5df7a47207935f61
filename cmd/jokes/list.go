package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cognicore/jokes/internal/ui"
	"github.com/cognicore/jokes/pkg/jokes/store"
	"github.com/cognicore/jokes/pkg/jokes/store/sqlite"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored jokes",
	RunE: func(cmd *cobra.Command, args []string) error {
		tagFlag, _ := cmd.Flags().GetString("tag")
		limitFlag, _ := cmd.Flags().GetInt("limit")
		countsFlag, _ := cmd.Flags().GetBool("counts")

		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if countsFlag {
			counts, err := st.TagCounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to count tags: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.FormatTagCounts(counts))
			return nil
		}

		list, err := st.ListJokes(cmd.Context(), store.ListOptions{Tag: tagFlag, Limit: limitFlag})
		if err != nil {
			return fmt.Errorf("failed to list jokes: %w", err)
		}
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No jokes found.")
			return nil
		}
		for _, j := range list {
			fmt.Fprint(cmd.OutOrStdout(), ui.FormatJoke(j))
		}
		return nil
	},
}

func openStore(ctx context.Context) (store.Store, error) {
	st, err := sqlite.OpenSQLite(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

func init() {
	listCmd.Flags().StringP("tag", "t", "", "only jokes with this tag")
	listCmd.Flags().IntP("limit", "n", 20, "maximum jokes to show (0 for all)")
	listCmd.Flags().Bool("counts", false, "print tag frequencies instead")
	rootCmd.AddCommand(listCmd)
}
