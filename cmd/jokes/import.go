package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/jokes/pkg/jokes"
	"github.com/cognicore/jokes/pkg/jokes/ingest"
)

var importCmd = &cobra.Command{
	Use:   "import <file.jsonl>",
	Short: "Classify and store jokes from a JSONL export",
	Long: `Read one JSON object per line ({"text", "source", "tags", "nsfw"}),
classify each joke using its source tags as a seed and store the result.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asHTML, _ := cmd.Flags().GetBool("html")
		workers, _ := cmd.Flags().GetInt("workers")
		if !cmd.Flags().Changed("workers") {
			workers = cfg.Workers
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

		records, err := ingest.ReadJSONL(f, logger)
		if err != nil {
			return err
		}

		k, err := openJokes(cmd.Context())
		if err != nil {
			return err
		}
		defer k.Close()

		in := make([]jokes.IngestJoke, len(records))
		for i, r := range records {
			in[i] = jokes.FromRecord(r, asHTML)
		}
		added, err := k.AddAll(cmd.Context(), in, workers)
		if err != nil {
			return err
		}

		nsfwCount := 0
		for _, j := range added {
			if j.NSFW {
				nsfwCount++
			}
		}
		logger.Info("Import complete", zap.String("file", args[0]), zap.Int("jokes", len(added)), zap.Int("nsfw", nsfwCount))
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d jokes (%d NSFW)\n", len(added), nsfwCount)
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("html", false, "joke text is HTML markup")
	importCmd.Flags().IntP("workers", "w", 0, "classification workers (default from config)")
	rootCmd.AddCommand(importCmd)
}
