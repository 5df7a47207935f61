package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cognicore/jokes/internal/logging"
	"github.com/cognicore/jokes/pkg/jokes"
	"github.com/cognicore/jokes/pkg/jokes/config"
	"github.com/cognicore/jokes/pkg/jokes/nsfw"
	"github.com/cognicore/jokes/pkg/jokes/store/sqlite"
	"github.com/cognicore/jokes/pkg/jokes/tagger"
)

var (
	configPath string
	logLevel   string
	devLogs    bool

	cfg      config.Config
	logger   *zap.Logger
	provider *tagger.Provider
)

var rootCmd = &cobra.Command{
	Use:   "jokes",
	Short: "Tag, flag and store jokes",
	Long: `jokes classifies short joke texts against a hand-curated tag list.

Tags are matched by name (with inflections) and by alias, refined by word
heuristics and a few conflict rules, then stored with an NSFW flag.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Default()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
			cfg.LogLevel = logLevel
		}

		var err error
		logger, _, err = logging.New(cfg.LogLevel, devLogs)
		if err != nil {
			return err
		}
		provider = (&config.Loader{Config: cfg, Logger: logger}).Provider()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&devLogs, "dev", false, "human-readable log output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func engine() (*tagger.Engine, error) {
	return provider.Engine()
}

// openJokes wires the store, engine and NSFW checker into the facade.
func openJokes(ctx context.Context) (*jokes.Jokes, error) {
	eng, err := engine()
	if err != nil {
		return nil, err
	}
	st, err := sqlite.OpenSQLite(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return jokes.New(jokes.Options{
		Store:  st,
		Engine: eng,
		NSFW:   nsfw.NewTagFlags(eng.Registry(), logger),
		Logger: logger,
	}), nil
}

// textInput joins the arguments, or reads stdin when there are none.
func textInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return "", fmt.Errorf("no text given")
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
