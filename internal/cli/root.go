package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/druarnfield/dossier/internal/config"
	"github.com/druarnfield/dossier/internal/form"
	"github.com/druarnfield/dossier/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagConfig  string
	flagAnswers string
)

// logFilePath is swapped out by tests.
var logFilePath = config.LogFilePath

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dossier",
		Short: "Multi-step personal data form",
		Long:  "dossier walks you through personal data, education, organization and work history, checking every section before it lets you move on.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Show detailed log output")
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to dossier.toml (default: next to the binary, then ~/.config/dossier)")

	cmd.AddCommand(newVersionCmd(version))
	cmd.AddCommand(newFillCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newFieldsCmd())

	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print dossier version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "dossier", version)
		},
	}
}

func Execute(version string) error {
	return newRootCmd(version).Execute()
}

// env is what every command needs before it builds a session.
type env struct {
	cfg     *config.Config
	catalog *form.Catalog
	logger  *slog.Logger
}

// loadEnv reads the config and opens the log. A missing default config file
// falls back to defaults; a missing --config file is an error.
func loadEnv(cmd *cobra.Command) (*env, error) {
	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.ConfigFilePath()
	}
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && flagConfig == "" {
			cfg = config.Defaults()
		} else {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	logger, err := logging.Setup(logFilePath(), flagVerbose)
	if err != nil {
		logger = slog.New(logging.NopHandler{})
	}
	logger = logging.ForSession(logger)
	logger.Debug("config loaded", slog.String("path", cfgPath), slog.String("title", cfg.Form.Title))

	return &env{
		cfg:     cfg,
		catalog: form.DefaultCatalog(cfg.CatalogOptions()),
		logger:  logger,
	}, nil
}
