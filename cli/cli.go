// Package cli wires the reportdeck commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/reportdeck/config"
	"github.com/lixenwraith/reportdeck/store"
)

// NewCLI builds the root command
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "reportdeck",
		Short:         "Terminal reporting dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $"+config.EnvConfig+")")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (overrides config)")

	rootCmd.AddCommand(
		newDashboardCmd(),
		newSeedCmd(),
		newAccountsCmd(),
		newRepairRoleCmd(),
		newVerifyRoleCmd(),
		newUploadAvatarCmd(),
		newServeCmd(),
	)
	return rootCmd
}

// env is the per-invocation configuration, logger and store
type env struct {
	cfg    config.Config
	log    *slog.Logger
	closer io.Closer
	store  *store.Store
}

// setup loads config with flag overrides and opens the store
// screen routes logs away from stderr while the TUI owns it
func setup(cmd *cobra.Command, screen bool) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.DB = db
	}

	log, closer, err := cfg.NewLogger(screen)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(log)

	st, err := store.Open(cfg.DB)
	if err != nil {
		closer.Close()
		return nil, err
	}
	log.Debug("store opened", "path", cfg.DB)
	return &env{cfg: cfg, log: log, closer: closer, store: st}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.log.Warn("close store", "error", err)
	}
	e.closer.Close()
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
