package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/reportdeck/audio"
	"github.com/lixenwraith/reportdeck/dashboard"
	"github.com/lixenwraith/reportdeck/period"
	"github.com/lixenwraith/reportdeck/terminal"
)

func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive report",
		Args:  cobra.NoArgs,
		RunE:  DashboardHandler,
	}
	cmd.Flags().String("period", "", "Initial period (7d, 30d, 90d, 365d)")
	cmd.Flags().Bool("audio", false, "Play click tones (overrides config)")
	return cmd
}

// DashboardHandler runs the TUI until the user quits
func DashboardHandler(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	if p, _ := cmd.Flags().GetString("period"); p != "" {
		if !period.Known(p) {
			return fmt.Errorf("unknown period %q, want one of %s", p, strings.Join(period.Keys(), ", "))
		}
		e.cfg.Period = p
	}
	if cmd.Flags().Changed("audio") {
		e.cfg.Audio.Enabled, _ = cmd.Flags().GetBool("audio")
	}

	opts := []dashboard.Option{dashboard.WithLogger(e.log)}
	if e.cfg.Audio.Enabled {
		fb := audio.NewFeedback(e.cfg.Audio.Volume)
		if err := fb.Initialize(); err != nil {
			// Non-fatal, the dashboard runs without sound
			e.log.Warn("audio unavailable", "error", err)
		} else {
			defer fb.Cleanup()
			opts = append(opts, dashboard.WithPlayer(fb))
		}
	}

	term, err := terminal.New()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := dashboard.New(e.cfg, e.store, opts...)
	return app.Run(ctx, term)
}
