package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/infrastructure/headless"
	"github.com/bnema/dumbcam/internal/infrastructure/notification"
	"github.com/bnema/dumbcam/internal/logging"
)

var (
	hostNoWatch bool
	hostEcho    bool
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Host the camera page for an engine on stdin/stdout",
	Long: `Runs the host side of the engine protocol. Events arrive as JSON lines on
stdin and commands leave as JSON lines on stdout. Logs go to stderr.

The host gates the launch on camera and storage grants, answers navigation
and permission requests, serves bundled assets, and routes bridge messages
to the gallery.

Examples:
  my-engine | dumbcam host
  dumbcam host --echo < events.jsonl`,
	RunE: runHost,
}

func init() {
	rootCmd.AddCommand(hostCmd)
	hostCmd.Flags().BoolVar(&hostNoWatch, "no-watch", false, "do not reload log level and toast texts when the config changes")
	hostCmd.Flags().BoolVar(&hostEcho, "echo", false, "also print toasts on stderr")
}

func runHost(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "host")
	log := logging.FromContext(ctx)

	engine := headless.New(os.Stdin, os.Stdout)

	var notifier port.Notification = engine
	if hostEcho {
		notifier = notification.Multi{engine, notification.NewTerminal(os.Stderr)}
	}

	h, err := app.NewHost(engine, notifier)
	if err != nil {
		return fmt.Errorf("assemble host: %w", err)
	}

	if !hostNoWatch {
		if err := app.WatchConfig(h); err != nil {
			log.Warn().Err(err).Msg("config watch disabled")
		}
	}

	log.Info().
		Str("session", engine.Session()).
		Str("entry_url", app.Config.Content.EntryURL).
		Str("bridge", h.Bridge().Name()).
		Int("api_level", int(app.Config.Platform.Level())).
		Msg("host started")

	if err := engine.Run(ctx, h); err != nil && ctx.Err() == nil {
		return err
	}

	if err := context.Cause(ctx); err != nil {
		log.Info().Err(err).Msg("host stopped")
	}
	return nil
}
