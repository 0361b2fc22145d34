// Package cmd provides Cobra CLI commands for dumbcam.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbcam/internal/cli"
	"github.com/bnema/dumbcam/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "dumbcam",
		Short: "Camera page host with a gallery bridge",
		Long: `DumbCam - hosts a bundled camera page and saves its captures.

The page runs inside an engine that talks to dumbcam. dumbcam decides which
permission requests and navigations the page gets, and exposes a small native
bridge so the page can save JPEG frames to the gallery, show toasts and log.

Use 'dumbcam host' to drive an engine over stdin/stdout, or 'dumbcam run' to
execute a page script directly against the bridge.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file (default $XDG_CONFIG_HOME/dumbcam/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
