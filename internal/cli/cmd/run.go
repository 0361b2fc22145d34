package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbcam/internal/infrastructure/notification"
	"github.com/bnema/dumbcam/internal/infrastructure/scripthost"
	"github.com/bnema/dumbcam/internal/logging"
)

var runTimeout time.Duration

var runCmd = &cobra.Command{
	Use:   "run <script.js|->",
	Short: "Run a page script against the bridge",
	Long: `Evaluates JavaScript the way the camera page would see it: the bridge is
bound under its configured name, and a host object offers navigate(url),
requestPermission([...]) and location().

The launch gate runs first. When a required grant is missing the script is
not executed.

Examples:
  dumbcam run capture.js
  echo 'DumbCamBridge.showToast("hi")' | dumbcam run -`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "override script.timeout (e.g. 5s)")
}

func runScript(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	name := args[0]
	src, err := readInput(name)
	if err != nil {
		return err
	}
	if name == "-" {
		name = "stdin.js"
	}

	timeout := app.Config.Script.Timeout
	if runTimeout > 0 {
		timeout = runTimeout
	}

	view := scripthost.NewView()
	h, err := app.NewHost(view, notification.NewTerminal(os.Stderr))
	if err != nil {
		return fmt.Errorf("assemble host: %w", err)
	}
	if err := h.Start(ctx); err != nil {
		return err
	}
	if !h.ContentShown() {
		msg, missing := view.Notice()
		return fmt.Errorf("%s (missing: %v)", msg, missing)
	}

	runner, err := scripthost.New(scripthost.Config{
		Bridge:   h.Bridge(),
		Handler:  h,
		Location: view.Location(),
		Timeout:  timeout,
	})
	if err != nil {
		return err
	}

	res, err := runner.Run(ctx, name, string(src))
	if err != nil {
		if errors.Is(err, scripthost.ErrTimeout) {
			return fmt.Errorf("%s: %w after %s", name, err, timeout)
		}
		return err
	}

	log.Debug().
		Str("location", res.Location).
		Int("navigations", res.Navigations).
		Int("permission_requests", res.PermissionRequests).
		Msg("script done")

	if res.Value != nil {
		fmt.Println(res.Value)
	}
	return nil
}

// readInput reads a file, or stdin for "-".
func readInput(name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
