package cmd

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/infrastructure/notification"
)

var saveCmd = &cobra.Command{
	Use:   "save <file|->",
	Short: "Save an image to the gallery",
	Long: `Stores an image through the same pipeline the bridge's saveImage uses.

The input is either an image file, which is encoded for you, or a text
payload as a page would send it ("data:image/jpeg;base64,..." or bare
base64). The image is re-encoded as JPEG.

Examples:
  dumbcam save photo.png
  echo -n "data:image/jpeg;base64,/9j/..." | dumbcam save -`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	toaster := notification.NewTerminal(os.Stderr)
	messages := app.Config.Messages.Catalog()

	out, err := app.NewSaveImage().Execute(ctx, payloadFromInput(data))
	if err != nil {
		toaster.Show(ctx, messages.Text(entity.MessageImageSaveFailed), port.NotificationError, port.ToastShortMs)
		return err
	}

	toaster.Show(ctx, messages.Text(entity.MessageImageSaved), port.NotificationSuccess, port.ToastShortMs)
	fmt.Println(out.Entry.DataPath)
	return nil
}

// payloadFromInput passes text through as a page payload and wraps binary
// image data in a data URL.
func payloadFromInput(data []byte) string {
	mtype := mimetype.Detect(data)
	if mtype.Is("text/plain") {
		return string(bytes.TrimSpace(data))
	}
	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data)
}
