package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/bnema/dumbcam/internal/application/usecase"
	"github.com/bnema/dumbcam/internal/cli/styles"
	"github.com/bnema/dumbcam/internal/infrastructure/permission"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check grants, storage and the media index",
	Long: `Doctor checks what the host needs before the camera page can run:

- the OS permissions required at the configured API level
- a writable storage root for the gallery
- the media index database and its migrations
- the camera devices matching permissions.camera_devices

Examples:
  dumbcam doctor
  DUMBCAM_API_LEVEL=28 dumbcam doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	cfg := app.Config

	oracle, err := app.NewOracle()
	if err != nil {
		return err
	}
	check := usecase.NewCheckPermissionsUseCase(oracle, cfg.Platform.Level()).Check(ctx)

	report := styles.DoctorReport{
		Permissions: styles.DoctorPermissionReport{
			Mode:     string(cfg.Permissions.Mode),
			APILevel: int(check.Level),
		},
	}
	for _, st := range check.Statuses {
		report.Permissions.Checks = append(report.Permissions.Checks, styles.DoctorPermissionCheck{
			Name:    string(st.Permission),
			Granted: st.Granted,
		})
	}

	report.Storage = storageReport(cfg.Gallery.StorageRoot, cfg.Permissions.CameraDevices)

	report.Storage.IndexPath = cfg.Gallery.IndexPath
	if count, err := app.Media.CountVisible(ctx); err != nil {
		report.Storage.IndexError = err.Error()
	} else {
		report.Storage.IndexOK = true
		report.Storage.Entries = int(count)
		if version, err := app.SchemaVersion(ctx); err == nil {
			report.Storage.SchemaVersion = version
		}
	}

	report.OverallOK = check.AllGranted && report.Storage.RootWritable && report.Storage.IndexOK

	renderer := styles.NewDoctorRenderer(app.Theme)
	fmt.Println(renderer.Render(report))
	return nil
}

func storageReport(root, cameraPattern string) styles.DoctorStorageReport {
	report := styles.DoctorStorageReport{Root: root}

	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// The gallery writer creates the collection directory on first save.
		parent := filepath.Dir(root)
		report.RootWritable = unix.Access(parent, unix.W_OK|unix.X_OK) == nil
		report.Warnings = append(report.Warnings, fmt.Sprintf("%s does not exist yet", root))
	case err != nil:
		report.RootError = err.Error()
	case !info.IsDir():
		report.RootError = "not a directory"
	default:
		if err := unix.Access(root, unix.W_OK|unix.X_OK); err != nil {
			report.RootError = err.Error()
		} else {
			report.RootWritable = true
		}
	}

	if cameraPattern == "" {
		cameraPattern = permission.DefaultCameraDevices
	}
	devices, err := filepath.Glob(cameraPattern)
	if err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf("bad camera device pattern %q: %v", cameraPattern, err))
	} else if len(devices) == 0 {
		report.Warnings = append(report.Warnings, fmt.Sprintf("no device matches %s", cameraPattern))
	}
	report.CameraDevices = devices

	return report
}
