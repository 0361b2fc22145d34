// Package cli holds the dependencies shared by the dumbcam commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbcam/internal/app/bridge"
	"github.com/bnema/dumbcam/internal/app/host"
	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/application/usecase"
	"github.com/bnema/dumbcam/internal/cli/styles"
	"github.com/bnema/dumbcam/internal/domain/build"
	"github.com/bnema/dumbcam/internal/domain/repository"
	"github.com/bnema/dumbcam/internal/infrastructure/assets"
	"github.com/bnema/dumbcam/internal/infrastructure/config"
	"github.com/bnema/dumbcam/internal/infrastructure/gallery"
	"github.com/bnema/dumbcam/internal/infrastructure/imaging"
	"github.com/bnema/dumbcam/internal/infrastructure/permission"
	"github.com/bnema/dumbcam/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dumbcam/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Media is the gallery index. The database opens on first use.
	Media repository.MediaRepository

	db  *sqlite.LazyDB
	ctx context.Context
}

// NewApp loads configuration and prepares the logger and media index.
// An empty configFile uses the XDG location.
func NewApp(configFile string) (*App, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	// The logger accepts everything; the global level does the filtering so
	// a config reload can change it.
	logger := logging.New(logging.Config{
		Level:      zerolog.TraceLevel,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})
	logging.SetGlobalLevel(cfg.Logging.Level)
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Gallery.IndexPath)
	logger.Debug().Str("index_path", cfg.Gallery.IndexPath).Msg("media index configured")

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		Media:   sqlite.NewLazyMediaRepository(db),
		db:      db,
		ctx:     ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// IndexOpen reports whether a command touched the media index.
func (a *App) IndexOpen() bool {
	return a.db != nil && a.db.IsInitialized()
}

// SchemaVersion opens the media index and reports its migration version.
func (a *App) SchemaVersion(ctx context.Context) (int64, error) {
	db, err := a.db.DB(ctx)
	if err != nil {
		return 0, err
	}
	return sqlite.SchemaVersion(ctx, db)
}

// NewOracle builds the permission oracle selected in the config.
func (a *App) NewOracle() (port.PermissionOracle, error) {
	return permission.New(permission.Mode(a.Config.Permissions.Mode), permission.Config{
		CameraDevices: a.Config.Permissions.CameraDevices,
		StorageRoot:   a.Config.Gallery.StorageRoot,
	})
}

// NewGalleryWriter builds the write discipline for the configured level.
func (a *App) NewGalleryWriter() port.GalleryWriter {
	return gallery.NewWriter(a.Config.Platform.Level(), a.Media, gallery.Config{
		Root:       a.Config.Gallery.StorageRoot,
		Collection: a.Config.Gallery.Collection,
		Album:      a.Config.Gallery.Album,
		Quality:    a.Config.Gallery.JPEGQuality,
	})
}

// NewSaveImage builds the save pipeline: decode, then gallery write.
func (a *App) NewSaveImage() *usecase.SaveImageUseCase {
	return usecase.NewSaveImageUseCase(imaging.NewDecoder(), a.NewGalleryWriter())
}

// NewBridge builds the capture bridge that toasts through notifier.
func (a *App) NewBridge(notifier port.Notification) *bridge.Bridge {
	return bridge.New(bridge.Config{
		Name:     a.Config.Bridge.Name,
		Saver:    a.NewSaveImage(),
		Notifier: notifier,
		Messages: a.Config.Messages.Catalog(),
		OnSaved: func(ctx context.Context, out *usecase.SaveImageOutput) {
			logging.FromContext(ctx).Info().
				Int64("id", out.Entry.ID).
				Str("path", out.Entry.DataPath).
				Str("format", out.Format).
				Msg("capture saved to gallery")
		},
	})
}

// NewHost assembles the host around view and notifier.
func (a *App) NewHost(view port.WebView, notifier port.Notification) (*host.Host, error) {
	oracle, err := a.NewOracle()
	if err != nil {
		return nil, err
	}

	guard, err := usecase.NewGuardNavigationUseCase(a.Config.Content.AllowedPrefix)
	if err != nil {
		return nil, fmt.Errorf("navigation guard: %w", err)
	}

	resolver, err := assets.NewResolver(a.Config.Content.AllowedPrefix)
	if err != nil {
		return nil, err
	}

	return host.New(host.Config{
		EntryURL:   a.Config.Content.EntryURL,
		Level:      a.Config.Platform.Level(),
		Oracle:     oracle,
		View:       view,
		Notifier:   notifier,
		Navigation: guard,
		Bridge:     a.NewBridge(notifier),
		Assets:     resolver,
		Messages:   a.Config.Messages.Catalog(),
	})
}

// WatchConfig applies log level and toast text changes to h as the config
// file is edited.
func (a *App) WatchConfig(h *host.Host) error {
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		lvl := logging.SetGlobalLevel(cfg.Logging.Level)
		h.SetMessages(cfg.Messages.Catalog())
		logging.FromContext(a.ctx).Info().
			Str("level", lvl.String()).
			Msg("configuration reloaded")
	})
	return a.Manager.Watch()
}
