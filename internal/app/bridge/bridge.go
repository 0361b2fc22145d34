// Package bridge implements the script-to-native surface exposed to the
// bundled page: saveImage, showToast and log. Every entry point is
// fire-and-forget. Failures become a toast plus a log line and never
// propagate back to the caller.
package bridge

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/application/usecase"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/logging"
)

// DefaultName is the identifier the bridge is exposed under in page script.
const DefaultName = "DumbCamBridge"

// ImageSaver persists a text-encoded image.
type ImageSaver interface {
	Execute(ctx context.Context, raw string) (*usecase.SaveImageOutput, error)
}

// Config configures a Bridge.
type Config struct {
	Name     string
	Saver    ImageSaver
	Notifier port.Notification
	Messages entity.MessageCatalog
	// OnSaved, when set, is called after a successful save.
	OnSaved func(ctx context.Context, out *usecase.SaveImageOutput)
}

// Bridge serializes script calls into native operations.
type Bridge struct {
	mu       sync.Mutex
	name     string
	saver    ImageSaver
	notifier port.Notification
	messages entity.MessageCatalog
	onSaved  func(ctx context.Context, out *usecase.SaveImageOutput)
}

// New creates a bridge. A nil notifier drops toasts.
func New(cfg Config) *Bridge {
	name := cfg.Name
	if name == "" {
		name = DefaultName
	}
	messages := cfg.Messages
	if messages == nil {
		messages = entity.DefaultMessages()
	}
	return &Bridge{
		name:     name,
		saver:    cfg.Saver,
		notifier: cfg.Notifier,
		messages: messages,
		onSaved:  cfg.OnSaved,
	}
}

// Name returns the identifier the bridge is exposed under.
func (b *Bridge) Name() string {
	return b.name
}

// SetMessages replaces the toast texts, e.g. after a config reload.
func (b *Bridge) SetMessages(messages entity.MessageCatalog) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if messages == nil {
		messages = entity.DefaultMessages()
	}
	b.messages = messages
}

// Dispatch routes an enveloped message to its operation.
// Only malformed envelopes are reported; operation failures are not.
func (b *Bridge) Dispatch(ctx context.Context, msg Message) error {
	switch msg.Type {
	case OpSaveImage:
		b.SaveImage(ctx, msg.Payload)
	case OpShowToast:
		b.ShowToast(ctx, msg.Payload)
	case OpLog:
		b.Log(ctx, msg.Payload)
	default:
		logging.FromContext(ctx).Warn().
			Str("component", "bridge").
			Str("bridge", b.name).
			Str("type", string(msg.Type)).
			Msg("ignoring unknown bridge message")
		return fmt.Errorf("%w: %q", ErrUnknownOperation, msg.Type)
	}
	return nil
}

// DispatchJSON parses raw and dispatches it.
func (b *Bridge) DispatchJSON(ctx context.Context, raw []byte) error {
	msg, err := ParseMessage(raw)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("component", "bridge").
			Str("bridge", b.name).
			Msg("dropping malformed bridge message")
		return err
	}
	return b.Dispatch(ctx, msg)
}

// SaveImage decodes payload and writes it to the gallery, then toasts the
// outcome. It never panics and never returns an error to script.
func (b *Bridge) SaveImage(ctx context.Context, payload string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	log := logging.FromContext(ctx).With().
		Str("component", "bridge").
		Str("bridge", b.name).
		Logger()

	defer logging.RecoverPanic(ctx, "bridge.saveImage", func(any) {
		b.toast(ctx, b.messages.Text(entity.MessageImageSaveFailed), port.NotificationError)
	})

	if b.saver == nil {
		log.Error().Msg("saveImage called without an image saver")
		b.toast(ctx, b.messages.Text(entity.MessageImageSaveFailed), port.NotificationError)
		return
	}

	out, err := b.saver.Execute(ctx, payload)
	if err != nil {
		log.Error().Err(err).Int("payload_len", len(payload)).Msg("failed to save image")
		b.toast(ctx, b.messages.Text(entity.MessageImageSaveFailed), port.NotificationError)
		return
	}

	b.toast(ctx, b.messages.Text(entity.MessageImageSaved), port.NotificationSuccess)
	if b.onSaved != nil {
		b.onSaved(ctx, out)
	}
}

// ShowToast displays message as a short status toast.
func (b *Bridge) ShowToast(ctx context.Context, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	defer logging.RecoverPanic(ctx, "bridge.showToast", nil)

	b.toast(ctx, message, port.NotificationInfo)
}

// Log writes a debug line attributed to page script.
func (b *Bridge) Log(ctx context.Context, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("component", "bridge").
		Str("bridge", b.name).
		Msg("JS: " + message)
}

func (b *Bridge) toast(ctx context.Context, message string, notifType port.NotificationType) {
	if b.notifier == nil {
		return
	}
	b.notifier.Show(ctx, message, notifType, port.ToastShortMs)
}
