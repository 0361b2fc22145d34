package headless

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbcam/internal/app/bridge"
	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/infrastructure/assets"
	"github.com/bnema/dumbcam/internal/logging"
)

// MaxLineBytes bounds one input line. Captured frames arrive inline as
// base64, so the limit is generous.
const MaxLineBytes = 64 << 20

// Handler receives engine callbacks. *host.Host satisfies it.
type Handler interface {
	Start(ctx context.Context) error
	Retry(ctx context.Context) (bool, error)
	DecideNavigation(ctx context.Context, target string) entity.NavigationDecision
	OnPermissionRequest(ctx context.Context, req port.PermissionRequest) entity.PermissionDecision
	OnPermissionCanceled(ctx context.Context, requestID string)
	OnScriptMessage(ctx context.Context, raw []byte) error
	OnLoadEvent(ctx context.Context, event port.LoadEvent, uri string)
	OnTitleChanged(ctx context.Context, title string)
	OnProgressChanged(ctx context.Context, progress float64)
	ResolveAsset(ctx context.Context, url string) (*assets.Response, error)
	State() port.WebViewState
	Bridge() *bridge.Bridge
}

// Engine reads events from in and writes commands to out. It implements
// port.WebView and port.Notification so the host can drive it.
type Engine struct {
	in      io.Reader
	session string

	outMu sync.Mutex
	enc   *json.Encoder
}

// New creates an engine over the given streams.
func New(in io.Reader, out io.Writer) *Engine {
	return &Engine{
		in:      in,
		session: uuid.NewString(),
		enc:     json.NewEncoder(out),
	}
}

// Session identifies this engine run in its ready command.
func (e *Engine) Session() string {
	return e.session
}

// LoadURI implements port.WebView.
func (e *Engine) LoadURI(_ context.Context, uri string) error {
	return e.emit(Command{Type: CommandLoad, URL: uri})
}

// ShowPermissionsRequired implements port.WebView.
func (e *Engine) ShowPermissionsRequired(_ context.Context, message string, missing []entity.OSPermission) error {
	names := make([]string, len(missing))
	for i, p := range missing {
		names[i] = string(p)
	}
	return e.emit(Command{Type: CommandPermissionsMissing, Text: message, Missing: names})
}

// Show implements port.Notification. Write failures are logged only.
func (e *Engine) Show(ctx context.Context, message string, notifType port.NotificationType, durationMs int) {
	if durationMs <= 0 {
		durationMs = port.ToastShortMs
	}
	if err := e.emit(Command{
		Type:       CommandToast,
		Text:       message,
		Level:      notifType.String(),
		DurationMs: durationMs,
	}); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("component", "headless").Msg("failed to emit toast")
	}
}

// Run starts the host and processes events until in is exhausted or ctx is
// done. Events are handled one at a time on a single goroutine. When in
// implements io.Closer it is closed on cancellation to unblock the reader.
func (e *Engine) Run(ctx context.Context, h Handler) error {
	ctx = logging.WithComponent(ctx, "headless")
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	events := make(chan Event)

	g.Go(func() error {
		defer close(events)
		return e.read(gctx, events)
	})

	g.Go(func() error {
		defer cancel()
		return e.loop(gctx, h, events)
	})

	g.Go(func() error {
		<-gctx.Done()
		if c, ok := e.in.(io.Closer); ok {
			_ = c.Close()
		}
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (e *Engine) read(ctx context.Context, events chan<- Event) error {
	log := logging.FromContext(ctx)

	scanner := bufio.NewScanner(e.in)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		ev, err := ParseEvent(line)
		if err != nil {
			log.Warn().Err(err).Int("bytes", len(line)).Msg("dropping malformed event")
			if emitErr := e.emit(Command{Type: CommandError, Error: err.Error()}); emitErr != nil {
				return emitErr
			}
			continue
		}

		select {
		case events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("read events: %w", err)
	}
	return nil
}

func (e *Engine) loop(ctx context.Context, h Handler, events <-chan Event) error {
	b := h.Bridge()
	ops := bridge.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	if err := e.emit(Command{Type: CommandReady, Session: e.session, Bridge: b.Name(), Operations: names}); err != nil {
		return err
	}
	if err := h.Start(ctx); err != nil {
		return fmt.Errorf("start host: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				logging.FromContext(ctx).Debug().Msg("event stream closed")
				return nil
			}
			if err := e.handle(ctx, h, ev); err != nil {
				return err
			}
		}
	}
}

// handle returns an error only when the output stream is broken.
func (e *Engine) handle(ctx context.Context, h Handler, ev Event) error {
	log := logging.FromContext(ctx)
	log.Trace().Str("event", string(ev.Type)).Str("id", ev.ID).Msg("engine event")

	switch ev.Type {
	case EventNavigate:
		decision := h.DecideNavigation(ctx, ev.URL)
		return e.emit(Command{Type: CommandNavigation, ID: ev.ID, URL: ev.URL, Decision: string(decision)})

	case EventPermissionRequest:
		id := ev.ID
		if id == "" {
			id = uuid.NewString()
		}
		req := port.NewOnceRequest(ctx, &permissionRequest{ctx: ctx, id: id, resources: ev.Capabilities(), engine: e})
		h.OnPermissionRequest(ctx, req)
		return nil

	case EventPermissionCanceled:
		h.OnPermissionCanceled(ctx, ev.ID)
		return nil

	case EventScriptMessage:
		raw, err := ev.ScriptMessage()
		if err == nil {
			err = h.OnScriptMessage(ctx, raw)
		}
		if err != nil {
			return e.emit(Command{Type: CommandError, ID: ev.ID, Error: err.Error()})
		}
		return nil

	case EventAssetRequest:
		resp, err := h.ResolveAsset(ctx, ev.URL)
		if err != nil {
			return e.emit(Command{Type: CommandAssetResponse, ID: ev.ID, URL: ev.URL, Status: assets.StatusFor(err), Error: err.Error()})
		}
		return e.emit(Command{
			Type:        CommandAssetResponse,
			ID:          ev.ID,
			URL:         ev.URL,
			Status:      resp.StatusCode,
			ContentType: resp.ContentType,
			Data:        resp.Data,
		})

	case EventRetryPermissions:
		if _, err := h.Retry(ctx); err != nil {
			return e.emit(Command{Type: CommandError, ID: ev.ID, Error: err.Error()})
		}
		return nil

	case EventLoadStarted:
		h.OnLoadEvent(ctx, port.LoadStarted, ev.URL)
		return nil

	case EventLoadFinished:
		h.OnLoadEvent(ctx, port.LoadFinished, ev.URL)
		return nil

	case EventTitleChanged:
		h.OnTitleChanged(ctx, ev.Title)
		return nil

	case EventProgressChanged:
		h.OnProgressChanged(ctx, ev.Progress)
		return nil

	case EventState:
		return e.emit(Command{Type: CommandState, ID: ev.ID, State: stateView(h.State())})

	default:
		log.Warn().Str("event", string(ev.Type)).Msg("unknown engine event")
		return e.emit(Command{Type: CommandError, ID: ev.ID, Error: fmt.Sprintf("unknown event type %q", ev.Type)})
	}
}

func (e *Engine) emit(cmd Command) error {
	e.outMu.Lock()
	defer e.outMu.Unlock()
	if err := e.enc.Encode(cmd); err != nil {
		return fmt.Errorf("write %s command: %w", cmd.Type, err)
	}
	return nil
}

// permissionRequest answers a permission_request event with a
// permission_result command.
type permissionRequest struct {
	ctx       context.Context
	id        string
	resources []entity.Capability
	engine    *Engine
}

func (r *permissionRequest) ID() string                     { return r.id }
func (r *permissionRequest) Resources() []entity.Capability { return r.resources }

func (r *permissionRequest) Grant(resources []entity.Capability) {
	r.reply(true, resources)
}

func (r *permissionRequest) Deny() {
	r.reply(false, nil)
}

func (r *permissionRequest) reply(granted bool, resources []entity.Capability) {
	err := r.engine.emit(Command{
		Type:      CommandPermissionResult,
		ID:        r.id,
		Granted:   boolPtr(granted),
		Resources: entity.CapabilitiesToStrings(resources),
	})
	if err != nil {
		logging.FromContext(r.ctx).Warn().Err(err).Str("request_id", r.id).Msg("failed to emit permission result")
	}
}
