// Package scripthost runs page-side JavaScript against the host without a
// browser engine. The capture bridge is bound under its identifier, next to
// a small host object for navigation and permission requests.
package scripthost

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grafana/sobek"
	"github.com/rs/zerolog"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/logging"
)

// ErrTimeout is returned when a script runs past the configured timeout.
var ErrTimeout = errors.New("script timed out")

// Bridge is the native surface bound into the script global scope.
type Bridge interface {
	Name() string
	SaveImage(ctx context.Context, payload string)
	ShowToast(ctx context.Context, message string)
	Log(ctx context.Context, message string)
}

// Handler receives navigation and permission callbacks. *host.Host
// satisfies it.
type Handler interface {
	DecideNavigation(ctx context.Context, target string) entity.NavigationDecision
	OnPermissionRequest(ctx context.Context, req port.PermissionRequest) entity.PermissionDecision
	OnLoadEvent(ctx context.Context, event port.LoadEvent, uri string)
}

// Config configures a Runner.
type Config struct {
	Bridge  Bridge
	Handler Handler
	// Location is the document address the script starts at.
	Location string
	// Timeout bounds a single Run. Zero disables it.
	Timeout time.Duration
}

// Result describes a finished script.
type Result struct {
	// Value is the exported completion value of the script.
	Value any
	// Location is the document address after every allowed navigation.
	Location string
	// Navigations counts host.navigate calls, allowed or not.
	Navigations int
	// PermissionRequests counts host.requestPermission calls.
	PermissionRequests int
}

// Runner executes scripts. Each Run gets a fresh runtime.
type Runner struct {
	cfg Config
}

// New creates a runner.
func New(cfg Config) (*Runner, error) {
	if cfg.Bridge == nil {
		return nil, errors.New("scripthost: bridge is required")
	}
	if cfg.Handler == nil {
		return nil, errors.New("scripthost: handler is required")
	}
	return &Runner{cfg: cfg}, nil
}

type session struct {
	ctx    context.Context
	vm     *sobek.Runtime
	cfg    Config
	log    zerolog.Logger
	mu     sync.Mutex
	result Result
	reqSeq int
}

// Run evaluates src. Script exceptions are returned as errors; bridge
// failures never are.
func (r *Runner) Run(ctx context.Context, name, src string) (*Result, error) {
	ctx = logging.WithComponent(ctx, "script")

	s := &session{
		ctx:    ctx,
		vm:     sobek.New(),
		cfg:    r.cfg,
		log:    logging.FromContext(ctx).With().Str("script", name).Logger(),
		result: Result{Location: r.cfg.Location},
	}
	s.vm.SetFieldNameMapper(sobek.TagFieldNameMapper("json", true))

	if err := s.bind(); err != nil {
		return nil, fmt.Errorf("bind script globals: %w", err)
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		var timeout <-chan time.Time
		if r.cfg.Timeout > 0 {
			timer := time.NewTimer(r.cfg.Timeout)
			defer timer.Stop()
			timeout = timer.C
		}
		select {
		case <-done:
		case <-ctx.Done():
			s.vm.Interrupt(ctx.Err())
		case <-timeout:
			s.vm.Interrupt(ErrTimeout)
		}
	}()

	started := time.Now()
	value, err := s.vm.RunScript(name, src)
	if err != nil {
		return nil, s.runError(err)
	}

	s.mu.Lock()
	res := s.result
	s.mu.Unlock()
	if value != nil && !sobek.IsUndefined(value) && !sobek.IsNull(value) {
		res.Value = value.Export()
	}

	s.log.Debug().Dur("elapsed", time.Since(started)).Msg("script finished")
	return &res, nil
}

func (s *session) runError(err error) error {
	var interrupted *sobek.InterruptedError
	if errors.As(err, &interrupted) {
		if cause, ok := interrupted.Value().(error); ok {
			s.log.Warn().Err(cause).Msg("script interrupted")
			return cause
		}
		return fmt.Errorf("script interrupted: %v", interrupted.Value())
	}

	var exception *sobek.Exception
	if errors.As(err, &exception) {
		s.log.Warn().Str("error", exception.Error()).Msg("script threw")
		return fmt.Errorf("script exception: %s", exception.Error())
	}
	return fmt.Errorf("run script: %w", err)
}

func (s *session) bind() error {
	bridgeObj := s.vm.NewObject()
	for name, fn := range map[string]func(string){
		"saveImage": func(v string) { s.cfg.Bridge.SaveImage(s.ctx, v) },
		"showToast": func(v string) { s.cfg.Bridge.ShowToast(s.ctx, v) },
		"log":       func(v string) { s.cfg.Bridge.Log(s.ctx, v) },
	} {
		if err := bridgeObj.Set(name, s.fireAndForget("bridge."+name, fn)); err != nil {
			return err
		}
	}
	if err := s.vm.Set(s.cfg.Bridge.Name(), bridgeObj); err != nil {
		return err
	}

	hostObj := s.vm.NewObject()
	if err := hostObj.Set("navigate", s.guarded("host.navigate", s.navigate)); err != nil {
		return err
	}
	if err := hostObj.Set("requestPermission", s.guarded("host.requestPermission", s.requestPermission)); err != nil {
		return err
	}
	if err := hostObj.Set("location", func(sobek.FunctionCall) sobek.Value {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.vm.ToValue(s.result.Location)
	}); err != nil {
		return err
	}
	if err := s.vm.Set("host", hostObj); err != nil {
		return err
	}

	return s.vm.Set("console", s.console())
}

// fireAndForget adapts fn into a JS function that always returns undefined.
func (s *session) fireAndForget(where string, fn func(string)) func(sobek.FunctionCall) sobek.Value {
	return s.guarded(where, func(call sobek.FunctionCall) sobek.Value {
		fn(argString(call, 0))
		return sobek.Undefined()
	})
}

// guarded keeps Go panics from unwinding through the runtime. A recovered
// call returns undefined.
func (s *session) guarded(where string, fn func(sobek.FunctionCall) sobek.Value) func(sobek.FunctionCall) sobek.Value {
	return func(call sobek.FunctionCall) (v sobek.Value) {
		v = sobek.Undefined()
		defer logging.RecoverPanic(s.ctx, where, nil)
		return fn(call)
	}
}

func (s *session) navigate(call sobek.FunctionCall) sobek.Value {
	target := argString(call, 0)

	s.mu.Lock()
	s.result.Navigations++
	s.mu.Unlock()

	decision := s.cfg.Handler.DecideNavigation(s.ctx, target)
	if !decision.Allowed() {
		return s.vm.ToValue(false)
	}

	s.mu.Lock()
	s.result.Location = target
	s.mu.Unlock()

	s.cfg.Handler.OnLoadEvent(s.ctx, port.LoadStarted, target)
	s.cfg.Handler.OnLoadEvent(s.ctx, port.LoadFinished, target)
	return s.vm.ToValue(true)
}

// permissionReply is what host.requestPermission returns to script.
type permissionReply struct {
	ID        string   `json:"id"`
	Granted   bool     `json:"granted"`
	Resources []string `json:"resources"`
}

func (s *session) requestPermission(call sobek.FunctionCall) sobek.Value {
	var raw []string
	if arg := call.Argument(0); !sobek.IsUndefined(arg) && !sobek.IsNull(arg) {
		if err := s.vm.ExportTo(arg, &raw); err != nil {
			s.log.Warn().Err(err).Msg("requestPermission expects an array of strings")
			return s.vm.ToValue(permissionReply{Resources: []string{}})
		}
	}

	caps := make([]entity.Capability, 0, len(raw))
	for _, r := range raw {
		c, _ := entity.ParseCapability(r)
		caps = append(caps, c)
	}

	s.mu.Lock()
	s.result.PermissionRequests++
	s.reqSeq++
	id := fmt.Sprintf("script-%d", s.reqSeq)
	s.mu.Unlock()

	req := &scriptPermissionRequest{id: id, resources: caps}
	s.cfg.Handler.OnPermissionRequest(s.ctx, port.NewOnceRequest(s.ctx, req))

	reply := permissionReply{ID: id, Granted: req.granted, Resources: entity.CapabilitiesToStrings(req.grantedSet)}
	return s.vm.ToValue(reply)
}

func (s *session) console() *sobek.Object {
	obj := s.vm.NewObject()
	levels := map[string]zerolog.Level{
		"log":   zerolog.InfoLevel,
		"info":  zerolog.InfoLevel,
		"debug": zerolog.DebugLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	}
	for name, level := range levels {
		_ = obj.Set(name, func(call sobek.FunctionCall) sobek.Value {
			parts := make([]string, len(call.Arguments))
			for i, a := range call.Arguments {
				parts[i] = a.String()
			}
			s.log.WithLevel(level).Str("console", name).Msg(strings.Join(parts, " "))
			return sobek.Undefined()
		})
	}
	return obj
}

func argString(call sobek.FunctionCall, i int) string {
	arg := call.Argument(i)
	if sobek.IsUndefined(arg) || sobek.IsNull(arg) {
		return ""
	}
	return arg.String()
}

// scriptPermissionRequest records the gate's decision for the script reply.
type scriptPermissionRequest struct {
	id         string
	resources  []entity.Capability
	granted    bool
	grantedSet []entity.Capability
}

func (r *scriptPermissionRequest) ID() string                     { return r.id }
func (r *scriptPermissionRequest) Resources() []entity.Capability { return r.resources }

func (r *scriptPermissionRequest) Grant(resources []entity.Capability) {
	r.granted = true
	r.grantedSet = resources
}

func (r *scriptPermissionRequest) Deny() {
	r.granted = false
	r.grantedSet = nil
}
