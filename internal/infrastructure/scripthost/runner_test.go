package scripthost_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbcam/internal/application/port"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/infrastructure/scripthost"
)

type recordingBridge struct {
	name   string
	panics bool
	saved  []string
	toasts []string
	logs   []string
}

func (b *recordingBridge) Name() string { return b.name }

func (b *recordingBridge) SaveImage(_ context.Context, payload string) {
	if b.panics {
		panic("gallery exploded")
	}
	b.saved = append(b.saved, payload)
}

func (b *recordingBridge) ShowToast(_ context.Context, message string) {
	b.toasts = append(b.toasts, message)
}

func (b *recordingBridge) Log(_ context.Context, message string) {
	b.logs = append(b.logs, message)
}

type fakeHandler struct {
	prefix string
	grant  bool
	loads  []port.LoadEvent
}

func (h *fakeHandler) DecideNavigation(_ context.Context, target string) entity.NavigationDecision {
	if target != "" && strings.HasPrefix(target, h.prefix) {
		return entity.NavigationAllow
	}
	return entity.NavigationReject
}

func (h *fakeHandler) OnPermissionRequest(_ context.Context, req port.PermissionRequest) entity.PermissionDecision {
	if h.grant && entity.ContainsCapability(req.Resources(), entity.CapabilityVideoCapture) {
		req.Grant(req.Resources())
		return entity.PermissionGranted
	}
	req.Deny()
	return entity.PermissionDenied
}

func (h *fakeHandler) OnLoadEvent(_ context.Context, event port.LoadEvent, _ string) {
	h.loads = append(h.loads, event)
}

func newRunner(t *testing.T, b *recordingBridge, h *fakeHandler, timeout time.Duration) *scripthost.Runner {
	t.Helper()
	r, err := scripthost.New(scripthost.Config{
		Bridge:   b,
		Handler:  h,
		Location: "dumbcam://app/camera.html",
		Timeout:  timeout,
	})
	require.NoError(t, err)
	return r
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := scripthost.New(scripthost.Config{})
	require.Error(t, err)

	_, err = scripthost.New(scripthost.Config{Bridge: &recordingBridge{name: "B"}})
	require.Error(t, err)
}

func TestRun_BridgeBoundUnderName(t *testing.T) {
	b := &recordingBridge{name: "CamBridge"}
	r := newRunner(t, b, &fakeHandler{prefix: "dumbcam://app/"}, 0)

	res, err := r.Run(context.Background(), "page.js", `
		var ret = CamBridge.saveImage("data:image/jpeg;base64,AAAA");
		CamBridge.showToast("hello");
		CamBridge.log("ready");
		CamBridge.log();
		typeof ret;
	`)
	require.NoError(t, err)

	assert.Equal(t, "undefined", res.Value)
	assert.Equal(t, []string{"data:image/jpeg;base64,AAAA"}, b.saved)
	assert.Equal(t, []string{"hello"}, b.toasts)
	assert.Equal(t, []string{"ready", ""}, b.logs)
}

func TestRun_BridgePanicDoesNotThrow(t *testing.T) {
	b := &recordingBridge{name: "DumbCamBridge", panics: true}
	r := newRunner(t, b, &fakeHandler{}, 0)

	res, err := r.Run(context.Background(), "page.js", `
		var threw = false;
		try { DumbCamBridge.saveImage("x"); } catch (e) { threw = true; }
		threw ? "threw" : "ok";
	`)
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Value)
}

func TestRun_Navigation(t *testing.T) {
	h := &fakeHandler{prefix: "dumbcam://app/"}
	r := newRunner(t, &recordingBridge{name: "B"}, h, 0)

	res, err := r.Run(context.Background(), "nav.js", `
		var a = host.navigate("https://example.com/");
		var b = host.navigate("");
		var before = host.location();
		var c = host.navigate("dumbcam://app/other.html");
		[a, b, c, before, host.location()].join(",");
	`)
	require.NoError(t, err)

	assert.Equal(t, "false,false,true,dumbcam://app/camera.html,dumbcam://app/other.html", res.Value)
	assert.Equal(t, "dumbcam://app/other.html", res.Location)
	assert.Equal(t, 3, res.Navigations)
	assert.Equal(t, []port.LoadEvent{port.LoadStarted, port.LoadFinished}, h.loads)
}

func TestRun_RejectedNavigationKeepsLocation(t *testing.T) {
	r := newRunner(t, &recordingBridge{name: "B"}, &fakeHandler{prefix: "dumbcam://app/"}, 0)

	res, err := r.Run(context.Background(), "nav.js", `host.navigate("file:///etc/passwd")`)
	require.NoError(t, err)
	assert.Equal(t, false, res.Value)
	assert.Equal(t, "dumbcam://app/camera.html", res.Location)
}

func TestRun_RequestPermission(t *testing.T) {
	r := newRunner(t, &recordingBridge{name: "B"}, &fakeHandler{grant: true}, 0)

	res, err := r.Run(context.Background(), "perm.js", `
		var v = host.requestPermission(["video_capture", "audio-capture"]);
		var a = host.requestPermission(["audio_capture"]);
		[v.granted, v.resources.join("+"), a.granted, a.resources.length, v.id].join(",");
	`)
	require.NoError(t, err)

	assert.Equal(t, "true,video_capture+audio_capture,false,0,script-1", res.Value)
	assert.Equal(t, 2, res.PermissionRequests)
}

func TestRun_ScriptException(t *testing.T) {
	r := newRunner(t, &recordingBridge{name: "B"}, &fakeHandler{}, 0)

	_, err := r.Run(context.Background(), "bad.js", `throw new Error("nope")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestRun_Timeout(t *testing.T) {
	r := newRunner(t, &recordingBridge{name: "B"}, &fakeHandler{}, 50*time.Millisecond)

	_, err := r.Run(context.Background(), "loop.js", `for (;;) {}`)
	require.ErrorIs(t, err, scripthost.ErrTimeout)
}

func TestRun_ContextCancel(t *testing.T) {
	r := newRunner(t, &recordingBridge{name: "B"}, &fakeHandler{}, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := r.Run(ctx, "loop.js", `for (;;) {}`)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun_Console(t *testing.T) {
	r := newRunner(t, &recordingBridge{name: "B"}, &fakeHandler{}, 0)

	_, err := r.Run(context.Background(), "console.js", `
		console.log("a", 1);
		console.info("b");
		console.debug("c");
		console.warn("d");
		console.error("e");
	`)
	require.NoError(t, err)
}

func TestView_TracksLoadAndNotice(t *testing.T) {
	v := scripthost.NewView()
	ctx := context.Background()

	require.NoError(t, v.ShowPermissionsRequired(ctx, "grant please", []entity.OSPermission{entity.OSPermissionCamera}))
	msg, missing := v.Notice()
	assert.Equal(t, "grant please", msg)
	assert.Equal(t, []entity.OSPermission{entity.OSPermissionCamera}, missing)
	assert.Empty(t, v.Location())

	require.NoError(t, v.LoadURI(ctx, "dumbcam://app/camera.html"))
	msg, missing = v.Notice()
	assert.Empty(t, msg)
	assert.Empty(t, missing)
	assert.Equal(t, "dumbcam://app/camera.html", v.Location())
}
