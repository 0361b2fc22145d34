package headless_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbcam/internal/app/bridge"
	"github.com/bnema/dumbcam/internal/app/host"
	"github.com/bnema/dumbcam/internal/application/usecase"
	"github.com/bnema/dumbcam/internal/infrastructure/assets"
	"github.com/bnema/dumbcam/internal/infrastructure/headless"
	"github.com/bnema/dumbcam/internal/infrastructure/permission"
)

const prefix = "dumbcam://app/"

func runEngine(t *testing.T, granted bool, input ...string) []headless.Command {
	t.Helper()

	var out bytes.Buffer
	engine := headless.New(strings.NewReader(strings.Join(input, "\n")+"\n"), &out)

	guard, err := usecase.NewGuardNavigationUseCase(prefix)
	require.NoError(t, err)

	h, err := host.New(host.Config{
		EntryURL:   prefix + "camera.html",
		Oracle:     permission.NewStaticOracle(granted),
		View:       engine,
		Notifier:   engine,
		Navigation: guard,
		Bridge:     bridge.New(bridge.Config{Notifier: engine}),
		Assets: assets.NewResolverFS(prefix, fstest.MapFS{
			"camera.html": {Data: []byte("<!DOCTYPE html><html><body></body></html>")},
		}),
	})
	require.NoError(t, err)

	require.NoError(t, engine.Run(context.Background(), h))

	var cmds []headless.Command
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var cmd headless.Command
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &cmd), scanner.Text())
		cmds = append(cmds, cmd)
	}
	return cmds
}

func findCommand(cmds []headless.Command, typ headless.CommandType, id string) *headless.Command {
	for i := range cmds {
		if cmds[i].Type == typ && cmds[i].ID == id {
			return &cmds[i]
		}
	}
	return nil
}

func TestRun_GrantedLaunchLoadsEntry(t *testing.T) {
	cmds := runEngine(t, true)

	require.Len(t, cmds, 2)
	assert.Equal(t, headless.CommandReady, cmds[0].Type)
	assert.NotEmpty(t, cmds[0].Session)
	assert.Equal(t, bridge.DefaultName, cmds[0].Bridge)
	assert.Equal(t, []string{"saveImage", "showToast", "log"}, cmds[0].Operations)
	assert.Equal(t, headless.CommandLoad, cmds[1].Type)
	assert.Equal(t, prefix+"camera.html", cmds[1].URL)
}

func TestRun_DeniedLaunchShowsNotice(t *testing.T) {
	cmds := runEngine(t, false, `{"type":"retry_permissions","id":"r"}`)

	missing := findCommand(cmds, headless.CommandPermissionsMissing, "")
	require.NotNil(t, missing)
	assert.ElementsMatch(t, []string{"camera", "read_media_images"}, missing.Missing)
	assert.Nil(t, findCommand(cmds, headless.CommandLoad, ""))

	toast := findCommand(cmds, headless.CommandToast, "")
	require.NotNil(t, toast)
	assert.Equal(t, "error", toast.Level)
	assert.Contains(t, toast.Text, "Permission denied")
}

func TestRun_Navigation(t *testing.T) {
	cmds := runEngine(t, true,
		`{"type":"navigate","id":"n1","url":"dumbcam://app/camera.html?x=1"}`,
		`{"type":"navigate","id":"n2","url":"https://evil.example/"}`,
		`{"type":"navigate","id":"n3","url":""}`,
	)

	assert.Equal(t, "allow", findCommand(cmds, headless.CommandNavigation, "n1").Decision)
	assert.Equal(t, "reject", findCommand(cmds, headless.CommandNavigation, "n2").Decision)
	assert.Equal(t, "reject", findCommand(cmds, headless.CommandNavigation, "n3").Decision)
}

func TestRun_PermissionRequest(t *testing.T) {
	cmds := runEngine(t, true,
		`{"type":"permission_request","id":"p1","resources":["video-capture","audio_capture"]}`,
		`{"type":"permission_request","id":"p2","resources":["audio_capture"]}`,
	)

	p1 := findCommand(cmds, headless.CommandPermissionResult, "p1")
	require.NotNil(t, p1)
	require.NotNil(t, p1.Granted)
	assert.True(t, *p1.Granted)
	assert.Equal(t, []string{"video_capture", "audio_capture"}, p1.Resources)

	p2 := findCommand(cmds, headless.CommandPermissionResult, "p2")
	require.NotNil(t, p2)
	require.NotNil(t, p2.Granted)
	assert.False(t, *p2.Granted)
	assert.Empty(t, p2.Resources)
}

func TestRun_PermissionRequestWithoutID_GetsOne(t *testing.T) {
	cmds := runEngine(t, false, `{"type":"permission_request","resources":["video_capture"]}`)

	var result *headless.Command
	for i := range cmds {
		if cmds[i].Type == headless.CommandPermissionResult {
			result = &cmds[i]
		}
	}
	require.NotNil(t, result)
	assert.NotEmpty(t, result.ID)
	assert.False(t, *result.Granted)
}

func TestRun_ScriptMessages(t *testing.T) {
	cmds := runEngine(t, true,
		`{"type":"script_message","id":"s1","message":"{\"type\":\"showToast\",\"payload\":\"hello\"}"}`,
		`{"type":"script_message","id":"s2","message":{"type":"log","payload":"ready"}}`,
		`{"type":"script_message","id":"s3","message":{"type":"explode"}}`,
	)

	var toasts []string
	for _, c := range cmds {
		if c.Type == headless.CommandToast {
			toasts = append(toasts, c.Text)
		}
	}
	assert.Equal(t, []string{"hello"}, toasts)
	assert.Nil(t, findCommand(cmds, headless.CommandError, "s2"))

	errCmd := findCommand(cmds, headless.CommandError, "s3")
	require.NotNil(t, errCmd)
	assert.Contains(t, errCmd.Error, "unknown bridge operation")
}

func TestRun_SaveImageWithoutSaver_ToastsFailure(t *testing.T) {
	cmds := runEngine(t, true,
		`{"type":"script_message","message":{"type":"saveImage","payload":"data:image/jpeg;base64,/9j/4AAQSkZJRg=="}}`,
	)

	toast := findCommand(cmds, headless.CommandToast, "")
	require.NotNil(t, toast)
	assert.Equal(t, "Failed to save image", toast.Text)
}

func TestRun_AssetRequests(t *testing.T) {
	cmds := runEngine(t, true,
		`{"type":"asset_request","id":"a1","url":"dumbcam://app/camera.html"}`,
		`{"type":"asset_request","id":"a2","url":"dumbcam://app/missing.js"}`,
		`{"type":"asset_request","id":"a3","url":"file:///etc/passwd"}`,
	)

	a1 := findCommand(cmds, headless.CommandAssetResponse, "a1")
	require.NotNil(t, a1)
	assert.Equal(t, 200, a1.Status)
	assert.Contains(t, a1.ContentType, "text/html")
	assert.Contains(t, string(a1.Data), "<html>")

	assert.Equal(t, 404, findCommand(cmds, headless.CommandAssetResponse, "a2").Status)
	assert.Equal(t, 403, findCommand(cmds, headless.CommandAssetResponse, "a3").Status)
}

func TestRun_LifecycleAndState(t *testing.T) {
	cmds := runEngine(t, true,
		`{"type":"load_started","url":"dumbcam://app/camera.html"}`,
		`{"type":"progress_changed","progress":0.5}`,
		`{"type":"title_changed","title":"Camera"}`,
		`{"type":"load_finished","url":"dumbcam://app/camera.html"}`,
		`{"type":"state","id":"st"}`,
	)

	st := findCommand(cmds, headless.CommandState, "st")
	require.NotNil(t, st)
	require.NotNil(t, st.State)
	assert.Equal(t, "Camera", st.State.Title)
	assert.Equal(t, prefix+"camera.html", st.State.URI)
	assert.False(t, st.State.IsLoading)
	assert.InDelta(t, 1.0, st.State.Progress, 0.0001)
}

func TestRun_MalformedAndUnknownEvents(t *testing.T) {
	cmds := runEngine(t, true,
		`not json`,
		`{"type":"teleport","id":"u1"}`,
		`{"type":"permission_canceled","id":"p9"}`,
	)

	var errs []string
	for _, c := range cmds {
		if c.Type == headless.CommandError {
			errs = append(errs, c.Error)
		}
	}
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "decode event")
	assert.Contains(t, errs[1], "teleport")
}

func TestRun_CanceledContext(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	engine := headless.New(pr, &out)
	guard, err := usecase.NewGuardNavigationUseCase(prefix)
	require.NoError(t, err)
	h, err := host.New(host.Config{
		EntryURL:   prefix + "camera.html",
		Oracle:     permission.NewStaticOracle(true),
		View:       engine,
		Notifier:   engine,
		Navigation: guard,
		Bridge:     bridge.New(bridge.Config{Notifier: engine}),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx, h) }()

	cancel()
	assert.NoError(t, <-done)
}

func TestEvent_ScriptMessage(t *testing.T) {
	ev, err := headless.ParseEvent([]byte(`{"type":"script_message","message":null}`))
	require.NoError(t, err)
	_, err = ev.ScriptMessage()
	require.Error(t, err)

	_, err = headless.ParseEvent([]byte(`{"id":"x"}`))
	require.Error(t, err)
}
