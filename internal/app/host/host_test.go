package host_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbcam/internal/app/bridge"
	"github.com/bnema/dumbcam/internal/app/host"
	"github.com/bnema/dumbcam/internal/application/port"
	portmocks "github.com/bnema/dumbcam/internal/application/port/mocks"
	"github.com/bnema/dumbcam/internal/application/usecase"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/infrastructure/assets"
)

const (
	testPrefix = "dumbcam://app/"
	testEntry  = "dumbcam://app/camera.html"
)

type fixture struct {
	oracle   *portmocks.MockPermissionOracle
	view     *portmocks.MockWebView
	notifier *portmocks.MockNotification
	host     *host.Host
}

func newFixture(t *testing.T, level entity.APILevel) *fixture {
	t.Helper()

	f := &fixture{
		oracle:   portmocks.NewMockPermissionOracle(t),
		view:     portmocks.NewMockWebView(t),
		notifier: portmocks.NewMockNotification(t),
	}

	guard, err := usecase.NewGuardNavigationUseCase(testPrefix)
	require.NoError(t, err)

	files := fstest.MapFS{"camera.html": {Data: []byte("<!doctype html><html></html>")}}

	f.host, err = host.New(host.Config{
		EntryURL:   testEntry,
		Level:      level,
		Oracle:     f.oracle,
		View:       f.view,
		Notifier:   f.notifier,
		Navigation: guard,
		Bridge:     bridge.New(bridge.Config{Notifier: f.notifier}),
		Assets:     assets.NewResolverFS(testPrefix, files),
	})
	require.NoError(t, err)
	return f
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := host.New(host.Config{})
	require.Error(t, err)
}

func TestStart_AllGranted_LoadsEntry(t *testing.T) {
	f := newFixture(t, 34)
	ctx := context.Background()

	f.oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(true)
	f.oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionReadMediaImages).Return(true)
	f.view.EXPECT().LoadURI(mock.Anything, testEntry).Return(nil).Once()

	require.NoError(t, f.host.Start(ctx))
	assert.True(t, f.host.ContentShown())

	state := f.host.State()
	assert.Equal(t, testEntry, state.URI)
	assert.True(t, state.IsLoading)
}

func TestStart_MissingGrants_ShowsNoticeAndRequests(t *testing.T) {
	f := newFixture(t, 28)
	ctx := context.Background()

	f.oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(true)
	f.oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionWriteExternalStorage).Return(false)
	f.view.EXPECT().
		ShowPermissionsRequired(mock.Anything, entity.DefaultMessages().Text(entity.MessagePermissionsRequired),
			[]entity.OSPermission{entity.OSPermissionWriteExternalStorage}).
		Return(nil).Once()
	f.oracle.EXPECT().
		Request(mock.Anything, []entity.OSPermission{entity.OSPermissionWriteExternalStorage}).
		Return(map[entity.OSPermission]bool{entity.OSPermissionWriteExternalStorage: false}, nil).Once()

	require.NoError(t, f.host.Start(ctx))
	assert.False(t, f.host.ContentShown())
}

func TestStart_RequestGrantsEverything_LoadsEntry(t *testing.T) {
	f := newFixture(t, 34)
	ctx := context.Background()

	granted := false
	f.oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).RunAndReturn(
		func(context.Context, entity.OSPermission) bool { return granted })
	f.oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionReadMediaImages).Return(true)
	f.view.EXPECT().ShowPermissionsRequired(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.oracle.EXPECT().Request(mock.Anything, []entity.OSPermission{entity.OSPermissionCamera}).
		RunAndReturn(func(context.Context, []entity.OSPermission) (map[entity.OSPermission]bool, error) {
			granted = true
			return map[entity.OSPermission]bool{entity.OSPermissionCamera: true}, nil
		}).Once()
	f.view.EXPECT().LoadURI(mock.Anything, testEntry).Return(nil).Once()

	require.NoError(t, f.host.Start(ctx))
	assert.True(t, f.host.ContentShown())
}

func TestStart_RequestFlowError_IsNotFatal(t *testing.T) {
	f := newFixture(t, 34)
	ctx := context.Background()

	f.oracle.EXPECT().IsGranted(mock.Anything, mock.Anything).Return(false)
	f.view.EXPECT().ShowPermissionsRequired(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.oracle.EXPECT().Request(mock.Anything, mock.Anything).Return(nil, errors.New("no dialog")).Once()

	require.NoError(t, f.host.Start(ctx))
	assert.False(t, f.host.ContentShown())
}

func TestStart_LoadFailure_IsReturned(t *testing.T) {
	f := newFixture(t, 34)

	f.oracle.EXPECT().IsGranted(mock.Anything, mock.Anything).Return(true)
	f.view.EXPECT().LoadURI(mock.Anything, testEntry).Return(errors.New("engine gone")).Once()

	err := f.host.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load entry page")
	assert.False(t, f.host.ContentShown())
}

func TestRetry_StillMissing_ToastsPermissionDenied(t *testing.T) {
	f := newFixture(t, 34)

	f.oracle.EXPECT().IsGranted(mock.Anything, mock.Anything).Return(false)
	f.notifier.EXPECT().
		Show(mock.Anything, entity.DefaultMessages().Text(entity.MessagePermissionDenied), port.NotificationError, port.ToastLongMs).
		Return().Once()

	shown, err := f.host.Retry(context.Background())
	require.NoError(t, err)
	assert.False(t, shown)
}

func TestRetry_Granted_LoadsEntryOnce(t *testing.T) {
	f := newFixture(t, 34)
	ctx := context.Background()

	f.oracle.EXPECT().IsGranted(mock.Anything, mock.Anything).Return(true)
	f.view.EXPECT().LoadURI(mock.Anything, testEntry).Return(nil).Once()

	shown, err := f.host.Retry(ctx)
	require.NoError(t, err)
	assert.True(t, shown)

	shown, err = f.host.Retry(ctx)
	require.NoError(t, err)
	assert.True(t, shown)
}

func TestDecideNavigation(t *testing.T) {
	f := newFixture(t, 34)
	ctx := context.Background()

	assert.Equal(t, entity.NavigationAllow, f.host.DecideNavigation(ctx, testEntry))
	assert.Equal(t, entity.NavigationReject, f.host.DecideNavigation(ctx, "https://example.com/"))
	assert.Equal(t, entity.NavigationReject, f.host.DecideNavigation(ctx, ""))
	assert.Empty(t, f.host.State().URI)
}

func TestOnPermissionRequest_GrantsExactSet(t *testing.T) {
	f := newFixture(t, 34)
	req := portmocks.NewMockPermissionRequest(t)
	resources := []entity.Capability{entity.CapabilityVideoCapture, entity.CapabilityAudioCapture}

	req.EXPECT().ID().Return("r1").Maybe()
	req.EXPECT().Resources().Return(resources)
	req.EXPECT().Grant(resources).Return().Once()
	f.oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(true)

	decision := f.host.OnPermissionRequest(context.Background(), req)
	assert.Equal(t, entity.PermissionGranted, decision)
}

func TestOnPermissionRequest_DenyToastsCameraMessage(t *testing.T) {
	f := newFixture(t, 34)
	req := portmocks.NewMockPermissionRequest(t)

	req.EXPECT().ID().Return("r2").Maybe()
	req.EXPECT().Resources().Return([]entity.Capability{entity.CapabilityAudioCapture})
	req.EXPECT().Deny().Return().Once()
	f.oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(true)
	f.notifier.EXPECT().
		Show(mock.Anything, entity.DefaultMessages().Text(entity.MessageCameraPermissionMessage), port.NotificationInfo, port.ToastShortMs).
		Return().Once()

	decision := f.host.OnPermissionRequest(context.Background(), req)
	assert.Equal(t, entity.PermissionDenied, decision)
}

func TestOnPermissionRequest_SecondResolutionDropped(t *testing.T) {
	f := newFixture(t, 34)
	ctx := context.Background()
	req := portmocks.NewMockPermissionRequest(t)
	resources := []entity.Capability{entity.CapabilityVideoCapture}

	req.EXPECT().ID().Return("r3").Maybe()
	req.EXPECT().Resources().Return(resources)
	req.EXPECT().Grant(resources).Return().Once()
	f.oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(true)

	once := port.NewOnceRequest(ctx, req)
	f.host.OnPermissionRequest(ctx, once)
	once.Deny()

	assert.True(t, once.Resolved())
}

func TestOnScriptMessage_ShowToast(t *testing.T) {
	f := newFixture(t, 34)
	f.notifier.EXPECT().Show(mock.Anything, "hi", port.NotificationInfo, port.ToastShortMs).Return().Once()

	require.NoError(t, f.host.OnScriptMessage(context.Background(), []byte(`{"type":"showToast","payload":"hi"}`)))
}

func TestOnScriptMessage_UnknownType(t *testing.T) {
	f := newFixture(t, 34)

	err := f.host.OnScriptMessage(context.Background(), []byte(`{"type":"deleteAll","payload":""}`))
	require.ErrorIs(t, err, bridge.ErrUnknownOperation)
}

func TestViewLifecycle(t *testing.T) {
	f := newFixture(t, 34)
	ctx := context.Background()

	f.host.OnLoadEvent(ctx, port.LoadStarted, testEntry)
	f.host.OnProgressChanged(ctx, 0.4)
	assert.InDelta(t, 0.4, f.host.State().Progress, 0.0001)

	f.host.OnProgressChanged(ctx, 3)
	assert.InDelta(t, 1.0, f.host.State().Progress, 0.0001)

	f.host.OnTitleChanged(ctx, "Camera")
	f.host.OnLoadEvent(ctx, port.LoadFinished, "")

	state := f.host.State()
	assert.Equal(t, testEntry, state.URI)
	assert.Equal(t, "Camera", state.Title)
	assert.False(t, state.IsLoading)
	assert.InDelta(t, 1.0, state.Progress, 0.0001)
}

func TestResolveAsset(t *testing.T) {
	f := newFixture(t, 34)
	ctx := context.Background()

	resp, err := f.host.ResolveAsset(ctx, testEntry)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	_, err = f.host.ResolveAsset(ctx, "https://example.com/camera.html")
	require.ErrorIs(t, err, assets.ErrOutsidePrefix)
}

func TestSetMessages_UpdatesToasts(t *testing.T) {
	f := newFixture(t, 34)

	f.host.SetMessages(entity.MessageCatalog{entity.MessagePermissionDenied: "nope"})
	f.oracle.EXPECT().IsGranted(mock.Anything, mock.Anything).Return(false)
	f.notifier.EXPECT().Show(mock.Anything, "nope", port.NotificationError, port.ToastLongMs).Return().Once()

	_, err := f.host.Retry(context.Background())
	require.NoError(t, err)
}
