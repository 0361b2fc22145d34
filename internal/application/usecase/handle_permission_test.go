package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbcam/internal/application/port"
	portmocks "github.com/bnema/dumbcam/internal/application/port/mocks"
	"github.com/bnema/dumbcam/internal/application/usecase"
	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/logging"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: "console"})
	return logging.WithContext(context.Background(), logger)
}

func newRequest(t *testing.T, resources ...entity.Capability) *portmocks.MockPermissionRequest {
	req := portmocks.NewMockPermissionRequest(t)
	req.EXPECT().ID().Return("req-1").Maybe()
	req.EXPECT().Resources().Return(resources)
	return req
}

func TestHandlePermissionUseCase_GrantsExactlyRequestedSet(t *testing.T) {
	tests := []struct {
		name      string
		resources []entity.Capability
	}{
		{"video only", []entity.Capability{entity.CapabilityVideoCapture}},
		{"video and audio", []entity.Capability{entity.CapabilityVideoCapture, entity.CapabilityAudioCapture}},
		{"audio and video reversed", []entity.Capability{entity.CapabilityAudioCapture, entity.CapabilityVideoCapture}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			oracle := portmocks.NewMockPermissionOracle(t)
			oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(true)

			req := newRequest(t, tt.resources...)
			var granted []entity.Capability
			req.EXPECT().Grant(mock.Anything).Run(func(resources []entity.Capability) {
				granted = resources
			}).Return().Once()

			uc := usecase.NewHandlePermissionUseCase(oracle, nil)
			decision := uc.HandlePermissionRequest(ctx, req)

			assert.Equal(t, entity.PermissionGranted, decision)
			assert.Equal(t, tt.resources, granted, "grant must be exactly the requested set")
			req.AssertNotCalled(t, "Deny")
		})
	}
}

func TestHandlePermissionUseCase_DeniesWithoutCameraGrant(t *testing.T) {
	ctx := testContext()
	oracle := portmocks.NewMockPermissionOracle(t)
	oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(false)

	req := newRequest(t, entity.CapabilityVideoCapture, entity.CapabilityAudioCapture)
	req.EXPECT().Deny().Return().Once()

	uc := usecase.NewHandlePermissionUseCase(oracle, nil)
	decision := uc.HandlePermissionRequest(ctx, req)

	assert.Equal(t, entity.PermissionDenied, decision)
	req.AssertNotCalled(t, "Grant", mock.Anything)
}

// Audio-only requests are denied even when the camera grant is held: the
// grant condition only looks at video capture. This is the current,
// documented behavior rather than an oversight.
func TestHandlePermissionUseCase_AudioOnlyIsDenied(t *testing.T) {
	ctx := testContext()
	oracle := portmocks.NewMockPermissionOracle(t)
	oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(true)

	req := newRequest(t, entity.CapabilityAudioCapture)
	req.EXPECT().Deny().Return().Once()

	uc := usecase.NewHandlePermissionUseCase(oracle, nil)
	decision := uc.HandlePermissionRequest(ctx, req)

	assert.Equal(t, entity.PermissionDenied, decision)
	req.AssertNotCalled(t, "Grant", mock.Anything)
}

func TestHandlePermissionUseCase_EmptyRequestIsDenied(t *testing.T) {
	ctx := testContext()
	oracle := portmocks.NewMockPermissionOracle(t)
	oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(true)

	req := newRequest(t)
	req.EXPECT().Deny().Return().Once()

	uc := usecase.NewHandlePermissionUseCase(oracle, nil)
	assert.Equal(t, entity.PermissionDenied, uc.HandlePermissionRequest(ctx, req))
}

func TestHandlePermissionUseCase_NilOracleDenies(t *testing.T) {
	ctx := testContext()
	req := newRequest(t, entity.CapabilityVideoCapture)
	req.EXPECT().Deny().Return().Once()

	uc := usecase.NewHandlePermissionUseCase(nil, nil)
	assert.Equal(t, entity.PermissionDenied, uc.HandlePermissionRequest(ctx, req))
}

func TestHandlePermissionUseCase_NotifiesDecision(t *testing.T) {
	ctx := testContext()
	oracle := portmocks.NewMockPermissionOracle(t)
	oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(false)

	req := newRequest(t, entity.CapabilityVideoCapture)
	req.EXPECT().Deny().Return().Once()

	var calls []entity.PermissionDecision
	uc := usecase.NewHandlePermissionUseCase(oracle, func(_ context.Context, got port.PermissionRequest, d entity.PermissionDecision) {
		assert.Same(t, req, got)
		calls = append(calls, d)
	})
	uc.HandlePermissionRequest(ctx, req)

	require.Len(t, calls, 1)
	assert.Equal(t, entity.PermissionDenied, calls[0])
}

func TestHandlePermissionUseCase_ResolvesOnceThroughGuard(t *testing.T) {
	ctx := testContext()
	oracle := portmocks.NewMockPermissionOracle(t)
	oracle.EXPECT().IsGranted(mock.Anything, entity.OSPermissionCamera).Return(true)

	inner := newRequest(t, entity.CapabilityVideoCapture)
	inner.EXPECT().Grant(mock.Anything).Return().Once()

	once := port.NewOnceRequest(ctx, inner)
	uc := usecase.NewHandlePermissionUseCase(oracle, nil)
	uc.HandlePermissionRequest(ctx, once)

	// A stray second resolution must not reach the engine.
	once.Deny()
	once.Grant([]entity.Capability{entity.CapabilityVideoCapture})

	assert.True(t, once.Resolved())
	inner.AssertNotCalled(t, "Deny")
	inner.AssertNumberOfCalls(t, "Grant", 1)
}
