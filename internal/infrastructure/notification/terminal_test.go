package notification_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/dumbcam/internal/application/port"
	portmocks "github.com/bnema/dumbcam/internal/application/port/mocks"
	"github.com/bnema/dumbcam/internal/infrastructure/notification"
)

func TestTerminal_Show(t *testing.T) {
	var buf bytes.Buffer
	term := notification.NewTerminal(&buf)

	term.Show(context.Background(), "Image saved to gallery", port.NotificationSuccess, 0)
	term.Show(context.Background(), "Failed to save image", port.NotificationError, port.ToastLongMs)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "Image saved to gallery")
	assert.Contains(t, string(lines[1]), "Failed to save image")
}

func TestMulti_FansOut(t *testing.T) {
	a := portmocks.NewMockNotification(t)
	b := portmocks.NewMockNotification(t)
	a.EXPECT().Show(mock.Anything, "hi", port.NotificationInfo, port.ToastShortMs).Return().Once()
	b.EXPECT().Show(mock.Anything, "hi", port.NotificationInfo, port.ToastShortMs).Return().Once()

	notification.Multi{a, nil, b}.Show(context.Background(), "hi", port.NotificationInfo, port.ToastShortMs)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		notification.Discard{}.Show(context.Background(), "x", port.NotificationError, 0)
	})
}
