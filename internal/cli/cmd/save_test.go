package cmd

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadFromInput(t *testing.T) {
	t.Run("text payload is trimmed", func(t *testing.T) {
		got := payloadFromInput([]byte("  data:image/jpeg;base64,AAAA\n"))
		assert.Equal(t, "data:image/jpeg;base64,AAAA", got)
	})

	t.Run("binary image is wrapped", func(t *testing.T) {
		png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
		got := payloadFromInput(png)
		assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"), got)
		assert.Equal(t, base64.StdEncoding.EncodeToString(png), strings.TrimPrefix(got, "data:image/png;base64,"))
	})
}
