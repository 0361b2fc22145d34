package imaging_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/bnema/dumbcam/internal/domain/entity"
	"github.com/bnema/dumbcam/internal/infrastructure/imaging"
)

func sample() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := range 6 {
		for x := range 8 {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 40), B: 128, A: 255})
		}
	}
	return img
}

func TestDecoder_DecodesSupportedFormats(t *testing.T) {
	ctx := context.Background()
	dec := imaging.NewDecoder()

	encoders := map[string]func(*bytes.Buffer) error{
		"jpeg": func(b *bytes.Buffer) error { return jpeg.Encode(b, sample(), nil) },
		"png":  func(b *bytes.Buffer) error { return png.Encode(b, sample()) },
		"gif":  func(b *bytes.Buffer) error { return gif.Encode(b, sample(), nil) },
		"bmp":  func(b *bytes.Buffer) error { return bmp.Encode(b, sample()) },
	}

	for format, encode := range encoders {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encode(&buf))

			img, got, err := dec.Decode(ctx, buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, format, got)
			assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
		})
	}
}

func TestDecoder_TruncatedJPEGHeader(t *testing.T) {
	data, err := base64.StdEncoding.DecodeString("/9j/4AAQSkZJRg==")
	require.NoError(t, err)

	_, _, err = imaging.NewDecoder().Decode(context.Background(), data)
	assert.ErrorIs(t, err, entity.ErrUndecodableImage)
}

func TestDecoder_TruncatedBody(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, sample()))
	data := buf.Bytes()[:buf.Len()/2]

	_, _, err := imaging.NewDecoder().Decode(context.Background(), data)
	assert.ErrorIs(t, err, entity.ErrUndecodableImage)
}

func TestDecoder_NotAnImage(t *testing.T) {
	_, _, err := imaging.NewDecoder().Decode(context.Background(), []byte("<html>hello</html>"))
	assert.ErrorIs(t, err, entity.ErrUndecodableImage)
}

func TestEncodeJPEG_FlattensAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4)) // fully transparent

	var buf bytes.Buffer
	require.NoError(t, imaging.EncodeJPEG(&buf, img, 90))

	out, err := jpeg.Decode(&buf)
	require.NoError(t, err)
	r, g, b, _ := out.At(1, 1).RGBA()
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
}

func TestFlatten_OpaqueUnchanged(t *testing.T) {
	img := sample()
	assert.Same(t, img, imaging.Flatten(img))
}
