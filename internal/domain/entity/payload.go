package entity

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPayload is returned when nothing is left to decode after the header.
	ErrEmptyPayload = errors.New("image payload is empty")

	// ErrInvalidBase64 is returned when the payload is not standard base64.
	ErrInvalidBase64 = errors.New("image payload is not valid base64")

	// ErrUndecodableImage is returned when the decoded bytes are not an image.
	ErrUndecodableImage = errors.New("image payload could not be decoded")
)

// ImagePayload is a text-encoded image as sent by page script, either raw
// base64 or "header,base64" following the data-URL convention.
type ImagePayload struct {
	// Header is everything before the first comma, empty without one.
	Header string
	// DeclaredMIME is the media type announced by a "data:" header, if any.
	DeclaredMIME string
	// Data is the base64 text left after the header is stripped.
	Data string
}

// ParseImagePayload splits raw at the first comma. Anything before it is a
// discardable header; without a comma the whole string is data.
func ParseImagePayload(raw string) ImagePayload {
	idx := strings.IndexByte(raw, ',')
	if idx < 0 {
		return ImagePayload{Data: raw}
	}

	p := ImagePayload{
		Header: raw[:idx],
		Data:   raw[idx+1:],
	}
	if rest, ok := strings.CutPrefix(p.Header, "data:"); ok {
		mediaType, _, _ := strings.Cut(rest, ";")
		p.DeclaredMIME = strings.ToLower(strings.TrimSpace(mediaType))
	}
	return p
}

// Bytes decodes Data as standard base64. Line breaks are ignored and the
// trailing padding is optional.
func (p ImagePayload) Bytes() ([]byte, error) {
	data := strings.TrimSpace(p.Data)
	if data == "" {
		return nil, ErrEmptyPayload
	}

	decoded, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	if len(decoded) == 0 {
		return nil, ErrEmptyPayload
	}
	return decoded, nil
}
