// Package assets serves the bundled page under the allowed navigation prefix.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	bundled "github.com/bnema/dumbcam/assets"
	"github.com/bnema/dumbcam/internal/logging"
)

// DefaultDocument is served for the bare prefix.
const DefaultDocument = "camera.html"

var (
	// ErrOutsidePrefix is returned for URLs the resolver does not own.
	ErrOutsidePrefix = errors.New("url is outside the bundled asset prefix")
	// ErrAssetNotFound is returned when no bundled file matches.
	ErrAssetNotFound = errors.New("bundled asset not found")
)

// sniffing cannot identify these text formats
var extensionTypes = map[string]string{
	".js":  "text/javascript; charset=utf-8",
	".css": "text/css; charset=utf-8",
	".svg": "image/svg+xml",
}

// Response is a resolved asset.
type Response struct {
	URL         string
	Path        string
	Data        []byte
	ContentType string
	StatusCode  int
}

// Resolver maps prefixed URLs onto an embedded file tree.
type Resolver struct {
	prefix string
	files  fs.FS
}

// NewResolver serves the bundled camera page under prefix.
func NewResolver(prefix string) (*Resolver, error) {
	sub, err := fs.Sub(bundled.Camera, bundled.CameraRoot)
	if err != nil {
		return nil, fmt.Errorf("open bundled assets: %w", err)
	}
	return NewResolverFS(prefix, sub), nil
}

// NewResolverFS serves files under prefix.
func NewResolverFS(prefix string, files fs.FS) *Resolver {
	return &Resolver{prefix: prefix, files: files}
}

// Prefix returns the URL prefix the resolver owns.
func (r *Resolver) Prefix() string {
	return r.prefix
}

// Resolve returns the asset for rawURL. Query strings and fragments are
// ignored; paths escaping the root are rejected.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (*Response, error) {
	log := logging.FromContext(ctx).With().Str("component", "assets").Str("url", rawURL).Logger()

	rest, ok := strings.CutPrefix(rawURL, r.prefix)
	if !ok || rawURL == "" {
		return nil, fmt.Errorf("%w: %q", ErrOutsidePrefix, rawURL)
	}
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}

	name := path.Clean("/" + rest)[1:]
	if name == "" {
		name = DefaultDocument
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, rest)
	}

	data, err := fs.ReadFile(r.files, name)
	if err != nil {
		log.Debug().Err(err).Str("path", name).Msg("asset lookup failed")
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}

	contentType, ok := extensionTypes[path.Ext(name)]
	if !ok {
		contentType = mimetype.Detect(data).String()
	}

	log.Debug().Str("path", name).Str("content_type", contentType).Int("bytes", len(data)).Msg("serving bundled asset")

	return &Response{
		URL:         rawURL,
		Path:        name,
		Data:        data,
		ContentType: contentType,
		StatusCode:  http.StatusOK,
	}, nil
}

// StatusFor maps a Resolve error to an HTTP-style status code.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrOutsidePrefix):
		return http.StatusForbidden
	case errors.Is(err, ErrAssetNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
