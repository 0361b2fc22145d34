// Package assets embeds the bundled page served under the app scheme.
package assets

import "embed"

// Camera holds the camera page and its script. Paths are relative to the
// camera directory once wrapped with fs.Sub.
//
//go:embed camera/*
var Camera embed.FS

// CameraRoot is the directory inside Camera that maps to the scheme root.
const CameraRoot = "camera"
