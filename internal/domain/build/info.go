// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/dumbcam"
}
