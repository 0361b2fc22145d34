package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCamera    = "" //  camera
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconGo        = "" //  go gopher

	// Doctor / diagnostics
	IconDoctor  = "" // stethoscope
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconShield  = "" // shield
	IconVideo   = "" // video camera

	// Filesystem
	IconFolder   = "" // folder
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconImage    = "" // image file
	IconGlobe    = "" // web

	// UI
	IconCursor = "" // chevron-right
)
