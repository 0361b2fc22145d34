package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	OverallOK   bool
	Permissions DoctorPermissionReport
	Storage     DoctorStorageReport
}

type DoctorPermissionReport struct {
	Mode     string
	APILevel int
	Checks   []DoctorPermissionCheck
}

type DoctorPermissionCheck struct {
	Name    string
	Granted bool
}

type DoctorStorageReport struct {
	Root          string
	RootWritable  bool
	RootError     string
	IndexPath     string
	IndexOK       bool
	IndexError    string
	Entries       int
	SchemaVersion int64
	CameraDevices []string
	Warnings      []string
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(report.OverallOK)
	sections := []string{
		r.renderPermissions(report.Permissions),
		r.renderStorage(report.Storage),
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderPermissions(p DoctorPermissionReport) string {
	lines := []string{
		fmt.Sprintf("%s %s  %s %s",
			r.theme.Subtle.Render("Mode"), r.theme.Normal.Render(p.Mode),
			r.theme.Subtle.Render("API level"), r.theme.Normal.Render(fmt.Sprint(p.APILevel)),
		),
	}
	for _, c := range p.Checks {
		lines = append(lines, r.statusLine(c.Granted, c.Name, "Granted", "Missing", ""))
	}

	body := strings.Join(lines, "\n")
	return r.theme.Box.Render(r.theme.BoxHeader.Render(fmt.Sprintf("%s Permissions", r.theme.Highlight.Render(IconShield))) + "\n" + body)
}

func (r *DoctorRenderer) renderStorage(s DoctorStorageReport) string {
	lines := []string{
		r.statusLine(s.RootWritable, "Storage root", "Writable", "Not writable", s.Root),
	}
	if s.RootError != "" {
		lines = append(lines, "  "+r.theme.Subtle.Render(s.RootError))
	}

	indexInfo := s.IndexPath
	if s.IndexOK {
		indexInfo = fmt.Sprintf("%s (%d entries, schema v%d)", s.IndexPath, s.Entries, s.SchemaVersion)
	}
	lines = append(lines, r.statusLine(s.IndexOK, "Media index", "OK", "Error", indexInfo))
	if s.IndexError != "" {
		lines = append(lines, "  "+r.theme.Subtle.Render(s.IndexError))
	}

	if len(s.CameraDevices) > 0 {
		lines = append(lines, "", r.theme.Subtle.Render("Camera devices"))
		for _, d := range s.CameraDevices {
			lines = append(lines, fmt.Sprintf("%s %s", r.theme.Subtle.Render("•"), r.theme.Normal.Render(d)))
		}
	}

	if len(s.Warnings) > 0 {
		warnLines := make([]string, 0, len(s.Warnings))
		for _, w := range s.Warnings {
			warnLines = append(warnLines, fmt.Sprintf("%s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.Normal.Render(w)))
		}
		lines = append(lines, "", r.theme.WarningStyle.Render("Warnings"), strings.Join(warnLines, "\n"))
	}

	body := strings.Join(lines, "\n")
	return r.theme.Box.Render(r.theme.BoxHeader.Render(fmt.Sprintf("%s Storage", r.theme.Highlight.Render(IconFolder))) + "\n" + body)
}

func (r *DoctorRenderer) statusLine(ok bool, name, okText, badText, info string) string {
	icon := IconCheck
	style := r.theme.SuccessStyle
	text := okText
	if !ok {
		icon = IconX
		style = r.theme.ErrorStyle
		text = badText
	}

	line := fmt.Sprintf("%s %s %s", style.Render(icon), r.theme.Normal.Render(name), r.theme.BadgeMuted.Render(style.Render(text)))
	if info != "" {
		line += " " + r.theme.Subtle.Render(info)
	}
	return line
}
