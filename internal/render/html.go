package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"phase": func(p types.Phase) string {
		if p == nil {
			return types.Loading{}.String()
		}
		return p.String()
	},
	"failure": func(p types.Phase) string {
		msg, _ := types.FailureMessage(p)
		return msg
	},
}).ParseFS(templatesFS, "templates/*.html"))

// NavLink is one entry of the top navigation bar.
type NavLink struct {
	Href   string
	Label  string
	Active bool
}

// Page is the shell around a panel or the home page.
type Page struct {
	Brand string
	Title string
	Nav   []NavLink
}

// WriteShellStart writes the document head, the navigation bar and opens
// the main content area.
func WriteShellStart(w io.Writer, p Page) error {
	return templates.ExecuteTemplate(w, "shell_start", p)
}

// WriteShellEnd closes the document opened by WriteShellStart.
func WriteShellEnd(w io.Writer) error {
	return templates.ExecuteTemplate(w, "shell_end", nil)
}

// WritePanelHTML writes one panel. When several panels for the same view are
// streamed into one page, only the last one is visible.
func WritePanelHTML(w io.Writer, p Panel) error {
	return templates.ExecuteTemplate(w, "panel", p)
}

// WriteHome writes the complete home page.
func WriteHome(w io.Writer, p Page) error {
	if err := WriteShellStart(w, p); err != nil {
		return err
	}
	if err := templates.ExecuteTemplate(w, "home", p); err != nil {
		return err
	}
	return WriteShellEnd(w)
}
