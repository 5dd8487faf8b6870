// Package page renders the public HTML pages.
package page

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"profilecard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Template names understood by Renderer.
const (
	ProfileTemplate  = "profile.html"
	NotFoundTemplate = "not_found.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"initials": initials,
	"join":     strings.Join,
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse page templates")
	}

	return &Renderer{templates: tmpl}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.WithStack(r.templates.ExecuteTemplate(w, name, data))
}

// ProfilePage is the data behind profile.html.
type ProfilePage struct {
	*usecase.PublicProfile
	QRCodeURL string
	// StructuredData is the JSON-LD document; encoding/json already escapes <, > and &.
	StructuredData template.JS
}

// NewProfilePage prepares a resolved profile for rendering.
func NewProfilePage(p *usecase.PublicProfile, qrCodeURL string) *ProfilePage {
	page := &ProfilePage{PublicProfile: p, QRCodeURL: qrCodeURL}
	if p.SEO != nil && len(p.SEO.StructuredData) > 0 {
		page.StructuredData = template.JS(p.SEO.StructuredData) //nolint:gosec // produced by json.Marshal
	}

	return page
}

// NotFoundPage is the data behind not_found.html.
type NotFoundPage struct {
	Identifier string
	SiteName   string
}

// initials returns up to two leading letters for the avatar placeholder.
func initials(name string) string {
	letters := make([]rune, 0, 2)
	for _, word := range strings.Fields(name) {
		letters = append(letters, []rune(word)[0])
		if len(letters) == 2 {
			break
		}
	}

	return strings.ToUpper(string(letters))
}
