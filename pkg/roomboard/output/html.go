package output

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/ukaji3/roomboard-go/pkg/roomboard/models"
)

//go:embed templates/report.html
var templates embed.FS

var reportTemplate = template.Must(template.ParseFS(templates, "templates/report.html"))

// Page holds the fixed text around the data.
type Page struct {
	Title        string
	Heading      string
	ContactEmail string
	FooterNote   string
}

type pageData struct {
	Page
	Generated string
	// View is the unfiltered view, used for the <noscript> fallback.
	View View
	Data template.JS
}

// RenderHTML writes the self-contained report for ds to w.
func RenderHTML(w io.Writer, ds *models.Dataset, page Page) error {
	payload, err := ToJSON(ds, false)
	if err != nil {
		return fmt.Errorf("serializing dataset: %w", err)
	}

	data := pageData{
		Page:      page,
		Generated: ds.GeneratedAt.String(),
		View:      BuildView(ds, AllBuildings),
		Data:      template.JS(payload),
	}
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return nil
}
