package service

import (
	"bytes"
	"context"
	"html/template"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model"
)

const NotApplicable = "N/A"

const printTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
article { border-bottom: 1px solid #ccc; padding: 1rem 0; page-break-inside: avoid; }
h2 { margin: 0 0 .25rem; }
.facets { color: #555; font-size: .9rem; }
</style>
</head>
<body onload="window.print()">
<h1>{{ .Title }}</h1>
<p>{{ .Count }} saved {{ if eq .Count 1 }}activity{{ else }}activities{{ end }}</p>
{{ range .Entries }}<article>
<h2>{{ .Title }}</h2>
<p class="facets">Categories: {{ .Categories }} &middot; Ages: {{ .Ages }}</p>
<div class="description">{{ .Description }}</div>
<p><strong>Make it easier:</strong> {{ .Easier }}</p>
<p><strong>Make it harder:</strong> {{ .Harder }}</p>
</article>
{{ end }}</body>
</html>
`

type printDocument struct {
	Title   string
	Count   int
	Entries []printEntry
}

type printEntry struct {
	Title       string
	Categories  string
	Ages        string
	Description template.HTML
	Easier      string
	Harder      string
}

// Export renders a favorites library as a printable HTML document.
type Export struct {
	Favorite *Favorite

	md   goldmark.Markdown
	tmpl *template.Template
}

func NewExport(favorite *Favorite) *Export {
	return &Export{
		Favorite: favorite,
		md:       goldmark.New(goldmark.WithRendererOptions(goldmarkHTML.WithHardWraps())),
		tmpl:     template.Must(template.New("print").Parse(printTemplate)),
	}
}

func (s *Export) PrintLibrary(ctx context.Context, identity *model.Identity) ([]byte, error) {
	activities, err := s.Favorite.List(ctx, identity)
	if err != nil {
		return nil, err
	}
	return s.Render(activities)
}

// Render builds the print document for activities. Raw HTML inside descriptions is dropped.
func (s *Export) Render(activities []*model.Activity) ([]byte, error) {
	doc := printDocument{
		Title:   constant.PrintDocumentTitle,
		Count:   len(activities),
		Entries: make([]printEntry, 0, len(activities)),
	}
	for _, a := range activities {
		var description bytes.Buffer
		if err := s.md.Convert([]byte(a.Description), &description); err != nil {
			return nil, errors.Wrapf(err, "failed to render description of activity %d", a.ActivityID)
		}
		doc.Entries = append(doc.Entries, printEntry{
			Title:       a.Title,
			Categories:  strings.Join(a.Category, ", "),
			Ages:        strings.Join(a.AgeGroup, ", "),
			Description: template.HTML(description.String()),
			Easier:      orNotApplicable(a.MakeItEasier.String),
			Harder:      orNotApplicable(a.MakeItHarder.String),
		})
	}

	var out bytes.Buffer
	if err := s.tmpl.Execute(&out, doc); err != nil {
		return nil, errors.Wrap(err, "failed to render print document")
	}
	return out.Bytes(), nil
}

func orNotApplicable(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotApplicable
	}
	return s
}
