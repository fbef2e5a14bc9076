package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/wellcalc/investment-calculator/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter produces a standalone HTML page from the Markdown report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

// markdownRenderer escapes raw HTML in the source; scenario names are user input.
var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	source, err := MarkdownFormatter{}.Format(results)
	if err != nil {
		return nil, err
	}
	var body bytes.Buffer
	if err := markdownRenderer.Convert(source, &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: "Oil & Gas Investment Projection",
		Body:  template.HTML(body.String()),
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
