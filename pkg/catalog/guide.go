package catalog

import (
	_ "embed"
	"strings"

	"github.com/goliatone/go-ctxgen/pkg/model"
)

//go:embed guide.md
var guide string

const sharedPractices = "Best Practices for All App Types"

var guideSections = map[model.TemplateKind]string{
	model.KindWebApp:     "Web Application Template",
	model.KindDesktopApp: "Desktop Application Template",
	model.KindCLITool:    "CLI Tool Template",
	model.KindAPIService: "API Service Template",
	model.KindMobileApp:  "Mobile App Template",
}

// Guide returns the application development guidance. An empty kind returns
// the whole document; an application kind returns its own section followed by
// the shared practices. Other kinds have no guidance.
func Guide(kind model.TemplateKind) (string, bool) {
	if kind == "" {
		return guide, true
	}
	heading, ok := guideSections[kind]
	if !ok {
		return "", false
	}

	title, sections := splitGuide(guide)
	var b strings.Builder
	b.WriteString(title)
	for _, name := range []string{heading, sharedPractices} {
		if body, ok := sections[name]; ok {
			b.WriteString(body)
		}
	}
	return b.String(), true
}

// splitGuide cuts the document at level two headings. The returned bodies
// include their heading line.
func splitGuide(doc string) (string, map[string]string) {
	sections := make(map[string]string)
	var (
		title   strings.Builder
		current string
		body    strings.Builder
	)
	flush := func() {
		if current != "" {
			sections[current] = body.String()
		}
		body.Reset()
	}
	for _, line := range strings.SplitAfter(doc, "\n") {
		if strings.HasPrefix(line, "## ") {
			flush()
			current = strings.TrimSpace(strings.TrimPrefix(line, "## "))
		}
		if current == "" {
			title.WriteString(line)
			continue
		}
		body.WriteString(line)
	}
	flush()
	return title.String(), sections
}
