// Package views holds the default page components. Each component is a
// templ.Component backed by an embedded html/template file, so sites can swap
// in their own templ components page by page.
package views

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	// Rendered HTML from the content API is trusted.
	"raw":     func(s string) template.HTML { return template.HTML(s) },
	"date":    FormatDate,
	"postURL": PostURL,
	"termURL": TermURL,
	"altText": altText,
}

var (
	listTemplate  = parse("list.html")
	postTemplate  = parse("post.html")
	mapTemplate   = parse("map.html")
	errorTemplate = parse("error.html")
)

func parse(page string) *template.Template {
	return template.Must(template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page))
}

// component renders t into a buffer first so a template error never leaves a
// half-written page.
func component(t *template.Template, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// PostList renders a listing page.
func PostList(p ListPage) templ.Component { return component(listTemplate, p) }

// Post renders a single post.
func Post(p PostPage) templ.Component { return component(postTemplate, p) }

// Map renders the map points page.
func Map(p MapPage) templ.Component { return component(mapTemplate, p) }

// NotFound renders a 404 page.
func NotFound(p ErrorPage) templ.Component {
	if p.Heading == "" {
		p.Heading = "Not Found"
	}
	return component(errorTemplate, p)
}

// ServerError renders a 5xx page.
func ServerError(p ErrorPage) templ.Component {
	if p.Heading == "" {
		p.Heading = "Error"
	}
	if p.Message == "" {
		p.Message = "An unexpected error occurred"
	}
	return component(errorTemplate, p)
}
