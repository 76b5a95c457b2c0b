package assemble

import (
	"regexp"
	"strings"
)

const (
	// InlineCSSPlaceholder is removed from every assembled document.
	InlineCSSPlaceholder = "<!-- INLINE_CSS -->"

	// JSONPlaceholder marks where the payload container is injected.
	JSONPlaceholder = "<!-- INLINE_APPS_JSON -->"

	// DefaultStylesheetHref is the href of the link element that is inlined.
	DefaultStylesheetHref = "ui_style.css"

	// DefaultPayloadID is the id attribute of the injected payload container.
	DefaultPayloadID = "apps-json"
)

var (
	closingScript = regexp.MustCompile(`(?i)</(script)`)
	commentOpen   = strings.NewReplacer("<!--", `\u003c!--`)
)

// Options controls the substitution points. The zero value uses the defaults.
type Options struct {
	// StylesheetHref is the href of the link element to replace.
	StylesheetHref string

	// PayloadID is the id attribute given to the payload container.
	PayloadID string
}

func (o Options) withDefaults() Options {
	if o.StylesheetHref == "" {
		o.StylesheetHref = DefaultStylesheetHref
	}
	if o.PayloadID == "" {
		o.PayloadID = DefaultPayloadID
	}
	return o
}

// Assemble merges stylesheet and payload into template using the default
// substitution points.
func Assemble(template, stylesheet, payload string) string {
	return AssembleWith(Options{}, template, stylesheet, payload)
}

// AssembleWith is Assemble with configurable substitution points.
func AssembleWith(opts Options, template, stylesheet, payload string) string {
	opts = opts.withDefaults()

	merged := InlineStylesheet(template, stylesheet, opts.StylesheetHref)
	merged = strings.Replace(merged, InlineCSSPlaceholder, "", 1)
	merged = InjectPayload(merged, payload, opts.PayloadID)

	return merged
}

// InlineStylesheet replaces the first link element referencing href with a
// <style> block containing stylesheet. The template is returned unchanged
// when no such element exists.
func InlineStylesheet(template, stylesheet, href string) string {
	loc := stylesheetLink(href).FindStringIndex(template)
	if loc == nil {
		return template
	}
	// Spliced rather than passed to ReplaceAllString so "$" in the CSS is
	// never read as a group reference.
	return template[:loc[0]] + "<style>" + stylesheet + "</style>" + template[loc[1]:]
}

// InjectPayload replaces the JSON placeholder with a script container that
// holds the escaped payload. The template is returned unchanged when the
// placeholder is absent.
func InjectPayload(template, payload, id string) string {
	if !strings.Contains(template, JSONPlaceholder) {
		return template
	}
	container := `<script id="` + id + `" type="application/json">` + EscapePayload(payload) + `</script>`
	return strings.Replace(template, JSONPlaceholder, container, 1)
}

// EscapePayload makes payload safe to embed as the text of a script element.
// Letter case of "script" is preserved so the decoded JSON is unchanged.
func EscapePayload(payload string) string {
	escaped := closingScript.ReplaceAllString(payload, `<\/$1`)
	return commentOpen.Replace(escaped)
}

// stylesheetLink matches <link rel="stylesheet" href="..."> with either
// attribute first, either quote style and an optional self-closing slash.
func stylesheetLink(href string) *regexp.Regexp {
	rel := `rel=["']stylesheet["']`
	ref := `href=["']` + regexp.QuoteMeta(href) + `["']`
	return regexp.MustCompile(`(?i)<link\s+(?:` + rel + `\s+` + ref + `|` + ref + `\s+` + rel + `)\s*/?>`)
}
