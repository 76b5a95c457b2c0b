// Package assemble merges a stylesheet and a JSON payload into a page
// template, producing the single plaintext HTML document that pageseal seals.
//
// The template carries two substitution points:
//
//   - a stylesheet link such as <link rel="stylesheet" href="ui_style.css">,
//     matched structurally (attribute quoting, whitespace, case and an
//     optional self-closing slash may vary) and replaced by an inline
//     <style> block holding the stylesheet verbatim
//   - the comment <!-- INLINE_APPS_JSON -->, replaced by
//     <script id="apps-json" type="application/json"> holding the payload
//
// The comment <!-- INLINE_CSS --> is always removed so a template that went
// through an earlier inlining step never receives the stylesheet twice.
//
// Missing markers are not errors: the corresponding substitution is skipped
// and template correctness is left to the caller.
//
// # Payload Escaping
//
// The payload is embedded as raw text inside a script element, so any
// "</script" in it would close the element early. EscapePayload rewrites
// each case-insensitive "</script" as "<\/script" and each "<!--" as
// "\u003c!--". In valid JSON both sequences can only occur inside string
// literals, where "\/" and "\u003c" are standard escapes, so
// JSON.parse(element.textContent) yields exactly the original value.
package assemble
