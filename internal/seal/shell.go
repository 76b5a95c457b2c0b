package seal

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"golang.org/x/net/html"

	perrors "github.com/PolarWolf314/pageseal/internal/errors"
)

// EnvelopeElementID is the id of the script element holding the envelope.
const EnvelopeElementID = "pageseal-envelope"

//go:embed shell.html
var shellSource string

var shell = template.Must(template.New("shell").Parse(shellSource))

// Render produces the sealed HTML document for env.
func Render(env Envelope) ([]byte, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}

	record, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}

	var buf bytes.Buffer
	// The record is JSON with base64 values only, so it is safe as raw script text.
	if err := shell.Execute(&buf, struct{ Envelope template.JS }{template.JS(record)}); err != nil {
		return nil, fmt.Errorf("failed to render sealed artifact: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse extracts and validates the envelope of a sealed artifact.
func Parse(artifact []byte) (Envelope, error) {
	record, err := envelopeText(artifact)
	if err != nil {
		return Envelope{}, err
	}

	var env Envelope
	if err := json.Unmarshal(record, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: malformed envelope: %v", perrors.ErrInvalidArtifact, err)
	}
	if err := env.Validate(); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

// envelopeText returns the text content of the envelope script element.
func envelopeText(artifact []byte) ([]byte, error) {
	z := html.NewTokenizer(bytes.NewReader(artifact))

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return nil, fmt.Errorf("%w: no %s element", perrors.ErrInvalidArtifact, EnvelopeElementID)
			}
			return nil, fmt.Errorf("%w: %v", perrors.ErrInvalidArtifact, z.Err())
		case html.StartTagToken:
			tok := z.Token()
			if tok.Data != "script" || !hasID(tok, EnvelopeElementID) {
				continue
			}
			var text bytes.Buffer
			for z.Next() == html.TextToken {
				text.Write(z.Text())
			}
			return text.Bytes(), nil
		}
	}
}

func hasID(tok html.Token, id string) bool {
	for _, a := range tok.Attr {
		if a.Key == "id" && a.Val == id {
			return true
		}
	}
	return false
}
