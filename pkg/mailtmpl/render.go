package mailtmpl

import (
	"context"
	"errors"

	"github.com/dmitrymomot/mailtmpl/pkg/htmltext"
)

// Rendered is the output of a full template render: the substituted subject,
// the substituted HTML body, and the plain-text body derived from it.
type Rendered struct {
	Subject  string
	BodyHTML string
	BodyText string
}

// Renderer produces ready-to-send content for an (identifier, language,
// values) triple. It is a pure function of the persisted content and the
// supplied values: no side effects, safe for concurrent use, identical output
// for identical input.
type Renderer struct {
	registry *Registry
	store    *ContentStore
}

// NewRenderer wires a Renderer to its registry and content store. Both are
// injected here rather than resolved at call time, so tests can use fresh
// instances.
func NewRenderer(registry *Registry, store *ContentStore) *Renderer {
	return &Renderer{registry: registry, store: store}
}

// Render resolves the content row for (identifier, language), substitutes
// values into subject and body, and derives the plain-text body. When values
// is nil the identifier's example values are used, so previews always produce
// valid output; an empty non-nil map is used as-is. Content and language
// failures propagate from the store, unresolved placeholders fail with
// MissingTokenError.
func (r *Renderer) Render(ctx context.Context, identifier, language string, values map[string]string) (Rendered, error) {
	subject, bodyHTML, err := r.RenderContent(ctx, identifier, language, values)
	if err != nil {
		return Rendered{}, err
	}
	bodyText, err := htmltext.Convert(bodyHTML)
	if err != nil {
		return Rendered{}, errors.Join(ErrTextConversionFailed, err)
	}
	return Rendered{Subject: subject, BodyHTML: bodyHTML, BodyText: bodyText}, nil
}

// RenderContent is the lighter variant for callers that only need the subject
// and HTML body, such as an on-screen preview form. Same resolution and
// fallback rules as Render, without the plain-text derivation.
func (r *Renderer) RenderContent(ctx context.Context, identifier, language string, values map[string]string) (subject, bodyHTML string, err error) {
	content, err := r.store.Get(ctx, identifier, language)
	if err != nil {
		return "", "", err
	}
	if values == nil {
		values, err = r.registry.ExampleValues(identifier)
		if err != nil {
			return "", "", err
		}
	}
	subject, err = Substitute(content.Subject, values)
	if err != nil {
		return "", "", err
	}
	bodyHTML, err = Substitute(content.Body, values)
	if err != nil {
		return "", "", err
	}
	return subject, bodyHTML, nil
}
