package mailtmpl

import (
	"maps"
	"slices"
	"strings"
	"sync"
)

// Registry maps template identifiers to their definitions. It is the single
// source of truth for which templates exist and which tokens they accept.
//
// A Registry is constructed explicitly and passed by reference to consumers;
// it is populated by host-application code during startup and treated as
// read-only afterwards. The mutex exists for test scenarios that register and
// unregister templates at runtime, not to support concurrent mutation under
// load.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Definition
	order     []string
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]Definition)}
}

// Register stores a template definition under identifier. It fails with
// DuplicateIdentifierError when the identifier is already taken, leaving the
// registry unchanged.
func (r *Registry) Register(identifier, description string, tokens []Token, tag string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[identifier]; ok {
		return &DuplicateIdentifierError{Identifier: identifier}
	}
	r.templates[identifier] = Definition{
		Identifier:  identifier,
		Description: description,
		Tokens:      slices.Clone(tokens),
		Tag:         tag,
	}
	r.order = append(r.order, identifier)
	return nil
}

// Unregister removes a template definition. Intended for teardown in tests
// and plugin reloading; fails with UnknownIdentifierError when absent.
func (r *Registry) Unregister(identifier string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[identifier]; !ok {
		return &UnknownIdentifierError{Identifier: identifier}
	}
	delete(r.templates, identifier)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == identifier })
	return nil
}

// Get returns the definition registered under identifier.
func (r *Registry) Get(identifier string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.templates[identifier]
	if !ok {
		return Definition{}, &UnknownIdentifierError{Identifier: identifier}
	}
	return def, nil
}

// Templates returns a copy of the full identifier to definition mapping.
func (r *Registry) Templates() map[string]Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maps.Clone(r.templates)
}

// Tokens returns the ordered token list declared for identifier.
func (r *Registry) Tokens(identifier string) ([]Token, error) {
	def, err := r.Get(identifier)
	if err != nil {
		return nil, err
	}
	return slices.Clone(def.Tokens), nil
}

// Description returns the human description registered for identifier.
func (r *Registry) Description(identifier string) (string, error) {
	def, err := r.Get(identifier)
	if err != nil {
		return "", err
	}
	return def.Description, nil
}

// ExampleValues returns the token name to example value mapping for
// identifier, used as the substitution fallback for previews.
func (r *Registry) ExampleValues(identifier string) (map[string]string, error) {
	def, err := r.Get(identifier)
	if err != nil {
		return nil, err
	}
	return def.ExampleValues(), nil
}

// TagGroup lists the templates sharing one grouping tag, in the order they
// were registered.
type TagGroup struct {
	Tag       string
	Templates []TemplateSummary
}

// TemplateSummary is the identifier/description pair exposed to listing
// screens.
type TemplateSummary struct {
	Identifier  string
	Description string
}

// ListByTag groups registered templates by tag. Tags are returned in
// ascending lexical order; within a tag, templates keep their registration
// order (the sort by tag is stable).
func (r *Registry) ListByTag() []TagGroup {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, r.templates[id])
	}
	slices.SortStableFunc(defs, func(a, b Definition) int {
		return strings.Compare(a.Tag, b.Tag)
	})

	var groups []TagGroup
	for _, def := range defs {
		if len(groups) == 0 || groups[len(groups)-1].Tag != def.Tag {
			groups = append(groups, TagGroup{Tag: def.Tag})
		}
		last := &groups[len(groups)-1]
		last.Templates = append(last.Templates, TemplateSummary{
			Identifier:  def.Identifier,
			Description: def.Description,
		})
	}
	return groups
}
