package mailtmpl

import (
	"context"
	"errors"
	"slices"
)

// ContentStore is the validation layer over persisted template content. Every
// read and write is cross-checked against the Registry and the host-supplied
// supported-language list, so rows can never silently drift away from the
// declared templates.
//
// Reads are safe for concurrent use from many request handlers. The write
// path relies on the repository's native upsert atomicity; concurrent writes
// to the same (identifier, language) pair resolve as last-writer-wins, which
// is acceptable for human-paced administrative edits.
type ContentStore struct {
	registry  *Registry
	repo      Repository
	languages []string
}

// NewContentStore wires a ContentStore to its registry, repository, and the
// ordered supported-language list. The language list is authoritative for
// UnknownLanguageError checks; the store does not define locales itself.
func NewContentStore(registry *Registry, repo Repository, languages []string) *ContentStore {
	return &ContentStore{
		registry:  registry,
		repo:      repo,
		languages: slices.Clone(languages),
	}
}

// Languages returns the supported-language list in host-supplied order.
func (s *ContentStore) Languages() []string {
	return slices.Clone(s.languages)
}

// ListByIdentifier returns all content rows persisted for identifier. It
// fails with UnknownIdentifierError when the registry has no such definition
// and with EmptyContentError when the identifier is known but has no rows;
// partial language coverage is reported to the caller, never papered over.
func (s *ContentStore) ListByIdentifier(ctx context.Context, identifier string) ([]Content, error) {
	if _, err := s.registry.Get(identifier); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &EmptyContentError{Identifier: identifier}
	}
	return rows, nil
}

// Get returns the content row for the exact (identifier, language) pair. The
// language is validated against the supported list before the row lookup, so
// an out-of-list language fails with UnknownLanguageError regardless of what
// is persisted. A missing row fails with EmptyContentError for that pair even
// when other languages exist.
func (s *ContentStore) Get(ctx context.Context, identifier, language string) (Content, error) {
	if !slices.Contains(s.languages, language) {
		return Content{}, &UnknownLanguageError{Language: language}
	}
	row, err := s.repo.Get(ctx, identifier, language)
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			return Content{}, &EmptyContentError{Identifier: identifier, Language: language}
		}
		return Content{}, err
	}
	return row, nil
}

// CreateOrUpdate upserts the row keyed by (content.Identifier,
// content.Language). Before anything is written, every placeholder in the
// subject and body must resolve against the token set declared for the
// identifier; an undeclared placeholder fails with UnknownTokenError and the
// row is not persisted.
func (s *ContentStore) CreateOrUpdate(ctx context.Context, content Content) error {
	def, err := s.registry.Get(content.Identifier)
	if err != nil {
		return err
	}
	if !slices.Contains(s.languages, content.Language) {
		return &UnknownLanguageError{Language: content.Language}
	}
	if err := validateTokens(def, content.Subject, content.Body); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, content)
}

// DeleteByIdentifier removes all rows for identifier. Deleting an identifier
// without rows is a no-op, which keeps seeding rollbacks re-runnable.
func (s *ContentStore) DeleteByIdentifier(ctx context.Context, identifier string) error {
	return s.repo.DeleteByIdentifier(ctx, identifier)
}

// validateTokens substitutes the declared example values into the authored
// fields; any token the examples cannot resolve is by definition undeclared.
func validateTokens(def Definition, fields ...string) error {
	examples := def.ExampleValues()
	for _, field := range fields {
		if _, err := Substitute(field, examples); err != nil {
			var missing *MissingTokenError
			if errors.As(err, &missing) {
				return &UnknownTokenError{Token: missing.Token, Identifier: def.Identifier}
			}
			return err
		}
	}
	return nil
}
