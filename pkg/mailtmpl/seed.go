package mailtmpl

import "context"

// Seeder is the entry point for schema-migration code that ships initial
// template content. Both operations are safe to re-run: UpsertTemplate
// overwrites existing rows and RemoveTemplate deletes whatever is present.
type Seeder struct {
	store *ContentStore
}

// NewSeeder creates a Seeder over the given content store.
func NewSeeder(store *ContentStore) *Seeder {
	return &Seeder{store: store}
}

// UpsertTemplate writes one content row per supported language for
// identifier, taking the subject and body for each language from the given
// maps. A language missing from either map fails with EmptyContentError for
// that language; a placeholder not declared for the identifier fails with
// UnknownTokenError. Validation runs before any write for the language at
// hand, so a rejected row is never persisted.
func (s *Seeder) UpsertTemplate(ctx context.Context, identifier string, subjects, bodies map[string]string) error {
	for _, lang := range s.store.Languages() {
		subject, ok := subjects[lang]
		if !ok {
			return &EmptyContentError{Identifier: identifier, Language: lang}
		}
		body, ok := bodies[lang]
		if !ok {
			return &EmptyContentError{Identifier: identifier, Language: lang}
		}
		err := s.store.CreateOrUpdate(ctx, Content{
			Identifier: identifier,
			Language:   lang,
			Subject:    subject,
			Body:       body,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// RemoveTemplate deletes all content rows for identifier, across languages.
func (s *Seeder) RemoveTemplate(ctx context.Context, identifier string) error {
	return s.store.DeleteByIdentifier(ctx, identifier)
}
