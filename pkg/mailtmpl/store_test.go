package mailtmpl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtmpl/pkg/mailtmpl"
)

// newTestStore wires a registry with one "user_welcome" template and a
// memory-backed content store supporting English and French.
func newTestStore(t *testing.T) (*mailtmpl.Registry, *mailtmpl.ContentStore) {
	t.Helper()

	registry := mailtmpl.NewRegistry()
	require.NoError(t, registry.Register("user_welcome", "Welcome email", []mailtmpl.Token{
		{Name: "first_name", Description: "The user's first name", Example: "John"},
	}, ""))

	store := mailtmpl.NewContentStore(registry, mailtmpl.NewMemoryRepository(), []string{"en", "fr"})
	return registry, store
}

func seedWelcome(t *testing.T, store *mailtmpl.ContentStore, lang string) {
	t.Helper()

	require.NoError(t, store.CreateOrUpdate(context.Background(), mailtmpl.Content{
		Identifier: "user_welcome",
		Language:   lang,
		Subject:    "Welcome {first_name}",
		Body:       "<p>Hello {first_name}!</p>",
	}))
}

func TestContentStore_Get(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, store := newTestStore(t)
	seedWelcome(t, store, "en")

	content, err := store.Get(ctx, "user_welcome", "en")
	require.NoError(t, err)
	assert.Equal(t, "Welcome {first_name}", content.Subject)
	assert.Equal(t, "<p>Hello {first_name}!</p>", content.Body)
}

func TestContentStore_Get_UnknownLanguage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, store := newTestStore(t)
	seedWelcome(t, store, "en")

	// The language check applies regardless of what rows exist.
	_, err := store.Get(ctx, "user_welcome", "de")
	var unknown *mailtmpl.UnknownLanguageError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "de", unknown.Language)
}

func TestContentStore_Get_EmptyContentForLanguage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, store := newTestStore(t)
	seedWelcome(t, store, "en")

	// English exists, but the French row is missing for that exact pair.
	_, err := store.Get(ctx, "user_welcome", "fr")
	var empty *mailtmpl.EmptyContentError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "user_welcome", empty.Identifier)
	assert.Equal(t, "fr", empty.Language)
}

func TestContentStore_ListByIdentifier(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, store := newTestStore(t)
	seedWelcome(t, store, "fr")
	seedWelcome(t, store, "en")

	rows, err := store.ListByIdentifier(ctx, "user_welcome")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "en", rows[0].Language)
	assert.Equal(t, "fr", rows[1].Language)
}

func TestContentStore_ListByIdentifier_UnknownIdentifier(t *testing.T) {
	t.Parallel()

	_, store := newTestStore(t)

	_, err := store.ListByIdentifier(context.Background(), "never_registered")
	var unknown *mailtmpl.UnknownIdentifierError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "never_registered", unknown.Identifier)
}

func TestContentStore_ListByIdentifier_EmptyContent(t *testing.T) {
	t.Parallel()

	_, store := newTestStore(t)

	_, err := store.ListByIdentifier(context.Background(), "user_welcome")
	var empty *mailtmpl.EmptyContentError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "user_welcome", empty.Identifier)
	assert.Empty(t, empty.Language)
}

func TestContentStore_CreateOrUpdate_UpdatesInPlace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, store := newTestStore(t)
	seedWelcome(t, store, "en")

	require.NoError(t, store.CreateOrUpdate(ctx, mailtmpl.Content{
		Identifier: "user_welcome",
		Language:   "en",
		Subject:    "Updated subject",
		Body:       "<p>Updated body</p>",
	}))

	rows, err := store.ListByIdentifier(ctx, "user_welcome")
	require.NoError(t, err)
	require.Len(t, rows, 1, "upsert must not create a second row for the pair")
	assert.Equal(t, "Updated subject", rows[0].Subject)
	assert.Equal(t, "<p>Updated body</p>", rows[0].Body)
}

func TestContentStore_CreateOrUpdate_RejectsUndeclaredToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, store := newTestStore(t)

	err := store.CreateOrUpdate(ctx, mailtmpl.Content{
		Identifier: "user_welcome",
		Language:   "en",
		Subject:    "Hi {unknown_token}",
		Body:       "<p>body</p>",
	})
	var unknown *mailtmpl.UnknownTokenError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unknown_token", unknown.Token)
	assert.Equal(t, "user_welcome", unknown.Identifier)

	// Nothing may be persisted by a rejected write.
	_, err = store.ListByIdentifier(ctx, "user_welcome")
	var empty *mailtmpl.EmptyContentError
	assert.ErrorAs(t, err, &empty)
}

func TestContentStore_CreateOrUpdate_RejectsUndeclaredTokenInBody(t *testing.T) {
	t.Parallel()

	_, store := newTestStore(t)

	err := store.CreateOrUpdate(context.Background(), mailtmpl.Content{
		Identifier: "user_welcome",
		Language:   "en",
		Subject:    "Hi {first_name}",
		Body:       "<p>{surprise}</p>",
	})
	var unknown *mailtmpl.UnknownTokenError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "surprise", unknown.Token)
}

func TestContentStore_CreateOrUpdate_UnknownIdentifier(t *testing.T) {
	t.Parallel()

	_, store := newTestStore(t)

	err := store.CreateOrUpdate(context.Background(), mailtmpl.Content{
		Identifier: "never_registered",
		Language:   "en",
		Subject:    "s",
		Body:       "b",
	})
	var unknown *mailtmpl.UnknownIdentifierError
	assert.ErrorAs(t, err, &unknown)
}

func TestContentStore_CreateOrUpdate_UnknownLanguage(t *testing.T) {
	t.Parallel()

	_, store := newTestStore(t)

	err := store.CreateOrUpdate(context.Background(), mailtmpl.Content{
		Identifier: "user_welcome",
		Language:   "de",
		Subject:    "s",
		Body:       "b",
	})
	var unknown *mailtmpl.UnknownLanguageError
	assert.ErrorAs(t, err, &unknown)
}
