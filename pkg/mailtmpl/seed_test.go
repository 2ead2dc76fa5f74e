package mailtmpl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailtmpl/pkg/mailtmpl"
)

func TestSeeder_UpsertTemplate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, store := newTestStore(t)
	seeder := mailtmpl.NewSeeder(store)

	subjects := map[string]string{
		"en": "Welcome {first_name}",
		"fr": "Bienvenue {first_name}",
	}
	bodies := map[string]string{
		"en": "<p>Hello {first_name}!</p>",
		"fr": "<p>Bonjour {first_name} !</p>",
	}
	require.NoError(t, seeder.UpsertTemplate(ctx, "user_welcome", subjects, bodies))

	rows, err := store.ListByIdentifier(ctx, "user_welcome")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// Re-running is an idempotent upsert, not a duplicate insert.
	require.NoError(t, seeder.UpsertTemplate(ctx, "user_welcome", subjects, bodies))
	rows, err = store.ListByIdentifier(ctx, "user_welcome")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSeeder_UpsertTemplate_UndeclaredTokenWritesNothing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, store := newTestStore(t)
	seeder := mailtmpl.NewSeeder(store)

	err := seeder.UpsertTemplate(ctx, "user_welcome",
		map[string]string{"en": "Hi {unknown_token}", "fr": "Salut"},
		map[string]string{"en": "<p>body</p>", "fr": "<p>corps</p>"},
	)
	var unknown *mailtmpl.UnknownTokenError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unknown_token", unknown.Token)
	assert.Equal(t, "user_welcome", unknown.Identifier)

	_, err = store.ListByIdentifier(ctx, "user_welcome")
	var empty *mailtmpl.EmptyContentError
	assert.ErrorAs(t, err, &empty, "the rejected seed must not leave rows behind")
}

func TestSeeder_UpsertTemplate_MissingLanguage(t *testing.T) {
	t.Parallel()

	_, store := newTestStore(t)
	seeder := mailtmpl.NewSeeder(store)

	// French is supported but absent from the maps.
	err := seeder.UpsertTemplate(context.Background(), "user_welcome",
		map[string]string{"en": "Welcome"},
		map[string]string{"en": "<p>Hello</p>"},
	)
	var empty *mailtmpl.EmptyContentError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "user_welcome", empty.Identifier)
	assert.Equal(t, "fr", empty.Language)
}

func TestSeeder_RemoveTemplate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, store := newTestStore(t)
	seeder := mailtmpl.NewSeeder(store)

	require.NoError(t, seeder.UpsertTemplate(ctx, "user_welcome",
		map[string]string{"en": "Welcome", "fr": "Bienvenue"},
		map[string]string{"en": "<p>Hello</p>", "fr": "<p>Bonjour</p>"},
	))

	require.NoError(t, seeder.RemoveTemplate(ctx, "user_welcome"))
	_, err := store.ListByIdentifier(ctx, "user_welcome")
	var empty *mailtmpl.EmptyContentError
	assert.ErrorAs(t, err, &empty)

	// Removing again is a no-op so migration rollbacks stay re-runnable.
	assert.NoError(t, seeder.RemoveTemplate(ctx, "user_welcome"))
}
