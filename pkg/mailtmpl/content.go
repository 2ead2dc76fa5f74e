package mailtmpl

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// Content is one persisted, editable subject/body pair for an (identifier,
// language) scope. Body carries HTML markup; both fields may contain
// {token_name} placeholders. Subject and body are always written together.
type Content struct {
	Identifier string
	Language   string
	Subject    string
	Body       string
}

// Repository is the persistence seam for template content. Implementations
// must keep at most one row per (identifier, language) pair and report a
// missing row from Get with ErrContentNotFound.
type Repository interface {
	// ListByIdentifier returns all rows for identifier, ordered by language.
	ListByIdentifier(ctx context.Context, identifier string) ([]Content, error)
	// Get returns the row for the exact (identifier, language) pair.
	Get(ctx context.Context, identifier, language string) (Content, error)
	// Upsert inserts or replaces the row keyed by (identifier, language).
	Upsert(ctx context.Context, content Content) error
	// DeleteByIdentifier removes all rows for identifier, across languages.
	DeleteByIdentifier(ctx context.Context, identifier string) error
}

type contentKey struct {
	identifier string
	language   string
}

// MemoryRepository is a Repository backed by a mutex-guarded map. It is used
// in tests and local development where a database is not worth the setup.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[contentKey]Content
}

// NewMemoryRepository creates an empty in-memory content repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[contentKey]Content)}
}

var _ Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) ListByIdentifier(ctx context.Context, identifier string) ([]Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rows []Content
	for key, row := range r.rows {
		if key.identifier == identifier {
			rows = append(rows, row)
		}
	}
	slices.SortFunc(rows, func(a, b Content) int {
		return strings.Compare(a.Language, b.Language)
	})
	return rows, nil
}

func (r *MemoryRepository) Get(ctx context.Context, identifier, language string) (Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[contentKey{identifier: identifier, language: language}]
	if !ok {
		return Content{}, ErrContentNotFound
	}
	return row, nil
}

func (r *MemoryRepository) Upsert(ctx context.Context, content Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows[contentKey{identifier: content.Identifier, language: content.Language}] = content
	return nil
}

func (r *MemoryRepository) DeleteByIdentifier(ctx context.Context, identifier string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.rows {
		if key.identifier == identifier {
			delete(r.rows, key)
		}
	}
	return nil
}
