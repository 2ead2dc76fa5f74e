package mailtmpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgx query methods the PG repository needs. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so callers can run the repository
// inside an existing transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGRepository persists template content in a single mail_template_content
// table keyed by (identifier, language). The schema lives in the embedded
// migrations (see Migrations).
type PGRepository struct {
	db DBTX
}

// NewPGRepository creates a Repository over the given pgx connection or
// transaction.
func NewPGRepository(db DBTX) *PGRepository {
	return &PGRepository{db: db}
}

var _ Repository = (*PGRepository)(nil)

func (r *PGRepository) ListByIdentifier(ctx context.Context, identifier string) ([]Content, error) {
	rows, err := r.db.Query(ctx,
		`SELECT identifier, language, subject, body
		 FROM mail_template_content
		 WHERE identifier = $1
		 ORDER BY language`,
		identifier,
	)
	if err != nil {
		return nil, fmt.Errorf("list mail template content: %w", err)
	}
	contents, err := pgx.CollectRows(rows, pgx.RowToStructByName[Content])
	if err != nil {
		return nil, fmt.Errorf("list mail template content: %w", err)
	}
	return contents, nil
}

func (r *PGRepository) Get(ctx context.Context, identifier, language string) (Content, error) {
	var c Content
	err := r.db.QueryRow(ctx,
		`SELECT identifier, language, subject, body
		 FROM mail_template_content
		 WHERE identifier = $1 AND language = $2`,
		identifier, language,
	).Scan(&c.Identifier, &c.Language, &c.Subject, &c.Body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Content{}, ErrContentNotFound
		}
		return Content{}, fmt.Errorf("get mail template content: %w", err)
	}
	return c, nil
}

func (r *PGRepository) Upsert(ctx context.Context, content Content) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO mail_template_content (identifier, language, subject, body)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (identifier, language)
		 DO UPDATE SET subject = EXCLUDED.subject, body = EXCLUDED.body`,
		content.Identifier, content.Language, content.Subject, content.Body,
	)
	if err != nil {
		return fmt.Errorf("upsert mail template content: %w", err)
	}
	return nil
}

func (r *PGRepository) DeleteByIdentifier(ctx context.Context, identifier string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM mail_template_content WHERE identifier = $1`,
		identifier,
	)
	if err != nil {
		return fmt.Errorf("delete mail template content: %w", err)
	}
	return nil
}
