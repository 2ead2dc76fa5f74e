package mailtmpl

import "embed"

// Migrations holds the goose SQL migrations for the mail_template_content
// table. Apply them with pg.Migrate before using PGRepository.
//
//go:embed migrations/*.sql
var Migrations embed.FS
