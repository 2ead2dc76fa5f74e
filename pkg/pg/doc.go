// Package pg bootstraps the PostgreSQL layer behind the template content
// store: an env-driven Config, Connect with retrying pool construction,
// goose-based Migrate over an embedded migration filesystem, and a
// Healthcheck closure for readiness probes.
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, mailtmpl.Migrations, "migrations", cfg, log); err != nil {
//	    return err
//	}
//
//	repo := mailtmpl.NewPGRepository(pool)
//
// Error classifiers such as [IsDuplicateKeyError] unwrap *pgconn.PgError so
// callers can branch on SQLSTATE without importing pgconn themselves.
package pg
