// Package config loads env-tagged configuration structs from the process
// environment, optionally seeded by a .env file for local development.
//
// Parsing is generic over the struct type and cached per type, so the pg,
// mailtmpl, and logger configs can each be loaded from wherever is most
// convenient without re-reading the environment:
//
//	var cfg mailtmpl.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// MustLoad panics on failure and is meant for configuration without which
// the process cannot start.
package config
