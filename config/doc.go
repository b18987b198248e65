// Package config loads environment-driven configuration structs.
//
// Load parses `env` tags via caarlos0/env, loading a .env file first when
// one exists. Each configuration type is parsed once per process and cached,
// so packages can load their own config independently without re-reading
// the environment:
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package config
