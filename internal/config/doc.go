// Package config loads and validates the dossard configuration file.
//
// Configuration lives in a TOML file (default ~/.config/dossard/config.toml)
// with repository defaults applied first, then the file, then environment
// overrides (a .env file in the working directory is honored). Paths are
// tilde-expanded during normalization so the rest of the code never sees a
// raw "~".
package config
