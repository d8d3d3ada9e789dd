// Package config loads, normalizes, and validates tarteel configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/tarteel/config.toml or a
// project-local tarteel.toml. Always obtain settings through this package so
// downstream code receives sanitized paths and canonical log formats.
package config
