// Package config loads, normalizes, and validates ffext configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the FFEXT_LOG_LEVEL environment
// override. The Config type maps each backend to its executable and holds the
// defaults for split-by-time flags the user leaves out.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
