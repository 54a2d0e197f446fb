// Package config loads, normalizes, and validates lexstat configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the LEXSTAT_LOG_LEVEL environment
// fallback. The Config type centralizes every knob the CLI needs: analysis
// sizes, chart rendering, output format and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical enum values, and clear validation errors.
package config
