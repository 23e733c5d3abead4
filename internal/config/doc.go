// Package config loads, normalizes, and validates doorforge configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// DOORFORGE_API_TOKEN. The Config type centralizes every knob the generator,
// auditor, and API server need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
