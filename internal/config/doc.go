// Package config loads and merges the CRM service configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with mergo in priority order (environment first, then
// flags, then the JSON file referenced by either of the first two); defaults
// are applied and the result validated before use.
package config
