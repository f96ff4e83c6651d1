// Package config loads and merges application configuration for the
// gymkeeper server and terminal client.
//
// Configuration is assembled from three sources in priority order:
// environment variables, command-line flags, and an optional JSON file.
// Later sources fill only the fields earlier sources left empty; merging is
// performed with mergo. The merged result is validated before use.
package config
