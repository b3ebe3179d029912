// Package config loads the chatvault server configuration from environment
// variables, command-line flags, and an optional JSON file, merging the three
// sources in that priority order.
package config
