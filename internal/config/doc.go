// Package config provides configuration loading, merging, and validation
// facilities for the gateway.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for every field they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file, chosen by extension
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
