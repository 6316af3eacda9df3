// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables (DEVUTILS_ prefix)
//  2. Command-line flags
//  3. JSON config file, comments and trailing commas allowed
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
