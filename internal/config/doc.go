// Package config provides configuration loading, merging, and validation
// facilities for the profile-card server.
//
// Configuration is assembled from multiple sources (later sources override
// earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. .env file and environment variables
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig]; cmd/client uses
// [GetClientConfig].
package config
