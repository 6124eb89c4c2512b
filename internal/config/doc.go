// Package config holds the runtime configuration for gnvclient.
//
// A Config is populated from an optional YAML configuration file
// (.gnvclient) and CLI flags, then passed through the application via
// dependency injection rather than global state. Validation happens once,
// after CLI parsing, before any network call.
package config
