// Package log provides structured logging helpers for gnvclient.
//
// The main export is SecureHandler, an slog.Handler wrapper that masks the
// user's contact email address and credential-like attributes before log
// records reach the underlying handler. The contact email travels in every
// API request's User-Agent header and in the configuration, so it leaks
// easily into debug logs without this guard.
package log
