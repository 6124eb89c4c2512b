// Package catalog maintains the listing of data sources available to the
// verification engine.
//
// The Catalog is a process-scoped, read-through cache: the first Get fetches
// the listing through the engine gateway (optionally via a local disk cache)
// and later Gets serve the cached copy. Refresh forces a re-fetch; a failed
// refresh leaves the previous listing intact. Reads never block on a refresh
// in progress because the cached listing is swapped atomically.
//
// The optional Store persists the listing in a SQLite database under the
// user's cache directory so separate invocations of the CLI do not hit the
// engine for a listing that changes rarely. Entries older than the
// configured validity window are ignored and re-fetched.
package catalog
