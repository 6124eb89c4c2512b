// Package main provides the entry point for the gnvclient CLI.
//
// gnvclient verifies scientific names against the GlobalNames GNverifier
// service, which matches name strings across dozens of curated
// nomenclatural databases.
//
// Usage:
//
//	gnvclient verify -n "Pomatomus saltatrix"
//	gnvclient data-sources
//
// See --help for all available options.
package main

// main is the entry point for gnvclient.
func main() {
	Execute()
}
