// Package stages holds the concrete data reader stages wired by the mubench
// CLI: misuse.yml validation, corpus statistics, result recording and plain
// listing.
package stages
