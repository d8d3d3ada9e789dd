// Package alquran wraps the read-only alquran.cloud REST API: the audio
// edition catalog, the surah meta listing, and per-verse text lookups. The
// JSON shapes here are collaborator contracts; anything unexpected surfaces
// as a services.ErrFetch-tagged error rather than a partial result.
package alquran
