// Package services holds shared error classification for the external
// collaborators the pipeline talks to (the metadata API, the audio CDN, and
// the local toolchain). Stage packages wrap their failures with the sentinel
// markers defined here so callers can classify with errors.Is instead of
// string matching.
package services
