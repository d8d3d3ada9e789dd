// Package preflight checks the environment a fetch run depends on: the
// ffprobe binary, upstream API reachability, and output directory access.
package preflight
