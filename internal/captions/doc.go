// Package captions converts per-verse clip durations into cumulative
// timestamp entries and serializes them as the line-oriented
// "start:end:text" caption format.
package captions
