// Package audio extracts playback durations from downloaded clips, keeping
// the result order aligned with the input paths.
package audio
