// Package pipeline orchestrates the one-shot batch run: catalog snapshot,
// verse-range resolution, sequential clip downloads, duration extraction,
// and caption generation. Each run is tagged with a job id that appears on
// every log record it emits.
package pipeline
