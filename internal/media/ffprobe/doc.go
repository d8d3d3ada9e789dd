// Package ffprobe shells out to ffprobe for container inspection of
// downloaded audio clips and exposes the handful of fields the duration
// extractor reads.
package ffprobe
