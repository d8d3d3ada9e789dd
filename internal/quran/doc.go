// Package quran implements the verse-addressing core: the catalog snapshot
// of reciters and surahs, the conversion of per-surah verse ranges into
// global verse indices, and the Bismillah special case applied to a range's
// first verse.
package quran
