package quran

import "strings"

// Bismillah is the introductory phrase that opens every surah's recitation.
// The upstream API prepends it to the first verse of each surah except
// at-Tawbah; surah 1 is the exception the other way, since the phrase is its
// own first verse.
const Bismillah = "بِسۡمِ ٱللَّهِ ٱلرَّحۡمَـٰنِ ٱلرَّحِیمِ"

// stripBismillah removes the literal phrase from text by exact substring
// replacement. Trimming is left to the caller.
func stripBismillah(text string) string {
	return strings.ReplaceAll(text, Bismillah, "")
}
