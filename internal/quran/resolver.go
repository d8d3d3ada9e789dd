package quran

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tarteel/internal/logging"
	"tarteel/internal/services"
)

const (
	// DefaultCDNBaseURL is the audio CDN root the resolver builds links under.
	DefaultCDNBaseURL = "https://cdn.islamic.network/quran/audio"
	// DefaultBitrate selects the 192 kbps renditions.
	DefaultBitrate = 192
)

// Request identifies a contiguous verse range of one surah for one reciter.
// Verse numbers are 1-based within the surah.
type Request struct {
	ReciterID int
	SurahID   int
	Start     int
	End       int
}

// Recitation pairs one resolved verse's trimmed text with its audio link.
// VerseIndex is the global index used to address per-verse CDN resources.
type Recitation struct {
	VerseIndex int
	Text       string
	AudioLink  string
}

// VerseFetcher supplies verse text by global verse index. *alquran.Client
// satisfies it.
type VerseFetcher interface {
	VerseText(ctx context.Context, number int) (string, error)
}

// Resolver turns verse-range requests into ordered recitations against a
// catalog snapshot.
type Resolver struct {
	Catalog    *Catalog
	Verses     VerseFetcher
	CDNBaseURL string
	Bitrate    int
	Logger     *slog.Logger
}

// Resolve validates the request against the catalog, computes global verse
// indices, fetches each verse's text, and builds the CDN audio link per
// verse. The first verse has the Bismillah phrase stripped when the range
// starts at verse 1 of any surah other than the first. A verse-text fetch
// failure fails the whole resolution; no partial results are returned.
func (r *Resolver) Resolve(ctx context.Context, req Request) ([]Recitation, error) {
	if r.Catalog == nil {
		return nil, services.Wrap(services.ErrFetch, "resolve", "catalog", "catalog is nil", nil)
	}
	if r.Verses == nil {
		return nil, services.Wrap(services.ErrFetch, "resolve", "verses", "verse fetcher is nil", nil)
	}
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	reciter, ok := r.Catalog.ReciterByID(req.ReciterID)
	if !ok {
		return nil, services.Wrap(services.ErrFetch, "resolve", "reciter", "reciter id doesn't exist", nil)
	}
	surah, ok := r.Catalog.SurahByID(req.SurahID)
	if !ok {
		return nil, services.Wrap(services.ErrFetch, "resolve", "surah", "surah id doesn't exist", nil)
	}

	// Independent checks, reported first-match in this documented order.
	if req.End > surah.NAya {
		return nil, services.Wrap(services.ErrRange, "resolve", "validate",
			fmt.Sprintf("surah %s only contains %d ayat, aya number %d was required", surah.Name, surah.NAya, req.End), nil)
	}
	if req.Start < 1 {
		return nil, services.Wrap(services.ErrRange, "resolve", "validate", "start can't be less than one", nil)
	}
	if req.End < req.Start {
		return nil, services.Wrap(services.ErrRange, "resolve", "validate", "end can't be less than start", nil)
	}

	removeBismillah := req.Start == 1 && surah.ID != 1

	recitations := make([]Recitation, 0, req.End-req.Start+1)
	for n := req.Start; n <= req.End; n++ {
		index := n + surah.AyaBase
		link := r.audioLink(reciter.Code, index)
		logger.Debug("fetching recitation",
			logging.Int("verse_index", index),
			logging.String("audio_link", link))

		text, err := r.Verses.VerseText(ctx, index)
		if err != nil {
			return nil, err
		}
		if n == req.Start && removeBismillah {
			text = stripBismillah(text)
		}
		recitations = append(recitations, Recitation{
			VerseIndex: index,
			Text:       strings.TrimSpace(text),
			AudioLink:  link,
		})
	}

	return recitations, nil
}

func (r *Resolver) audioLink(reciterCode string, verseIndex int) string {
	base := strings.TrimRight(r.CDNBaseURL, "/")
	if base == "" {
		base = DefaultCDNBaseURL
	}
	bitrate := r.Bitrate
	if bitrate <= 0 {
		bitrate = DefaultBitrate
	}
	return fmt.Sprintf("%s/%d/%s/%d.mp3", base, bitrate, reciterCode, verseIndex)
}
