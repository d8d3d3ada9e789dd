package quran

import (
	"context"
	"strings"

	"tarteel/internal/services"
	"tarteel/internal/services/alquran"
)

// Reciter is an audio performer from the upstream catalog, filtered to
// Arabic-language editions and renumbered 1..N in catalog order.
type Reciter struct {
	ID   int
	Name string
	Code string
}

// Surah is one chapter of the text. AyaBase is the cumulative verse count of
// all preceding surahs, so the global index of verse n is n + AyaBase.
type Surah struct {
	ID             int
	Name           string
	EnglishName    string
	RevelationType string
	AyaBase        int
	NAya           int
}

// Catalog is a point-in-time snapshot of the upstream reciter and surah
// metadata. Loading it once and passing it around keeps resolution
// deterministic and avoids re-fetching the catalog on every call.
type Catalog struct {
	Reciters []Reciter
	Surahs   []Surah
}

// MetadataSource supplies the two catalog listings. *alquran.Client
// satisfies it; tests supply fixtures.
type MetadataSource interface {
	AudioEditions(ctx context.Context) ([]alquran.Edition, error)
	Meta(ctx context.Context) ([]alquran.SurahRef, error)
}

// LoadCatalog fetches both listings and builds the snapshot.
func LoadCatalog(ctx context.Context, src MetadataSource) (*Catalog, error) {
	editions, err := src.AudioEditions(ctx)
	if err != nil {
		return nil, err
	}
	refs, err := src.Meta(ctx)
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{
		Reciters: make([]Reciter, 0, len(editions)),
		Surahs:   make([]Surah, 0, len(refs)),
	}

	id := 1
	for _, edition := range editions {
		if edition.Language != "ar" {
			continue
		}
		catalog.Reciters = append(catalog.Reciters, Reciter{
			ID:   id,
			Name: edition.Name,
			Code: edition.Identifier,
		})
		id++
	}

	ayaBase := 0
	for i, ref := range refs {
		catalog.Surahs = append(catalog.Surahs, Surah{
			ID:             i + 1,
			Name:           ref.Name,
			EnglishName:    ref.EnglishName,
			RevelationType: ref.RevelationType,
			AyaBase:        ayaBase,
			NAya:           ref.NumberOfAyahs,
		})
		ayaBase += ref.NumberOfAyahs
	}

	return catalog, nil
}

// ReciterByID looks up a reciter by its 1-based catalog id.
func (c *Catalog) ReciterByID(id int) (Reciter, bool) {
	for _, reciter := range c.Reciters {
		if reciter.ID == id {
			return reciter, true
		}
	}
	return Reciter{}, false
}

// SurahByID looks up a surah by its 1-based id.
func (c *Catalog) SurahByID(id int) (Surah, bool) {
	for _, surah := range c.Surahs {
		if surah.ID == id {
			return surah, true
		}
	}
	return Surah{}, false
}

// SearchReciters returns the reciters whose name or code contains term,
// compared case-insensitively. An empty term matches everything.
func (c *Catalog) SearchReciters(term string, fold func(string) string) []Reciter {
	term = strings.TrimSpace(term)
	if term == "" {
		return c.Reciters
	}
	if fold == nil {
		fold = strings.ToLower
	}
	needle := fold(term)
	matches := make([]Reciter, 0, len(c.Reciters))
	for _, reciter := range c.Reciters {
		if strings.Contains(fold(reciter.Name), needle) || strings.Contains(fold(reciter.Code), needle) {
			matches = append(matches, reciter)
		}
	}
	return matches
}

// Validate checks the catalog invariants: surah ids ascending from 1 and
// AyaBase equal to the running sum of preceding verse counts.
func (c *Catalog) Validate() error {
	expectedBase := 0
	for i, surah := range c.Surahs {
		if surah.ID != i+1 {
			return services.Wrap(services.ErrFetch, "catalog", "validate", "surah ids are not sequential", nil)
		}
		if surah.AyaBase != expectedBase {
			return services.Wrap(services.ErrFetch, "catalog", "validate", "aya base does not match preceding verse counts", nil)
		}
		if surah.NAya <= 0 {
			return services.Wrap(services.ErrFetch, "catalog", "validate", "surah has no verses", nil)
		}
		expectedBase += surah.NAya
	}
	return nil
}
