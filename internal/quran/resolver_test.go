package quran

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"tarteel/internal/services"
)

type fakeVerses struct {
	texts  map[int]string
	failOn int
	calls  []int
}

func (f *fakeVerses) VerseText(_ context.Context, number int) (string, error) {
	f.calls = append(f.calls, number)
	if f.failOn != 0 && number == f.failOn {
		return "", services.Wrap(services.ErrFetch, "alquran", "ayah", fmt.Sprintf("error in fetching text of aya number %d", number), nil)
	}
	if text, ok := f.texts[number]; ok {
		return text, nil
	}
	return fmt.Sprintf("aya %d", number), nil
}

func testCatalog() *Catalog {
	return &Catalog{
		Reciters: []Reciter{
			{ID: 1, Name: "عبد الباسط عبد الصمد المرتل", Code: "ar.abdulbasitmurattal"},
			{ID: 2, Name: "عبد الله بصفر", Code: "ar.abdullahbasfar"},
		},
		Surahs: []Surah{
			{ID: 1, Name: "سُورَةُ ٱلْفَاتِحَةِ", AyaBase: 0, NAya: 7},
			{ID: 2, Name: "سُورَةُ البَقَرَةِ", AyaBase: 7, NAya: 286},
		},
	}
}

func newTestResolver(verses VerseFetcher) *Resolver {
	return &Resolver{Catalog: testCatalog(), Verses: verses}
}

func TestResolveComputesGlobalIndices(t *testing.T) {
	verses := &fakeVerses{}
	resolver := newTestResolver(verses)

	got, err := resolver.Resolve(context.Background(), Request{ReciterID: 1, SurahID: 2, Start: 3, End: 5})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 recitations, got %d", len(got))
	}
	for i, want := range []int{10, 11, 12} {
		if got[i].VerseIndex != want {
			t.Fatalf("recitation %d: expected verse index %d, got %d", i, want, got[i].VerseIndex)
		}
	}
	if got[0].AudioLink != "https://cdn.islamic.network/quran/audio/192/ar.abdulbasitmurattal/10.mp3" {
		t.Fatalf("unexpected audio link: %s", got[0].AudioLink)
	}
}

func TestResolveUnknownReciter(t *testing.T) {
	resolver := newTestResolver(&fakeVerses{})

	_, err := resolver.Resolve(context.Background(), Request{ReciterID: 99, SurahID: 1, Start: 1, End: 2})
	if !errors.Is(err, services.ErrFetch) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if !strings.Contains(err.Error(), "reciter id doesn't exist") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestResolveUnknownSurah(t *testing.T) {
	resolver := newTestResolver(&fakeVerses{})

	_, err := resolver.Resolve(context.Background(), Request{ReciterID: 1, SurahID: 115, Start: 1, End: 2})
	if !errors.Is(err, services.ErrFetch) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if !strings.Contains(err.Error(), "surah id doesn't exist") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestResolveRangeValidation(t *testing.T) {
	tests := []struct {
		name    string
		request Request
		detail  string
	}{
		{"end beyond surah", Request{ReciterID: 1, SurahID: 1, Start: 1, End: 8}, "only contains 7 ayat"},
		{"start below one", Request{ReciterID: 1, SurahID: 1, Start: 0, End: 3}, "start can't be less than one"},
		{"end before start", Request{ReciterID: 1, SurahID: 1, Start: 5, End: 3}, "end can't be less than start"},
		{"all violated reports end check first", Request{ReciterID: 1, SurahID: 1, Start: -2, End: 9}, "only contains 7 ayat"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			verses := &fakeVerses{}
			resolver := newTestResolver(verses)

			_, err := resolver.Resolve(context.Background(), tc.request)
			if !errors.Is(err, services.ErrRange) {
				t.Fatalf("expected range error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.detail) {
				t.Fatalf("expected %q in error, got %v", tc.detail, err)
			}
			if len(verses.calls) != 0 {
				t.Fatalf("expected no verse fetches on validation failure, got %v", verses.calls)
			}
		})
	}
}

func TestResolveKeepsBismillahForOpeningSurah(t *testing.T) {
	verses := &fakeVerses{texts: map[int]string{1: Bismillah + "\n"}}
	resolver := newTestResolver(verses)

	got, err := resolver.Resolve(context.Background(), Request{ReciterID: 1, SurahID: 1, Start: 1, End: 2})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 recitations, got %d", len(got))
	}
	if got[0].VerseIndex != 1 || got[1].VerseIndex != 2 {
		t.Fatalf("unexpected verse indices: %d, %d", got[0].VerseIndex, got[1].VerseIndex)
	}
	if got[0].Text != Bismillah {
		t.Fatalf("surah 1 verse 1 must keep the Bismillah, got %q", got[0].Text)
	}
}

func TestResolveStripsBismillahForOtherSurahs(t *testing.T) {
	verses := &fakeVerses{texts: map[int]string{8: Bismillah + " الٓمٓ"}}
	resolver := newTestResolver(verses)

	got, err := resolver.Resolve(context.Background(), Request{ReciterID: 1, SurahID: 2, Start: 1, End: 1})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 recitation, got %d", len(got))
	}
	if got[0].VerseIndex != 8 {
		t.Fatalf("expected verse index 8, got %d", got[0].VerseIndex)
	}
	if got[0].Text != "الٓمٓ" {
		t.Fatalf("expected Bismillah stripped and text trimmed, got %q", got[0].Text)
	}
}

func TestResolveStripsOnlyFirstVerse(t *testing.T) {
	verses := &fakeVerses{texts: map[int]string{
		8: Bismillah + " الٓمٓ",
		9: Bismillah + " ذَٰلِكَ",
	}}
	resolver := newTestResolver(verses)

	got, err := resolver.Resolve(context.Background(), Request{ReciterID: 1, SurahID: 2, Start: 1, End: 2})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got[0].Text != "الٓمٓ" {
		t.Fatalf("first verse should be stripped, got %q", got[0].Text)
	}
	if !strings.Contains(got[1].Text, Bismillah) {
		t.Fatalf("second verse must keep its text verbatim, got %q", got[1].Text)
	}
}

func TestResolveNoStripWhenRangeStartsPastOne(t *testing.T) {
	verses := &fakeVerses{texts: map[int]string{9: Bismillah + " ذَٰلِكَ"}}
	resolver := newTestResolver(verses)

	got, err := resolver.Resolve(context.Background(), Request{ReciterID: 1, SurahID: 2, Start: 2, End: 2})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(got[0].Text, Bismillah) {
		t.Fatalf("range not starting at verse 1 must not strip, got %q", got[0].Text)
	}
}

func TestResolveVerseFetchFailureAbortsAll(t *testing.T) {
	verses := &fakeVerses{failOn: 11}
	resolver := newTestResolver(verses)

	_, err := resolver.Resolve(context.Background(), Request{ReciterID: 1, SurahID: 2, Start: 3, End: 5})
	if !errors.Is(err, services.ErrFetch) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if !strings.Contains(err.Error(), "aya number 11") {
		t.Fatalf("expected failing verse index in error, got %v", err)
	}
}

func TestResolveCustomCDNSettings(t *testing.T) {
	resolver := newTestResolver(&fakeVerses{})
	resolver.CDNBaseURL = "https://cdn.example.org/audio/"
	resolver.Bitrate = 64

	got, err := resolver.Resolve(context.Background(), Request{ReciterID: 2, SurahID: 1, Start: 2, End: 2})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got[0].AudioLink != "https://cdn.example.org/audio/64/ar.abdullahbasfar/2.mp3" {
		t.Fatalf("unexpected audio link: %s", got[0].AudioLink)
	}
}
