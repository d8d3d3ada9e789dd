package alquran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tarteel/internal/services"
)

const (
	defaultBaseURL     = "https://api.alquran.cloud/v1"
	defaultUserAgent   = "tarteel/dev"
	defaultHTTPTimeout = 30 * time.Second
)

// Config describes the alquran.cloud client configuration.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// Client wraps the alquran.cloud REST API.
type Client struct {
	userAgent string
	baseURL   *url.URL
	http      *http.Client
}

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("alquran: parse base url: %w", err)
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		userAgent: userAgent,
		baseURL:   baseURL,
		http:      client,
	}, nil
}

// Edition describes one entry of the upstream audio edition catalog.
type Edition struct {
	Identifier  string `json:"identifier"`
	Language    string `json:"language"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	Format      string `json:"format"`
	Type        string `json:"type"`
}

// SurahRef describes one surah reference from the upstream meta listing, in
// ascending surah order.
type SurahRef struct {
	Number         int    `json:"number"`
	Name           string `json:"name"`
	EnglishName    string `json:"englishName"`
	NumberOfAyahs  int    `json:"numberOfAyahs"`
	RevelationType string `json:"revelationType"`
}

// Ayah is a single verse addressed by its global index across all surahs.
type Ayah struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
}

// AudioEditions fetches the audio edition catalog.
func (c *Client) AudioEditions(ctx context.Context) ([]Edition, error) {
	if c == nil {
		return nil, services.Wrap(services.ErrFetch, "alquran", "editions", "client is nil", nil)
	}
	var payload struct {
		Data []Edition `json:"data"`
	}
	if err := c.getJSON(ctx, c.baseURL.JoinPath("edition", "format", "audio"), &payload); err != nil {
		return nil, services.Wrap(services.ErrFetch, "alquran", "editions", "", err)
	}
	return payload.Data, nil
}

// Meta fetches the surah references from the upstream meta listing.
func (c *Client) Meta(ctx context.Context) ([]SurahRef, error) {
	if c == nil {
		return nil, services.Wrap(services.ErrFetch, "alquran", "meta", "client is nil", nil)
	}
	var payload struct {
		Data struct {
			Surahs struct {
				References []SurahRef `json:"references"`
			} `json:"surahs"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, c.baseURL.JoinPath("meta"), &payload); err != nil {
		return nil, services.Wrap(services.ErrFetch, "alquran", "meta", "", err)
	}
	return payload.Data.Surahs.References, nil
}

// Ayah fetches the text of a single verse by global verse index.
func (c *Client) Ayah(ctx context.Context, number int) (Ayah, error) {
	if c == nil {
		return Ayah{}, services.Wrap(services.ErrFetch, "alquran", "ayah", "client is nil", nil)
	}
	if number < 1 {
		return Ayah{}, services.Wrap(services.ErrFetch, "alquran", "ayah", fmt.Sprintf("invalid verse index %d", number), nil)
	}
	var payload struct {
		Data Ayah `json:"data"`
	}
	if err := c.getJSON(ctx, c.baseURL.JoinPath("ayah", strconv.Itoa(number)), &payload); err != nil {
		return Ayah{}, services.Wrap(services.ErrFetch, "alquran", "ayah", fmt.Sprintf("error in fetching text of aya number %d", number), err)
	}
	return payload.Data, nil
}

// VerseText implements the resolver's verse lookup over the live API.
func (c *Client) VerseText(ctx context.Context, number int) (string, error) {
	ayah, err := c.Ayah(ctx, number)
	if err != nil {
		return "", err
	}
	return ayah.Text, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint *url.URL, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("upstream returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
