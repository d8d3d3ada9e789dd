package pipeline

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"tarteel/internal/captions"
	"tarteel/internal/config"
	"tarteel/internal/download"
	"tarteel/internal/logging"
	"tarteel/internal/media/audio"
	"tarteel/internal/quran"
	"tarteel/internal/services/alquran"
)

// DefaultCaptionsFileName is used when the caller does not name the caption
// file explicitly.
const DefaultCaptionsFileName = "captions.txt"

// Pipeline runs the linear batch: load catalog, resolve the verse range,
// download the clips, measure their durations, and write the caption file.
// Every stage blocks until complete before the next begins.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
	client *alquran.Client
	prober audio.Prober
}

// Result carries the artifacts of one full run.
type Result struct {
	JobID       string
	Recitations []quran.Recitation
	AudioPaths  []string
	Durations   []float64
	CaptionPath string
}

// New wires a pipeline from configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	client, err := alquran.New(alquran.Config{
		BaseURL:   cfg.API.BaseURL,
		UserAgent: cfg.API.UserAgent,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		},
	})
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{
		cfg:    cfg,
		logger: logger,
		client: client,
		prober: audio.FFprobeProber{Binary: cfg.FFprobeBinary()},
	}, nil
}

// WithProber overrides the duration prober. Tests use this to avoid a real
// ffprobe dependency.
func (p *Pipeline) WithProber(prober audio.Prober) *Pipeline {
	p.prober = prober
	return p
}

// Client exposes the metadata API client for commands that only need the
// catalog.
func (p *Pipeline) Client() *alquran.Client {
	return p.client
}

// LoadCatalog fetches and validates a catalog snapshot.
func (p *Pipeline) LoadCatalog(ctx context.Context) (*quran.Catalog, error) {
	logger := logging.NewComponentLogger(p.logger, "catalog")
	logger.Debug("getting reciters and surahs data")
	catalog, err := quran.LoadCatalog(ctx, p.client)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	logger.Info("catalog loaded",
		logging.Int("reciters", len(catalog.Reciters)),
		logging.Int("surahs", len(catalog.Surahs)))
	return catalog, nil
}

// Resolve resolves a verse range against a fresh catalog snapshot.
func (p *Pipeline) Resolve(ctx context.Context, req quran.Request) ([]quran.Recitation, error) {
	catalog, err := p.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	resolver := &quran.Resolver{
		Catalog:    catalog,
		Verses:     p.client,
		CDNBaseURL: p.cfg.CDN.BaseURL,
		Bitrate:    p.cfg.CDN.Bitrate,
		Logger:     p.logger,
	}
	return resolver.Resolve(ctx, req)
}

// Run executes the full batch for req. Audio lands in outputDir (the
// configured output directory when empty) and captions in captionPath
// (outputDir/captions.txt when empty).
func (p *Pipeline) Run(ctx context.Context, req quran.Request, outputDir, captionPath string) (*Result, error) {
	jobID := uuid.NewString()
	logger := p.logger.With(logging.String("job_id", jobID))

	if outputDir == "" {
		outputDir = p.cfg.Paths.OutputDir
	}
	if captionPath == "" {
		captionPath = filepath.Join(outputDir, DefaultCaptionsFileName)
	}

	logger.Info("resolving verse range",
		logging.Int("reciter", req.ReciterID),
		logging.Int("surah", req.SurahID),
		logging.Int("start", req.Start),
		logging.Int("end", req.End))
	recitations, err := p.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	links := make([]string, 0, len(recitations))
	texts := make([]string, 0, len(recitations))
	for _, recitation := range recitations {
		links = append(links, recitation.AudioLink)
		texts = append(texts, recitation.Text)
	}

	logger.Info("downloading recitations",
		logging.Int("clips", len(links)),
		logging.String("destination", outputDir))
	downloader := &download.Downloader{Logger: logger}
	paths, err := downloader.All(ctx, links, outputDir)
	if err != nil {
		return nil, err
	}

	logger.Info("computing clip durations")
	durations, err := audio.Durations(ctx, p.prober, logger, paths)
	if err != nil {
		return nil, err
	}

	logger.Info("generating captions file", logging.String("path", captionPath))
	if err := captions.Write(texts, durations, captionPath); err != nil {
		return nil, err
	}

	return &Result{
		JobID:       jobID,
		Recitations: recitations,
		AudioPaths:  paths,
		Durations:   durations,
		CaptionPath: captionPath,
	}, nil
}
