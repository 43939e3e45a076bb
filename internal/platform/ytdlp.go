package platform

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytgrab/ytgrab/internal/model"
)

// YTDLPCommand is the collaborator binary looked up on PATH
const YTDLPCommand = "yt-dlp"

// YTDLPClient drives the external yt-dlp binary through go-ytdlp. It holds
// no state; every call builds a fresh command.
type YTDLPClient struct{}

// NewYTDLPClient creates a new collaborator client
func NewYTDLPClient() *YTDLPClient {
	return &YTDLPClient{}
}

// probeInfo is the slice of the collaborator's JSON dump that the console
// renders. Duration arrives as a float for some extractors, view_count is
// absent for hidden counters.
type probeInfo struct {
	Title       string  `json:"title"`
	Uploader    string  `json:"uploader"`
	Duration    float64 `json:"duration"`
	ViewCount   *int64  `json:"view_count"`
	UploadDate  string  `json:"upload_date"`
	Description string  `json:"description"`
}

// Probe asks yt-dlp for the metadata of a single video without transferring
// media. It writes nothing to disk.
func (c *YTDLPClient) Probe(ctx context.Context, url string) (*model.VideoMetadata, error) {
	dl := ytdlp.New().
		SkipDownload().
		DumpSingleJSON().
		Quiet().
		NoWarnings()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp probe: %w", err)
	}

	return parseProbeOutput(result.Stdout)
}

// Fetch translates the configuration into collaborator flags and blocks
// until the transfer finishes
func (c *YTDLPClient) Fetch(ctx context.Context, url string, cfg model.DownloadConfiguration) error {
	dl := configureCommand(ytdlp.New(), cfg)

	if _, err := dl.Run(ctx, url); err != nil {
		return fmt.Errorf("yt-dlp run: %w", err)
	}

	return nil
}

// configureCommand applies each set configuration field as a flag
func configureCommand(dl *ytdlp.Command, cfg model.DownloadConfiguration) *ytdlp.Command {
	if cfg.Format != "" {
		dl = dl.Format(cfg.Format)
	}

	if cfg.OutputTemplate != "" {
		dl = dl.Output(cfg.OutputTemplate)
	}

	if cfg.MergeOutputFormat != "" {
		dl = dl.MergeOutputFormat(cfg.MergeOutputFormat)
	}

	if cfg.ExtractAudio {
		dl = dl.ExtractAudio()
		if cfg.AudioFormat != "" {
			dl = dl.AudioFormat(cfg.AudioFormat)
		}
		if cfg.AudioQuality != "" {
			dl = dl.AudioQuality(cfg.AudioQuality)
		}
	}

	if cfg.WriteInfoJSON {
		dl = dl.WriteInfoJSON()
	}

	if cfg.Quiet {
		dl = dl.Quiet()
	}

	return dl
}

// parseProbeOutput decodes the single-line JSON dump into the metadata
// projection
func parseProbeOutput(raw string) (*model.VideoMetadata, error) {
	var info probeInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, fmt.Errorf("yt-dlp metadata parse: %w", err)
	}

	return &model.VideoMetadata{
		Title:           info.Title,
		Uploader:        info.Uploader,
		DurationSeconds: int(info.Duration),
		ViewCount:       info.ViewCount,
		UploadDate:      info.UploadDate,
		Description:     info.Description,
	}, nil
}
