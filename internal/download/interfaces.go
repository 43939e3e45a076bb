package download

import (
	"context"

	"github.com/ytgrab/ytgrab/internal/model"
)

// Fetcher is the collaborator boundary. Everything that talks to yt-dlp
// sits behind it, so the invocation layer can run against a fake in tests.
type Fetcher interface {
	// Probe reads metadata for a single video without transferring media
	Probe(ctx context.Context, url string) (*model.VideoMetadata, error)

	// Fetch transfers media according to the given configuration
	Fetch(ctx context.Context, url string, cfg model.DownloadConfiguration) error
}

// Downloader defines the interface for the download service.
type Downloader interface {
	// SetProbeCallback registers the function invoked with pre-download metadata
	SetProbeCallback(func(*model.VideoMetadata))

	// Download runs one request to completion
	Download(ctx context.Context, req model.DownloadRequest) error

	// VideoInfo reads metadata without transferring media
	VideoInfo(ctx context.Context, url string) (*model.VideoMetadata, error)
}
