package download

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytgrab/ytgrab/internal/model"
)

// RequestIDPrefix tags per-request correlation IDs in the log
const RequestIDPrefix = "req-"

// Service handles download operations
type Service struct {
	fetcher     Fetcher
	downloadDir string
	logger      *zap.Logger
	onProbe     func(*model.VideoMetadata) // callback for UI display
}

// NewService creates a new download service
func NewService(fetcher Fetcher, downloadDir string, logger *zap.Logger) *Service {
	return &Service{
		fetcher:     fetcher,
		downloadDir: downloadDir,
		logger:      logger,
	}
}

// SetProbeCallback sets the callback invoked with pre-download metadata
func (s *Service) SetProbeCallback(callback func(*model.VideoMetadata)) {
	s.onProbe = callback
}

// Download runs one request to completion: a metadata probe when the mode
// calls for one, then a single blocking fetch. Playlist requests go straight
// to the fetch. A probe failure fails the request before any transfer.
// Nothing is retried and no deadline is armed; a hung collaborator hangs
// the request.
func (s *Service) Download(ctx context.Context, req model.DownloadRequest) error {
	if !req.Mode.IsDownload() {
		return fmt.Errorf("not a download mode: %s", req.Mode)
	}

	requestID := generateRequestID()
	started := time.Now()

	s.logger.Info("download started",
		zap.String("request_id", requestID),
		zap.String("mode", req.Mode.String()),
		zap.String("url", req.URL),
	)

	if req.Mode.NeedsProbe() {
		meta, err := s.fetcher.Probe(ctx, req.URL)
		if err != nil {
			s.logger.Error("probe failed",
				zap.String("request_id", requestID),
				zap.String("url", req.URL),
				zap.Error(err),
			)
			return fmt.Errorf("failed to read video info: %w", err)
		}
		s.notifyProbe(meta)
	}

	cfg := s.BuildConfig(req)
	if err := s.fetcher.Fetch(ctx, req.URL, cfg); err != nil {
		s.logger.Error("download failed",
			zap.String("request_id", requestID),
			zap.String("url", req.URL),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return fmt.Errorf("download failed: %w", err)
	}

	s.logger.Info("download finished",
		zap.String("request_id", requestID),
		zap.String("format", cfg.Format),
		zap.Duration("elapsed", time.Since(started)),
	)

	return nil
}

// VideoInfo reads metadata without transferring media. The returned
// projection carries the already-excerpted description.
func (s *Service) VideoInfo(ctx context.Context, url string) (*model.VideoMetadata, error) {
	requestID := generateRequestID()

	s.logger.Info("info request started",
		zap.String("request_id", requestID),
		zap.String("url", url),
	)

	meta, err := s.fetcher.Probe(ctx, url)
	if err != nil {
		s.logger.Error("info request failed",
			zap.String("request_id", requestID),
			zap.String("url", url),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to read video info: %w", err)
	}

	meta.Description = model.ExcerptDescription(meta.Description)

	s.logger.Info("info request finished",
		zap.String("request_id", requestID),
		zap.String("title", meta.Title),
	)

	return meta, nil
}

// notifyProbe calls the probe callback if set
func (s *Service) notifyProbe(meta *model.VideoMetadata) {
	if s.onProbe != nil {
		s.onProbe(meta)
	}
}

// generateRequestID generates a unique request ID
func generateRequestID() string {
	// Use UUID v7 which includes timestamp and is naturally ordered
	// This lets log lines for one session sort chronologically
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(RequestIDPrefix+"%d", time.Now().UnixNano())
	}
	return RequestIDPrefix + id.String()
}
