package model

// DefaultQuality is the format shorthand used when the caller does not pick one
const DefaultQuality = "best"

// DownloadRequest describes one unit of user intent: which URL to act on and
// how. A request is built once per menu cycle and never reused.
type DownloadRequest struct {
	URL     string
	Mode    Mode
	Quality string // format shorthand, "best" unless overridden
}

// NewRequest creates a request for the given mode and URL with default quality
func NewRequest(mode Mode, url string) DownloadRequest {
	return DownloadRequest{
		URL:     url,
		Mode:    mode,
		Quality: DefaultQuality,
	}
}
