package model

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// DescriptionExcerptRunes is how much of a description survives excerpting
const DescriptionExcerptRunes = 200

// VideoMetadata is the probe projection of a single video. Only the fields
// the console renders are kept; everything else the collaborator reports is
// dropped at the adapter boundary.
type VideoMetadata struct {
	Title           string
	Uploader        string
	DurationSeconds int
	ViewCount       *int64 // nil when the platform hides the counter
	UploadDate      string // YYYYMMDD as reported, no reformatting
	Description     string
}

// GetDurationString returns duration as m:ss. Minutes are total minutes with
// no hour rollover, so 3605 seconds renders as "60:05".
func (vm *VideoMetadata) GetDurationString() string {
	minutes := vm.DurationSeconds / 60
	seconds := vm.DurationSeconds % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// GetViewCountString returns the view count with thousands separators, or
// "N/A" when the count is unknown
func (vm *VideoMetadata) GetViewCountString() string {
	if vm.ViewCount == nil {
		return "N/A"
	}
	return humanize.Comma(*vm.ViewCount)
}

// ExcerptDescription shortens a description to its first 200 runes and marks
// the cut with "...". The marker is appended even when nothing was cut, so
// callers can rely on the suffix.
func ExcerptDescription(s string) string {
	runes := []rune(s)
	if len(runes) > DescriptionExcerptRunes {
		runes = runes[:DescriptionExcerptRunes]
	}
	return string(runes) + "..."
}
