package download

import (
	"github.com/ytgrab/ytgrab/internal/model"
)

// Format selectors and output templates handed to the collaborator
const (
	// FormatBestAudio picks the best audio-only stream, whole file as fallback
	FormatBestAudio = "bestaudio/best"

	// FormatBestVideo picks the best video-only stream, no audio track
	FormatBestVideo = "bestvideo/best"

	// FormatBestMerged prefers an mp4/m4a pair so the merge stays remux-only,
	// then degrades through generic best pairs to a single best file
	FormatBestMerged = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/bestvideo+bestaudio/best[ext=mp4]/best"

	// Audio extraction settings
	AudioFormatMP3  = "mp3"
	AudioQuality320 = "320K"

	// Container for merged video+audio
	MergeContainerMP4 = "mp4"

	// Output templates, resolved against the download directory
	SingleFileTemplate = "%(title)s.%(ext)s"
	PlaylistTemplate   = "%(playlist_title)s/%(title)s.%(ext)s"
)

// BuildConfig maps a request onto the collaborator option set. It is pure:
// the same request always yields the same configuration, and nothing here
// touches the filesystem or network.
func (s *Service) BuildConfig(req model.DownloadRequest) model.DownloadConfiguration {
	switch req.Mode {
	case model.ModeAudioOnly:
		return model.DownloadConfiguration{
			Format:         FormatBestAudio,
			OutputTemplate: s.downloadDir + "/" + SingleFileTemplate,
			ExtractAudio:   true,
			AudioFormat:    AudioFormatMP3,
			AudioQuality:   AudioQuality320,
			WriteInfoJSON:  true,
		}

	case model.ModeVideoOnly:
		return model.DownloadConfiguration{
			Format:         FormatBestVideo,
			OutputTemplate: s.downloadDir + "/" + SingleFileTemplate,
			WriteInfoJSON:  true,
		}

	case model.ModePlaylist:
		return model.DownloadConfiguration{
			Format:            FormatBestMerged,
			OutputTemplate:    s.downloadDir + "/" + PlaylistTemplate,
			MergeOutputFormat: MergeContainerMP4,
			WriteInfoJSON:     true,
		}

	case model.ModeInfoOnly:
		return model.DownloadConfiguration{
			Quiet: true,
		}

	default: // ModeFullVideo
		format := FormatBestMerged
		if req.Quality != "" && req.Quality != model.DefaultQuality {
			format = req.Quality
		}
		return model.DownloadConfiguration{
			Format:            format,
			OutputTemplate:    s.downloadDir + "/" + SingleFileTemplate,
			MergeOutputFormat: MergeContainerMP4,
			WriteInfoJSON:     true,
		}
	}
}
