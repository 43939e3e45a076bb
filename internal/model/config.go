package model

// DownloadConfiguration is the flat option set handed to the collaborator for
// one request. It is derived from a DownloadRequest, consumed once, and never
// persisted.
type DownloadConfiguration struct {
	Format            string // format selector, empty for info-only probes
	OutputTemplate    string // output path template including the download dir
	MergeOutputFormat string // container for merged video+audio, e.g. "mp4"
	ExtractAudio      bool   // run the audio extraction postprocessor
	AudioFormat       string // target codec when ExtractAudio is set
	AudioQuality      string // target bitrate when ExtractAudio is set
	WriteInfoJSON     bool   // write the metadata sidecar next to the media
	Quiet             bool   // suppress collaborator console output
}
