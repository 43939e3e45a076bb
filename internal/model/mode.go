package model

// Mode selects what a download request asks the collaborator for
type Mode string

const (
	// ModeFullVideo fetches the best video+audio and muxes them into one file
	ModeFullVideo Mode = "video"

	// ModeAudioOnly fetches the best audio stream and extracts it to mp3
	ModeAudioOnly Mode = "audio"

	// ModeVideoOnly fetches the best video stream without an audio track
	ModeVideoOnly Mode = "video-only"

	// ModePlaylist fetches every entry of a playlist into a subdirectory
	ModePlaylist Mode = "playlist"

	// ModeInfoOnly inspects metadata without transferring any media
	ModeInfoOnly Mode = "info"
)

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// IsDownload returns true if the mode transfers media to disk
func (m Mode) IsDownload() bool {
	return m == ModeFullVideo || m == ModeAudioOnly || m == ModeVideoOnly || m == ModePlaylist
}

// NeedsProbe returns true if metadata is shown before the transfer starts.
// Playlist downloads skip the probe (a playlist URL has no single title) and
// info requests are a probe by themselves.
func (m Mode) NeedsProbe() bool {
	return m == ModeFullVideo || m == ModeAudioOnly || m == ModeVideoOnly
}
