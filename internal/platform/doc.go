package platform

// Package platform contains external tooling glue: the yt-dlp collaborator
// client built on go-ytdlp and filesystem helpers.
