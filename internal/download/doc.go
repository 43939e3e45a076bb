package download

// Package download implements the request pipeline: it maps a request onto
// the yt-dlp option set and drives the collaborator through the Fetcher
// boundary, one blocking probe-then-fetch cycle per request.
