package model

import "testing"

func TestNewRequest(t *testing.T) {
	req := NewRequest(ModeAudioOnly, "https://youtube.com/watch?v=test")

	if req.URL != "https://youtube.com/watch?v=test" {
		t.Errorf("Expected URL to be 'https://youtube.com/watch?v=test', got '%s'", req.URL)
	}

	if req.Mode != ModeAudioOnly {
		t.Errorf("Expected mode to be ModeAudioOnly, got %s", req.Mode)
	}

	if req.Quality != DefaultQuality {
		t.Errorf("Expected quality to be '%s', got '%s'", DefaultQuality, req.Quality)
	}
}

func TestNewRequest_AllModes(t *testing.T) {
	modes := []Mode{ModeFullVideo, ModeAudioOnly, ModeVideoOnly, ModePlaylist, ModeInfoOnly}

	for _, mode := range modes {
		req := NewRequest(mode, "https://youtube.com/watch?v=abc")
		if req.Mode != mode {
			t.Errorf("NewRequest(%s) mode = %s, expected %s", mode, req.Mode, mode)
		}
		if req.Quality != "best" {
			t.Errorf("NewRequest(%s) quality = %s, expected 'best'", mode, req.Quality)
		}
	}
}
