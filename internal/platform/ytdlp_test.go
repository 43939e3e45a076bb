package platform

import (
	"strings"
	"testing"
)

func TestParseProbeOutput(t *testing.T) {
	raw := `{"title":"Test Video","uploader":"Test Channel","duration":125,"view_count":1000,"upload_date":"20240101","description":"short"}`

	meta, err := parseProbeOutput(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if meta.Title != "Test Video" {
		t.Errorf("Expected title 'Test Video', got '%s'", meta.Title)
	}

	if meta.Uploader != "Test Channel" {
		t.Errorf("Expected uploader 'Test Channel', got '%s'", meta.Uploader)
	}

	if meta.DurationSeconds != 125 {
		t.Errorf("Expected duration 125, got %d", meta.DurationSeconds)
	}

	if meta.ViewCount == nil || *meta.ViewCount != 1000 {
		t.Errorf("Expected view count 1000, got %v", meta.ViewCount)
	}

	if meta.UploadDate != "20240101" {
		t.Errorf("Expected upload date '20240101', got '%s'", meta.UploadDate)
	}

	if meta.Description != "short" {
		t.Errorf("Expected description 'short', got %q", meta.Description)
	}
}

func TestParseProbeOutput_MissingFields(t *testing.T) {
	// Hidden counters omit view_count, live streams omit duration
	raw := `{"title":"Live Stream","uploader":"Someone"}`

	meta, err := parseProbeOutput(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if meta.ViewCount != nil {
		t.Errorf("Expected nil view count, got %v", *meta.ViewCount)
	}

	if meta.DurationSeconds != 0 {
		t.Errorf("Expected duration 0, got %d", meta.DurationSeconds)
	}

	if meta.UploadDate != "" {
		t.Errorf("Expected empty upload date, got '%s'", meta.UploadDate)
	}
}

func TestParseProbeOutput_FractionalDuration(t *testing.T) {
	// Some extractors report duration as a float
	raw := `{"title":"Clip","duration":125.7}`

	meta, err := parseProbeOutput(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if meta.DurationSeconds != 125 {
		t.Errorf("Expected duration 125, got %d", meta.DurationSeconds)
	}
}

func TestParseProbeOutput_InvalidJSON(t *testing.T) {
	_, err := parseProbeOutput("WARNING: not json")
	if err == nil {
		t.Fatal("Expected error for invalid JSON, got nil")
	}

	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("Expected parse error, got: %v", err)
	}
}

func TestNewYTDLPClient(t *testing.T) {
	client := NewYTDLPClient()
	if client == nil {
		t.Fatal("Expected client, got nil")
	}
}
