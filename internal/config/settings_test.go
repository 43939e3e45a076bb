package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv saves the original values for restore; Unsetenv clears them so
	// the defaults apply inside this test.
	for _, key := range []string{KeyDownloadDir, KeyLogFile, KeyLogLevel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	settings := Load()

	if settings.DownloadDir != DefaultDownloadDir {
		t.Errorf("Expected download dir %s, got %s", DefaultDownloadDir, settings.DownloadDir)
	}

	if settings.LogFile != DefaultLogFile {
		t.Errorf("Expected log file %s, got %s", DefaultLogFile, settings.LogFile)
	}

	if settings.LogLevel != DefaultLogLevel {
		t.Errorf("Expected log level %s, got %s", DefaultLogLevel, settings.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(KeyDownloadDir, "/srv/media")
	t.Setenv(KeyLogFile, "/var/log/grab.log")
	t.Setenv(KeyLogLevel, "debug")

	settings := Load()

	if settings.DownloadDir != "/srv/media" {
		t.Errorf("Expected download dir /srv/media, got %s", settings.DownloadDir)
	}

	if settings.LogFile != "/var/log/grab.log" {
		t.Errorf("Expected log file /var/log/grab.log, got %s", settings.LogFile)
	}

	if settings.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", settings.LogLevel)
	}
}

func TestGetEnvStr(t *testing.T) {
	t.Setenv("YTGRAB_TEST_KEY", "value")

	if got := getEnvStr("YTGRAB_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("Expected 'value', got '%s'", got)
	}

	if got := getEnvStr("YTGRAB_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Expected 'fallback', got '%s'", got)
	}
}
