package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment keys for ambient settings. The interactive surface itself
// takes no flags and no arguments.
const (
	KeyDownloadDir = "YTGRAB_DOWNLOAD_DIR"
	KeyLogFile     = "YTGRAB_LOG_FILE"
	KeyLogLevel    = "YTGRAB_LOG_LEVEL"
)

// Default values
const (
	DefaultDownloadDir = "downloads"
	DefaultLogFile     = "log/ytgrab.log"
	DefaultLogLevel    = "info"
)

// Settings holds the resolved application configuration
type Settings struct {
	DownloadDir string
	LogFile     string
	LogLevel    string
}

// Load reads settings from the environment, falling back to defaults. A
// .env file in the working directory is honored when present.
func Load() *Settings {
	godotenv.Load()

	return &Settings{
		DownloadDir: getEnvStr(KeyDownloadDir, DefaultDownloadDir),
		LogFile:     getEnvStr(KeyLogFile, DefaultLogFile),
		LogLevel:    getEnvStr(KeyLogLevel, DefaultLogLevel),
	}
}

func getEnvStr(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
