package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/ytgrab/ytgrab/internal/config"
	"github.com/ytgrab/ytgrab/internal/download"
	"github.com/ytgrab/ytgrab/internal/platform"
	"github.com/ytgrab/ytgrab/internal/ui"
	"github.com/ytgrab/ytgrab/pkg/logger"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppName     = "ytgrab"
	BannerWidth = 40
)

func main() {
	settings := config.Load()

	if err := logger.Init(settings.LogLevel, settings.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := platform.CreateDirectoryIfNotExists(settings.DownloadDir); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create download directory %s: %v\n", settings.DownloadDir, err)
		os.Exit(1)
	}

	logger.Logger.Info("starting",
		zap.String("version", version),
		zap.String("download_dir", settings.DownloadDir),
	)

	// A missing binary is not fatal at startup; each request surfaces its
	// own collaborator failure
	if _, err := exec.LookPath(platform.YTDLPCommand); err != nil {
		logger.Logger.Warn("yt-dlp not found on PATH", zap.Error(err))
	}

	client := platform.NewYTDLPClient()
	downloadSvc := download.NewService(client, settings.DownloadDir, logger.Logger)

	fmt.Printf("%s %s v%s\n", ui.IconApp, AppName, version)
	fmt.Println(strings.Repeat("=", BannerWidth))

	session := ui.NewSession(os.Stdin, os.Stdout, downloadSvc, settings.DownloadDir)
	session.Run(context.Background())

	logger.Logger.Info("session ended")
}
