// billscan runs the bill extractor against a local document and prints
// the nullable extraction as JSON. It never touches the database or the
// verified flag; it exists to tune the extraction prompt against real
// bills.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/tbruins/stroomadvies/internal/bills"
	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/oracle/openai"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: billscan <bill-image-or-pdf>")
		os.Exit(2)
	}
	path := os.Args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("reading document", "path", path, "error", err)
		os.Exit(1)
	}
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	cfg := common.LoadConfig()
	if cfg.Oracle.APIKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	oracleClient := openai.NewClient(openai.Config{
		APIKey:      cfg.Oracle.APIKey,
		BaseURL:     cfg.Oracle.BaseURL,
		VisionModel: cfg.Oracle.VisionModel,
		Temperature: cfg.Oracle.Temperature,
		Timeout:     cfg.Oracle.Timeout,
	}, logger)
	svc := bills.NewService(oracleClient, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extraction, err := svc.Extract(ctx, data, mimeType, filepath.Base(path))
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(extraction); err != nil {
		logger.Error("encoding extraction", "error", err)
		os.Exit(1)
	}
}
