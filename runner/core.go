// Package runner builds the domain components from config and drives them
// without a UI.
package runner

import (
	"log/slog"

	"github.com/soocke/firescreen-go/config"
	"github.com/soocke/firescreen-go/domain/capture"
	"github.com/soocke/firescreen-go/domain/encoder"
	"github.com/soocke/firescreen-go/domain/still"
)

// Core bundles the domain components shared by the desktop and headless modes.
type Core struct {
	Source  capture.Source
	Locator capture.Locator
	Encoder *encoder.FFmpeg
	Still   *still.Capturer
}

// BuildCore selects the capture backend and encoder from cfg.
func BuildCore(cfg *config.Config, logger *slog.Logger, stillOpts ...still.Option) (*Core, error) {
	src, err := capture.NewSource(cfg.CaptureBackend)
	if err != nil {
		return nil, err
	}
	if cfg.CopyStillToClipboard {
		stillOpts = append(stillOpts, still.WithClipboard(&still.SystemClipboard{}))
	}
	return &Core{
		Source:  src,
		Locator: capture.NewLocator(),
		Encoder: encoder.NewFFmpeg(cfg.FFmpegPath, logger),
		Still:   still.New(src, logger, stillOpts...),
	}, nil
}
