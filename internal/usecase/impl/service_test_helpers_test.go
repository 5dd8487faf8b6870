package impl

import (
	"io"
	"log/slog"

	"profilecard/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Public: &config.PublicConfig{BaseURL: "https://cards.example.com"},
	}
	cfg.ApplyDefaults()

	return cfg
}
