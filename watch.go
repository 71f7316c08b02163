package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"uptime/display"
	"uptime/sysinfo"
)

// clearScreen homes the cursor and clears the terminal between frames.
const clearScreen = "\033[H\033[2J"

// runWatch collects and prints one frame, then, when interval is positive,
// refreshes and reprints on every tick until ctx is cancelled.
func runWatch(ctx context.Context, out io.Writer, src sysinfo.Source, cfg display.Config, interval time.Duration, logger *slog.Logger) error {
	redraw := interval > 0 && cfg.Format == display.Interactive

	snap, err := src.Collect()
	if err != nil {
		logger.Warn("metrics collection failed; showing defaults", "err", err)
	}
	if err := writeFrame(out, snap, cfg, redraw); err != nil {
		return err
	}
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			snap, err = src.Refresh(snap)
			if err != nil {
				logger.Warn("metrics refresh failed; showing defaults", "err", err)
			}
			if err := writeFrame(out, snap, cfg, redraw); err != nil {
				return err
			}
		}
	}
}

func writeFrame(out io.Writer, snap sysinfo.Snapshot, cfg display.Config, redraw bool) error {
	var b strings.Builder
	if redraw {
		b.WriteString(clearScreen)
	}
	b.WriteString(display.Render(snap, cfg))
	b.WriteByte('\n')
	_, err := io.WriteString(out, b.String())
	return err
}
