package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/locnguyen04/digest-flow/internal/pipeline"
	"github.com/locnguyen04/digest-flow/internal/speech"
)

// Write persists the bundle: an HTML report, a DOCX report, and the
// synthesized audio moved out of the temp dir. Text output always wins:
// a failed audio move is logged, not fatal.
func (w *implWriter) Write(ctx context.Context, name string, res *pipeline.Result) error {
	if err := os.MkdirAll(w.outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	htmlPath := filepath.Join(w.outDir, name+".html")
	if err := w.writeHTML(htmlPath, name, res); err != nil {
		return fmt.Errorf("write HTML report: %w", err)
	}
	w.logger.Info(ctx, "Report written: %s", htmlPath)

	docxPath := filepath.Join(w.outDir, name+".docx")
	if err := writeDocx(docxPath, name, res); err != nil {
		return fmt.Errorf("write DOCX report: %w", err)
	}
	w.logger.Info(ctx, "Report written: %s", docxPath)

	w.collectAudio(ctx, name, res.EnglishAudio)
	w.collectAudio(ctx, name, res.TargetAudio)

	return nil
}

// collectAudio moves a synthesized file next to the reports, naming it
// after the input and its language tag.
func (w *implWriter) collectAudio(ctx context.Context, name string, audio *speech.Audio) {
	if audio == nil {
		return
	}

	dest := filepath.Join(w.outDir, fmt.Sprintf("%s_%s%s", name, audio.Lang, filepath.Ext(audio.Path)))
	if err := os.Rename(audio.Path, dest); err != nil {
		// cross-device renames fail; fall back to copying
		data, readErr := os.ReadFile(audio.Path)
		if readErr != nil {
			w.logger.Warn(ctx, "Failed to collect audio %s: %v", audio.Path, readErr)
			return
		}
		if writeErr := os.WriteFile(dest, data, 0644); writeErr != nil {
			w.logger.Warn(ctx, "Failed to collect audio %s: %v", audio.Path, writeErr)
			return
		}
		os.Remove(audio.Path)
	}

	audio.Path = dest
	w.logger.Info(ctx, "Audio written: %s", dest)
}
