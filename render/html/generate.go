// Package html generates the single file XHTML preview of a resume.
package html

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"resumec/config"
	"resumec/content"
	"resumec/css"
)

// Generate creates the HTML preview output file. A stylesheet override
// from the configuration is validated and appended after the generated
// rules, so it wins the cascade.
func Generate(ctx context.Context, c *content.Content, outputPath string, cfg *config.DocumentConfig, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Info("Generating HTML preview", zap.String("output", outputPath))

	stylesheet := buildStylesheet(c.Style)
	if cfg.StylesheetPath != "" {
		data, err := os.ReadFile(cfg.StylesheetPath)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet override from %q: %w", cfg.StylesheetPath, err)
		}
		if err := css.ValidateOverride(data, log); err != nil {
			return err
		}
		stylesheet += "\n/* user stylesheet override */\n" + string(data)
	}

	doc := buildPreview(c, stylesheet)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := doc.WriteToFile(outputPath); err != nil {
		return fmt.Errorf("unable to write preview: %w", err)
	}
	return nil
}
