package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"resumec/state"
)

func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("import")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = strings.TrimSuffix(src, filepath.Ext(src)) + ".yaml"
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}

	log.Info("Import starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Import completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}

	if _, err := os.Stat(dst); err == nil && !cmd.Bool("overwrite") {
		return fmt.Errorf("output file already exists: %s", dst)
	}

	doc := Import(string(data))
	if doc.Profile.Name == "" {
		log.Warn("No usable text found, writing empty document skeleton")
	}

	if err := doc.Save(dst); err != nil {
		return err
	}
	return nil
}
