package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"resumec/resume"
	"resumec/state"
)

func open(ctx context.Context) (*Store, *zap.Logger, error) {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("store")

	s, err := Open(env.Cfg.Store.Path)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("Store opened", zap.String("path", env.Cfg.Store.Path))
	return s, log, nil
}

func RunSave(ctx context.Context, cmd *cli.Command) error {
	name, path := cmd.Args().Get(0), cmd.Args().Get(1)
	if name == "" || path == "" {
		return errors.New("store save requires name and document path")
	}

	doc, err := resume.Load(path)
	if err != nil {
		return err
	}

	s, log, err := open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Save(name, doc); err != nil {
		return err
	}
	log.Info("Resume stored", zap.String("name", name), zap.String("from", path))
	return nil
}

func RunLoad(ctx context.Context, cmd *cli.Command) error {
	name, path := cmd.Args().Get(0), cmd.Args().Get(1)
	if name == "" || path == "" {
		return errors.New("store load requires name and output path")
	}

	if _, err := os.Stat(path); err == nil && !cmd.Bool("overwrite") {
		return fmt.Errorf("output file already exists: %s", path)
	}

	s, log, err := open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	doc, err := s.Load(name)
	if err != nil {
		return err
	}
	if err := doc.Save(path); err != nil {
		return err
	}
	log.Info("Resume retrieved", zap.String("name", name), zap.String("to", path))
	return nil
}

func RunDelete(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().Get(0)
	if name == "" {
		return errors.New("store delete requires name")
	}

	s, log, err := open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(name); err != nil {
		return err
	}
	log.Info("Resume deleted", zap.String("name", name))
	return nil
}

func RunList(ctx context.Context, cmd *cli.Command) error {
	s, _, err := open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(cmd.Writer, "%s\t%s\n", e.Name, e.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}
