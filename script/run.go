package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"ftc/config"
	"ftc/export"
	"ftc/state"
)

// Run is the action of the "run" command: SCENARIO [RESULT].
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("run")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no scenario has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite")
	if cmd.Bool("continue") {
		env.Cfg.Scenario.ContinueOnError = true
	}

	sc, err := Load(src)
	if err != nil {
		return err
	}
	if err := env.Rpt.StoreCopy(filepath.Join("scenario", filepath.Base(src)), src); err != nil {
		log.Warn("Unable to store scenario in the report", zap.Error(err))
	}

	bounds, err := env.Cfg.Document.Bounds()
	if err != nil {
		return err
	}
	opts := Options{
		ContinueOnError: env.Cfg.Scenario.ContinueOnError,
		OnThreadFailure: env.Cfg.Document.OnThreadFailure,
		DefaultBounds:   bounds,
		DefaultPageSize: env.Cfg.Document.PageSize(),
		TextEncoding:    env.Cfg.Document.TextEncoding,
		BaseDir:         filepath.Dir(src),
		ShowContent:     env.Cfg.Scenario.ShowContent,
	}

	doc, err := env.NewDocument(sc.Document.Name, sc.Document.PageSizes(opts.DefaultPageSize))
	if err != nil {
		return fmt.Errorf("unable to create document: %w", err)
	}

	log.Info("Scenario starting", zap.String("scenario", src), zap.Int("steps", len(sc.Steps)), zap.Stringer("doc", doc.ID()))
	defer func(start time.Time) {
		log.Info("Scenario completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	out, runErr := Execute(ctx, doc, sc.Steps, opts, log)

	if err := env.Rpt.StoreYAML("result.yaml", out); err != nil {
		log.Warn("Unable to store result in the report", zap.Error(err))
	}
	env.Rpt.StoreData("document.txt", []byte(doc.String()))

	if err := writeOutcome(dst, out, env.Overwrite); err != nil {
		return err
	}

	if db := cmd.String("db"); len(db) > 0 {
		if fi, err := os.Stat(db); err == nil && fi.IsDir() {
			db = filepath.Join(db, config.SafeFileName(doc.Name(), ".sqlite"))
		}
		if err := export.Save(db, doc.Snapshot(), env.Overwrite); err != nil {
			return fmt.Errorf("unable to export document: %w", err)
		}
		log.Info("Document exported", zap.String("file", db))
	}
	return runErr
}

func writeOutcome(dst string, out Outcome, overwrite bool) error {
	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("unable to marshal result: %w", err)
	}
	if len(dst) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}
	if _, err := os.Stat(dst); err == nil && !overwrite {
		return fmt.Errorf("result file already exists: %s", dst)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}
