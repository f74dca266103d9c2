package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"ftc/measure"
	"ftc/state"
	"ftc/textsrc"
)

// estimatePages prints how many pages of given size text file needs.
func estimatePages(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("estimate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no text file has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	sizeName := cmd.String("page-size")
	size, err := measure.ParsePageSize(sizeName)
	if err != nil {
		return err
	}
	_, named := measure.PageSizes[strings.ToLower(strings.TrimSpace(sizeName))]

	margins, err := measure.ParseMargins(cmd.String("margins"))
	if err != nil {
		return err
	}

	est := env.Cfg.Measure.Estimator()
	if cmd.IsSet("font-size") {
		est.FontSize = cmd.Float("font-size")
	}
	if cmd.IsSet("leading") {
		est.Leading = cmd.Float("leading")
	}

	encoding := env.Cfg.Document.TextEncoding
	if cmd.IsSet("encoding") {
		encoding = cmd.String("encoding")
	}
	text, err := textsrc.ReadFile(src, encoding)
	if err != nil {
		return err
	}
	log.Debug("Text loaded", zap.String("file", src), zap.String("encoding", text.Encoding), zap.Bool("certain", text.Certain))

	res, err := est.EstimatePages(text.Content, size, margins, named)
	if err != nil {
		return fmt.Errorf("unable to estimate pages: %w", err)
	}
	if err := env.Rpt.StoreYAML("estimate.yaml", res); err != nil {
		log.Warn("Unable to store estimate in report", zap.Error(err))
	}

	data, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("unable to marshal estimate: %w", err)
	}
	return writeOutput(cmd, "", data)
}

func pageSizeNames() []string {
	names := slices.Collect(maps.Keys(measure.PageSizes))
	sort.Sort(natural.StringSlice(names))
	return names
}
