package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"ftc/common"
	"ftc/config"
	"ftc/script"
	"ftc/state"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:         "run",
		Usage:        "Executes scenario of frame operations against new document",
		OnUsageError: passUsageError,
		Action:       script.Run,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Usage: "export resulting document to sqlite database `PATH` (file or directory)"},
			&cli.BoolFlag{Name: "continue", Aliases: []string{"k"}, Usage: "keep executing steps after failure"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exits, overwrite files"},
		},
		ArgsUsage: "SCENARIO [RESULT]",
		CustomHelpTemplate: fmt.Sprintf(`%s
SCENARIO:
    YAML file with document description and list of steps, supported operations:
        %s
    Text files referenced by steps are resolved relative to scenario location.

RESULT:
    file to write step results to (YAML), if absent - STDOUT
`, cli.CommandHelpTemplate, strings.Join(common.StepOpNames(), ", ")),
	}
}

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:         "estimate",
		Usage:        "Estimates number of pages text file needs",
		OnUsageError: passUsageError,
		Action:       estimatePages,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "page-size", Aliases: []string{"ps"}, Value: "6x9",
				Usage: "page `SIZE`, named (" + strings.Join(pageSizeNames(), ", ") + ") or WxH in inches"},
			&cli.StringFlag{Name: "margins", Value: "0.75", Usage: "page `MARGINS` in inches: all, top/bottom,left/right or top,bottom,left,right"},
			&cli.FloatFlag{Name: "font-size", Usage: "font `SIZE` in points, overrides configuration"},
			&cli.FloatFlag{Name: "leading", Usage: "line distance in points, overrides configuration"},
			&cli.StringFlag{Name: "encoding", Usage: "force text `ENCODING` (see IANA.org for character set names)"},
		},
		ArgsUsage: "TEXTFILE",
	}
}

func dumpConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "dumpconfig",
		Usage: "Dumps either default or actual configuration (YAML)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
		},
		OnUsageError: passUsageError,
		Action:       dumpConfig,
		ArgsUsage:    "DESTINATION",
		CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
	}
}

func dumpConfig(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		data []byte
		err  error
		kind = "actual"
	)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	fname := cmd.Args().Get(0)
	env.Log.Info("Outputing configuration", zap.String("state", kind), zap.String("file", displayName(fname)))
	return writeOutput(cmd, fname, data)
}

// writeOutput sends data to the file or, when name is empty, to the command
// writer (STDOUT).
func writeOutput(cmd *cli.Command, fname string, data []byte) error {
	if len(fname) == 0 {
		out := cmd.Root().Writer
		if out == nil {
			out = os.Stdout
		}
		_, err := out.Write(data)
		return err
	}
	if err := os.WriteFile(fname, data, 0o644); err != nil {
		return fmt.Errorf("unable to write '%s': %w", fname, err)
	}
	return nil
}

func displayName(fname string) string {
	if len(fname) == 0 {
		return "STDOUT"
	}
	return fname
}
