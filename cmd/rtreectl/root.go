package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rectree/rtree/internal/logging"
	"github.com/rectree/rtree/internal/workload"
)

// app carries what the subcommands share once the root flags are parsed.
type app struct {
	stdout, stderr io.Writer
	logCfg         logging.Config
	log            zerolog.Logger
	closer         io.Closer
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, logCfg: logging.Default(), log: zerolog.Nop()}
}

// execute runs the command line and then releases the log file, whether or
// not the command failed.
func (a *app) execute(args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	err := root.Execute()
	if a.closer != nil {
		err = errors.Join(err, a.closer.Close())
		a.closer = nil
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "rtreectl",
		Short:        "Run workloads against an in-memory R-Tree",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := logging.New(a.logCfg, a.stderr)
			if err != nil {
				return err
			}
			a.log, a.closer = logger, closer
			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.logCfg.Level, "log-level", a.logCfg.Level, "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.logCfg.Format, "log-format", a.logCfg.Format, "log format (console, json)")
	flags.StringVar(&a.logCfg.Color, "color", a.logCfg.Color, "colour output (auto, always, never)")
	flags.StringVar(&a.logCfg.File, "log-file", "", "write logs to this file, rotating it by size")
	flags.IntVar(&a.logCfg.MaxSizeMB, "log-file-max-mb", a.logCfg.MaxSizeMB, "rotate the log file at this size")

	root.AddCommand(newRunCmd(a), newDumpCmd(a))
	return root
}

// load reads and runs the workload at path.
func (a *app) load(path string, opts workload.Options) (*workload.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w, err := workload.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug().Str("path", path).Int("ops", len(w.Ops)).Msg("loaded workload")

	opts.Logger = a.log
	return workload.Run(w, opts)
}
