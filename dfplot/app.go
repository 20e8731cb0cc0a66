// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/aclements/go-dfplot/internal/config"
	"github.com/aclements/go-dfplot/internal/logging"
)

// Version is set at build time.
var Version = "dev"

// App is the dfplot command line.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	// open shows an HTML file to the user. If nil, the configured
	// open command or the system browser is used.
	open func(path string) error

	cfg    config.Config
	loader *config.Loader

	flagConfig     string
	flagLogLevel   string
	flagLogFormat  string
	flagCPUProfile string
	flagMemProfile string

	stopProfile func() error
}

// New returns the dfplot command line.
func New() *App {
	a := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
		cfg:    config.Default(),
		loader: config.NewLoader(),
	}

	a.root = &cobra.Command{
		Use:   "dfplot",
		Short: "Plot columns of CSV and JSON tables",
		Long: `dfplot draws scatter, bar, box and histogram charts of the columns of a
CSV, JSON or newline-delimited JSON file, with one trace per combination
of the values of the grouping columns.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := a.root.PersistentFlags()
	pf.StringVar(&a.flagConfig, "config", "", "read configuration from `file`")
	pf.StringVar(&a.flagLogLevel, "log-level", "", fmt.Sprintf("log `level`, one of %v", logging.Levels))
	pf.StringVar(&a.flagLogFormat, "log-format", "", fmt.Sprintf("log `format`, one of %v", logging.Formats))
	pf.StringVar(&a.flagCPUProfile, "cpuprofile", "", "write CPU profile to `file`")
	pf.StringVar(&a.flagMemProfile, "memprofile", "", "write heap profile to `file`")

	a.root.AddCommand(
		a.newVersionCmd(),
		a.newChartCmd(scatterCmd),
		a.newChartCmd(barCmd),
		a.newChartCmd(boxCmd),
		a.newChartCmd(histogramCmd),
	)
	return a
}

// WithOutput sets the writers for standard output and errors.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the command line with os.Args.
func (a *App) Execute(ctx context.Context) error {
	err := a.root.ExecuteContext(ctx)
	if a.stopProfile != nil {
		if perr := a.stopProfile(); err == nil {
			err = perr
		}
		a.stopProfile = nil
	}
	return err
}

// ExecuteWithArgs runs the command line with args instead of os.Args.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// setup loads the configuration, configures logging and starts
// profiling before any subcommand runs.
func (a *App) setup(cmd *cobra.Command, args []string) error {
	cfg, err := a.loader.Load(a.flagConfig)
	if err != nil {
		return err
	}
	if a.flagLogLevel != "" {
		cfg.Log.Level = a.flagLogLevel
	}
	if a.flagLogFormat != "" {
		cfg.Log.Format = a.flagLogFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	// The format only takes effect on the first initialization.
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: stderrFile(a.stderr)})
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	logging.Debug().Add(logging.Str("command", cmd.Name())).Add(logging.Str("level", cfg.Log.Level)).Msg("configured")

	return a.startProfile()
}

// stderrFile returns w if it is a file, and os.Stderr otherwise.
func stderrFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return os.Stderr
}

func (a *App) startProfile() error {
	var stops []func() error
	if a.flagCPUProfile != "" {
		f, err := os.Create(a.flagCPUProfile)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return err
		}
		stops = append(stops, func() error {
			pprof.StopCPUProfile()
			return f.Close()
		})
	}
	if a.flagMemProfile != "" {
		path := a.flagMemProfile
		stops = append(stops, func() error {
			runtime.GC()
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := pprof.WriteHeapProfile(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		})
	}
	if len(stops) == 0 {
		return nil
	}
	a.stopProfile = func() error {
		var first error
		for _, stop := range stops {
			if err := stop(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}
	return nil
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of dfplot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.stdout, "dfplot version %s %s/%s\n", Version, runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
