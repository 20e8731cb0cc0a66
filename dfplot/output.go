// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/browser"

	"github.com/aclements/go-dfplot/internal/logging"
	"github.com/aclements/go-dfplot/internal/render"
	"github.com/aclements/go-dfplot/plot"
)

func (a *App) renderOptions() render.Options {
	return render.Options{
		Width:  a.cfg.Chart.Width,
		Height: a.cfg.Chart.Height,
		Theme:  a.cfg.Chart.Theme,
		Bins:   a.cfg.Chart.Bins,
	}
}

// output writes c where opts asks for it. The chart is rendered in
// full before any file is created.
func (a *App) output(c *plot.Chart, ro render.Options, opts *chartOptions) error {
	var buf bytes.Buffer
	if opts.table {
		if opts.output != "" {
			logging.Warn().Add(logging.Path(opts.output)).Msg("--table prints to standard output; not writing output file")
		}
		if err := render.Write(&buf, render.FormatText, c, ro); err != nil {
			return err
		}
		_, err := a.stdout.Write(buf.Bytes())
		return err
	}

	if opts.output != "" {
		f := render.FormatOf(opts.output)
		if err := render.Write(&buf, f, c, ro); err != nil {
			return err
		}
		if err := os.WriteFile(opts.output, buf.Bytes(), 0o666); err != nil {
			return err
		}
		logging.Info().Add(logging.Path(opts.output)).Add(logging.Str("format", f.String())).Msg("wrote chart")
		return nil
	}

	if err := render.HTML(&buf, c, ro); err != nil {
		return err
	}
	tmp, err := os.CreateTemp("", "dfplot-*.html")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	logging.Info().Add(logging.Path(tmp.Name())).Msg("opening chart")

	open := a.open
	if open == nil {
		open = a.openFile
	}
	if err := open(tmp.Name()); err != nil {
		return fmt.Errorf("opening %s: %w", tmp.Name(), err)
	}
	return nil
}

// openFile shows path with the configured open command, or with the
// system browser if there is none. It does not wait for the viewer to
// exit.
func (a *App) openFile(path string) error {
	if a.cfg.Open.Command == "" {
		browser.Stdout = a.stderr
		browser.Stderr = a.stderr
		return browser.OpenFile(path)
	}

	args, err := shellquote.Split(a.cfg.Open.Command)
	if err != nil {
		return fmt.Errorf("open command %q: %w", a.cfg.Open.Command, err)
	}
	if len(args) == 0 {
		return fmt.Errorf("open command %q is empty", a.cfg.Open.Command)
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdout = a.stderr
	cmd.Stderr = a.stderr
	if err := cmd.Start(); err != nil {
		return err
	}
	go waitViewer(cmd)
	return nil
}

// waitViewer waits for a started open command and logs its failure.
func waitViewer(cmd *exec.Cmd) error {
	err := cmd.Wait()
	if err != nil {
		logging.Error().
			Add(logging.Str("command", cmd.String())).
			Add(logging.ErrorField(err)).
			Msg("open command failed")
	}
	return err
}
