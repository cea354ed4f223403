// SPDX-License-Identifier: MIT

// Command lasolve runs one linear-algebra method on a YAML problem file.
//
// Usage:
//
//	lasolve --file system.yaml [--method gauss-seidel] [--verbose] [--metrics-file out.prom]
//
// --method overrides the method named in the file. --verbose switches to a
// development logger so pivot and convergence diagnostics are printed.
// --metrics-file writes run metrics in the Prometheus text format.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvalgebra/internal/metrics"
	"github.com/katalvlaran/lvalgebra/internal/problem"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lasolve:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("lasolve", pflag.ContinueOnError)
	path := fs.StringP("file", "f", "", "problem file (YAML)")
	method := fs.StringP("method", "m", "", "override the method from the file: lup|solve|gauss-seidel|inverse|det")
	verbose := fs.BoolP("verbose", "v", false, "log decomposition and solver diagnostics")
	metricsFile := fs.String("metrics-file", "", "write run metrics to this file (Prometheus text format)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return errors.New("--file is required")
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}

	var rec *metrics.Recorder
	if *metricsFile != "" {
		rec = metrics.NewRecorder()
		defer func() {
			if werr := rec.WriteTextfile(*metricsFile); werr != nil {
				logger.Warn("metrics not written", zap.String("file", *metricsFile), zap.Error(werr))
			}
		}()
	}
	reject := func(method string, err error) {
		if rec != nil {
			rec.Reject(method, err)
		}
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		return err
	}
	f, err := problem.Decode(raw)
	if err != nil {
		reject(*method, err)

		return err
	}
	if *method != "" {
		f.Method = *method
	}
	p, err := f.Build()
	if err != nil {
		reject(f.Method, err)

		return err
	}
	logger.Debug("problem loaded",
		zap.String("file", *path), zap.String("method", p.Method), zap.Int("n", p.A.Rows()))

	start := time.Now()
	res, err := problem.Run(p, logger)
	if rec != nil {
		rec.Observe(p.Method, time.Since(start), res, err)
	}
	if err != nil {
		return err
	}
	fmt.Print(res)

	return nil
}
