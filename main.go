// Copyright (c) 2023-2026 D. Bohdan
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	tsize "github.com/kopoli/go-terminal-size"
	"github.com/mitchellh/go-wordwrap"
	"github.com/rs/zerolog"
)

const (
	defaultHelpWidth = 80
	description      = "Count the primes from 2 to 1000000 by trial division and print the total."
	maxVerboseLevel  = 2
	version          = "0.1.0"
)

const (
	engineNative   = "native"
	engineStarlark = "starlark"
)

type countConfig struct {
	Bound   int64
	Engine  string
	Verbose int
}

type cli struct {
	Version kong.VersionFlag `short:"V" help:"print version number and exit"`
	Config  kong.ConfigFlag  `placeholder:"FILE" help:"load defaults from a TOML file"`
	Engine  string           `default:"native" enum:"native,starlark" short:"e" help:"counting engine (${enum})"`
	Verbose int              `short:"v" type:"counter" help:"increase verbosity"`
}

func helpWidth(w io.Writer) int {
	if !isTerminal(w) {
		return defaultHelpWidth
	}

	size, err := tsize.GetSize()
	if err != nil || size.Width <= 0 {
		return defaultHelpWidth
	}

	return size.Width
}

func newParser(cliConfig *cli, stdout, stderr io.Writer, exit func(int)) (*kong.Kong, error) {
	width := helpWidth(stdout)

	return kong.New(cliConfig,
		kong.Name("primes"),
		kong.Description(wordwrap.WrapString(description, uint(width))),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{WrapUpperBound: width}),
		kong.Configuration(loadTOMLConfig),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
}

func count(config countConfig, logger zerolog.Logger) (int64, error) {
	switch config.Engine {
	case engineNative:
		return countPrimes(config.Bound), nil
	case engineStarlark:
		return countPrimesStarlark(config.Bound, logger)
	}

	return 0, fmt.Errorf("unknown engine: %q", config.Engine)
}

func run(args []string, stdout, stderr io.Writer, exit func(int)) int {
	var cliConfig cli
	parser, err := newParser(&cliConfig, stdout, stderr, exit)
	if err != nil {
		fmt.Fprintf(stderr, "primes: %v\n", err)
		return 1
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		// Usage after an error goes to stderr so stdout only carries totals.
		parser.Stdout = stderr
		parser.FatalIfErrorf(err)
	}

	if cliConfig.Verbose > maxVerboseLevel {
		kongCtx.Fatalf("up to %d verbose flags is allowed", maxVerboseLevel)
	}

	config := countConfig{
		Bound:   defaultBound,
		Engine:  cliConfig.Engine,
		Verbose: cliConfig.Verbose,
	}

	logger := newLogger(stderr, config.Verbose)
	logger.Debug().Msgf("config: %s", repr.String(config, repr.Indent("  ")))
	logger.Info().Int64("bound", config.Bound).Str("engine", config.Engine).Msg("counting primes")

	startTime := time.Now()
	total, err := count(config, logger)
	if err != nil {
		logger.Error().Err(err).Msg("count failed")
		return 1
	}

	logger.Info().Int64("total", total).Dur("elapsed", time.Since(startTime)).Msg("count finished")

	if err := writeTotal(stdout, total); err != nil {
		logger.Error().Err(err).Msg("failed to write total")
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Exit))
}
