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
	_ "embed"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	starlarkScriptName = "primes.star"
	starlarkVarLimit   = "limit"
	starlarkVarTotal   = "total"
)

//go:embed primes.star
var primesScript string

func countPrimesStarlark(limit int64, logger zerolog.Logger) (int64, error) {
	return execCountScript(starlarkScriptName, primesScript, limit, logger)
}

// execCountScript runs src with limit predeclared and reads the global total
// it assigns.
func execCountScript(filename, src string, limit int64, logger zerolog.Logger) (int64, error) {
	thread := &starlark.Thread{
		Name: "count",
		Print: func(_ *starlark.Thread, msg string) {
			logger.Info().Str("script", filename).Msg(msg)
		},
	}

	env := starlark.StringDict{
		starlarkVarLimit: starlark.MakeInt64(limit),
	}

	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{While: true}, thread, filename, src, env)
	if err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			logger.Debug().Msg(evalErr.Backtrace())
		}

		return 0, fmt.Errorf("script %s failed: %w", filename, err)
	}

	val, ok := globals[starlarkVarTotal]
	if !ok {
		return 0, fmt.Errorf("script %s did not set %q", filename, starlarkVarTotal)
	}

	totalInt, ok := val.(starlark.Int)
	if !ok {
		return 0, fmt.Errorf("%q must be an int, got %s", starlarkVarTotal, val.Type())
	}

	total, ok := totalInt.Int64()
	if !ok {
		return 0, fmt.Errorf("%q too large", starlarkVarTotal)
	}

	return total, nil
}
