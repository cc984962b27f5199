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
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElapsedTimePrefix(t *testing.T) {
	var stderr bytes.Buffer
	logger := newLogger(&stderr, 1)

	logger.Info().Msg("hello")

	require.Regexp(t, regexp.MustCompile(`^primes \[00:00:\d\d\.\d\]: INF hello`), stderr.String())
}

func TestLogLevels(t *testing.T) {
	var stderr bytes.Buffer
	logger := newLogger(&stderr, 0)

	logger.Info().Msg("quiet")
	logger.Debug().Msg("quieter")
	require.Empty(t, stderr.String())

	logger.Error().Err(errors.New("boom")).Msg("failed")
	require.Contains(t, stderr.String(), "failed")
	require.Contains(t, stderr.String(), "boom")

	stderr.Reset()
	debugLogger := newLogger(&stderr, 2)
	debugLogger.Debug().Msg("details")
	require.Contains(t, stderr.String(), "DBG details")
}
