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

// Command readme regenerates the usage block in README.md from the output of
// "primes --help".
package main

import (
	"bytes"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const (
	readmeFile = "README.md"
	usageWidth = 80
)

var usageBlock = regexp.MustCompile(`(?s)<!-- BEGIN USAGE -->.*<!-- END USAGE -->`)

func main() {
	binary := "./primes"
	if len(os.Args) > 1 {
		binary = os.Args[1]
	}

	content, err := os.ReadFile(readmeFile)
	if err != nil {
		log.Fatalf("Failed to read %q: %v", readmeFile, err)
	}

	var help bytes.Buffer
	cmd := exec.Command(binary, "--help")
	cmd.Stdout = &help

	if err := cmd.Run(); err != nil {
		log.Fatalf("Failed to run %q: %v", binary, err)
	}

	wrapped := wordwrap.WrapString(strings.TrimSpace(help.String()), usageWidth)
	replacement := "<!-- BEGIN USAGE -->\n```none\n" + wrapped + "\n```\n<!-- END USAGE -->"

	if !usageBlock.Match(content) {
		log.Fatalf("No usage block in %q", readmeFile)
	}

	updated := usageBlock.ReplaceAllLiteral(content, []byte(replacement))
	if err := os.WriteFile(readmeFile, updated, 0o644); err != nil {
		log.Fatalf("Failed to write %q: %v", readmeFile, err)
	}
}
