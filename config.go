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

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
)

// Flags that act immediately or load the file itself.
var unconfigurableFlags = map[string]bool{
	"config":  true,
	"help":    true,
	"version": true,
}

// loadTOMLConfig resolves flag defaults from a TOML document keyed by flag
// name. Keys that are not flags are ignored.
func loadTOMLConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	if _, err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("invalid TOML config: %w", err)
	}

	var resolver kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		if unconfigurableFlags[flag.Name] {
			return nil, nil
		}

		raw, ok := values[flag.Name]
		if !ok {
			return nil, nil
		}

		switch v := raw.(type) {
		case string:
			return v, nil
		case bool, int64, float64:
			return fmt.Sprint(v), nil
		}

		return nil, fmt.Errorf("config key %q: unsupported value of type %T", flag.Name, raw)
	}

	return resolver, nil
}
