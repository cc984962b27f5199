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
)

const defaultBound = 1_000_000

// isPrime tests a candidate by trial division with odd divisors up to its
// integer square root.
func isPrime(candidate int64) bool {
	if candidate < 2 {
		return false
	}

	if candidate == 2 {
		return true
	}

	if candidate%2 == 0 {
		return false
	}

	for divisor := int64(3); divisor*divisor <= candidate; divisor += 2 {
		if candidate%divisor == 0 {
			return false
		}
	}

	return true
}

// countPrimes returns the number of primes in [2, bound].
// A bound below 2 gives 0.
func countPrimes(bound int64) int64 {
	var count int64

	for candidate := int64(2); candidate <= bound; candidate++ {
		if isPrime(candidate) {
			count++
		}
	}

	return count
}

func writeTotal(w io.Writer, count int64) error {
	_, err := fmt.Fprintf(w, "Total = %d\n", count)
	return err
}
