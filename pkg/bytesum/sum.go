/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package bytesum computes checked byte-value sums over in-memory data.
package bytesum

import (
	"errors"
	"math"
	"strconv"
)

// ErrOverflow is returned when the running sum would exceed the range
// of a uint64 accumulator.
var ErrOverflow = errors.New("bytesum: sum overflows uint64")

// Accumulator folds byte values into a uint64 running total. Each byte
// is widened to uint64 before addition, and every addition is checked:
// once Add reports ErrOverflow the accumulator is left at its last
// valid total and further input for that call is discarded.
//
// The zero value is ready to use.
type Accumulator struct {
	sum uint64
}

// Add folds data into the running total in order. It returns
// ErrOverflow if any single addition would wrap; the total retains the
// value it had before the offending byte.
func (a *Accumulator) Add(data []byte) error {
	for _, b := range data {
		v := uint64(b)
		if a.sum > math.MaxUint64-v {
			return ErrOverflow
		}

		a.sum += v
	}

	return nil
}

// Sum returns the current total.
func (a *Accumulator) Sum() uint64 {
	return a.sum
}

// String renders the current total as canonical decimal.
func (a *Accumulator) String() string {
	return Format(a.sum)
}

// Sum returns the checked uint64 sum of the byte values in data.
// An empty slice sums to 0.
func Sum(data []byte) (uint64, error) {
	var acc Accumulator
	if err := acc.Add(data); err != nil {
		return 0, err
	}

	return acc.Sum(), nil
}

// Format renders sum as base-10 ASCII digits with no sign, grouping,
// or leading zeros.
func Format(sum uint64) string {
	return strconv.FormatUint(sum, 10)
}

// Compute sums data and renders the total as decimal text. On overflow
// it returns ErrOverflow and no partial result.
func Compute(data []byte) (string, error) {
	sum, err := Sum(data)
	if err != nil {
		return "", err
	}

	return Format(sum), nil
}

// Verify reports whether the checked sum of data equals expected.
// It returns false if the sum overflows.
func Verify(data []byte, expected uint64) bool {
	sum, err := Sum(data)
	if err != nil {
		return false
	}

	return sum == expected
}
