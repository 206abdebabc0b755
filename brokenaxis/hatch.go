// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brokenaxis

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for a non-positive benchmark count
// or an empty list of hatches.
var ErrInvalidArgument = errors.New("invalid argument")

// HatchIndex returns the index of the hatch for the patch at
// patchIndex, where patches come in groups of benchmarkCount and each
// group takes the next of candidates hatches, wrapping around.
func HatchIndex(patchIndex, benchmarkCount, candidates int) int {
	return (patchIndex / benchmarkCount) % candidates
}

// ApplyHatches sets the hatch of each patch. The first benchmarkCount
// patches form the first series and get hatches[0], the next
// benchmarkCount get hatches[1], and so on, cycling through hatches.
// A trailing partial group gets the next hatch like any other.
func ApplyHatches(benchmarkCount int, hatches []Hatch, patches []Patch) error {
	if benchmarkCount <= 0 {
		return fmt.Errorf("%w: benchmark count %d must be positive", ErrInvalidArgument, benchmarkCount)
	}
	if len(hatches) == 0 {
		return fmt.Errorf("%w: no hatches", ErrInvalidArgument)
	}
	for i, p := range patches {
		p.SetHatch(hatches[HatchIndex(i, benchmarkCount, len(hatches))])
	}
	return nil
}
