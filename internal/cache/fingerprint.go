// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package cache

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
)

// Fingerprint hashes an operation name and its JSON-encoded input into a
// cache key. Equal inputs always produce equal keys; map keys are sorted
// by the encoder so map iteration order does not matter.
func Fingerprint(op string, input any) (uint64, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return 0, fmt.Errorf("fingerprint %s: %w", op, err)
	}

	d := xxhash.New()
	_, _ = d.WriteString(op)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(data)
	return d.Sum64(), nil
}
