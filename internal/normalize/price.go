// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DisplayTBD is shown when no price could be determined.
const DisplayTBD = "TBD"

var (
	numericRun      = regexp.MustCompile(`\d+(?:\.\d+)?`)
	currencyNoise   = strings.NewReplacer("$", "", ",", "")
	closedSentinels = []string{"CLOSED"}
)

// PriceInfo is the parsed form of a weekly price string.
type PriceInfo struct {
	MinPrice *int   `json:"min_price,omitempty"`
	MaxPrice *int   `json:"max_price,omitempty"`
	Display  string `json:"display"`
	Free     bool   `json:"free"`
	Closed   bool   `json:"closed"`
}

// ParseWeeklyPrice parses text such as "$350", "$200-$400", "Free" or
// "PERMANENTLY CLOSED". The closed sentinel is matched case-sensitively;
// "free" is not.
func ParseWeeklyPrice(text string) PriceInfo {
	info := PriceInfo{Display: DisplayTBD}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return info
	}

	for _, sentinel := range closedSentinels {
		if strings.Contains(trimmed, sentinel) {
			info.Closed = true
		}
	}

	if strings.Contains(strings.ToLower(trimmed), "free") {
		info.Free = true
		info.Display = "Free"
		return info
	}

	runs := numericRun.FindAllString(currencyNoise.Replace(trimmed), -1)
	if len(runs) == 0 {
		return info
	}

	lo, hi := math.MaxInt, math.MinInt
	for _, run := range runs {
		f, err := strconv.ParseFloat(run, 64)
		if err != nil {
			continue
		}
		v := int(math.Round(f))
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo > hi {
		return info
	}

	info.MinPrice = &lo
	info.MaxPrice = &hi
	info.Display = FormatPrice(lo, hi)
	return info
}

// FormatPrice renders a weekly price range as "$min" or "$min-$max".
func FormatPrice(lo, hi int) string {
	if lo == hi {
		return fmt.Sprintf("$%d", lo)
	}
	return fmt.Sprintf("$%d-$%d", lo, hi)
}
