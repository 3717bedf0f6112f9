// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package normalize

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

const (
	// maxPlausibleAge discards numbers that are clearly not ages (years, prices).
	maxPlausibleAge = 25
	// gradeToAge converts a school grade to the typical age of a child in it.
	gradeToAge = 5
	// kindergartenAge is the lower bound for "K-" and "TK-" ranges.
	kindergartenAge = 5
)

var (
	integerRun = regexp.MustCompile(`\d+`)
	// "Grades K-5", "grade 3", "grades 1st - 6th", "entering grades TK to 2"
	gradeClause = regexp.MustCompile(`(?i)\bgrades?\s*(t?k|\d+)(?:st|nd|rd|th)?\b(?:\s*(?:-|–|to)\s*(t?k|\d+)(?:st|nd|rd|th)?\b)?`)
	// "K-5", "TK-8", "k - 3rd"
	kindergartenRange = regexp.MustCompile(`(?i)^\s*(t?k)\s*-\s*(\d+)`)
	openEnded         = regexp.MustCompile(`(?i)\+|\bup\b|\bolder\b|\band over\b`)
)

// AgeInfo is the parsed form of an age or grade range. Either bound may be nil.
type AgeInfo struct {
	MinAge *int `json:"min_age,omitempty"`
	MaxAge *int `json:"max_age,omitempty"`
}

// ParseAgeRange parses text such as "Ages 5-12", "8+", "Grades 1-6" or "TK-5".
// Grade numbers are shifted by five years and K or TK counts as five. When
// the text states ages and grades, the ages win.
func ParseAgeRange(text string) AgeInfo {
	s := strings.TrimSpace(text)
	if s == "" {
		return AgeInfo{}
	}

	var grades [][]string
	if m := kindergartenRange.FindStringSubmatch(s); m != nil {
		grades = append(grades, m)
	}
	grades = append(grades, gradeClause.FindAllStringSubmatch(s, -1)...)

	rest := kindergartenRange.ReplaceAllString(s, " ")
	rest = gradeClause.ReplaceAllString(rest, " ")

	if info, ok := agesFrom(rest); ok {
		return info
	}
	if len(grades) == 0 {
		return AgeInfo{}
	}

	var values []int
	for _, g := range grades {
		for _, tok := range g[1:] {
			if n, ok := gradeAge(tok); ok {
				values = append(values, n)
			}
		}
	}
	if len(values) == 0 {
		return AgeInfo{}
	}
	return boundsOf(values, openEnded.MatchString(s))
}

// agesFrom reads plain age numbers from s, ignoring implausible values.
func agesFrom(s string) (AgeInfo, bool) {
	var values []int
	for _, run := range integerRun.FindAllString(s, -1) {
		n, err := strconv.Atoi(run)
		if err != nil || n > maxPlausibleAge {
			continue
		}
		values = append(values, n)
	}
	if len(values) == 0 {
		return AgeInfo{}, false
	}
	return boundsOf(values, openEnded.MatchString(s)), true
}

func gradeAge(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	if strings.EqualFold(tok, "k") || strings.EqualFold(tok, "tk") {
		return kindergartenAge, true
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n > maxPlausibleAge {
		return 0, false
	}
	return n + gradeToAge, true
}

// boundsOf returns the spread of values. A lone value with an open-ended
// marker has no upper bound.
func boundsOf(values []int, open bool) AgeInfo {
	slices.Sort(values)
	lo, hi := values[0], values[len(values)-1]
	if len(values) == 1 && open {
		return AgeInfo{MinAge: &lo}
	}
	return AgeInfo{MinAge: &lo, MaxAge: &hi}
}
