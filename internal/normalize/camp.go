// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package normalize

import (
	"strings"

	"github.com/tomtom215/campwise/internal/models"
)

// Camp returns a canonical copy of a raw listing. Parsed fields that are
// already present win over their raw text; the input is not modified.
func Camp(raw models.Camp) models.Camp { //nolint:gocritic // value semantics are intended
	c := raw
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)

	if c.PriceText != "" {
		price := ParseWeeklyPrice(c.PriceText)
		if c.MinPrice == nil && c.MaxPrice == nil {
			c.MinPrice, c.MaxPrice = price.MinPrice, price.MaxPrice
		}
		c.Free = c.Free || price.Free
		c.Closed = c.Closed || price.Closed
	}

	if c.AgesText != "" && c.MinAge == nil && c.MaxAge == nil {
		ages := ParseAgeRange(c.AgesText)
		c.MinAge, c.MaxAge = ages.MinAge, ages.MaxAge
	}

	if strings.TrimSpace(string(c.Category)) == "" {
		c.Category = InferCategory(c.Name, c.Description)
	} else {
		c.Category = ParseCategory(string(c.Category))
	}

	if len(c.Activities) > 0 {
		c.Activities = ActivityTokens(c.Activities, "")
	}
	return c
}

// Catalog normalizes every listing. The returned slice is freshly allocated.
func Catalog(raw []models.Camp) []models.Camp {
	out := make([]models.Camp, len(raw))
	for i := range raw {
		out[i] = Camp(raw[i])
	}
	return out
}

// PriceDisplay renders a camp's price for listing cards.
func PriceDisplay(c *models.Camp) string {
	switch {
	case c.Free:
		return "Free"
	case c.MinPrice != nil && c.MaxPrice != nil:
		return FormatPrice(*c.MinPrice, *c.MaxPrice)
	case c.MinPrice != nil:
		return FormatPrice(*c.MinPrice, *c.MinPrice)
	case c.MaxPrice != nil:
		return FormatPrice(*c.MaxPrice, *c.MaxPrice)
	}
	return DisplayTBD
}
