// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package models

import (
	"strings"
	"unicode"
)

// Default age bounds used when a camp publishes only one side of its range.
const (
	DefaultMinAge = 3
	DefaultMaxAge = 18
)

// Session is a dated run of a camp.
type Session struct {
	Label     string `json:"label,omitempty"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
}

// Camp is a canonical catalog record. Raw text fields (PriceText, AgesText)
// are kept alongside the parsed values so a record can be re-normalized.
type Camp struct {
	ID          string   `json:"id" validate:"required,max=128"`
	Name        string   `json:"name" validate:"max=256"`
	Category    Category `json:"category,omitempty" validate:"omitempty,category"`
	Description string   `json:"description,omitempty"`
	Activities  []string `json:"activities,omitempty"`

	// Age bounds in years. Either may be absent.
	AgesText string `json:"ages_text,omitempty"`
	MinAge   *int   `json:"min_age,omitempty" validate:"omitempty,gte=0,lte=25"`
	MaxAge   *int   `json:"max_age,omitempty" validate:"omitempty,gte=0,lte=25"`

	// Weekly price in whole dollars.
	PriceText string `json:"price_text,omitempty"`
	MinPrice  *int   `json:"min_price,omitempty" validate:"omitempty,gte=0"`
	MaxPrice  *int   `json:"max_price,omitempty" validate:"omitempty,gte=0"`
	Free      bool   `json:"free,omitempty"`
	Closed    bool   `json:"closed,omitempty"`

	Hours          string    `json:"hours,omitempty"`
	DropOff        string    `json:"drop_off,omitempty"`
	PickUp         string    `json:"pick_up,omitempty"`
	Sessions       []Session `json:"sessions,omitempty" validate:"dive"`
	WeeksAvailable []int     `json:"weeks_available,omitempty"`

	ExtendedCare    string `json:"extended_care,omitempty"`
	FoodIncluded    bool   `json:"food_included,omitempty"`
	Transportation  bool   `json:"transportation,omitempty"`
	SiblingDiscount string `json:"sibling_discount,omitempty"`
	Setting         string `json:"indoor_outdoor,omitempty"`

	ContactEmail       string   `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone       string   `json:"contact_phone,omitempty"`
	WebsiteURL         string   `json:"website_url,omitempty"`
	ImageURL           string   `json:"image_url,omitempty"`
	RegistrationStatus string   `json:"registration_status,omitempty"`
	Rating             *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// HasAgeInfo reports whether at least one age bound is known.
func (c *Camp) HasAgeInfo() bool { return c.MinAge != nil || c.MaxAge != nil }

// HasPriceInfo reports whether a price is known. Free camps count as priced.
func (c *Camp) HasPriceInfo() bool { return c.MinPrice != nil || c.MaxPrice != nil || c.Free }

// AgeBounds returns the age range with missing bounds filled from the defaults.
func (c *Camp) AgeBounds() (lo, hi int) {
	lo, hi = DefaultMinAge, DefaultMaxAge
	if c.MinAge != nil {
		lo = *c.MinAge
	}
	if c.MaxAge != nil {
		hi = *c.MaxAge
	}
	return lo, hi
}

// AcceptsAge reports whether age falls inside the camp's range. A missing
// bound is treated as open on that side.
func (c *Camp) AcceptsAge(age int) bool {
	if c.MinAge != nil && age < *c.MinAge {
		return false
	}
	if c.MaxAge != nil && age > *c.MaxAge {
		return false
	}
	return true
}

// HasExtendedCare reports whether the extended care field is truthy.
func (c *Camp) HasExtendedCare() bool { return truthy(c.ExtendedCare) }

// HasSiblingDiscount reports whether the sibling discount field is truthy.
func (c *Camp) HasSiblingDiscount() bool { return truthy(c.SiblingDiscount) }

// HasContact reports whether an email or phone number is listed.
func (c *Camp) HasContact() bool {
	return strings.TrimSpace(c.ContactEmail) != "" || strings.TrimSpace(c.ContactPhone) != ""
}

// HasRunData reports whether the camp lists sessions or available weeks.
func (c *Camp) HasRunData() bool { return len(c.Sessions) > 0 || len(c.WeeksAvailable) > 0 }

// RegistrationOpen reports whether the registration status mentions "open".
func (c *Camp) RegistrationOpen() bool {
	return strings.Contains(strings.ToLower(c.RegistrationStatus), "open")
}

// PrimarySetting returns the first word of the indoor/outdoor field, lowercased.
func (c *Camp) PrimarySetting() string {
	fields := strings.FieldsFunc(strings.ToLower(c.Setting), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func truthy(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch strings.ToLower(s) {
	case "no", "false", "none", "n/a":
		return false
	}
	return true
}

// Int returns a pointer to v. Handy for optional fields.
func Int(v int) *int { return &v }

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }
