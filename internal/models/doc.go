// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

/*
Package models defines the data shared by every planning package.

# Catalog

Camp is one listing as scraped, with the raw ages_text and price_text next
to the parsed bounds the normalize package fills in. Age and price bounds
are pointers: nil means the listing does not say.

# Family Snapshot

Family bundles what a request knows about one household: the profile
(preferred categories, summer budget, work hours), children, favorites,
scheduled entries and optionally the summer's weeks. Nothing here is
persisted; each request carries its own snapshot.

# Dates

Date is a calendar day with no time or zone. It marshals as YYYY-MM-DD.
A malformed date decodes to the zero Date instead of failing the request,
and zero dates are treated as unknown everywhere.

# Closed Vocabularies

Category and Status are string types with fixed value sets. ParseStatus
maps unknown statuses to planned; category labels are resolved by
normalize.ParseCategory.
*/
package models
