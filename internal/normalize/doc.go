// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

/*
Package normalize turns the free-text fields of raw camp listings into
canonical values.

Listings arrive from many sources with inconsistent formatting: "$200-400",
"Ages 5-12", "Grades 1-6", "TK-5", "Arts & Crafts". The functions here are
total: malformed input yields an "unknown" result rather than an error, so a
single bad record never blocks a catalog from loading.

Parsers:

  - ParseWeeklyPrice: weekly price text to min/max dollars plus a display string
  - ParseAgeRange: age or grade text to min/max years
  - InferCategory: keyword inference over name and description
  - ParseCategory: free-form category label to a canonical Category
  - ExtractActivities: explicit activities plus description keywords

Camp and Catalog apply all of the above to whole records. They only fill in
fields that are missing, so normalizing an already canonical record is a no-op.
*/
package normalize
