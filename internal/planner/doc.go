// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

/*
Package planner is the stateful front of the planning engine.

The algorithms live in pure packages (normalize, calendar, recommend,
analytics). Engine wraps them with the concerns a long-running service
needs:

  - limit defaulting and capping
  - the configured default season for snapshots that carry no weeks
  - memoization keyed by an xxhash fingerprint of the request
  - Prometheus timings, result sizes and error counts
  - request-scoped zerolog fields (request_id, family_id)

# Usage

	engine, err := planner.NewEngine(planner.DefaultConfig(), logging.Logger())
	if err != nil {
	    return err
	}
	recs, err := engine.Recommend(ctx, recommend.RequestContext{
	    Catalog: catalog,
	    Family:  family,
	    Limit:   5,
	})

# Caching

Identical inputs always produce identical outputs, so results are cached
per operation for Config.Cache.TTL. Scoring a single camp and normalizing a
catalog are never cached. A periodic call to CleanupCache reclaims expired
entries.

# Thread Safety

Engine is safe for concurrent use. Cached results are shared between
callers and must not be mutated.
*/
package planner
