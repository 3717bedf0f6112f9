// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

/*
Package cache provides the result cache used by the planner.

Planner operations are pure functions of their inputs, so a result can be
reused whenever the same request arrives again. Requests are reduced to a
64-bit key by Fingerprint (xxhash over the JSON encoding) and results are
kept in an LRU with a TTL.

# Overview

  - Thread-safe (a single sync.Mutex; every Get reorders the list)
  - O(1) Get, Put and eviction via a doubly-linked list plus map
  - Lazy expiry on Get, bulk expiry with CleanupExpired
  - Hit, miss and eviction counters exposed through Stats

# Usage Example

	c := cache.NewLRU[[]recommend.ScoredCamp](1024, 5*time.Minute)

	key, err := cache.Fingerprint("recommend", req)
	if err != nil {
	    return err
	}
	if recs, ok := c.Get(key); ok {
	    return recs
	}
	recs := recommend.Recommend(req.Catalog, req, req.Limit)
	c.Put(key, recs)

# Invalidation

Keys include the full catalog and family snapshot, so a changed input can
never hit a stale entry. The TTL only bounds memory held by requests that
are not repeated.
*/
package cache
