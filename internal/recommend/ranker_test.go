// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package recommend

import (
	"reflect"
	"testing"

	"github.com/tomtom215/campwise/internal/models"
)

func TestRecommend_OrderingAndFiltering(t *testing.T) {
	catalog := testCatalog()
	rc := RequestContext{Catalog: catalog, Family: testFamily()}

	recs := Recommend(catalog, rc, 10)
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}

	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("not sorted: %s (%d) after %s (%d)",
				recs[i].Camp.ID, recs[i].Score, recs[i-1].Camp.ID, recs[i-1].Score)
		}
	}
	for _, r := range recs {
		if r.Score <= 0 {
			t.Errorf("%s has non-positive score %d", r.Camp.ID, r.Score)
		}
		if r.Camp.ID == "closed" || r.Camp.ID == "noinfo" {
			t.Errorf("ineligible camp %s was ranked", r.Camp.ID)
		}
	}

	// k1 is 8, likes Art, family prefers Art with a $200/week allowance.
	if recs[0].Camp.ID != "art" {
		t.Errorf("top pick = %s, want art (order %v)", recs[0].Camp.ID, scoredIDs(recs))
	}
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	catalog := []models.Camp{
		camp("a", models.CategoryGeneral, 5, 12, 100),
		camp("b", models.CategoryGeneral, 5, 12, 100),
		camp("c", models.CategoryGeneral, 5, 12, 100),
	}
	rc := RequestContext{Family: models.Family{Children: []models.Child{child("k1", 8)}}}

	got := scoredIDs(Recommend(catalog, rc, 10))
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestRecommend_Limit(t *testing.T) {
	catalog := testCatalog()
	rc := RequestContext{Family: testFamily()}

	for _, n := range []int{-1, 0, 1, 2, 3, 100} {
		got := Recommend(catalog, rc, n)
		if n <= 0 && len(got) != 0 {
			t.Errorf("limit %d: got %d results", n, len(got))
		}
		if n > 0 && len(got) > n {
			t.Errorf("limit %d: got %d results", n, len(got))
		}
		if got == nil {
			t.Errorf("limit %d: nil slice, want empty", n)
		}
	}
}

func TestRecommend_DeterministicAndIdempotent(t *testing.T) {
	catalog := testCatalog()
	rc := RequestContext{
		Catalog:    catalog,
		Family:     testFamily(),
		Popularity: map[string]int{"robots": 5, "clay": 3},
	}

	first := Recommend(catalog, rc, 10)
	for i := 0; i < 5; i++ {
		again := Recommend(catalog, rc, 10)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\n%v\n%v", i, scoredIDs(first), scoredIDs(again))
		}
	}
}

func TestRecommend_DoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	snapshot := testCatalog()
	rc := RequestContext{Family: testFamily()}

	_ = Recommend(catalog, rc, 10)
	if !reflect.DeepEqual(catalog, snapshot) {
		t.Error("Recommend modified the catalog")
	}
}

func TestRecommend_DuplicateIDs(t *testing.T) {
	a := camp("a", models.CategoryGeneral, 5, 12, 100)
	catalog := []models.Camp{a, a, camp("b", models.CategoryGeneral, 5, 12, 100)}
	rc := RequestContext{Family: models.Family{Children: []models.Child{child("k1", 8)}}}

	got := scoredIDs(Recommend(catalog, rc, 10))
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("got %v, want [a b]", got)
	}
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name string
		camp models.Camp
		want bool
	}{
		{"ages only", models.Camp{MinAge: models.Int(5)}, true},
		{"price only", models.Camp{MinPrice: models.Int(200)}, true},
		{"free only", models.Camp{Free: true}, true},
		{"nothing", models.Camp{}, false},
		{"closed", models.Camp{MinAge: models.Int(5), Closed: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eligible(&tt.camp); got != tt.want {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
		})
	}
}
