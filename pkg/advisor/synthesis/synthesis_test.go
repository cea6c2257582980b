package synthesis

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"paint-advisor-be/pkg/advisor/intent"
	"paint-advisor-be/pkg/advisor/specialist"
	"paint-advisor-be/pkg/catalog"
)

type fakeSemantic struct {
	results []catalog.ProductRef
	err     error
	queries []string
}

func (f *fakeSemantic) Search(_ context.Context, query string, _ int) ([]catalog.ProductRef, error) {
	f.queries = append(f.queries, query)
	return f.results, f.err
}

func product(name, features string) catalog.ProductRef {
	return catalog.ProductRef{Id: uuid.New(), Name: name, Features: features}
}

func TestSynthesize_DedupeKeepsFirst(t *testing.T) {
	shared := product("Shared", "")
	recs := []specialist.Recommendation{
		{Source: "surface", Candidates: []catalog.ProductRef{shared, product("A", "")}},
		{Source: "interior", Candidates: []catalog.ProductRef{shared, product("B", "")}},
	}

	got := New(nil, nil).Synthesize(context.Background(), "msg", intent.SlotSet{}, nil, recs, nil)

	if len(got.Products) != 3 {
		t.Fatalf("got %d products, want 3", len(got.Products))
	}
	if got.Products[0].Name != "Shared" || got.Products[1].Name != "A" || got.Products[2].Name != "B" {
		t.Errorf("order = %s, %s, %s", got.Products[0].Name, got.Products[1].Name, got.Products[2].Name)
	}
	if len(got.Sources) != 2 || got.Sources[0] != "surface" {
		t.Errorf("sources = %v", got.Sources)
	}
}

func TestSynthesize_FeatureIntentRerankIsStable(t *testing.T) {
	recs := []specialist.Recommendation{{
		Source: "interior",
		Candidates: []catalog.ProductRef{
			product("Plain One", ""),
			product("Washable One", "washable"),
			product("Plain Two", ""),
			product("Washable Two", "washable, anti-mold"),
		},
	}}

	got := New(nil, nil).Synthesize(context.Background(), "msg", intent.SlotSet{}, []string{"washable"}, recs, nil)

	wantOrder := []string{"Washable One", "Washable Two", "Plain One"}
	for i, name := range wantOrder {
		if got.Products[i].Name != name {
			t.Errorf("Products[%d] = %q, want %q", i, got.Products[i].Name, name)
		}
	}
}

func TestSynthesize_CapsAtThree(t *testing.T) {
	recs := []specialist.Recommendation{{
		Source: "surface",
		Candidates: []catalog.ProductRef{
			product("1", ""), product("2", ""), product("3", ""), product("4", ""),
		},
	}}

	got := New(nil, nil).Synthesize(context.Background(), "msg", intent.SlotSet{}, nil, recs, nil)
	if len(got.Products) != 3 {
		t.Errorf("got %d products, want 3", len(got.Products))
	}
}

func TestSynthesize_DeprioritizesRecentlyRecommended(t *testing.T) {
	old := product("Old", "")
	fresh := product("Fresh", "")
	recs := []specialist.Recommendation{{
		Source:     "surface",
		Candidates: []catalog.ProductRef{old, fresh},
	}}

	got := New(nil, nil).Synthesize(context.Background(), "msg", intent.SlotSet{}, nil, recs, []uuid.UUID{old.Id})

	if got.Products[0].Name != "Fresh" {
		t.Errorf("Products[0] = %q, want Fresh", got.Products[0].Name)
	}
	if len(got.Products) != 2 {
		t.Errorf("repeat candidate must stay available, got %d products", len(got.Products))
	}
}

func TestSynthesize_SemanticFallbackOnlyWhenEmpty(t *testing.T) {
	sem := &fakeSemantic{results: []catalog.ProductRef{product("Semantic Hit", "")}}

	got := New(sem, nil).Synthesize(context.Background(), "cozy bedroom vibe", intent.SlotSet{}, nil, nil, nil)

	if !got.SemanticFallback || len(got.Products) != 1 {
		t.Fatalf("expected semantic fallback result, got %+v", got)
	}
	if len(sem.queries) != 1 || sem.queries[0] != "cozy bedroom vibe" {
		t.Errorf("queries = %v", sem.queries)
	}

	// With specialist candidates present the index must stay untouched.
	sem.queries = nil
	recs := []specialist.Recommendation{{Source: "surface", Candidates: []catalog.ProductRef{product("A", "")}}}
	got = New(sem, nil).Synthesize(context.Background(), "msg", intent.SlotSet{}, nil, recs, nil)
	if got.SemanticFallback || len(sem.queries) != 0 {
		t.Errorf("semantic index consulted despite candidates: %+v", sem.queries)
	}
}

func TestSynthesize_SemanticQueryBuiltFromSlots(t *testing.T) {
	sem := &fakeSemantic{results: []catalog.ProductRef{product("Hit", "")}}
	slots := intent.SlotSet{Environment: intent.EnvExterior, SurfaceType: "wall", Color: "blue"}

	got := New(sem, nil).Synthesize(context.Background(),
		"something for the front of the house, blueish maybe", slots, nil, nil, nil)

	if !got.SemanticFallback || len(got.Products) != 1 {
		t.Fatalf("expected semantic fallback result, got %+v", got)
	}
	if len(sem.queries) != 1 || sem.queries[0] != "exterior wall blue paint" {
		t.Errorf("queries = %v, want the slot-built query", sem.queries)
	}
}

func TestSynthesize_SemanticErrorDegradesToEmpty(t *testing.T) {
	sem := &fakeSemantic{err: errors.New("index down")}

	got := New(sem, nil).Synthesize(context.Background(), "msg", intent.SlotSet{}, nil, nil, nil)

	if len(got.Products) != 0 || got.SemanticFallback {
		t.Errorf("expected empty degraded result, got %+v", got)
	}
}

func TestSynthesize_ColorOfferBlocksSemanticFallback(t *testing.T) {
	sem := &fakeSemantic{results: []catalog.ProductRef{product("Wrong Color", "")}}
	recs := []specialist.Recommendation{{
		Source:     "color",
		Warnings:   []string{"no products available in purple"},
		ColorOffer: &specialist.AlternativeColorOffer{RequestedColor: "purple", Alternatives: []string{"blue"}},
	}}

	got := New(sem, nil).Synthesize(context.Background(), "purple walls", intent.SlotSet{}, nil, recs, nil)

	if len(got.Products) != 0 {
		t.Errorf("products = %+v, want none (color miss must not surface other colors)", got.Products)
	}
	if got.ColorOffer == nil || len(sem.queries) != 0 {
		t.Errorf("offer lost or semantic index consulted: offer=%v queries=%v", got.ColorOffer, sem.queries)
	}
}
