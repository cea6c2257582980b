package specialist

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"paint-advisor-be/pkg/advisor/intent"
	"paint-advisor-be/pkg/catalog"
)

// fakeCatalog filters an in-memory product list the way the SQL
// implementation does.
type fakeCatalog struct {
	products []catalog.ProductRef
}

func (f *fakeCatalog) FilterBy(_ context.Context, filter catalog.Filter) ([]catalog.ProductRef, error) {
	var out []catalog.ProductRef
	for _, p := range f.products {
		if filter.Environment != "" && p.Environment != filter.Environment && p.Environment != "both" {
			continue
		}
		if len(filter.Surfaces) > 0 && !containsFold(filter.Surfaces, p.SurfaceType) {
			continue
		}
		if filter.Color != "" && !strings.Contains(strings.ToLower(p.ColorName), strings.ToLower(filter.Color)) {
			continue
		}
		if filter.Finish != "" && p.FinishType != filter.Finish {
			continue
		}
		out = append(out, p)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeCatalog) AvailableColors(_ context.Context) ([]catalog.ColorCount, error) {
	counts := map[string]int{}
	var order []string
	for _, p := range f.products {
		if counts[p.ColorName] == 0 {
			order = append(order, p.ColorName)
		}
		counts[p.ColorName]++
	}
	var out []catalog.ColorCount
	for _, name := range order {
		out = append(out, catalog.ColorCount{Name: name, Count: counts[name]})
	}
	return out, nil
}

func (f *fakeCatalog) FindByIds(_ context.Context, ids []uuid.UUID) ([]catalog.ProductRef, error) {
	var out []catalog.ProductRef
	for _, p := range f.products {
		for _, id := range ids {
			if p.Id == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

func paint(name, color, surface, env, finish, features string) catalog.ProductRef {
	return catalog.ProductRef{
		Id:          uuid.New(),
		Name:        name,
		ColorName:   color,
		SurfaceType: surface,
		Environment: env,
		FinishType:  finish,
		Features:    features,
	}
}

func TestRegistry_ConsultsOnlyApplicableSpecialists(t *testing.T) {
	cat := &fakeCatalog{products: []catalog.ProductRef{
		paint("Wall Classic", "blue", "wall", "interior", "matte", "washable"),
	}}
	reg := NewRegistry(cat, nil)

	recs := reg.Consult(context.Background(), Consultation{
		Slots: intent.SlotSet{Environment: intent.EnvInterior, SurfaceType: "wall"},
	})

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Source != "surface" || recs[1].Source != "interior" {
		t.Errorf("sources = %s, %s, want surface, interior", recs[0].Source, recs[1].Source)
	}
}

func TestSurfaceSpecialist_SynonymExpansion(t *testing.T) {
	cat := &fakeCatalog{products: []catalog.ProductRef{
		paint("Iron Guard", "gray", "steel", "both", "gloss", "anti-rust"),
	}}
	s := NewSurfaceSpecialist(cat)

	rec, err := s.Analyze(context.Background(), Consultation{
		Slots: intent.SlotSet{SurfaceType: "metal"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Candidates) != 1 || rec.Candidates[0].Name != "Iron Guard" {
		t.Errorf("candidates = %+v, want the steel product via metal synonyms", rec.Candidates)
	}
}

func TestSurfaceSpecialist_ColorMissOffersAlternativesNotOtherColors(t *testing.T) {
	cat := &fakeCatalog{products: []catalog.ProductRef{
		paint("Wall Classic", "blue", "wall", "interior", "matte", "washable"),
		paint("Wall Fresh", "pink", "wall", "interior", "matte", ""),
	}}
	s := NewSurfaceSpecialist(cat)

	rec, err := s.Analyze(context.Background(), Consultation{
		Slots: intent.SlotSet{SurfaceType: "wall", Color: "purple"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(rec.Candidates) != 0 {
		t.Errorf("candidates = %+v, want none (other colors must not leak in)", rec.Candidates)
	}
	if len(rec.Warnings) == 0 {
		t.Error("expected an unavailability warning")
	}
	if rec.ColorOffer == nil {
		t.Fatal("expected an alternative color offer")
	}
	if rec.ColorOffer.RequestedColor != "purple" {
		t.Errorf("RequestedColor = %q", rec.ColorOffer.RequestedColor)
	}
	want := []string{"blue", "pink"}
	if len(rec.ColorOffer.Alternatives) != 2 ||
		rec.ColorOffer.Alternatives[0] != want[0] || rec.ColorOffer.Alternatives[1] != want[1] {
		t.Errorf("Alternatives = %v, want %v", rec.ColorOffer.Alternatives, want)
	}
}

func TestExteriorSpecialist_ExcludesWoodAndPrefersUVResistant(t *testing.T) {
	cat := &fakeCatalog{products: []catalog.ProductRef{
		paint("Fence Guard", "green", "wood", "exterior", "matte", "waterproof"),
		paint("Plain Render", "white", "wall", "exterior", "matte", "high coverage"),
		paint("Sun Shield", "white", "wall", "exterior", "matte", "uv resistant"),
	}}
	s := NewExteriorSpecialist(cat)

	rec, err := s.Analyze(context.Background(), Consultation{
		Slots: intent.SlotSet{Environment: intent.EnvExterior},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(rec.Candidates) != 2 {
		t.Fatalf("candidates = %+v, want 2 (wood-specific product excluded)", rec.Candidates)
	}
	for _, c := range rec.Candidates {
		if c.SurfaceType == "wood" {
			t.Errorf("wood-specific product %q leaked into the exterior shortlist", c.Name)
		}
	}
	if rec.Candidates[0].Name != "Sun Shield" {
		t.Errorf("first candidate = %q, want the UV resistant one", rec.Candidates[0].Name)
	}
}

func TestColorSpecialist_MissWithEmptyCatalogHasNoOffer(t *testing.T) {
	s := NewColorSpecialist(&fakeCatalog{})

	rec, err := s.Analyze(context.Background(), Consultation{
		Slots: intent.SlotSet{Color: "purple"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.ColorOffer != nil {
		t.Errorf("ColorOffer = %+v, want nil when nothing can be offered", rec.ColorOffer)
	}
	if rec.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", rec.Confidence)
	}
}

func TestInteriorSpecialist_PrefersWashableForChildren(t *testing.T) {
	cat := &fakeCatalog{products: []catalog.ProductRef{
		paint("Plain", "white", "wall", "interior", "matte", ""),
		paint("Scrubbable", "white", "wall", "interior", "matte", "washable, odor-free"),
	}}
	s := NewInteriorSpecialist(cat)

	rec, err := s.Analyze(context.Background(), Consultation{
		Slots: intent.SlotSet{
			Environment: intent.EnvInterior,
			RoomType:    "bedroom",
			Audience:    intent.Audience{Label: "child", Age: 5},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(rec.Candidates))
	}
	if rec.Candidates[0].Name != "Scrubbable" {
		t.Errorf("first candidate = %q, want the washable one", rec.Candidates[0].Name)
	}
}

func TestConfidenceSaturates(t *testing.T) {
	tests := []struct {
		candidates int
		want       float64
	}{
		{0, 0},
		{1, 0.33},
		{2, 0.66},
		{4, 1.0},
	}
	for _, tt := range tests {
		if got := confidence(tt.candidates); got != tt.want {
			t.Errorf("confidence(%d) = %v, want %v", tt.candidates, got, tt.want)
		}
	}
}
