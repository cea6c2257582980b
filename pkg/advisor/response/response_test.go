package response

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"paint-advisor-be/pkg/advisor/intent"
	"paint-advisor-be/pkg/advisor/specialist"
	"paint-advisor-be/pkg/advisor/synthesis"
	"paint-advisor-be/pkg/catalog"
)

func TestComposeRecommendation_ListsEveryProduct(t *testing.T) {
	result := synthesis.Result{Products: []catalog.ProductRef{
		{Name: "Wall Classic", ColorName: "blue", FinishType: "matte", Line: "Premium", Price: 39.9},
		{Name: "Wall Fresh", ColorName: "blue", FinishType: "satin"},
	}}
	slots := intent.SlotSet{RoomType: "bedroom"}

	got := ComposeRecommendation(result, slots)

	for _, want := range []string{"your bedroom", "Wall Classic", "Wall Fresh", "Premium", "$39.90"} {
		if !strings.Contains(got, want) {
			t.Errorf("reply missing %q:\n%s", want, got)
		}
	}
}

func TestComposeRecommendation_AcknowledgesVisualization(t *testing.T) {
	result := synthesis.Result{Products: []catalog.ProductRef{{Name: "Wall Classic", ColorName: "blue"}}}

	got := ComposeRecommendation(result, intent.SlotSet{WantsVisualization: true})
	if !strings.Contains(got, "preview") {
		t.Errorf("reply should acknowledge the visualization request:\n%s", got)
	}
}

func TestComposeColorOffer(t *testing.T) {
	tests := []struct {
		offer specialist.AlternativeColorOffer
		want  string
	}{
		{
			specialist.AlternativeColorOffer{RequestedColor: "purple", Alternatives: []string{"blue", "pink"}},
			"blue or pink",
		},
		{
			specialist.AlternativeColorOffer{RequestedColor: "purple", Alternatives: []string{"blue"}},
			"options in blue",
		},
	}
	for _, tt := range tests {
		got := ComposeColorOffer(tt.offer)
		if !strings.Contains(got, "purple") || !strings.Contains(got, tt.want) {
			t.Errorf("ComposeColorOffer = %q, want mention of purple and %q", got, tt.want)
		}
	}
}

func TestComposeClarification_AsksForTheNextSlot(t *testing.T) {
	tests := []struct {
		slots intent.SlotSet
		want  string
	}{
		{intent.SlotSet{}, "What are you planning to paint"},
		{intent.SlotSet{SurfaceType: "wall"}, "indoors or outdoors"},
		{intent.SlotSet{SurfaceType: "wall", Environment: intent.EnvInterior}, "color in mind"},
	}
	for _, tt := range tests {
		got := ComposeClarification(tt.slots)
		if !strings.Contains(got, tt.want) {
			t.Errorf("ComposeClarification(%+v) = %q, want %q", tt.slots, got, tt.want)
		}
	}
}

type stubWriter struct {
	out   string
	err   error
	delay time.Duration
}

func (s *stubWriter) Rewrite(ctx context.Context, _ string, _ []catalog.ProductRef) (string, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.out, s.err
}

func TestEnhance_UsesWriterOutput(t *testing.T) {
	products := []catalog.ProductRef{{Name: "Wall Classic"}}
	e := NewEnhancer(&stubWriter{out: "You'll love Wall Classic!"}, time.Second, nil)

	got, enhanced := e.Enhance(context.Background(), "draft", products)
	if !enhanced || got != "You'll love Wall Classic!" {
		t.Errorf("Enhance = %q, %v", got, enhanced)
	}
}

func TestEnhance_FallsBackOnError(t *testing.T) {
	e := NewEnhancer(&stubWriter{err: errors.New("model down")}, time.Second, nil)

	got, enhanced := e.Enhance(context.Background(), "draft", nil)
	if enhanced || got != "draft" {
		t.Errorf("Enhance = %q, %v, want the draft", got, enhanced)
	}
}

func TestEnhance_FallsBackOnTimeout(t *testing.T) {
	e := NewEnhancer(&stubWriter{out: "late", delay: 200 * time.Millisecond}, 10*time.Millisecond, nil)

	got, enhanced := e.Enhance(context.Background(), "draft", nil)
	if enhanced || got != "draft" {
		t.Errorf("Enhance = %q, %v, want the draft", got, enhanced)
	}
}

func TestEnhance_FallsBackWhenProductsDropped(t *testing.T) {
	products := []catalog.ProductRef{{Name: "Wall Classic"}, {Name: "Wall Fresh"}}
	e := NewEnhancer(&stubWriter{out: "I recommend Wall Classic, a great choice."}, time.Second, nil)

	got, enhanced := e.Enhance(context.Background(), "draft", products)
	if enhanced || got != "draft" {
		t.Errorf("Enhance = %q, %v, want the draft when a product vanished", got, enhanced)
	}
}

func TestEnhance_NilWriterIsDeterministic(t *testing.T) {
	var e *Enhancer
	got, enhanced := e.Enhance(context.Background(), "draft", nil)
	if enhanced || got != "draft" {
		t.Errorf("Enhance = %q, %v", got, enhanced)
	}
}
