package response

import (
	"fmt"
	"strings"

	"paint-advisor-be/pkg/advisor/intent"
	"paint-advisor-be/pkg/advisor/specialist"
	"paint-advisor-be/pkg/advisor/synthesis"
	"paint-advisor-be/pkg/catalog"
)

// Composer renders deterministic replies. Every enhanced reply starts from
// one of these drafts, so the system stays fully usable with no model
// behind it.

// ComposeRecommendation renders the product list reply.
func ComposeRecommendation(result synthesis.Result, slots intent.SlotSet) string {
	var b strings.Builder

	b.WriteString(openingLine(slots, len(result.Products)))
	b.WriteString("\n")
	for i, p := range result.Products {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, describeProduct(p)))
	}

	if result.SemanticFallback {
		b.WriteString("\n\nThese came from a broader match on your description, tell me more and I can narrow it down.")
	}
	if slots.WantsVisualization {
		b.WriteString("\n\nI can't render a preview here yet, but any of these color names can be looked up on a physical swatch card.")
	}

	b.WriteString("\n\nWould you like more detail on any of these?")
	return b.String()
}

// ComposeColorOffer renders the unavailable-color reply that opens the
// alternative-color question.
func ComposeColorOffer(offer specialist.AlternativeColorOffer) string {
	alts := offer.Alternatives
	var choice string
	switch len(alts) {
	case 1:
		choice = alts[0]
	default:
		choice = strings.Join(alts[:len(alts)-1], ", ") + " or " + alts[len(alts)-1]
	}
	return fmt.Sprintf(
		"Unfortunately we don't have anything in %s right now. Would you like to see options in %s instead?",
		offer.RequestedColor, choice)
}

// ComposeClarification asks for the most useful missing slot.
func ComposeClarification(slots intent.SlotSet) string {
	switch {
	case slots.SurfaceType == "" && slots.RoomType == "":
		return "Happy to help you pick a paint. What are you planning to paint, a wall, wood or metal?"
	case slots.Environment == intent.EnvUnknown:
		return "Got it. Is that indoors or outdoors?"
	case slots.Color == "":
		return "Almost there. Do you have a color in mind?"
	default:
		return "Could you tell me a bit more about what you're looking for?"
	}
}

// ComposeEmpty is the nothing-matched reply.
func ComposeEmpty(slots intent.SlotSet) string {
	if slots.IsEmpty() {
		return ComposeClarification(slots)
	}
	return "I couldn't find a product matching all of that. Could we relax one of the requirements, maybe the finish or the color?"
}

// ComposeOfferDeclined closes an alternative-color question the user turned
// down.
func ComposeOfferDeclined() string {
	return "No problem. Is there anything else I can help you find?"
}

func openingLine(slots intent.SlotSet, count int) string {
	subject := "your project"
	switch {
	case slots.RoomType != "":
		subject = "your " + slots.RoomType
	case slots.SurfaceType != "":
		subject = "your " + slots.SurfaceType
	case slots.Environment == intent.EnvExterior:
		subject = "your exterior"
	case slots.Environment == intent.EnvInterior:
		subject = "your interior"
	}
	if count == 1 {
		return fmt.Sprintf("Here is a good option for %s:", subject)
	}
	return fmt.Sprintf("Here are some options for %s:", subject)
}

func describeProduct(p catalog.ProductRef) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%s", p.Name, p.ColorName))
	if p.FinishType != "" {
		b.WriteString(", " + p.FinishType)
	}
	b.WriteString(")")
	if p.Line != "" {
		b.WriteString(" from the " + p.Line + " line")
	}
	if p.Price > 0 {
		b.WriteString(fmt.Sprintf(", from $%.2f", p.Price))
	}
	if p.Features != "" {
		b.WriteString(". Features: " + p.Features)
	}
	return b.String()
}
