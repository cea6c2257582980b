package specialist

import (
	"context"

	"paint-advisor-be/pkg/catalog"
)

// colorSubstitutes maps a color to the closest colors worth offering when
// the requested one is missing from the catalog.
var colorSubstitutes = map[string][]string{
	"purple": {"blue", "pink"},
	"orange": {"red", "yellow"},
	"pink":   {"red", "purple"},
	"beige":  {"white", "brown"},
	"brown":  {"beige", "red"},
	"gray":   {"white", "black"},
	"black":  {"gray", "brown"},
	"yellow": {"orange", "beige"},
}

const maxAlternatives = 2

// buildColorOffer proposes up to two substitute colors that actually exist
// in the catalog. Preference order: the substitution table first, then the
// most stocked catalog colors. Returns nil when nothing can be offered.
func buildColorOffer(ctx context.Context, q catalog.Query, requested string) *AlternativeColorOffer {
	counts, err := q.AvailableColors(ctx)
	if err != nil || len(counts) == 0 {
		return nil
	}

	available := make(map[string]bool, len(counts))
	for _, c := range counts {
		available[c.Name] = true
	}

	var alternatives []string
	for _, sub := range colorSubstitutes[requested] {
		if available[sub] {
			alternatives = append(alternatives, sub)
		}
		if len(alternatives) == maxAlternatives {
			break
		}
	}
	for _, c := range counts {
		if len(alternatives) == maxAlternatives {
			break
		}
		if c.Name == requested || contains(alternatives, c.Name) {
			continue
		}
		alternatives = append(alternatives, c.Name)
	}

	if len(alternatives) == 0 {
		return nil
	}
	return &AlternativeColorOffer{RequestedColor: requested, Alternatives: alternatives}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
