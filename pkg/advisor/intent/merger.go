package intent

import (
	"strings"
	"unicode/utf8"
)

// followUpMaxRunes is the length under which a turn is assumed to refine the
// previous request rather than open a new one.
const followUpMaxRunes = 40

// continuationMarkers open turns that lean on earlier context ("and in
// green?", "what about satin?"). Checked as prefixes of the trimmed text.
var continuationMarkers = []string{
	"and ",
	"and?",
	"what about",
	"how about",
	"or ",
	"also ",
	"ok ",
	"okay",
	"yes",
	"yeah",
	"maybe",
	"actually",
	"instead",
}

var paintActionWords = []string{"paint", "painting", "repaint", "coat", "cover"}

// IsFollowUp classifies a turn against the slots just extracted from it.
// Short turns, turns opening with a continuation marker, and turns that name
// only a finish with no painting action all count as refinements. A turn
// that says what to paint ("paint my office") opens a new request no matter
// how short it is, so slots from an unrelated earlier request cannot leak
// into it.
func IsFollowUp(utterance string, extracted SlotSet) bool {
	trimmed := strings.TrimSpace(strings.ToLower(utterance))
	if trimmed == "" {
		return true
	}
	for _, marker := range continuationMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	if containsAny(trimmed, paintActionWords) &&
		(extracted.SurfaceType != "" || extracted.RoomType != "") {
		return false
	}
	if utf8.RuneCountInString(trimmed) < followUpMaxRunes {
		return true
	}
	if extracted.FinishType != FinishUnknown &&
		extracted.SurfaceType == "" && extracted.RoomType == "" &&
		!containsAny(trimmed, paintActionWords) {
		return true
	}
	return false
}

// Merge combines remembered slots with those extracted from the current
// turn. Follow-ups keep every remembered value the turn does not override;
// a new request discards memory entirely. Surface normalization runs on the
// result unconditionally so remembered location words collapse the same way
// fresh ones do.
func Merge(memory, extracted SlotSet, utterance string) SlotSet {
	var merged SlotSet
	if IsFollowUp(utterance, extracted) {
		merged = memory
		if extracted.Environment != EnvUnknown {
			merged.Environment = extracted.Environment
		}
		if extracted.SurfaceType != "" {
			merged.SurfaceType = extracted.SurfaceType
		}
		if extracted.Color != "" {
			merged.Color = extracted.Color
		}
		if extracted.FinishType != FinishUnknown {
			merged.FinishType = extracted.FinishType
		}
		if extracted.RoomType != "" {
			merged.RoomType = extracted.RoomType
		}
		if extracted.HasAudience() {
			merged.Audience = extracted.Audience
		}
		// Visualization is a per-turn request, not a standing preference.
		merged.WantsVisualization = extracted.WantsVisualization
	} else {
		merged = extracted
	}

	merged.SurfaceType = NormalizeSurface(merged.SurfaceType)
	return merged
}

func containsAny(msg string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(msg, term) {
			return true
		}
	}
	return false
}
