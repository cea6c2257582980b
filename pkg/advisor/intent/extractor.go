package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// historyWindow limits how far back the extractor looks when the current
// utterance leaves a slot empty.
const historyWindow = 6

var ageRe = regexp.MustCompile(`\b(\d{1,2})[\s-]*(?:years?[\s-]*old|years?|yrs?|yo)\b`)

// Extract reads one utterance (plus optional trailing history, most recent
// last) into a SlotSet. It never consults session memory; merging remembered
// slots is the Merger's job.
func Extract(utterance string, history []Turn) SlotSet {
	msg := strings.ToLower(utterance)

	slots := extractFrom(msg)
	slots.Audience = extractAudience(msg)
	slots.WantsVisualization = wantsVisualization(msg)

	// Back-fill still-empty slots from the freshest history first. A slot
	// filled by the utterance itself is never overridden.
	for i := len(history) - 1; i >= 0 && i >= len(history)-historyWindow; i-- {
		if slots.Color != "" && slots.Environment != EnvUnknown &&
			slots.FinishType != FinishUnknown && slots.SurfaceType != "" && slots.RoomType != "" {
			break
		}
		past := extractFrom(strings.ToLower(history[i].Text))
		if slots.Color == "" {
			slots.Color = past.Color
		}
		if slots.FinishType == FinishUnknown {
			slots.FinishType = past.FinishType
		}
		if slots.SurfaceType == "" {
			slots.SurfaceType = past.SurfaceType
		}
		if slots.RoomType == "" {
			slots.RoomType = past.RoomType
		}
		if slots.Environment == EnvUnknown {
			slots.Environment = past.Environment
		}
	}

	// A room implies an environment, but a wood or metal surface can live
	// either side of the front door, so those keep the environment open.
	if slots.Environment == EnvUnknown && slots.RoomType != "" &&
		slots.SurfaceType != "wood" && slots.SurfaceType != "metal" {
		if r, ok := lookupRoomByName(slots.RoomType); ok {
			slots.Environment = r.environment
		}
	}

	return slots
}

// extractFrom runs the alias tables over already-lowercased text.
func extractFrom(msg string) SlotSet {
	var slots SlotSet
	slots.Color = lookupAlias(msg, colorAliases)
	slots.Environment = Environment(lookupAlias(msg, environmentAliases))
	slots.FinishType = Finish(lookupAlias(msg, finishAliases))
	slots.SurfaceType = lookupAlias(msg, surfaceAliases)
	if r, ok := lookupRoom(msg); ok {
		slots.RoomType = r.canonical
	}
	return slots
}

func extractAudience(msg string) Audience {
	label := lookupAlias(msg, audienceAliases)
	if label == "" {
		return Audience{}
	}
	aud := Audience{Label: label}
	if m := ageRe.FindStringSubmatch(msg); m != nil {
		if age, err := strconv.Atoi(m[1]); err == nil {
			aud.Age = age
		}
	}
	return aud
}

func wantsVisualization(msg string) bool {
	for _, marker := range visualizationMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func lookupRoomByName(name string) (roomAlias, bool) {
	for _, r := range roomAliases {
		if r.canonical == name {
			return r, true
		}
	}
	return roomAlias{}, false
}
