package state

import "strings"

// Stance is how a user's turn answers an open yes/no style question.
type Stance int

const (
	StanceUnclear Stance = iota
	StanceAffirmative
	StanceNegative
)

var affirmativeMarkers = []string{
	"yes", "yeah", "yep", "sure", "ok", "okay", "sounds good",
	"please do", "go ahead", "why not", "fine", "alright", "perfect",
	"great", "show me",
}

var negativeMarkers = []string{
	"no", "nope", "nah", "rather not", "don't", "do not",
	"not really", "never mind", "nevermind", "forget it", "something else",
}

// ClassifyReply decides whether a turn accepts or declines an open question.
// Negative markers win on conflict ("no thanks, but sure looks nice" is a
// decline). Anything else is unclear and falls through to a fresh pipeline
// run.
func ClassifyReply(utterance string) Stance {
	msg := strings.ToLower(strings.TrimSpace(utterance))
	if msg == "" {
		return StanceUnclear
	}
	for _, marker := range negativeMarkers {
		if matchesMarker(msg, marker) {
			return StanceNegative
		}
	}
	for _, marker := range affirmativeMarkers {
		if matchesMarker(msg, marker) {
			return StanceAffirmative
		}
	}
	return StanceUnclear
}

// matchesMarker looks for a marker as a whole word or phrase so "no" does
// not fire inside "navy" or "know".
func matchesMarker(msg, marker string) bool {
	idx := 0
	for {
		i := strings.Index(msg[idx:], marker)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(marker)
		beforeOk := start == 0 || !isWordRune(msg[start-1])
		afterOk := end == len(msg) || !isWordRune(msg[end])
		if beforeOk && afterOk {
			return true
		}
		idx = start + 1
	}
}

func isWordRune(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '\''
}
