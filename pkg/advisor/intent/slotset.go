package intent

// Environment is where the paint will be applied.
type Environment string

const (
	EnvUnknown  Environment = ""
	EnvInterior Environment = "interior"
	EnvExterior Environment = "exterior"
)

// Finish is the paint finish requested by the user.
type Finish string

const (
	FinishUnknown   Finish = ""
	FinishMatte     Finish = "matte"
	FinishSatin     Finish = "satin"
	FinishGloss     Finish = "gloss"
	FinishSemiGloss Finish = "semi-gloss"
)

// Audience captures who the painted room is for (a child's bedroom, a
// nursery). Label empty means no audience was mentioned.
type Audience struct {
	Label string // "child", "infant", "teenager"
	Age   int    // 0 when not stated
}

// SlotSet is the structured intent extracted from one conversational turn,
// possibly merged with session memory. It is a pure value: merging always
// produces a new SlotSet, never mutates an existing one.
type SlotSet struct {
	Environment        Environment
	SurfaceType        string // "wall", "wood", "metal", ... empty = unknown
	Color              string
	FinishType         Finish
	RoomType           string // "bedroom", "kitchen", ... empty = none
	Audience           Audience
	WantsVisualization bool
}

// Turn is one utterance of trailing conversation history.
type Turn struct {
	Role string // "user" or "assistant"
	Text string
}

// HasAudience reports whether an audience slot was filled.
func (s SlotSet) HasAudience() bool {
	return s.Audience.Label != ""
}

// IsEmpty reports whether no slot at all was filled.
func (s SlotSet) IsEmpty() bool {
	return s.Environment == EnvUnknown &&
		s.SurfaceType == "" &&
		s.Color == "" &&
		s.FinishType == FinishUnknown &&
		s.RoomType == "" &&
		!s.HasAudience() &&
		!s.WantsVisualization
}
