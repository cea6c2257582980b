package intent

import "testing"

func TestIsFollowUp(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		extracted SlotSet
		want      bool
	}{
		{
			name:      "short turn is a follow-up",
			utterance: "and in green?",
			want:      true,
		},
		{
			name:      "continuation marker on a long turn",
			utterance: "what about something a bit darker, I was thinking navy or maybe charcoal",
			want:      true,
		},
		{
			name:      "finish-only mention without painting action",
			utterance: "I would prefer the satin version of that one if it is available",
			extracted: SlotSet{FinishType: FinishSatin},
			want:      true,
		},
		{
			name:      "short painting request naming a room is new",
			utterance: "I want to paint my office gray",
			extracted: SlotSet{Environment: EnvInterior, Color: "gray", RoomType: "office"},
			want:      false,
		},
		{
			name:      "short painting request naming a surface is new",
			utterance: "paint the garden fence",
			extracted: SlotSet{SurfaceType: "fence"},
			want:      false,
		},
		{
			name:      "long fresh request with a surface is new",
			utterance: "I need paint for my garden fence, something that survives heavy rain",
			extracted: SlotSet{SurfaceType: "fence"},
			want:      false,
		},
		{
			name:      "long painting request resets even with a finish",
			utterance: "I want to paint the whole exterior in a matte finish before winter arrives",
			extracted: SlotSet{Environment: EnvExterior, FinishType: FinishMatte},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFollowUp(tt.utterance, tt.extracted); got != tt.want {
				t.Errorf("IsFollowUp(%q) = %v, want %v", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestMerge_FollowUpKeepsMemory(t *testing.T) {
	memory := SlotSet{
		Environment: EnvInterior,
		SurfaceType: "wall",
		Color:       "blue",
		FinishType:  FinishMatte,
		RoomType:    "bedroom",
	}
	extracted := SlotSet{Color: "green"}

	got := Merge(memory, extracted, "and in green?")

	want := memory
	want.Color = "green"
	if got != want {
		t.Errorf("Merge = %+v, want %+v", got, want)
	}
}

func TestMerge_NewRequestDiscardsMemory(t *testing.T) {
	memory := SlotSet{
		Environment: EnvInterior,
		SurfaceType: "wall",
		Color:       "blue",
		RoomType:    "bedroom",
	}
	extracted := SlotSet{Environment: EnvExterior, SurfaceType: "metal"}
	utterance := "now I need something completely different for the metal gate outside"

	got := Merge(memory, extracted, utterance)

	want := SlotSet{Environment: EnvExterior, SurfaceType: "metal"}
	if got != want {
		t.Errorf("Merge = %+v, want %+v (memory must not leak into a new request)", got, want)
	}
}

func TestMerge_ShortNewRequestDropsSurfaceMemory(t *testing.T) {
	memory := SlotSet{SurfaceType: "wood", FinishType: FinishSatin}
	extracted := SlotSet{Environment: EnvInterior, Color: "gray", RoomType: "office"}

	got := Merge(memory, extracted, "I want to paint my office gray")

	if got.SurfaceType == "wood" || got.FinishType == FinishSatin {
		t.Errorf("Merge = %+v, prior request leaked in", got)
	}
	if got.Color != "gray" || got.RoomType != "office" {
		t.Errorf("Merge = %+v, current turn slots lost", got)
	}
}

func TestMerge_NormalizesRememberedSurface(t *testing.T) {
	memory := SlotSet{SurfaceType: "facade", Environment: EnvExterior}

	got := Merge(memory, SlotSet{Color: "white"}, "in white?")

	if got.SurfaceType != "wall" {
		t.Errorf("SurfaceType = %q, want %q", got.SurfaceType, "wall")
	}
}

func TestMerge_NormalizationIsIdempotent(t *testing.T) {
	memory := SlotSet{SurfaceType: "fence"}

	once := Merge(memory, SlotSet{}, "ok")
	twice := Merge(once, SlotSet{}, "ok")

	if once != twice {
		t.Errorf("repeated merge changed slots: %+v then %+v", once, twice)
	}
	if twice.SurfaceType != "wall" {
		t.Errorf("SurfaceType = %q, want %q", twice.SurfaceType, "wall")
	}
}

func TestMerge_VisualizationDoesNotPersist(t *testing.T) {
	memory := SlotSet{Color: "blue", WantsVisualization: true}

	got := Merge(memory, SlotSet{FinishType: FinishGloss}, "glossy please")

	if got.WantsVisualization {
		t.Error("WantsVisualization must reset every turn")
	}
	if got.Color != "blue" {
		t.Errorf("Color = %q, want %q", got.Color, "blue")
	}
}
