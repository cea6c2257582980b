// Package advisor orchestrates one conversational turn: extract slots,
// merge them with session memory, consult the specialist registry,
// synthesize a product list and compose the reply. All collaborators sit
// behind interfaces so a turn is deterministic up to the catalog contents.
package advisor

import (
	"context"
	"log"

	"github.com/google/uuid"

	"paint-advisor-be/pkg/advisor/intent"
	"paint-advisor-be/pkg/advisor/response"
	"paint-advisor-be/pkg/advisor/specialist"
	"paint-advisor-be/pkg/advisor/state"
	"paint-advisor-be/pkg/advisor/synthesis"
	"paint-advisor-be/pkg/catalog"
)

// Reply modes reported to the caller.
const (
	ModeDeterministic = "deterministic"
	ModeEnhanced      = "enhanced"
)

// TurnResult is everything one turn produced.
type TurnResult struct {
	Reply                string
	Products             []catalog.ProductRef
	SpecialistsConsulted []string
	Mode                 string
	Pending              *state.PendingAction // nil when nothing is open
	Slots                intent.SlotSet
}

// Engine runs the dialogue pipeline over a session store.
type Engine struct {
	store    state.Store
	registry *specialist.Registry
	synth    *synthesis.Synthesizer
	enhancer *response.Enhancer
	logger   *log.Logger
}

func NewEngine(
	store state.Store,
	registry *specialist.Registry,
	synth *synthesis.Synthesizer,
	enhancer *response.Enhancer,
	logger *log.Logger,
) *Engine {
	return &Engine{
		store:    store,
		registry: registry,
		synth:    synth,
		enhancer: enhancer,
		logger:   logger,
	}
}

// HandleTurn processes one utterance for a session key. Turns on the same
// key are serialized by the store; session mutations are committed only
// when the turn ran to completion, so a cancelled or failed turn leaves the
// session exactly as it was.
func (e *Engine) HandleTurn(ctx context.Context, sessionKey, utterance string) (*TurnResult, error) {
	work, release := e.store.Acquire(sessionKey)
	defer release()

	if work.Pending != nil {
		if result, done := e.resolvePending(ctx, work, utterance); done {
			return result, ctx.Err()
		}
		// The reply did not answer the question. Drop it and treat the
		// turn as a fresh request.
		work.Pending = nil
	}

	// History only backs up a follow-up; a fresh request is read from the
	// utterance alone so old slots cannot leak into it.
	extracted := intent.Extract(utterance, nil)
	if intent.IsFollowUp(utterance, extracted) {
		extracted = intent.Extract(utterance, work.RecentTurns)
	}
	merged := intent.Merge(work.SlotMemory, extracted, utterance)
	return e.runPipeline(ctx, work, utterance, merged, intent.ExtractFeatureIntents(utterance))
}

// Reset discards the session for a key.
func (e *Engine) Reset(sessionKey string) {
	e.store.Reset(sessionKey)
}

// resolvePending handles a turn arriving while an alternative-color
// question is open. Returns done=false when the turn does not answer it.
func (e *Engine) resolvePending(ctx context.Context, work *state.Session, utterance string) (*TurnResult, bool) {
	pending := work.Pending

	// Naming one of the offered colors accepts it regardless of the stance
	// wording around it ("no, pink then" picks pink).
	chosen := ""
	if c := intent.Extract(utterance, nil).Color; c != "" {
		for _, alt := range pending.Alternatives {
			if alt == c {
				chosen = c
				break
			}
		}
		if chosen == "" {
			return nil, false
		}
	}

	if chosen == "" {
		switch state.ClassifyReply(utterance) {
		case state.StanceNegative:
			work.Pending = nil
			reply := response.ComposeOfferDeclined()
			e.commit(ctx, work, utterance, reply, work.SlotMemory, nil)
			return &TurnResult{
				Reply: reply,
				Mode:  ModeDeterministic,
				Slots: work.SlotMemory,
			}, true
		case state.StanceAffirmative:
			chosen = e.firstViableAlternative(ctx, pending)
		default:
			return nil, false
		}
	}

	if chosen == "" {
		return nil, false
	}

	slots := pending.Slots
	slots.Color = chosen
	work.Pending = nil
	result, err := e.runPipeline(ctx, work, utterance, slots, nil)
	if err != nil {
		return nil, true
	}
	return result, true
}

// firstViableAlternative probes the offered colors in order and returns the
// first one the specialists still find products for under the pending
// slots. When none survive, the first offer is kept so the pipeline can
// report the miss itself.
func (e *Engine) firstViableAlternative(ctx context.Context, pending *state.PendingAction) string {
	for _, alt := range pending.Alternatives {
		slots := pending.Slots
		slots.Color = alt
		recs := e.registry.Consult(ctx, specialist.Consultation{Slots: slots})
		for _, rec := range recs {
			if len(rec.Candidates) > 0 {
				return alt
			}
		}
	}
	if len(pending.Alternatives) > 0 {
		return pending.Alternatives[0]
	}
	return ""
}

// runPipeline consults, synthesizes, composes and commits.
func (e *Engine) runPipeline(
	ctx context.Context,
	work *state.Session,
	utterance string,
	slots intent.SlotSet,
	featureIntents []string,
) (*TurnResult, error) {
	consultation := specialist.Consultation{Slots: slots, FeatureIntents: featureIntents}
	recs := e.registry.Consult(ctx, consultation)
	result := e.synth.Synthesize(ctx, utterance, slots, featureIntents, recs, work.RecentlyRecommended)

	turn := &TurnResult{
		Products:             result.Products,
		SpecialistsConsulted: result.Sources,
		Mode:                 ModeDeterministic,
		Slots:                slots,
	}

	var nextPending *state.PendingAction
	switch {
	case result.ColorOffer != nil:
		turn.Reply = response.ComposeColorOffer(*result.ColorOffer)
		nextPending = &state.PendingAction{
			Kind:           state.PendingSuggestAlternativeColors,
			RequestedColor: result.ColorOffer.RequestedColor,
			Alternatives:   result.ColorOffer.Alternatives,
			Slots:          slots,
		}
		turn.Pending = nextPending
	case len(result.Products) > 0:
		draft := response.ComposeRecommendation(result, slots)
		reply, enhanced := e.enhancer.Enhance(ctx, draft, result.Products)
		turn.Reply = reply
		if enhanced {
			turn.Mode = ModeEnhanced
		}
	case slots.IsEmpty() || (slots.SurfaceType == "" && slots.RoomType == "" && slots.Color == ""):
		turn.Reply = response.ComposeClarification(slots)
	default:
		turn.Reply = response.ComposeEmpty(slots)
	}

	// A cancelled turn must not leave half a conversation behind.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	work.Pending = nextPending
	e.commit(ctx, work, utterance, turn.Reply, slots, productIds(result.Products))
	return turn, nil
}

// commit applies the turn's session mutations in one shot.
func (e *Engine) commit(ctx context.Context, work *state.Session, utterance, reply string, slots intent.SlotSet, recommended []uuid.UUID) {
	if ctx.Err() != nil {
		return
	}
	work.SlotMemory = slots
	work.AppendTurn("user", utterance)
	work.AppendTurn("assistant", reply)
	work.RememberRecommended(recommended)
	e.store.Commit(work)
}

func productIds(products []catalog.ProductRef) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.Id)
	}
	return ids
}
