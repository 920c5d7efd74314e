package engine

import (
	"time"

	"github.com/primal100/pool-stats/internal/scoring"
)

// ActionEffect describes what an accepted action did: the narrative line (or
// amendment text), whether the visit changed sides, and the post-action turn
// state. The Events slice carries the declarative transition events the
// presentation layer reacts to.
type ActionEffect struct {
	Side        scoring.Side       `json:"side"`
	Kind        scoring.ActionKind `json:"kind"`
	Narrative   string             `json:"narrative"`
	Append      bool               `json:"append"`
	NewVisit    bool               `json:"new_visit"`
	SideChanged bool               `json:"side_changed"`
	Turn        TurnState          `json:"turn"`
	Events      []TransitionEvent  `json:"events,omitempty"`
}

// Processor orchestrates a single match: it validates incoming actions
// against the turn machine, applies counter deltas, keeps the narrative log
// and retains undo snapshots. All methods are synchronous and must be
// serialized by the caller; the processor holds no locks of its own.
type Processor struct {
	stats   *scoring.Stats
	turn    *TurnMachine
	history *History
	log     narrativeLog

	// now is replaceable so tests can pin narrative timestamps.
	now func() time.Time
}

// NewProcessor creates a processor for a fresh match with the given undo
// depth (values below one use DefaultHistoryDepth).
func NewProcessor(historyDepth int) *Processor {
	return &Processor{
		stats:   scoring.NewStats(),
		turn:    NewTurnMachine(),
		history: NewHistory(historyDepth),
		now:     time.Now,
	}
}

// Stats returns a value copy of both sides' counters.
func (p *Processor) Stats() scoring.Stats { return p.stats.Snapshot() }

// Turn returns the current turn state.
func (p *Processor) Turn() TurnState { return p.turn.State() }

// LogLines returns the narrative log, newest first.
func (p *Processor) LogLines() []string { return p.log.Lines() }

// HistoryLen returns the number of retained undo snapshots.
func (p *Processor) HistoryLen() int { return p.history.Len() }

// Baseline returns the counters as they were before the latest retained
// mutation, for change emphasis. Falls back to the current counters when no
// history is retained, which yields an empty diff.
func (p *Processor) Baseline() scoring.Stats {
	if snap, ok := p.history.Peek(); ok {
		return snap.Stats
	}
	return p.stats.Snapshot()
}

func (p *Processor) snapshot() Snapshot {
	return Snapshot{
		Stats: p.stats.Snapshot(),
		Turn:  p.turn.State(),
		Log:   p.log.Text(),
	}
}

func (p *Processor) restore(s Snapshot) {
	p.stats.Restore(s.Stats)
	p.turn.Restore(s.Turn)
	p.log.Restore(s.Log)
}

// Apply validates and records one (side, kind) action. Validation runs to
// completion before anything mutates: a rejected action leaves counters,
// turn state, log and history exactly as they were.
func (p *Processor) Apply(side scoring.Side, kind scoring.ActionKind) (*ActionEffect, error) {
	st := p.turn.State()

	// Out-of-turn shots are rejected outright; amendments correct the
	// previous shot and may come from either side.
	if st.Phase == PhaseActive && !kind.IsAmendment() && side != st.Active {
		return nil, ErrWrongSideShot
	}

	if kind.IsBreak() && p.stats.Get(side, scoring.FieldBreakShots) >= 1 {
		return nil, ErrDuplicateBreak
	}

	newVisit := !kind.IsAmendment() && (st.Phase == PhaseIdle || st.ShotsTaken == 0)
	if newVisit {
		if err := p.checkVisitBalance(side, st); err != nil {
			return nil, err
		}
	}

	// Snapshot before any mutation so undo restores the exact pre-action
	// state.
	p.history.Push(p.snapshot())

	var events []TransitionEvent

	if kind.IsBreak() && !st.HasBreakSide() {
		p.turn.AssignBreak(side)
		events = append(events, TransitionEvent{Kind: EventBreakTaken, Side: side})
	} else if st.Phase == PhaseIdle {
		p.turn.SetActive(side)
	}

	if newVisit {
		p.stats.Increment(side, scoring.FieldVisits, 1)
	}
	if attempt := kind.AttemptField(); attempt != "" {
		p.stats.Increment(side, attempt, 1)
	}
	if kind == scoring.ActionFoulOnly {
		p.stats.Increment(side, scoring.FieldFouls, 1)
	}
	p.stats.Increment(side, kind.Field(), 1)

	sideChanged := false
	if !kind.IsAmendment() {
		outcome := p.turn.RecordShotOutcome(kind.IsPot(), kind.IsFoul())
		for _, ev := range outcome {
			if ev.Kind == EventSideChanged {
				sideChanged = true
			}
		}
		events = append(events, outcome...)
		// The shot just recorded is now open for amendments.
		events = append(events, TransitionEvent{Kind: EventAmendmentOpened, Side: side})
	}

	effect := &ActionEffect{
		Side:        side,
		Kind:        kind,
		NewVisit:    newVisit,
		SideChanged: sideChanged,
		Turn:        p.turn.State(),
		Events:      events,
	}

	if kind.IsAmendment() {
		effect.Narrative = kind.DisplayName()
		effect.Append = true
		p.log.Amend(effect.Narrative)
	} else {
		effect.Narrative = side.DisplayName() + " " + kind.DisplayName()
		p.log.Record(p.now(), effect.Narrative)
	}

	return effect, nil
}

// checkVisitBalance rejects a visit credit that would let visit counts drift
// apart by more than one, or let a non-break side overtake the break side.
func (p *Processor) checkVisitBalance(side scoring.Side, st TurnState) error {
	mine := p.stats.Get(side, scoring.FieldVisits)
	theirs := p.stats.Get(side.Opponent(), scoring.FieldVisits)
	if mine > theirs {
		return ErrIncorrectVisits
	}
	if st.HasBreakSide() && side != st.BreakSide {
		if mine+1 > p.stats.Get(st.BreakSide, scoring.FieldVisits) {
			return ErrIncorrectVisits
		}
	}
	return nil
}

// Undo rolls the match back to the most recent snapshot: counters, turn
// state and log are replaced wholesale. Returns ErrEmptyHistory (a soft
// warning) when nothing is retained.
func (p *Processor) Undo() error {
	snap, ok := p.history.Pop()
	if !ok {
		return ErrEmptyHistory
	}
	p.restore(snap)
	return nil
}

// Record logs a free-form narrative line (e.g. "Game complete") without
// touching counters or turn state.
func (p *Processor) Record(message string) {
	p.log.Record(p.now(), message)
}

// Reset snapshots the current state (so the reset itself is undoable), then
// zeroes all counters, returns the machine to idle and clears the log.
func (p *Processor) Reset() {
	p.history.Push(p.snapshot())
	p.stats.Reset()
	p.turn.Reset()
	p.log.Clear()
}
