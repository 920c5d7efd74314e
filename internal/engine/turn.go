package engine

import (
	"github.com/primal100/pool-stats/internal/scoring"
)

// Phase distinguishes "no side at the table" from an active visit so that an
// unset side can never be confused with any other zero value.
type Phase string

const (
	// PhaseIdle is the pre-match (or post-reset) state: no active side.
	PhaseIdle Phase = "idle"
	// PhaseActive means a side is at the table with a shot allowance.
	PhaseActive Phase = "active"
)

// TurnState is a value snapshot of the turn machine. BreakSide stays empty
// until the opening break is taken and is fixed for the rest of the match.
type TurnState struct {
	Phase      Phase        `json:"phase"`
	Active     scoring.Side `json:"active_side,omitempty"`
	Standby    scoring.Side `json:"standby_side,omitempty"`
	BreakSide  scoring.Side `json:"break_side,omitempty"`
	ShotsLeft  int          `json:"shots_left"`
	ShotsTaken int          `json:"shots_taken_current_visit"`
}

// HasBreakSide reports whether the opening break has been assigned.
func (s TurnState) HasBreakSide() bool { return s.BreakSide != "" }

// EventKind names a declarative transition event emitted by the machine.
// The presentation layer subscribes to these instead of the core touching
// any widget state directly.
type EventKind string

const (
	// EventSideChanged fires when the visit passes to the other side.
	EventSideChanged EventKind = "side_changed"
	// EventAmendmentOpened fires when a recorded shot becomes amendable
	// (additional pot / foul) for the side that just shot.
	EventAmendmentOpened EventKind = "amendment_opened"
	// EventBreakTaken fires once when the opening break side is fixed.
	EventBreakTaken EventKind = "break_taken"
)

// TransitionEvent pairs an event kind with the side it concerns.
type TransitionEvent struct {
	Kind EventKind    `json:"kind"`
	Side scoring.Side `json:"side"`
}

// TurnMachine enforces legal shot sequencing: whose turn it is, who is
// waiting, who broke, and how many shots remain in the current visit.
type TurnMachine struct {
	state TurnState
}

// NewTurnMachine returns a machine in the idle state.
func NewTurnMachine() *TurnMachine {
	return &TurnMachine{state: TurnState{Phase: PhaseIdle}}
}

// State returns a value copy of the current turn state.
func (m *TurnMachine) State() TurnState { return m.state }

// Restore replaces the machine state wholesale with a snapshot.
func (m *TurnMachine) Restore(s TurnState) { m.state = s }

// Reset returns the machine to idle, clearing the break side.
func (m *TurnMachine) Reset() {
	m.state = TurnState{Phase: PhaseIdle}
}

// SetActive hands the table to side: the standby side becomes its opponent
// and the visit starts fresh with a single-shot allowance.
func (m *TurnMachine) SetActive(side scoring.Side) {
	m.state = TurnState{
		Phase:      PhaseActive,
		Active:     side,
		Standby:    side.Opponent(),
		BreakSide:  m.state.BreakSide,
		ShotsLeft:  1,
		ShotsTaken: 0,
	}
}

// AssignBreak fixes the opening break side. From idle it also puts the
// breaking side at the table; the following shot outcome then decides
// whether the visit survives (a missed break turns the table over through
// the normal allowance rules).
func (m *TurnMachine) AssignBreak(side scoring.Side) {
	if m.state.Phase == PhaseIdle {
		m.SetActive(side)
	}
	if m.state.BreakSide == "" {
		m.state.BreakSide = side
	}
}

// RecordShotOutcome applies a non-amendment shot result to the current
// visit and returns the transition events it produced.
//
// A pot keeps the visit alive. A miss consumes a shot from the allowance; an
// exhausted allowance turns the table over. A foul always turns the table
// over and grants the incoming shooter a two-shot allowance. The two-shot
// rule is league-dependent; this machine treats it as authoritative.
func (m *TurnMachine) RecordShotOutcome(potted, foul bool) []TransitionEvent {
	if m.state.Phase != PhaseActive {
		return nil
	}

	if potted && !foul {
		m.state.ShotsTaken++
		return nil
	}

	// A miss (including a pure foul) consumes a shot.
	m.state.ShotsLeft--

	if foul {
		next := m.state.Standby
		m.SetActive(next)
		m.state.ShotsLeft = 2
		return []TransitionEvent{{Kind: EventSideChanged, Side: next}}
	}

	if m.state.ShotsLeft <= 0 {
		next := m.state.Standby
		m.SetActive(next)
		return []TransitionEvent{{Kind: EventSideChanged, Side: next}}
	}

	m.state.ShotsTaken++
	return nil
}
