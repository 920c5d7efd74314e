package engine

import (
	"testing"

	"github.com/primal100/pool-stats/internal/scoring"
)

func TestTurnMachine_StartsIdle(t *testing.T) {
	m := NewTurnMachine()
	st := m.State()
	if st.Phase != PhaseIdle {
		t.Fatalf("expected idle phase, got %q", st.Phase)
	}
	if st.HasBreakSide() {
		t.Fatalf("expected no break side before the opening break")
	}
}

func TestTurnMachine_SetActive(t *testing.T) {
	m := NewTurnMachine()
	m.SetActive(scoring.SideTeam2)
	st := m.State()
	if st.Phase != PhaseActive || st.Active != scoring.SideTeam2 || st.Standby != scoring.SideTeam1 {
		t.Fatalf("unexpected state after SetActive: %+v", st)
	}
	if st.ShotsLeft != 1 || st.ShotsTaken != 0 {
		t.Fatalf("expected fresh visit allowance, got shotsLeft=%d shotsTaken=%d", st.ShotsLeft, st.ShotsTaken)
	}
}

func TestTurnMachine_AssignBreakFromIdle(t *testing.T) {
	m := NewTurnMachine()
	m.AssignBreak(scoring.SideTeam1)
	st := m.State()
	if st.BreakSide != scoring.SideTeam1 {
		t.Fatalf("expected break side team1, got %q", st.BreakSide)
	}
	if st.Active != scoring.SideTeam1 || st.ShotsLeft != 1 {
		t.Fatalf("expected breaking side at the table with one shot, got %+v", st)
	}
}

func TestTurnMachine_BreakSideFixedOnceSet(t *testing.T) {
	m := NewTurnMachine()
	m.AssignBreak(scoring.SideTeam1)
	m.AssignBreak(scoring.SideTeam2)
	if st := m.State(); st.BreakSide != scoring.SideTeam1 {
		t.Fatalf("break side must not be reassigned, got %q", st.BreakSide)
	}
}

func TestTurnMachine_PotKeepsVisitAlive(t *testing.T) {
	m := NewTurnMachine()
	m.SetActive(scoring.SideTeam1)
	events := m.RecordShotOutcome(true, false)
	if len(events) != 0 {
		t.Fatalf("a pot must not emit transition events, got %v", events)
	}
	st := m.State()
	if st.Active != scoring.SideTeam1 || st.ShotsLeft != 1 || st.ShotsTaken != 1 {
		t.Fatalf("unexpected state after pot: %+v", st)
	}
}

func TestTurnMachine_MissExhaustsAllowanceAndTurnsOver(t *testing.T) {
	m := NewTurnMachine()
	m.SetActive(scoring.SideTeam1)
	events := m.RecordShotOutcome(false, false)
	if len(events) != 1 || events[0].Kind != EventSideChanged || events[0].Side != scoring.SideTeam2 {
		t.Fatalf("expected side-changed event to team2, got %v", events)
	}
	st := m.State()
	if st.Active != scoring.SideTeam2 || st.ShotsLeft != 1 || st.ShotsTaken != 0 {
		t.Fatalf("unexpected state after turnover: %+v", st)
	}
}

func TestTurnMachine_MissWithShotsRemainingKeepsSide(t *testing.T) {
	m := NewTurnMachine()
	m.SetActive(scoring.SideTeam1)
	m.state.ShotsLeft = 2
	events := m.RecordShotOutcome(false, false)
	if len(events) != 0 {
		t.Fatalf("expected no turnover with shots remaining, got %v", events)
	}
	st := m.State()
	if st.Active != scoring.SideTeam1 || st.ShotsLeft != 1 || st.ShotsTaken != 1 {
		t.Fatalf("unexpected state: %+v", st)
	}
}

func TestTurnMachine_FoulGrantsTwoShots(t *testing.T) {
	m := NewTurnMachine()
	m.SetActive(scoring.SideTeam2)
	events := m.RecordShotOutcome(false, true)
	if len(events) != 1 || events[0].Kind != EventSideChanged || events[0].Side != scoring.SideTeam1 {
		t.Fatalf("expected side-changed event to team1, got %v", events)
	}
	st := m.State()
	if st.Active != scoring.SideTeam1 || st.ShotsLeft != 2 {
		t.Fatalf("expected incoming shooter with two shots after foul, got %+v", st)
	}
}

func TestTurnMachine_ResetReturnsToIdle(t *testing.T) {
	m := NewTurnMachine()
	m.AssignBreak(scoring.SideTeam1)
	m.RecordShotOutcome(true, false)
	m.Reset()
	st := m.State()
	if st.Phase != PhaseIdle || st.HasBreakSide() || st.ShotsLeft != 0 {
		t.Fatalf("expected clean idle state after reset, got %+v", st)
	}
}

func TestTurnMachine_RestoreRoundTrip(t *testing.T) {
	m := NewTurnMachine()
	m.AssignBreak(scoring.SideTeam2)
	m.RecordShotOutcome(true, false)
	snap := m.State()

	m.RecordShotOutcome(false, false)
	m.Restore(snap)
	if m.State() != snap {
		t.Fatalf("expected restored state %+v, got %+v", snap, m.State())
	}
}
