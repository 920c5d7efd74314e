package scoring

import "testing"

func TestStats_IncrementAndGet(t *testing.T) {
	s := NewStats()
	s.Increment(SideTeam1, FieldEasyShots, 1)
	s.Increment(SideTeam1, FieldEasyShots, 1)
	s.Increment(SideTeam2, FieldFouls, 1)

	if got := s.Get(SideTeam1, FieldEasyShots); got != 2 {
		t.Fatalf("expected team1 easy_shots=2, got %d", got)
	}
	if got := s.Get(SideTeam2, FieldFouls); got != 1 {
		t.Fatalf("expected team2 fouls=1, got %d", got)
	}
	if got := s.Get(SideTeam2, FieldEasyShots); got != 0 {
		t.Fatalf("expected team2 easy_shots untouched, got %d", got)
	}
}

func TestStats_TotalIsRecomputedSum(t *testing.T) {
	s := NewStats()
	s.Increment(SideTeam1, FieldVisits, 3)
	s.Increment(SideTeam2, FieldVisits, 2)
	s.Increment(SideTeam1, FieldDifficultPotted, 1)
	s.Increment(SideTeam2, FieldDifficultPotted, 4)

	total := s.Total()
	for _, f := range FieldOrder {
		want := s.Get(SideTeam1, f) + s.Get(SideTeam2, f)
		if got := total.Field(f); got != want {
			t.Fatalf("total %s: expected %d, got %d", f, want, got)
		}
	}

	// Totals must track later mutations: nothing may be cached.
	s.Increment(SideTeam1, FieldVisits, 1)
	if got := s.Total().Visits; got != 6 {
		t.Fatalf("expected recomputed total visits=6, got %d", got)
	}
}

func TestStats_Reset(t *testing.T) {
	s := NewStats()
	for _, f := range FieldOrder {
		s.Increment(SideTeam1, f, 2)
		s.Increment(SideTeam2, f, 3)
	}
	s.Reset()
	for _, f := range FieldOrder {
		if s.Get(SideTeam1, f) != 0 || s.Get(SideTeam2, f) != 0 {
			t.Fatalf("expected %s zeroed after reset", f)
		}
	}
}

func TestStats_SnapshotRestoreRoundTrip(t *testing.T) {
	s := NewStats()
	s.Increment(SideTeam1, FieldBreakShots, 1)
	s.Increment(SideTeam2, FieldSafetyPotted, 2)

	snap := s.Snapshot()
	s.Increment(SideTeam1, FieldBreakShots, 5)
	s.Increment(SideTeam2, FieldVisits, 7)
	s.Restore(snap)

	if got := s.Get(SideTeam1, FieldBreakShots); got != 1 {
		t.Fatalf("expected restored break_shots=1, got %d", got)
	}
	if got := s.Get(SideTeam2, FieldVisits); got != 0 {
		t.Fatalf("expected restored visits=0, got %d", got)
	}
	if got := s.Get(SideTeam2, FieldSafetyPotted); got != 2 {
		t.Fatalf("expected restored safety_potted=2, got %d", got)
	}
}

func TestActionKind_Classification(t *testing.T) {
	if !ActionAdditionalPotted.IsAmendment() || !ActionFoulAmendment.IsAmendment() {
		t.Fatalf("amendment kinds misclassified")
	}
	if ActionFoulOnly.IsAmendment() {
		t.Fatalf("foul_only_shots is a fresh shot, not an amendment")
	}
	if !ActionBreakPotted.IsBreak() || !ActionBreakMissed.IsBreak() {
		t.Fatalf("break kinds misclassified")
	}
	if got := ActionEasyPotted.AttemptField(); got != FieldEasyShots {
		t.Fatalf("expected easy_potted attempt field easy_shots, got %q", got)
	}
	if got := ActionEasyMissed.AttemptField(); got != "" {
		t.Fatalf("misses pair with no attempt field, got %q", got)
	}
	if ActionKind("banana").Valid() {
		t.Fatalf("unknown kind must not validate")
	}
}
