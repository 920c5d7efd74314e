package scoring

// Stats holds the raw counters for both sides. The combined total is never
// stored: it is recomputed on every call to Total so it cannot go stale.
//
// Stats is a plain value type; copying it copies every counter, which is what
// the undo history relies on for snapshots.
type Stats struct {
	Team1 TeamStats `json:"team1"`
	Team2 TeamStats `json:"team2"`
}

// NewStats returns an all-zero counter set for both sides.
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) side(side Side) *TeamStats {
	if side == SideTeam2 {
		return &s.Team2
	}
	return &s.Team1
}

// Get returns the named counter for a side.
func (s *Stats) Get(side Side, field string) int {
	return s.side(side).Field(field)
}

// Increment adds by to the named counter for a side. No validation happens
// here; the action processor is the only caller and submits legal deltas.
func (s *Stats) Increment(side Side, field string, by int) {
	s.side(side).Add(field, by)
}

// Team returns a copy of one side's counters.
func (s *Stats) Team(side Side) TeamStats {
	return *s.side(side)
}

// Total returns the element-wise sum of both sides' counters.
func (s *Stats) Total() TeamStats {
	return s.Team1.Plus(s.Team2)
}

// Reset zeroes every counter on both sides.
func (s *Stats) Reset() {
	s.Team1 = TeamStats{}
	s.Team2 = TeamStats{}
}

// Snapshot returns a value copy of the full counter state.
func (s *Stats) Snapshot() Stats {
	return *s
}

// Restore replaces the full counter state with a previously taken snapshot.
func (s *Stats) Restore(snap Stats) {
	*s = snap
}
