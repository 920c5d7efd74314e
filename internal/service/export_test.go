package service

import (
	"strings"
	"testing"

	"github.com/primal100/pool-stats/internal/scoring"
)

func TestExportRecord_ValuesOrdering(t *testing.T) {
	rec := ExportRecord{
		StartTime: "2025-03-14 20:00:00",
		EndTime:   "N/A",
		Team1:     scoring.TeamStats{Visits: 3, EasyShots: 2, EasyPotted: 1},
		Team2:     scoring.TeamStats{Visits: 3, Fouls: 2, FoulOnlyShots: 2},
	}

	values := rec.Values()
	if len(values) != 2+2*len(scoring.FieldOrder) {
		t.Fatalf("expected %d values, got %d", 2+2*len(scoring.FieldOrder), len(values))
	}
	if values[0] != "2025-03-14 20:00:00" || values[1] != "N/A" {
		t.Fatalf("times must lead the tuple, got %v", values[:2])
	}
	// visits is the first counter of each side's block.
	if values[2] != "3" {
		t.Fatalf("expected team1 visits first, got %q", values[2])
	}
	if values[2+len(scoring.FieldOrder)] != "3" {
		t.Fatalf("expected team2 visits to lead its block, got %q", values[2+len(scoring.FieldOrder)])
	}
	// fouls sits second from last in the canonical order.
	team2Fouls := values[len(values)-2]
	if team2Fouls != "2" {
		t.Fatalf("expected team2 fouls=2, got %q", team2Fouls)
	}
}

func TestExportRecord_TabDelimited(t *testing.T) {
	rec := ExportRecord{StartTime: "N/A", EndTime: "N/A"}
	line := rec.TabDelimited()
	if !strings.HasPrefix(line, "N/A\tN/A\t0\t") {
		t.Fatalf("unexpected line prefix: %q", line)
	}
	if got := strings.Count(line, "\t"); got != 1+2*len(scoring.FieldOrder) {
		t.Fatalf("expected %d tabs, got %d", 1+2*len(scoring.FieldOrder), got)
	}
}
