package service

import (
	"strconv"
	"strings"

	"github.com/primal100/pool-stats/internal/scoring"
)

// ExportRecord is the immutable export tuple captured at export time:
// start/end times followed by both sides' counters. Any export sink
// (spreadsheet, webhook) accepts the flat tab-delimited serialization.
type ExportRecord struct {
	StartTime string            `json:"start_time"`
	EndTime   string            `json:"end_time"`
	Team1     scoring.TeamStats `json:"team1"`
	Team2     scoring.TeamStats `json:"team2"`
}

// Values flattens the record into its ordered string form: start time, end
// time, then every counter for team 1 followed by team 2, in canonical
// field order.
func (r ExportRecord) Values() []string {
	out := make([]string, 0, 2+2*len(scoring.FieldOrder))
	out = append(out, r.StartTime, r.EndTime)
	for _, team := range []scoring.TeamStats{r.Team1, r.Team2} {
		for _, f := range scoring.FieldOrder {
			out = append(out, strconv.Itoa(team.Field(f)))
		}
	}
	return out
}

// TabDelimited serializes the record as a single tab-separated line, ready
// for pasting into a spreadsheet row.
func (r ExportRecord) TabDelimited() string {
	return strings.Join(r.Values(), "\t")
}
