package scoring

// DerivedMetrics are the percentages and rates computed from one side's raw
// counters (or from the combined total). They are display values only; no
// state decision reads them back.
type DerivedMetrics struct {
	TotalShots           int     `json:"total_shots"`
	TotalPotted          int     `json:"total_potted"`
	TotalPottedAll       int     `json:"total_potted_all"`
	PotPercent           float64 `json:"pot_percent"`
	ShotPercent          float64 `json:"shot_percent"`
	PotPerVisit          float64 `json:"pot_per_visit"`
	EasyShotPercent      float64 `json:"easy_shot_percent"`
	DifficultShotPercent float64 `json:"difficult_shot_percent"`
}

// percentage returns 100*num/den, or 0.0 when the denominator is zero.
func percentage(num, den int) float64 {
	if den == 0 {
		return 0.0
	}
	return float64(num) / float64(den) * 100
}

// Derive computes the derived metrics for a counter set. Calling it twice on
// the same counters yields identical results; all zero-denominator cases
// resolve to 0.0.
func Derive(t TeamStats) DerivedMetrics {
	potAttempts := t.EasyShots + t.DifficultShots
	totalShots := potAttempts + t.SafetyShots + t.BreakShots + t.FoulOnlyShots
	totalPotted := t.EasyPotted + t.DifficultPotted
	totalPottedAll := totalPotted + t.BreakPotted + t.SafetyPotted + t.AdditionalPotted

	visits := t.Visits
	if visits == 0 {
		visits = 1
	}

	return DerivedMetrics{
		TotalShots:           totalShots,
		TotalPotted:          totalPotted,
		TotalPottedAll:       totalPottedAll,
		PotPercent:           percentage(totalPotted, potAttempts),
		ShotPercent:          percentage(totalPottedAll, totalShots),
		PotPerVisit:          float64(totalPottedAll) / float64(visits),
		EasyShotPercent:      percentage(t.EasyPotted, t.EasyShots),
		DifficultShotPercent: percentage(t.DifficultPotted, t.DifficultShots),
	}
}

// Diff returns the names of counters whose values differ between current and
// previous, in canonical field order. Used purely for display emphasis.
func Diff(current, previous TeamStats) []string {
	var changed []string
	for _, f := range FieldOrder {
		if current.Field(f) != previous.Field(f) {
			changed = append(changed, f)
		}
	}
	return changed
}
