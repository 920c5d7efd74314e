package scoring

import (
	"gorm.io/gorm"
)

// Side identifies one of the two competing teams.
type Side string

const (
	SideTeam1 Side = "team1"
	SideTeam2 Side = "team2"
)

// Valid reports whether s is one of the two known sides.
func (s Side) Valid() bool {
	return s == SideTeam1 || s == SideTeam2
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideTeam1 {
		return SideTeam2
	}
	return SideTeam1
}

// DisplayName returns the human-readable side name used in the action log.
func (s Side) DisplayName() string {
	if s == SideTeam1 {
		return "Team 1"
	}
	return "Team 2"
}

// ActionKind is the taxonomy of recordable shot actions. The string value of
// each kind doubles as the primary counter it increments.
type ActionKind string

const (
	ActionDifficultPotted  ActionKind = "difficult_potted"
	ActionDifficultMissed  ActionKind = "difficult_shots"
	ActionEasyPotted       ActionKind = "easy_potted"
	ActionEasyMissed       ActionKind = "easy_shots"
	ActionSafetyPotted     ActionKind = "safety_potted"
	ActionSafetyShot       ActionKind = "safety_shots"
	ActionBreakPotted      ActionKind = "break_potted"
	ActionBreakMissed      ActionKind = "break_shots"
	ActionAdditionalPotted ActionKind = "additional_potted"
	ActionFoulAmendment    ActionKind = "fouls"
	ActionFoulOnly         ActionKind = "foul_only_shots"
)

// Valid reports whether k is a known action kind.
func (k ActionKind) Valid() bool {
	switch k {
	case ActionDifficultPotted, ActionDifficultMissed, ActionEasyPotted,
		ActionEasyMissed, ActionSafetyPotted, ActionSafetyShot,
		ActionBreakPotted, ActionBreakMissed, ActionAdditionalPotted,
		ActionFoulAmendment, ActionFoulOnly:
		return true
	}
	return false
}

// IsAmendment reports whether k corrects the previously recorded shot
// instead of consuming a shot of its own.
func (k ActionKind) IsAmendment() bool {
	return k == ActionAdditionalPotted || k == ActionFoulAmendment
}

// IsPot reports whether k represents a potted scoring shot. Pots also credit
// the matching attempt counter (see AttemptField).
func (k ActionKind) IsPot() bool {
	switch k {
	case ActionDifficultPotted, ActionEasyPotted, ActionSafetyPotted, ActionBreakPotted:
		return true
	}
	return false
}

// IsBreak reports whether k is a break attempt.
func (k ActionKind) IsBreak() bool {
	return k == ActionBreakPotted || k == ActionBreakMissed
}

// IsFoul reports whether k is a foul outcome on a fresh shot. The fouls
// amendment is excluded: it annotates an already-recorded shot.
func (k ActionKind) IsFoul() bool {
	return k == ActionFoulOnly
}

// Field returns the counter incremented by this action kind.
func (k ActionKind) Field() string { return string(k) }

// AttemptField returns the attempt counter paired with a potted kind
// ("difficult_potted" -> "difficult_shots"). Empty for non-pot kinds.
func (k ActionKind) AttemptField() string {
	switch k {
	case ActionDifficultPotted:
		return FieldDifficultShots
	case ActionEasyPotted:
		return FieldEasyShots
	case ActionSafetyPotted:
		return FieldSafetyShots
	case ActionBreakPotted:
		return FieldBreakShots
	}
	return ""
}

// DisplayName returns the narrative wording for an action, matching the
// action log lines shown to scorekeepers.
func (k ActionKind) DisplayName() string {
	switch k {
	case ActionDifficultPotted:
		return "Difficult ball potted"
	case ActionDifficultMissed:
		return "Difficult shot missed"
	case ActionEasyPotted:
		return "Easy ball potted"
	case ActionEasyMissed:
		return "Easy shot missed"
	case ActionSafetyPotted:
		return "Safety ball potted"
	case ActionSafetyShot:
		return "Safety shot missed"
	case ActionBreakPotted:
		return "Break ball potted"
	case ActionBreakMissed:
		return "Break shot missed"
	case ActionAdditionalPotted:
		return "Additional ball potted"
	case ActionFoulAmendment, ActionFoulOnly:
		return "Foul"
	}
	return string(k)
}

// Counter field names. FieldOrder is the canonical ordering used for both
// change detection and the export record.
const (
	FieldVisits           = "visits"
	FieldEasyShots        = "easy_shots"
	FieldEasyPotted       = "easy_potted"
	FieldDifficultShots   = "difficult_shots"
	FieldDifficultPotted  = "difficult_potted"
	FieldSafetyShots      = "safety_shots"
	FieldSafetyPotted     = "safety_potted"
	FieldBreakShots       = "break_shots"
	FieldBreakPotted      = "break_potted"
	FieldAdditionalPotted = "additional_potted"
	FieldFouls            = "fouls"
	FieldFoulOnlyShots    = "foul_only_shots"
)

// FieldOrder lists every counter in export order.
var FieldOrder = []string{
	FieldVisits,
	FieldEasyShots,
	FieldEasyPotted,
	FieldDifficultShots,
	FieldDifficultPotted,
	FieldSafetyShots,
	FieldSafetyPotted,
	FieldBreakShots,
	FieldBreakPotted,
	FieldAdditionalPotted,
	FieldFouls,
	FieldFoulOnlyShots,
}

// TeamStats holds the raw shot counters for one side. All counters start at
// zero; break_shots is capped at one per side per match (enforced by the
// action processor, not here).
type TeamStats struct {
	Visits           int `json:"visits"`
	EasyShots        int `json:"easy_shots"`
	EasyPotted       int `json:"easy_potted"`
	DifficultShots   int `json:"difficult_shots"`
	DifficultPotted  int `json:"difficult_potted"`
	SafetyShots      int `json:"safety_shots"`
	SafetyPotted     int `json:"safety_potted"`
	BreakShots       int `json:"break_shots"`
	BreakPotted      int `json:"break_potted"`
	AdditionalPotted int `json:"additional_potted"`
	Fouls            int `json:"fouls"`
	FoulOnlyShots    int `json:"foul_only_shots"`
}

func (t *TeamStats) counter(field string) *int {
	switch field {
	case FieldVisits:
		return &t.Visits
	case FieldEasyShots:
		return &t.EasyShots
	case FieldEasyPotted:
		return &t.EasyPotted
	case FieldDifficultShots:
		return &t.DifficultShots
	case FieldDifficultPotted:
		return &t.DifficultPotted
	case FieldSafetyShots:
		return &t.SafetyShots
	case FieldSafetyPotted:
		return &t.SafetyPotted
	case FieldBreakShots:
		return &t.BreakShots
	case FieldBreakPotted:
		return &t.BreakPotted
	case FieldAdditionalPotted:
		return &t.AdditionalPotted
	case FieldFouls:
		return &t.Fouls
	case FieldFoulOnlyShots:
		return &t.FoulOnlyShots
	}
	return nil
}

// Field returns the value of the named counter, or 0 for an unknown name.
func (t TeamStats) Field(field string) int {
	if c := t.counter(field); c != nil {
		return *c
	}
	return 0
}

// Add increments the named counter by the given amount. Unknown names are
// ignored; the caller is trusted to only submit legal deltas.
func (t *TeamStats) Add(field string, by int) {
	if c := t.counter(field); c != nil {
		*c += by
	}
}

// Plus returns the element-wise sum of two counter sets.
func (t TeamStats) Plus(o TeamStats) TeamStats {
	var sum TeamStats
	for _, f := range FieldOrder {
		sum.Add(f, t.Field(f)+o.Field(f))
	}
	return sum
}

// MatchRecord is the persisted summary of a completed match. The two sides'
// counters are flattened into prefixed columns so a record row matches the
// export tuple one to one.
type MatchRecord struct {
	gorm.Model
	Code       string `json:"code" gorm:"index"`
	Team1Label string `json:"team1_label"`
	Team2Label string `json:"team2_label"`
	// StartTime/EndTime are stored as the export strings ("2006-01-02
	// 15:04:05" or "N/A") so a record row round-trips the export contract.
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Team1      TeamStats `json:"team1" gorm:"embedded;embeddedPrefix:team1_"`
	Team2      TeamStats `json:"team2" gorm:"embedded;embeddedPrefix:team2_"`
	ExportLine string    `json:"export_line"`
}

// TableName overrides the default GORM table name so the persisted table is
// `match_records`.
func (MatchRecord) TableName() string { return "match_records" }
