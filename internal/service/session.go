package service

import (
	"errors"
	"sync"
	"time"

	"github.com/primal100/pool-stats/internal/engine"
	"github.com/primal100/pool-stats/internal/scoring"
)

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrInvalidSide    = errors.New("unknown side")
	ErrInvalidAction  = errors.New("unknown action kind")
	ErrMatchCompleted = errors.New("match already completed")
)

// exportTimeLayout renders match start/end times in the export record.
const exportTimeLayout = "2006-01-02 15:04:05"

// timeNotSet is the export placeholder for an unset start/end time.
const timeNotSet = "N/A"

// SideReport is one column of the scoreboard: raw counters, derived metrics
// and the counters that changed in the latest retained mutation.
type SideReport struct {
	Label   string                 `json:"label,omitempty"`
	Stats   scoring.TeamStats      `json:"stats"`
	Derived scoring.DerivedMetrics `json:"derived"`
	Changed []string               `json:"changed,omitempty"`
}

// Scoreboard is the full read model pushed to UI clients: both sides, the
// recomputed total, the turn state and the narrative log.
type Scoreboard struct {
	Code      string           `json:"code"`
	Team1     SideReport       `json:"team1"`
	Team2     SideReport       `json:"team2"`
	Total     SideReport       `json:"total"`
	Turn      engine.TurnState `json:"turn"`
	Log       []string         `json:"log"`
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
	Completed bool             `json:"completed"`
}

// Session is one live match. A single mutex serializes every core operation
// (apply, undo, derive); the engine itself is lock-free and relies on this.
type Session struct {
	mu sync.Mutex

	code string
	proc *engine.Processor

	team1Label    string
	team2Label    string
	defaultLabels [2]string
	labelsSwapped bool

	startTime time.Time
	endTime   time.Time
	completed bool

	watchers map[chan Scoreboard]struct{}
}

// NewSession creates a live match with the given join code, side labels and
// undo depth.
func NewSession(code, team1Label, team2Label string, historyDepth int) *Session {
	return &Session{
		code:          code,
		proc:          engine.NewProcessor(historyDepth),
		team1Label:    team1Label,
		team2Label:    team2Label,
		defaultLabels: [2]string{team1Label, team2Label},
		watchers:      make(map[chan Scoreboard]struct{}),
	}
}

// Code returns the session's join code.
func (s *Session) Code() string { return s.code }

// RecordAction validates and records one shot action. The first break
// attempt stamps the match start time.
func (s *Session) RecordAction(side scoring.Side, kind scoring.ActionKind) (*engine.ActionEffect, error) {
	if !side.Valid() {
		return nil, ErrInvalidSide
	}
	if !kind.Valid() {
		return nil, ErrInvalidAction
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return nil, ErrMatchCompleted
	}

	effect, err := s.proc.Apply(side, kind)
	if err != nil {
		return nil, err
	}
	if kind.IsBreak() && s.startTime.IsZero() {
		s.startTime = time.Now()
	}
	s.broadcastLocked()
	return effect, nil
}

// Undo rolls back the most recent retained mutation. An empty history is a
// soft warning and changes nothing.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.proc.Undo(); err != nil {
		return err
	}
	s.broadcastLocked()
	return nil
}

// Reset returns the match to its initial state: all counters zero, machine
// idle, log empty, times cleared, labels restored. The pre-reset state stays
// undoable.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.proc.Reset()
	s.startTime = time.Time{}
	s.endTime = time.Time{}
	s.completed = false
	if s.labelsSwapped {
		s.toggleLabelsLocked()
	}
	s.broadcastLocked()
}

func (s *Session) toggleLabelsLocked() {
	s.team1Label, s.team2Label = s.team2Label, s.team1Label
	s.labelsSwapped = !s.labelsSwapped
}

// ToggleLabels swaps the two side labels (e.g. which team shoots stripes).
func (s *Session) ToggleLabels() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggleLabelsLocked()
	s.broadcastLocked()
}

// Complete stamps the end time, logs the completion and returns the
// persistable match record. Completing twice is rejected.
func (s *Session) Complete() (*scoring.MatchRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return nil, ErrMatchCompleted
	}
	s.completed = true
	s.endTime = time.Now()
	s.proc.Record("Game complete")
	rec := s.recordLocked()
	s.broadcastLocked()
	return rec, nil
}

func (s *Session) recordLocked() *scoring.MatchRecord {
	exp := s.exportLocked()
	stats := s.proc.Stats()
	return &scoring.MatchRecord{
		Code:       s.code,
		Team1Label: s.team1Label,
		Team2Label: s.team2Label,
		StartTime:  exp.StartTime,
		EndTime:    exp.EndTime,
		Team1:      stats.Team1,
		Team2:      stats.Team2,
		ExportLine: exp.TabDelimited(),
	}
}

// Export captures the immutable export tuple. A missing end time is stamped
// with the current time, matching how an exported-but-never-completed match
// behaves.
func (s *Session) Export() ExportRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.endTime.IsZero() {
		s.endTime = time.Now()
	}
	return s.exportLocked()
}

func (s *Session) exportLocked() ExportRecord {
	stats := s.proc.Stats()
	return ExportRecord{
		StartTime: formatExportTime(s.startTime),
		EndTime:   formatExportTime(s.endTime),
		Team1:     stats.Team1,
		Team2:     stats.Team2,
	}
}

func formatExportTime(t time.Time) string {
	if t.IsZero() {
		return timeNotSet
	}
	return t.Format(exportTimeLayout)
}

// Scoreboard builds the current read model. Change emphasis compares against
// the counters as they were before the latest retained mutation.
func (s *Session) Scoreboard() Scoreboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scoreboardLocked()
}

func (s *Session) scoreboardLocked() Scoreboard {
	current := s.proc.Stats()
	baseline := s.proc.Baseline()
	total := current.Total()
	baselineTotal := baseline.Total()

	return Scoreboard{
		Code: s.code,
		Team1: SideReport{
			Label:   s.team1Label,
			Stats:   current.Team1,
			Derived: scoring.Derive(current.Team1),
			Changed: scoring.Diff(current.Team1, baseline.Team1),
		},
		Team2: SideReport{
			Label:   s.team2Label,
			Stats:   current.Team2,
			Derived: scoring.Derive(current.Team2),
			Changed: scoring.Diff(current.Team2, baseline.Team2),
		},
		Total: SideReport{
			Stats:   total,
			Derived: scoring.Derive(total),
			Changed: scoring.Diff(total, baselineTotal),
		},
		Turn:      s.proc.Turn(),
		Log:       s.proc.LogLines(),
		StartTime: formatExportTime(s.startTime),
		EndTime:   formatExportTime(s.endTime),
		Completed: s.completed,
	}
}

// Subscribe registers a scoreboard watcher. The channel is buffered; slow
// watchers miss intermediate updates rather than blocking the core.
func (s *Session) Subscribe() chan Scoreboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan Scoreboard, 8)
	s.watchers[ch] = struct{}{}
	// Prime the watcher with the current state.
	ch <- s.scoreboardLocked()
	return ch
}

// Unsubscribe removes a watcher and closes its channel.
func (s *Session) Unsubscribe(ch chan Scoreboard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.watchers[ch]; ok {
		delete(s.watchers, ch)
		close(ch)
	}
}

func (s *Session) broadcastLocked() {
	if len(s.watchers) == 0 {
		return
	}
	board := s.scoreboardLocked()
	for ch := range s.watchers {
		select {
		case ch <- board:
		default:
			// Watcher is not keeping up; drop this update.
		}
	}
}
