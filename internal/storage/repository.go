package storage

import (
	"github.com/primal100/pool-stats/internal/scoring"
)

// Repository persists completed match records. Live match state never goes
// through here.
type Repository interface {
	SaveMatchRecord(rec *scoring.MatchRecord) error
	GetMatchRecordByID(id uint) (*scoring.MatchRecord, error)
	// GetRecentMatchRecords returns the most recently completed matches,
	// newest first.
	GetRecentMatchRecords(limit int) ([]scoring.MatchRecord, error)
}
