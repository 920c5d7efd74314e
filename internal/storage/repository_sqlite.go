package storage

import (
	"github.com/primal100/pool-stats/internal/scoring"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveMatchRecord(rec *scoring.MatchRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetMatchRecordByID(id uint) (*scoring.MatchRecord, error) {
	var rec scoring.MatchRecord
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) GetRecentMatchRecords(limit int) ([]scoring.MatchRecord, error) {
	if limit < 1 {
		limit = 20
	}
	var recs []scoring.MatchRecord
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
