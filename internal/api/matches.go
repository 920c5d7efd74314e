package api

import (
	"errors"
	"net/http"

	"github.com/primal100/pool-stats/internal/constants"
	"github.com/primal100/pool-stats/internal/engine"
	"github.com/primal100/pool-stats/internal/logging"

	"github.com/gin-gonic/gin"
)

type CreateMatchRequest struct {
	Team1Label string `json:"team1_label"`
	Team2Label string `json:"team2_label"`
}

// CreateMatch registers a new live match and returns its join code.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	// The body is optional; an empty body means default labels.
	_ = c.ShouldBindJSON(&req)

	code := generateMatchCode()
	for h.sessions.Exists(code) {
		code = generateMatchCode()
	}
	s := h.sessions.Create(code, req.Team1Label, req.Team2Label)

	logging.Info("match created", logging.Fields{constants.LogFieldMatchCode: code})
	c.JSON(http.StatusCreated, gin.H{
		constants.JSONKeyCode: code,
		"scoreboard":          s.Scoreboard(),
	})
}

// GetMatch returns the current scoreboard for a live match.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	s, ok := h.lookupSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Scoreboard())
}

// UndoAction rolls back the most recent recorded mutation.
func (h *MatchHandler) UndoAction(c *gin.Context) {
	s, ok := h.lookupSession(c)
	if !ok {
		return
	}
	if err := s.Undo(); err != nil {
		if errors.Is(err, engine.ErrEmptyHistory) {
			logging.Warn("undo with empty history", logging.Fields{constants.LogFieldMatchCode: s.Code()})
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyWarning: constants.WarnEmptyHistory})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	c.JSON(http.StatusOK, s.Scoreboard())
}

// ResetMatch zeroes all stats and returns the match to its pre-break state.
func (h *MatchHandler) ResetMatch(c *gin.Context) {
	s, ok := h.lookupSession(c)
	if !ok {
		return
	}
	s.Reset()
	logging.Info("match reset", logging.Fields{constants.LogFieldMatchCode: s.Code()})
	c.JSON(http.StatusOK, s.Scoreboard())
}

// ToggleLabels swaps the side labels.
func (h *MatchHandler) ToggleLabels(c *gin.Context) {
	s, ok := h.lookupSession(c)
	if !ok {
		return
	}
	s.ToggleLabels()
	c.JSON(http.StatusOK, s.Scoreboard())
}

// CompleteMatch finishes a match and persists its record.
func (h *MatchHandler) CompleteMatch(c *gin.Context) {
	s, ok := h.lookupSession(c)
	if !ok {
		return
	}
	rec, err := s.Complete()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchCompleted})
		return
	}
	if err := h.repo.SaveMatchRecord(rec); err != nil {
		logging.Error("failed to save match record", err, logging.Fields{constants.LogFieldMatchCode: s.Code()})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveRecord})
		return
	}
	logging.Info("match completed", logging.Fields{constants.LogFieldMatchCode: s.Code(), constants.LogFieldRecordID: rec.ID})
	c.JSON(http.StatusOK, gin.H{
		"record":     rec,
		"scoreboard": s.Scoreboard(),
	})
}

// ExportMatch returns the tab-delimited export line and, when a webhook is
// configured, schedules a background upload of the same record.
func (h *MatchHandler) ExportMatch(c *gin.Context) {
	s, ok := h.lookupSession(c)
	if !ok {
		return
	}
	rec := s.Export()
	h.uploader.UploadAsync(s.Code(), rec)
	c.JSON(http.StatusOK, gin.H{
		"export": rec,
		"line":   rec.TabDelimited(),
	})
}

// ListRecords returns recently completed match records.
func (h *MatchHandler) ListRecords(c *gin.Context) {
	recs, err := h.repo.GetRecentMatchRecords(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRecords})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs})
}
