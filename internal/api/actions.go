package api

import (
	"errors"
	"net/http"

	"github.com/primal100/pool-stats/internal/constants"
	"github.com/primal100/pool-stats/internal/engine"
	"github.com/primal100/pool-stats/internal/logging"
	"github.com/primal100/pool-stats/internal/scoring"
	"github.com/primal100/pool-stats/internal/service"

	"github.com/gin-gonic/gin"
)

type ActionRequest struct {
	Side string `json:"side"`
	Kind string `json:"kind"`
}

// SubmitAction records one shot action for a live match.
func (h *MatchHandler) SubmitAction(c *gin.Context) {
	s, ok := h.lookupSession(c)
	if !ok {
		return
	}

	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	side := scoring.Side(req.Side)
	kind := scoring.ActionKind(req.Kind)

	effect, err := s.RecordAction(side, kind)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSide):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidSide})
		case errors.Is(err, service.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidAction})
		case errors.Is(err, service.ErrMatchCompleted):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchCompleted})
		case errors.Is(err, engine.ErrDuplicateBreak):
			// Expected user-facing condition: no state changed.
			logging.Warn("duplicate break rejected", logging.Fields{constants.LogFieldMatchCode: s.Code(), constants.LogFieldSide: req.Side})
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyWarning: constants.WarnDuplicateBreak})
		case errors.Is(err, engine.ErrWrongSideShot):
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrWrongSideShot})
		case errors.Is(err, engine.ErrIncorrectVisits):
			c.JSON(http.StatusUnprocessableEntity, gin.H{constants.JSONKeyError: constants.ErrIncorrectVisits})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		}
		return
	}

	logging.Info("action recorded", logging.Fields{
		constants.LogFieldMatchCode: s.Code(),
		constants.LogFieldSide:      req.Side,
		constants.LogFieldAction:    req.Kind,
	})
	c.JSON(http.StatusOK, gin.H{
		"effect":     effect,
		"scoreboard": s.Scoreboard(),
	})
}
