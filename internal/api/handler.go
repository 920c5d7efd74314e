package api

import (
	"net/http"

	"github.com/primal100/pool-stats/internal/constants"
	"github.com/primal100/pool-stats/internal/service"
	"github.com/primal100/pool-stats/internal/storage"

	"github.com/gin-gonic/gin"
)

// MatchHandler exposes live match scoring over HTTP. All core mutations go
// through the session layer, which serializes them per match.
type MatchHandler struct {
	sessions *service.Manager
	repo     storage.Repository
	uploader *service.Uploader
}

func NewMatchHandler(sessions *service.Manager, repo storage.Repository, uploader *service.Uploader) *MatchHandler {
	return &MatchHandler{sessions: sessions, repo: repo, uploader: uploader}
}

// lookupSession resolves the match code path parameter to a live session,
// writing the error response itself when resolution fails.
func (h *MatchHandler) lookupSession(c *gin.Context) (*service.Session, bool) {
	code := normalizeMatchCode(c.Param("matchCode"))
	if code == "" || !matchCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidMatchCode})
		return nil, false
	}
	s, ok := h.sessions.Get(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return nil, false
	}
	return s, true
}
