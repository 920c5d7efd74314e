package api

import (
	"github.com/primal100/pool-stats/internal/constants"
	"github.com/primal100/pool-stats/internal/logging"

	"github.com/gin-gonic/gin"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// StreamMatch upgrades the request to a websocket and pushes a scoreboard
// payload after every accepted mutation. Watchers are read-only: nothing
// received on the socket mutates match state.
func (h *MatchHandler) StreamMatch(c *gin.Context) {
	s, ok := h.lookupSession(c)
	if !ok {
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // scoreboard displays run on any origin
	})
	if err != nil {
		logging.Error("websocket accept failed", err, logging.Fields{constants.LogFieldMatchCode: s.Code()})
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := c.Request.Context()
	updates := s.Subscribe()
	defer s.Unsubscribe(updates)

	// Reader goroutine: drain (and ignore) client frames so pings are
	// answered and we notice a closed connection.
	go func() {
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case board, open := <-updates:
			if !open {
				return
			}
			if err := wsjson.Write(ctx, conn, board); err != nil {
				return
			}
		}
	}
}
