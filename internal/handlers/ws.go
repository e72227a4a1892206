package handlers

import (
	"prospeo/internal/logging"
	"prospeo/internal/notify"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Subscribe upgrades the connection and registers it for the
// campaign's change events. The same visibility rule as the detail
// view applies before the upgrade.
func (h *CollabHandler) Subscribe(c *gin.Context) {
	campaign, _, ok := h.guard(c)
	if !ok {
		return
	}

	conn, err := notify.Upgrader().Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.Hub.AddClient(conn, campaign.ID)
	defer func() {
		h.Hub.RemoveClient(conn)
		conn.Close()
	}()

	// Drain until the client goes away; subscribers never send data.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
