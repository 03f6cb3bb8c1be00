package ws

import (
	wsclient "attachment-hub-backend/lib/help-chat/ws/client"
	connectionhub "attachment-hub-backend/lib/help-chat/ws/hub"
	"attachment-hub-backend/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(router fiber.Router) {
	router.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		ctx.Locals("sessionID", middleware.GetSessionID(ctx))
		return ctx.Next()
	})
	router.Get("/", websocket.New(chatHandler))
}

// @Summary Help chat
// @Tags Portal help
// @Description Help chat over websocket. Send {"message": "..."}; replies carry code chat_reply or error
// @Param   token		query		string		true		"Portal session token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 401
// @Failure 426
// @router /api/v1/portal/help/ws [get]
func chatHandler(c *websocket.Conn) {
	sessionID := c.Locals("sessionID").(string)
	client := wsclient.NewClient(sessionID, c)
	connectionhub.Instance.AddClient(sessionID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(sessionID, c)
	}()
	client.Dispatch()
}
