package ws

import (
	wsclient "nexora-hcm/lib/ws/client"
	connectionhub "nexora-hcm/lib/ws/hub/connection-hub"
	"nexora-hcm/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app *fiber.App, hub connectionhub.Provider) {
	app.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		ctx.Locals("userID", middleware.GetUserID(ctx))
		return ctx.Next()
	})
	app.Get("/", websocket.New(func(c *websocket.Conn) {
		feedHandler(hub, c)
	}))
}

// @Summary Лента событий найма
// @Tags Websocket
// @Description События смены этапа откликов в реальном времени
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 401
// @Failure 403
// @Failure 426
// @router /api/v1/ws [get]
func feedHandler(hub connectionhub.Provider, c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)
	client := wsclient.NewClient(userID, c)
	hub.AddClient(userID, c)
	defer hub.DeleteClient(userID, c)
	client.Dispatch()
}
