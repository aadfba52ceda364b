// internals/features/connect/route/connect_routes.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"gorm.io/gorm"

	channelController "elevencentral_backend/internals/features/connect/channels/controller"
	channelModel "elevencentral_backend/internals/features/connect/channels/model"
	"elevencentral_backend/internals/features/connect/hub"
	messageController "elevencentral_backend/internals/features/connect/messages/controller"
	helper "elevencentral_backend/internals/helpers"
)

// ConnectRoutes mounts /api/connect: channel and message CRUD plus the
// live websocket feed at /api/connect/ws/:channel_id.
func ConnectRoutes(r fiber.Router, db *gorm.DB, h *hub.Hub) {
	channelCtl := channelController.NewChannelController(db)
	messageCtl := messageController.NewMessageController(db, h)

	channels := r.Group("/channels")
	channels.Get("/", channelCtl.List)
	channels.Get("/:id", channelCtl.GetByID)
	channels.Post("/", channelCtl.Create)
	channels.Put("/:id", channelCtl.Update)
	channels.Delete("/:id", channelCtl.Delete)

	messages := r.Group("/messages")
	messages.Get("/", messageCtl.List)
	messages.Post("/", messageCtl.Create)
	messages.Put("/:id", messageCtl.Edit)
	messages.Delete("/:id", messageCtl.Delete)

	ws := r.Group("/ws")
	ws.Use(func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/:channel_id", websocket.New(func(conn *websocket.Conn) {
		channelID := conn.Params("channel_id")
		if _, aerr := helper.ParseUUIDParam(channelID, "channel id"); aerr != nil {
			conn.Close()
			return
		}
		var count int64
		if err := db.Model(&channelModel.ChannelModel{}).
			Where("channel_id = ?", channelID).
			Count(&count).Error; err != nil || count == 0 {
			conn.Close()
			return
		}

		h.Subscribe(channelID, conn)
		defer func() {
			h.Unsubscribe(channelID, conn)
			conn.Close()
		}()

		// Read loop keeps the connection alive and detects disconnects.
		// Clients send through REST; inbound frames are ignored.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("[ERROR] websocket read on channel %s: %v", channelID, err)
				}
				return
			}
		}
	}))
}
