package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/auth"
	qport "github.com/AnujYadav540/SkillSwap/internal/infrastructure/queue/port"
	"github.com/AnujYadav540/SkillSwap/internal/infrastructure/realtime"
	"github.com/AnujYadav540/SkillSwap/internal/pkg/chat/presentation/controller"
)

// RegisterRoutes registers messaging endpoints and the websocket push channel.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool, queue qport.Client, registry *realtime.Registry) {
	sendCtl := controller.NewSendMessageController(pool, queue)
	historyCtl := controller.NewGetConversationController(pool)
	socketCtl := controller.NewChatSocketController(registry)

	authed := g.Group("", auth.Middleware())
	authed.POST("/messages", sendCtl.Handle())
	authed.GET("/messages/:userId", historyCtl.Handle())

	// The socket authenticates via query token inside the handler.
	g.GET("/ws", socketCtl.Handle())
}
