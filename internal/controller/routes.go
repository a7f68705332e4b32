package controller

import (
	"github.com/benbeisheim/chess-rules-backend/internal/config"
	"github.com/benbeisheim/chess-rules-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes mounts the REST and websocket endpoints on app.
func RegisterRoutes(app *fiber.App, cfg config.Config, gameController *GameController, wsController *WebSocketController) {
	app.Use("/ws/*", middleware.EnsureClientID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
		Origins:         cfg.Origins(),
	}))

	api := app.Group("/api")

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Delete("/:gameId", gameController.DeleteGame)
	gameRoutes.Get("/:gameId/history", gameController.GetHistory)
	gameRoutes.Post("/:gameId/select", gameController.SelectSquare)
	gameRoutes.Post("/:gameId/promote", gameController.PromotePawn)
	gameRoutes.Post("/:gameId/reset", gameController.ResetGame)
}
