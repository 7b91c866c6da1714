package http

import (
	"fmt"

	"doomsday-be/internal/api/http/websocket"
	"doomsday-be/internal/state"

	"github.com/kataras/iris/v12"
)

func RunServer(appState *state.AppState) {
	app := iris.Default()

	api := app.Party("/api/v1")

	api.Post("/join", JoinGame(appState))

	api.Get("/state", GetState(appState))
	api.Get("/status", GetStatus(appState))

	api.Post("/vote/player", VoteForPlayer(appState))
	api.Post("/vote/yes_no", VoteYesNo(appState))

	api.Get("/ws/watch", websocket.WatchGame(appState))

	addr := fmt.Sprintf(
		"%s:%d",
		appState.Cfg.Host,
		appState.Cfg.Port,
	)

	app.Listen(addr)
}
