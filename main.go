package main

import (
	"doomsday-be/internal/api/http"
	"doomsday-be/internal/config"
	"doomsday-be/internal/logger"
	"doomsday-be/internal/service"
	"doomsday-be/internal/state"
)

func main() {
	// 加载配置
	cfg := config.InitConfig()

	// 初始化日志器
	logger.InitLogger(cfg.LogLevel)

	// 组装应用状态，开放大厅
	appState := state.NewAppState(
		cfg,
		service.NewGameService(cfg.LobbySize, cfg.PlayerCodes),
	)

	// 启动服务器
	http.RunServer(appState)
}
