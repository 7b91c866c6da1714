package websocket

import (
	"time"

	"doomsday-be/internal/state"

	"github.com/gorilla/websocket"
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

// WatchGame 把连接升级为 WebSocket 并持续推送主观视图
// 每次游戏状态变更后，连接方都会收到一份以自己为观察者的最新视图
// 连接地址不对应任何玩家时推送完全遮蔽的视图
func WatchGame(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		conn, err := upgrader.Upgrade(
			ctx.ResponseWriter(),
			ctx.Request(),
			nil,
		)
		if err != nil {
			zap.L().Error("升级到WebSocket失败", zap.Error(err))
			ctx.StatusCode(iris.StatusBadRequest)
			return
		}

		defer conn.Close()

		conn.SetReadDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))
		conn.SetPongHandler(pongHandler(conn))

		clientIP := ctx.RemoteAddr()

		viewerID, notifyCh, cancel := appState.GameSvc.Watch(clientIP)
		defer cancel()

		zap.L().Info(
			"观察者接入",
			zap.String("client_ip", clientIP),
			zap.Int("viewer_id", viewerID),
		)

		// 写协程的退出信号
		writeDoneCh := make(chan struct{})
		defer close(writeDoneCh)

		// 写入协程：接入时先推一份当前视图，
		// 之后每收到一次变更通知就推送最新视图，并定期发心跳
		go func() {
			ticker := time.NewTicker(HEARTBEAT_INTERVAL)
			defer ticker.Stop()

			if err := conn.WriteJSON(appState.GameSvc.SubjectiveStateByAddr(clientIP)); err != nil {
				zap.L().Error(
					"推送初始视图失败",
					zap.String("client_ip", clientIP),
					zap.Error(err),
				)
				return
			}

			for {
				select {
				case <-writeDoneCh:
					zap.L().Info(
						"WebSocket写入协程退出",
						zap.String("client_ip", clientIP),
					)
					return

				case <-ticker.C:
					conn.SetWriteDeadline(time.Now().Add(HEARTBEAT_TIMEOUT))

					if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
						zap.L().Error(
							"发送心跳失败",
							zap.String("client_ip", clientIP),
							zap.Error(err),
						)
						return
					}

				case <-notifyCh:
					if err := conn.WriteJSON(appState.GameSvc.SubjectiveStateByAddr(clientIP)); err != nil {
						zap.L().Error(
							"推送视图失败",
							zap.String("client_ip", clientIP),
							zap.Error(err),
						)
						return
					}

					zap.L().Debug(
						"推送视图",
						zap.String("client_ip", clientIP),
						zap.Int("viewer_id", viewerID),
					)
				}
			}
		}()

		// 读取协程（主协程）：订阅通道是单向的，
		// 读循环只用于感知客户端断开和维持心跳
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(
					err,
					websocket.CloseGoingAway,
					websocket.CloseAbnormalClosure,
				) {
					zap.L().Error(
						"读取消息失败",
						zap.String("client_ip", clientIP),
						zap.Error(err),
					)
				}

				break
			}
		}

		zap.L().Info(
			"观察者断开",
			zap.String("client_ip", clientIP),
			zap.Int("viewer_id", viewerID),
		)
	}
}
