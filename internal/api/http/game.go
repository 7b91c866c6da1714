package http

import (
	"doomsday-be/internal/service/dto"
	"doomsday-be/internal/state"

	"github.com/kataras/iris/v12"
)

// JoinGame 处理加入大厅请求
// 核心返回的拒绝原因直接作为错误信息返回给客户端
func JoinGame(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.JoinRequest

		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(iris.Map{
				"error": "请求参数无效",
			})
			return
		}

		if req.PlayerName == "" {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(iris.Map{
				"error": "玩家名称不能为空",
			})
			return
		}

		view, err := appState.GameSvc.Join(req.PlayerName, ctx.RemoteAddr(), req.Code)
		if err != nil {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(iris.Map{
				"error": err.Error(),
			})
			return
		}

		ctx.JSON(view)
	}
}

// GetState 返回请求方视角的主观视图
// 请求地址不对应任何玩家时返回完全遮蔽的视图
func GetState(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		ctx.JSON(appState.GameSvc.SubjectiveStateByAddr(ctx.RemoteAddr()))
	}
}

func GetStatus(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		ctx.JSON(dto.StatusResponse{
			Status: appState.GameSvc.Status(),
		})
	}
}

// VoteForPlayer 处理指向玩家的投票，投票人由远端地址解析
func VoteForPlayer(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.VotePlayerRequest

		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(iris.Map{
				"error": "请求参数无效",
			})
			return
		}

		if err := appState.GameSvc.VoteForPlayer(ctx.RemoteAddr(), req.VoteFor); err != nil {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(iris.Map{
				"error": err.Error(),
			})
			return
		}

		ctx.JSON(appState.GameSvc.SubjectiveStateByAddr(ctx.RemoteAddr()))
	}
}

// VoteYesNo 处理赞成/反对投票
func VoteYesNo(appState *state.AppState) iris.Handler {
	return func(ctx iris.Context) {
		var req dto.VoteYesNoRequest

		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(iris.Map{
				"error": "请求参数无效",
			})
			return
		}

		if err := appState.GameSvc.VoteYesNo(ctx.RemoteAddr(), req.Vote); err != nil {
			ctx.StatusCode(iris.StatusBadRequest)
			ctx.JSON(iris.Map{
				"error": err.Error(),
			})
			return
		}

		ctx.JSON(appState.GameSvc.SubjectiveStateByAddr(ctx.RemoteAddr()))
	}
}
