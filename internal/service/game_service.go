package service

import (
	"errors"
	"sync"

	"doomsday-be/internal/service/game"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GameService 是核心聚合的并发边界
// 所有变更和视图导出都在同一把互斥锁内执行，
// 保证核心可以假定自己是单线程的
type GameService struct {
	mu sync.Mutex
	st *game.State

	// 状态推送订阅者：通知通道到观察者玩家 ID 的映射
	watchers map[chan struct{}]int
}

// NewGameService 创建服务并开放大厅
// 没有配置加入码时为每个席位生成一个一次性加入码
func NewGameService(lobbySize int, codes []string) *GameService {
	if len(codes) == 0 {
		codes = make([]string, 0, lobbySize)

		for x := 0; x < lobbySize; x++ {
			code := uuid.New().String()[:8]
			codes = append(codes, code)

			zap.S().Infof("生成加入码：%s", code)
		}
	}

	st := game.NewState(codes)
	st.OpenLobby(lobbySize)

	zap.L().Info(
		"大厅已开放",
		zap.Int("lobby_size", lobbySize),
	)

	return &GameService{
		st:       st,
		watchers: make(map[chan struct{}]int),
	}
}

// Status 返回当前的服务器状态
func (gs *GameService) Status() string {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	return gs.st.ServerStatus()
}

// Join 处理一次加入请求：校验大厅状态、消耗加入码、注册玩家
// 成功时返回新玩家视角的主观视图
func (gs *GameService) Join(name, addr, code string) (*game.ViewState, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.st.ServerStatus() != game.SERVER_WAITING {
		return nil, errors.New("大厅未开放")
	}

	if !gs.st.ConsumePlayerCode(code) {
		return nil, errors.New("无效的加入码")
	}

	player := game.NewPlayer(name, addr)

	if err := gs.st.AddPlayer(player); err != nil {
		return nil, err
	}

	zap.L().Info(
		"玩家加入",
		zap.Int("player_id", player.ID),
		zap.String("player_name", name),
		zap.String("addr", addr),
	)

	gs.notifyLocked()

	return gs.st.Subjective(player.ID), nil
}

// SubjectiveState 导出指定观察者的主观视图
func (gs *GameService) SubjectiveState(viewerID int) *game.ViewState {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	return gs.st.Subjective(viewerID)
}

// SubjectiveStateByAddr 按远端地址解析观察者并导出其主观视图
// 地址不对应任何玩家时返回完全遮蔽的视图
func (gs *GameService) SubjectiveStateByAddr(addr string) *game.ViewState {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	viewerID, ok := gs.st.IPToPlayerID(addr)
	if !ok {
		viewerID = -1
	}

	return gs.st.Subjective(viewerID)
}

// VoteForPlayer 以 addr 对应的玩家身份投出指向目标玩家的一票
func (gs *GameService) VoteForPlayer(addr string, targetID int) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	voterID, ok := gs.st.IPToPlayerID(addr)
	if !ok {
		return errors.New("未注册的投票人")
	}

	accepted, err := gs.st.SubmitVoteForPlayer(voterID, targetID)
	if err != nil {
		return err
	}

	if !accepted {
		return errors.New("投票被拒绝")
	}

	gs.notifyLocked()

	return nil
}

// VoteYesNo 以 addr 对应的玩家身份投出赞成/反对票
func (gs *GameService) VoteYesNo(addr string, approve bool) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	voterID, ok := gs.st.IPToPlayerID(addr)
	if !ok {
		return errors.New("未注册的投票人")
	}

	accepted, err := gs.st.SubmitVoteYesNo(voterID, approve)
	if err != nil {
		return err
	}

	if !accepted {
		return errors.New("投票被拒绝")
	}

	gs.notifyLocked()

	return nil
}

// Watch 注册一个状态推送订阅者
// 每次状态变更后通知通道会收到一个信号
// 调用方负责在连接结束时调用 cancel 注销
func (gs *GameService) Watch(addr string) (viewerID int, notifyCh chan struct{}, cancel func()) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	viewerID, ok := gs.st.IPToPlayerID(addr)
	if !ok {
		viewerID = -1
	}

	notifyCh = make(chan struct{}, 1)
	gs.watchers[notifyCh] = viewerID

	cancel = func() {
		gs.mu.Lock()
		defer gs.mu.Unlock()

		delete(gs.watchers, notifyCh)
	}

	return viewerID, notifyCh, cancel
}

// notifyLocked 向所有订阅者发出状态变更信号，调用方必须持有锁
// 通道已有未消费的信号时跳过，订阅者总会拿到最新状态
func (gs *GameService) notifyLocked() {
	for ch := range gs.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
