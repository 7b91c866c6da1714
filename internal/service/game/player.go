package game

import "sync/atomic"

// 玩家身份
const (
	ROLE_NONE       = "no_role"
	ROLE_HOARDER    = "Hoarder"
	ROLE_SUPERPOWER = "Superpower"
	ROLE_MARTYR     = "Martyr"
	ROLE_DOOMSAYER  = "Doomsayer"
	ROLE_FUTURIST   = "Futurist"
	// 主观视图中对其他玩家身份的遮蔽值
	ROLE_UNKNOWN = "Unknown"
)

// Player 在加入成功时创建，整局游戏期间不会被移除
// Addr 只用于把入站请求映射到玩家，不参与游戏语义，也绝不序列化
type Player struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Alive bool   `json:"alive"`

	Addr string `json:"-"`
}

// 进程级的玩家 ID 计数器，单调递增，绝不复用
var playerIDCounter atomic.Int64

// NewPlayer 分配下一个全局玩家 ID 并创建玩家
// 身份在游戏开始分配前为 no_role
func NewPlayer(name, addr string) *Player {
	return &Player{
		ID:    int(playerIDCounter.Add(1)) - 1,
		Name:  name,
		Role:  ROLE_NONE,
		Alive: true,
		Addr:  addr,
	}
}
