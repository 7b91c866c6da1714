package game

import (
	"math/rand/v2"
	"slices"
)

// RolePool 是本局游戏可分配的身份池
// 每次分配消耗一个条目，游戏中途不会补充
type RolePool []string

// NewRolePool 返回固定的初始身份池，其中超级大国有两份
func NewRolePool() RolePool {
	return RolePool{
		ROLE_HOARDER,
		ROLE_SUPERPOWER,
		ROLE_SUPERPOWER,
		ROLE_MARTYR,
		ROLE_DOOMSAYER,
		ROLE_FUTURIST,
	}
}

// Allocate 从池中取出一个身份
// 约束：如果已经有玩家持有超级大国，且池中还剩一份，
// 必须强制分配第二份超级大国，而不是随机抽取
func (rp *RolePool) Allocate(players map[int]*Player) string {
	pool := *rp

	if idx := slices.Index(pool, ROLE_SUPERPOWER); idx != -1 {
		for _, p := range players {
			if p.Role == ROLE_SUPERPOWER {
				*rp = slices.Delete(pool, idx, idx+1)
				return ROLE_SUPERPOWER
			}
		}
	}

	n := rand.IntN(len(pool))
	role := pool[n]

	*rp = slices.Delete(pool, n, n+1)

	return role
}
