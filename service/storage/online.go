package storage

import (
	"context"
	"fmt"
	"time"

	redisstore "DreamMMO/service/storage/redis"
)

const onlineKeyPrefix = "dreammmo:online:"

// OnlineManager 维护在线状态（user_id -> gateway_id, 带 TTL）
// TTL 靠客户端 ping 续期，网关崩溃后 key 自然过期。
type OnlineManager struct {
	gatewayID string
	ttl       time.Duration
}

func NewOnlineManager(gatewayID string, ttl time.Duration) *OnlineManager {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &OnlineManager{gatewayID: gatewayID, ttl: ttl}
}

func onlineKey(userID int64) string {
	return fmt.Sprintf("%s%d", onlineKeyPrefix, userID)
}

// Online 标记用户上线
func (m *OnlineManager) Online(ctx context.Context, userID int64) error {
	return redisstore.GetRedis().Set(ctx, onlineKey(userID), m.gatewayID, m.ttl).Err()
}

// Offline 清除在线标记
func (m *OnlineManager) Offline(ctx context.Context, userID int64) error {
	return redisstore.GetRedis().Del(ctx, onlineKey(userID)).Err()
}

// Heartbeat 续期 TTL
func (m *OnlineManager) Heartbeat(ctx context.Context, userID int64) error {
	return redisstore.GetRedis().Expire(ctx, onlineKey(userID), m.ttl).Err()
}
