package chat

import (
	"context"

	charmodel "DreamMMO/module/character/model"
	chatlogmodel "DreamMMO/module/chatlog/model"
)

// 网关对外部存储/校验能力只认接口，便于单测注入假实现。

// TokenVerifier 校验连接凭证，给出用户ID或拒绝。
type TokenVerifier interface {
	VerifyToken(token string) (int64, error)
}

// CharacterLoader 按用户ID取角色。
type CharacterLoader interface {
	FirstByUser(ctx context.Context, userID int64) (*charmodel.Character, error)
}

// ChatLogWriter 追加聊天流水。
type ChatLogWriter interface {
	Append(ctx context.Context, rec chatlogmodel.Record) error
}

// PresenceStore 在线状态缓存（可选能力，nil 表示关闭）。
type PresenceStore interface {
	Online(ctx context.Context, userID int64) error
	Offline(ctx context.Context, userID int64) error
	Heartbeat(ctx context.Context, userID int64) error
}

// Relay 跨网关消息桥（可选能力，nil 表示单节点）。
type Relay interface {
	PublishChat(env ChatEnvelope) error
}
