package chat

import (
	"encoding/json"
	"fmt"
	"time"

	charmodel "DreamMMO/module/character/model"
)

// 帧类型。客户端只会发 chat/ping，其他一律忽略（向前兼容）。
const (
	FrameChat = "chat"
	FramePing = "ping"
)

// 下发帧类型
const (
	FrameWelcome = "welcome"
	FrameSystem  = "system"
	FramePong    = "pong"
	FrameError   = "error"
)

// Frame 入站帧：type + 其余字段原样保留，由各 handler 自行弱类型解码。
type Frame struct {
	Type   string
	Fields map[string]any
}

// ParseFrameJSON 解析入站 JSON。type 缺失或不是字符串时置空，
// 走"未知类型忽略"路径而不是报错。
func ParseFrameJSON(raw []byte) (*Frame, error) {
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal frame failed: %w", err)
	}
	f := &Frame{Fields: m}
	if t, ok := m["type"].(string); ok {
		f.Type = t
	}
	return f, nil
}

// ChatPayload 聊天帧负载。sender 永远取会话缓存，不信客户端。
type ChatPayload struct {
	Channel string `json:"channel"`
	Message string `json:"message"`
}

// ---- 下发信封 ----

type WelcomeEnvelope struct {
	Type      string               `json:"type"`
	Message   string               `json:"message"`
	Character *charmodel.Character `json:"character"`
	Online    int                  `json:"online"`
}

type SystemEnvelope struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ChatEnvelope struct {
	Type    string `json:"type"`
	Channel string `json:"channel"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

type PongEnvelope struct {
	Type string `json:"type"`
}

type ErrorEnvelope struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ---- 构造若干服务端信封 ----

func BuildWelcome(ch *charmodel.Character, online int) WelcomeEnvelope {
	return WelcomeEnvelope{
		Type:      FrameWelcome,
		Message:   fmt.Sprintf("Welcome, %s!", ch.Name),
		Character: ch,
		Online:    online,
	}
}

func BuildSystem(message string) SystemEnvelope {
	return SystemEnvelope{Type: FrameSystem, Message: message}
}

func BuildChat(channel, sender, message string, at time.Time) ChatEnvelope {
	return ChatEnvelope{
		Type:    FrameChat,
		Channel: channel,
		Sender:  sender,
		Message: message,
		Time:    at.UTC().Format(time.RFC3339),
	}
}

func BuildPong() PongEnvelope {
	return PongEnvelope{Type: FramePong}
}

func BuildError(message string) ErrorEnvelope {
	return ErrorEnvelope{Type: FrameError, Message: message}
}

// TruncateRunes 按码点截断，半个多字节字符不会被切坏。
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
