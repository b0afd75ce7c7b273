package handlers

import (
	"strings"
	"time"

	"DreamMMO/logger"
	"DreamMMO/service/chat"
	decode "DreamMMO/tools/decode"
)

const (
	defaultChannel = "local"
	maxMessageLen  = 200 // 码点数
)

// ChatHandler 处理聊天帧：截断、过滤空白、落库、全员广播（含发送者回显）。
type ChatHandler struct{}

func NewChatHandler() chat.Handler { return &ChatHandler{} }

func (h *ChatHandler) Type() string { return chat.FrameChat }

func (h *ChatHandler) Handle(ctx *chat.Context, f *chat.Frame, c *chat.Client) error {
	p, err := decode.DecodeMap[chat.ChatPayload](f.Fields)
	if err != nil {
		// 字段类型不对当缺省处理，不断会话
		logger.Debugf("[chat] payload decode user=%d err=%v", c.UserID, err)
		p = &chat.ChatPayload{}
	}

	channel := p.Channel
	if channel == "" {
		channel = defaultChannel
	}

	message := chat.TruncateRunes(p.Message, maxMessageLen)
	if strings.TrimSpace(message) == "" {
		// 空消息静默丢弃：不落库不广播
		return nil
	}

	ctx.S.AppendChatLog(ctx.Ctx, c, channel, message)

	env := chat.BuildChat(channel, c.Name, message, time.Now())
	ctx.S.Broadcast(env, 0) // 发送者也收到回显

	if relay := ctx.S.RelayBridge(); relay != nil {
		if err := relay.PublishChat(env); err != nil {
			logger.Infof("[chat] relay publish user=%d err=%v", c.UserID, err)
		}
	}
	return nil
}
