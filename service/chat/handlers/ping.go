package handlers

import (
	"DreamMMO/logger"
	"DreamMMO/service/chat"
)

// PingHandler 应用层心跳：只回发送者一条 pong，不广播不落库。
type PingHandler struct{}

func NewPingHandler() chat.Handler { return &PingHandler{} }

func (h *PingHandler) Type() string { return chat.FramePing }

func (h *PingHandler) Handle(ctx *chat.Context, _ *chat.Frame, c *chat.Client) error {
	if presence := ctx.S.Presence(); presence != nil {
		if err := presence.Heartbeat(ctx.Ctx, c.UserID); err != nil {
			logger.Debugf("[ping] presence heartbeat user=%d err=%v", c.UserID, err)
		}
	}
	return c.SendJSON(chat.BuildPong())
}
