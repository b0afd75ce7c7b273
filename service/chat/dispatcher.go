package chat

import (
	"context"
)

// Context 传给 handler 的会话上下文。
type Context struct {
	S   *Server
	Ctx context.Context
}

// Handler 按帧类型处理入站消息。
type Handler interface {
	Type() string
	Handle(ctx *Context, f *Frame, c *Client) error
}

type Dispatcher struct {
	handlers map[string]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Handler)}
}

func (d *Dispatcher) Register(h Handler) { d.handlers[h.Type()] = h }

// GetHandler 未注册的类型返回 nil，调用方按"忽略"处理。
func (d *Dispatcher) GetHandler(frameType string) Handler {
	return d.handlers[frameType]
}
