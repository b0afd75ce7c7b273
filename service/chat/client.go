package chat

import (
	"sync"
	"time"

	charmodel "DreamMMO/module/character/model"
)

const writeWait = 5 * time.Second

// WireConn 是客户端连接的最小读写面。*websocket.Conn 直接满足；
// 单测用脚本化的假连接。
type WireConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Client 一条已通过握手的玩家连接。
// 同一时刻每个用户至多一条（重复登录会顶号）。
type Client struct {
	ConnID    string
	UserID    int64
	Name      string               // 角色名，握手时缓存
	Character *charmodel.Character // 角色快照

	conn WireConn
	mu   sync.Mutex // 串行化写；广播与 pong 可能并发
}

func NewClient(connID string, userID int64, ch *charmodel.Character, conn WireConn) *Client {
	return &Client{
		ConnID:    connID,
		UserID:    userID,
		Name:      ch.Name,
		Character: ch,
		conn:      conn,
	}
}

// SendJSON 带写超时的同步发送。失败即认为连接已死，由调用方收尾。
func (c *Client) SendJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
