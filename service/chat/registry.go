package chat

import (
	"sync"
)

// Registry 当前在线用户表：user -> 连接。
// 粗粒度锁足够：增删查都是纯内存操作，网络写不在锁内发生。
type Registry struct {
	mu     sync.RWMutex
	byUser map[int64]*Client // user 索引
}

func NewRegistry() *Registry {
	return &Registry{
		byUser: make(map[int64]*Client),
	}
}

// Register 登记连接。同一用户已有连接时替换并返回旧连接，
// 由调用方决定如何处置（顶号下线）。
func (r *Registry) Register(c *Client) (evicted *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted = r.byUser[c.UserID]
	r.byUser[c.UserID] = c
	return evicted
}

// Unregister 移除指定用户的登记；不在线则什么都不做。
func (r *Registry) Unregister(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byUser, userID)
}

// UnregisterClient 仅当登记的还是这条连接时才移除。
// 顶号后旧连接收尾时不能误删新连接。
func (r *Registry) UnregisterClient(c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.byUser[c.UserID]; ok && cur == c {
		delete(r.byUser, c.UserID)
		return true
	}
	return false
}

func (r *Registry) Get(userID int64) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byUser[userID]
	return c, ok
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser)
}

// Snapshot 取一份稳定切片供一轮广播使用。
// 广播过程中的注册/注销不影响本轮名单。
func (r *Registry) Snapshot() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Client, 0, len(r.byUser))
	for _, c := range r.byUser {
		out = append(out, c)
	}
	return out
}
