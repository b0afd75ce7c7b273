package chat

import (
	"context"
	"time"

	"DreamMMO/logger"
)

// ServerConfig 网关装配参数。Presence/Relay 可为 nil（能力关闭）。
type ServerConfig struct {
	GatewayID   string
	IdleTimeout time.Duration // 读空闲超时，<=0 用默认 5m

	Verifier   TokenVerifier
	Characters CharacterLoader
	ChatLogs   ChatLogWriter
	Presence   PresenceStore
	Relay      Relay
}

// Server 聊天网关：在线表 + 广播 + 会话编排。
type Server struct {
	gwID        string
	idleTimeout time.Duration

	reg  *Registry
	disp *Dispatcher

	verifier TokenVerifier
	chars    CharacterLoader
	logs     ChatLogWriter
	presence PresenceStore
	relay    Relay
}

func NewServer(cfg ServerConfig) *Server {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 5 * time.Minute
	}
	s := &Server{
		gwID:        cfg.GatewayID,
		idleTimeout: cfg.IdleTimeout,
		reg:         NewRegistry(),
		disp:        NewDispatcher(),
		verifier:    cfg.Verifier,
		chars:       cfg.Characters,
		logs:        cfg.ChatLogs,
		presence:    cfg.Presence,
		relay:       cfg.Relay,
	}
	return s
}

func (s *Server) GatewayID() string   { return s.gwID }
func (s *Server) Reg() *Registry      { return s.reg }
func (s *Server) Disp() *Dispatcher   { return s.disp }
func (s *Server) ChatLogs() ChatLogWriter { return s.logs }
func (s *Server) Presence() PresenceStore { return s.presence }
func (s *Server) RelayBridge() Relay      { return s.relay }

// Broadcast 向所有在线连接下发 env，exclude 非 0 时跳过该用户。
// 对单个连接的发送失败只影响它自己：记下来，整轮发完后统一摘除。
func (s *Server) Broadcast(env interface{}, exclude int64) {
	snapshot := s.reg.Snapshot()

	var dead []*Client
	for _, c := range snapshot {
		if exclude != 0 && c.UserID == exclude {
			continue
		}
		if err := c.SendJSON(env); err != nil {
			logger.Infof("[broadcast] send failed user=%d conn=%s err=%v", c.UserID, c.ConnID, err)
			dead = append(dead, c)
		}
	}

	for _, c := range dead {
		s.dropClient(c)
	}
}

// dropClient 摘除一条死连接：注销、下线、关socket、离场广播。
func (s *Server) dropClient(c *Client) {
	s.retire(c, true)
}

// retire 连接收尾。顶号产生的旧连接不在表里，UnregisterClient
// 不会误伤新连接；只有真正完成摘除的一方清在线状态、通报离场，
// 保证每个掉线的人只被通报一次。announce=false 用于对方从未
// 入场（welcome 都没发出去）的情况。
func (s *Server) retire(c *Client, announce bool) {
	removed := s.reg.UnregisterClient(c)
	_ = c.Close()
	if !removed {
		return
	}
	if s.presence != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := s.presence.Offline(ctx, c.UserID); err != nil {
			logger.Infof("[presence] offline user=%d err=%v", c.UserID, err)
		}
		cancel()
	}
	if announce {
		s.Broadcast(BuildSystem(c.Name+" left the game"), 0)
	}
}
