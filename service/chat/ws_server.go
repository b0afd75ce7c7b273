package chat

import (
	"context"
	"net"
	"net/http"
	"time"

	"DreamMMO/logger"
	chatlogmodel "DreamMMO/module/chatlog/model"
	"DreamMMO/tools/errs"
	"DreamMMO/tools/ids"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	pkgerrors "github.com/pkg/errors"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWS 接入一条 WebSocket 连接。凭证走 URL（/ws/:token），
// 不在首帧里收，握手前无法伪造"已认证"状态。
func (s *Server) HandleWS(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		token = c.Query("token")
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// 常见：非 WebSocket 请求/握手失败
		logger.Infof("[ws] upgrade error: %v", err)
		return
	}

	s.RunSession(c.Request.Context(), token, ws)
}

// RunSession 驱动一条连接的完整生命周期：
// 认证 -> 取角色 -> 登记 -> welcome -> 入场广播 -> 收包循环 -> 收尾。
// 任何握手失败只下发一条 error 信封然后关连接，客户端需重连重试。
func (s *Server) RunSession(ctx context.Context, token string, conn WireConn) {
	userID, err := s.verifier.VerifyToken(token)
	if err != nil {
		logger.Infof("[ws] reject: bad token err=%v", err)
		rejectConn(conn, "invalid token")
		return
	}

	ch, err := s.chars.FirstByUser(ctx, userID)
	if err != nil {
		if pkgerrors.Is(err, errs.ErrCharacterMissing) {
			logger.Infof("[ws] reject: no character user=%d", userID)
			rejectConn(conn, "create a character first")
		} else {
			logger.Errorf("[ws] character lookup user=%d err=%v", userID, err)
			rejectConn(conn, "internal error")
		}
		return
	}

	cl := NewClient(ids.GenerateString(), userID, ch, conn)

	// 顶号：同一用户的旧连接被挤下线
	if evicted := s.reg.Register(cl); evicted != nil {
		logger.Infof("[ws] evict previous conn user=%d conn=%s", userID, evicted.ConnID)
		_ = evicted.SendJSON(BuildError("logged in from another location"))
		_ = evicted.Close()
	}

	if s.presence != nil {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := s.presence.Online(pctx, userID); err != nil {
			logger.Infof("[presence] online user=%d err=%v", userID, err)
		}
		cancel()
	}

	logger.Infof("[ws] 上线 user=%d name=%s conn=%s online=%d", userID, cl.Name, cl.ConnID, s.reg.Count())

	// welcome 必须先于他人看到的入场广播
	if err := cl.SendJSON(BuildWelcome(ch, s.reg.Count())); err != nil {
		logger.Infof("[ws] welcome send failed user=%d err=%v", userID, err)
		// 入场广播还没发过，别人不知道他来过，收尾也不通报离场
		s.retire(cl, false)
		return
	}
	s.Broadcast(BuildSystem(cl.Name+" joined the game"), userID)

	s.readLoop(ctx, cl)

	// ---- 收尾：注销、下线、离场广播 ----
	// 顶号被挤下去的旧连接 removed=false：新连接还在线，
	// 在线状态和离场通报都不归它管。
	removed := s.reg.UnregisterClient(cl)
	_ = cl.Close()
	if removed {
		if s.presence != nil {
			pctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			if err := s.presence.Offline(pctx, userID); err != nil {
				logger.Infof("[presence] offline user=%d err=%v", userID, err)
			}
			cancel()
		}
		logger.Infof("[ws] 下线 user=%d name=%s conn=%s", userID, cl.Name, cl.ConnID)
		s.Broadcast(BuildSystem(cl.Name+" left the game"), 0)
	}
}

// readLoop 只读不写。读错、超时、对端关闭都从这里退出，由上层收尾。
func (s *Server) readLoop(ctx context.Context, cl *Client) {
	conn := cl.conn
	for {
		_ = conn.SetReadDeadline(time.Now().Add(s.idleTimeout))
		mt, data, rerr := conn.ReadMessage()
		if rerr != nil {
			if websocket.IsCloseError(rerr,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Infof("[ws] peer closed user=%d err=%v", cl.UserID, rerr)
			} else if ne, ok := rerr.(net.Error); ok && ne.Timeout() {
				logger.Infof("[ws] idle timeout user=%d err=%v", cl.UserID, rerr)
			} else {
				logger.Infof("[ws] read err user=%d err=%v", cl.UserID, rerr)
			}
			return
		}
		if mt != websocket.TextMessage && mt != websocket.BinaryMessage {
			continue
		}

		f, perr := ParseFrameJSON(data)
		if perr != nil {
			// 只打印简短样本
			sample := data
			if len(sample) > 256 {
				sample = sample[:256]
			}
			logger.Infof("[ws] parse frame err user=%d err=%v sample=%q", cl.UserID, perr, sample)
			continue
		}

		h := s.disp.GetHandler(f.Type)
		if h == nil {
			// 未知类型：不回包、不报错
			logger.Debugf("[ws] no handler for type=%q user=%d", f.Type, cl.UserID)
			continue
		}

		if err := h.Handle(&Context{S: s, Ctx: ctx}, f, cl); err != nil {
			// handler 出错不终止会话
			logger.Errorf("[ws] handle type=%q user=%d err=%v", f.Type, cl.UserID, err)
		}
	}
}

// rejectConn 握手失败路径：一条 error 信封 + 关闭。
func rejectConn(conn WireConn, msg string) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteJSON(BuildError(msg))
	_ = conn.Close()
}

// AppendChatLog 聊天落库。失败只记日志，广播照发——持久化抖动不该卡住玩家聊天。
func (s *Server) AppendChatLog(ctx context.Context, cl *Client, channel, message string) {
	if s.logs == nil {
		return
	}
	rec := chatlogmodel.Record{
		Channel:    channel,
		SenderID:   cl.UserID,
		SenderName: cl.Name,
		Message:    message,
	}
	if err := s.logs.Append(ctx, rec); err != nil {
		logger.Errorf("[chatlog] append user=%d err=%v", cl.UserID, err)
	}
}
