package chat_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func dialWS(t *testing.T, srvURL, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srvURL, "http") + "/ws/" + token
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	return ws
}

func readEnvelope(t *testing.T, ws *websocket.Conn) map[string]any {
	t.Helper()
	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	return m
}

// 走真实的 HTTP 升级路径，其余依赖仍用假实现
func TestHandleWSOverHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newHarness()

	r := gin.New()
	r.GET("/ws/:token", h.server.HandleWS)
	ts := httptest.NewServer(r)
	defer ts.Close()

	alice := dialWS(t, ts.URL, "token-alice")
	defer alice.Close()

	welcome := readEnvelope(t, alice)
	if welcome["type"] != "welcome" {
		t.Fatalf("first envelope = %v", welcome["type"])
	}
	if welcome["message"] != "Welcome, Alice!" {
		t.Errorf("message = %v", welcome["message"])
	}
	ch, ok := welcome["character"].(map[string]any)
	if !ok {
		t.Fatalf("character payload missing: %v", welcome["character"])
	}
	if ch["name"] != "Alice" || ch["class"] != "warrior" {
		t.Errorf("character = %v", ch)
	}

	// 聊天回显
	msg := map[string]any{"type": "chat", "message": "over real sockets"}
	if err := alice.WriteJSON(msg); err != nil {
		t.Fatalf("write: %v", err)
	}
	echo := readEnvelope(t, alice)
	if echo["type"] != "chat" || echo["message"] != "over real sockets" {
		t.Errorf("echo = %v", echo)
	}

	// 心跳
	if err := alice.WriteJSON(map[string]any{"type": "ping"}); err != nil {
		t.Fatalf("write ping: %v", err)
	}
	pong := readEnvelope(t, alice)
	if pong["type"] != "pong" {
		t.Errorf("pong = %v", pong)
	}
}

func TestHandleWSRejectsBadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newHarness()

	r := gin.New()
	r.GET("/ws/:token", h.server.HandleWS)
	ts := httptest.NewServer(r)
	defer ts.Close()

	ws := dialWS(t, ts.URL, "bogus")
	defer ws.Close()

	env := readEnvelope(t, ws)
	if env["type"] != "error" || env["message"] != "invalid token" {
		t.Fatalf("env = %v", env)
	}
	// 服务端随即关闭连接
	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := ws.ReadMessage(); err == nil {
		t.Error("expected connection closed after rejection")
	}
}
