package natsx

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"DreamMMO/logger"
	"DreamMMO/service/chat"
)

const defaultChatSubject = "dreammmo.chat"

// RelayConfig 网关间消息桥配置
type RelayConfig struct {
	Servers       []string
	Name          string
	Subject       string
	GatewayID     string
	ReconnectWait time.Duration
	Timeout       time.Duration
}

// Relay 把本网关的聊天广播转发给其它网关。
// 单网关部署时不启用，Server 持有 nil 即可。
type Relay struct {
	cfg RelayConfig
	nc  *nats.Conn
	sub *nats.Subscription
}

// relayFrame 跨网关信封，gateway_id 用来丢弃自己发出的回声
type relayFrame struct {
	GatewayID string          `json:"gateway_id"`
	Envelope  json.RawMessage `json:"envelope"`
}

// NewRelay 连接 NATS
func NewRelay(cfg RelayConfig) (*Relay, error) {
	if len(cfg.Servers) == 0 {
		return nil, errors.New("nats servers missing")
	}
	if cfg.Subject == "" {
		cfg.Subject = defaultChatSubject
	}
	if cfg.ReconnectWait == 0 {
		cfg.ReconnectWait = 500 * time.Millisecond
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 3 * time.Second
	}
	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.ReconnectJitter(100*time.Millisecond, 500*time.Millisecond),
		nats.Timeout(cfg.Timeout),
	}
	nc, err := nats.Connect(strings.Join(cfg.Servers, ","), opts...)
	if err != nil {
		return nil, err
	}
	return &Relay{cfg: cfg, nc: nc}, nil
}

// PublishChat 把聊天信封发布到共享 subject
func (r *Relay) PublishChat(env chat.ChatEnvelope) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}
	data, err := json.Marshal(relayFrame{GatewayID: r.cfg.GatewayID, Envelope: raw})
	if err != nil {
		return err
	}
	return r.nc.Publish(r.cfg.Subject, data)
}

// SubscribeChat 订阅其它网关的聊天信封。
// deliver 收到的是已解包的 envelope JSON，由调用方决定怎么广播。
func (r *Relay) SubscribeChat(deliver func(envelope json.RawMessage)) error {
	sub, err := r.nc.Subscribe(r.cfg.Subject, func(m *nats.Msg) {
		var f relayFrame
		if err := json.Unmarshal(m.Data, &f); err != nil {
			logger.Errorf("[relay] bad frame on %s: %v", m.Subject, err)
			return
		}
		if f.GatewayID == r.cfg.GatewayID {
			return
		}
		deliver(f.Envelope)
	})
	if err != nil {
		return err
	}
	r.sub = sub
	return nil
}

// Close 优雅关闭
func (r *Relay) Close() error {
	if r.sub != nil {
		_ = r.sub.Drain()
		r.sub = nil
	}
	if r.nc != nil {
		return r.nc.Drain()
	}
	return nil
}
