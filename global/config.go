package global

import (
	"os"
	"strconv"
	"time"

	"DreamMMO/tools/ids"
)

// AppConfig 进程级配置，全部来自环境变量。
type AppConfig struct {
	HTTPAddr    string
	DatabaseURL string

	JwtSecret []byte

	// 可选：未配置则对应能力关闭
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	NatsURL       string

	GatewayID     string
	WSIdleTimeout time.Duration
}

var appConfig *AppConfig

// Load 读取环境变量并缓存。重复调用返回同一份配置。
func Load() *AppConfig {
	if appConfig != nil {
		return appConfig
	}
	appConfig = &AppConfig{
		HTTPAddr:      envOr("HTTP_ADDR", ":8000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JwtSecret:     []byte(envOr("SECRET_KEY", "fallback-secret")),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),
		NatsURL:       os.Getenv("NATS_URL"),
		GatewayID:     envOr("GATEWAY_ID", "gw-1"),
		WSIdleTimeout: envDuration("WS_IDLE_TIMEOUT", 5*time.Minute),
	}
	return appConfig
}

func GetJwtSecret() []byte {
	return Load().JwtSecret
}

// ConfigIds 初始化雪花ID节点
func ConfigIds(nodeID int64) {
	ids.SetNodeID(nodeID)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
