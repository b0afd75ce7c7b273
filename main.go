package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"DreamMMO/data/database/pg"
	"DreamMMO/global"
	"DreamMMO/logger"
	"DreamMMO/middleware"
	characterhdl "DreamMMO/module/character"
	charactersvc "DreamMMO/module/character/service"
	chatlogsvc "DreamMMO/module/chatlog/service"
	userhdl "DreamMMO/module/user"
	usersvc "DreamMMO/module/user/service"
	worldhdl "DreamMMO/module/world"
	worldsvc "DreamMMO/module/world/service"
	"DreamMMO/service/chat"
	chathandlers "DreamMMO/service/chat/handlers"
	"DreamMMO/service/natsx"
	"DreamMMO/service/storage"
	redisstore "DreamMMO/service/storage/redis"
	jwtlib "DreamMMO/tools/security"
)

func main() {
	cfg := global.Load()
	global.ConfigIds(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := pg.Init(ctx, cfg.DatabaseURL); err != nil {
		cancel()
		logger.Errorf("[boot] postgres init failed: %v", err)
		os.Exit(1)
	}
	cancel()
	defer pg.Close()

	// Redis 可选，没配就不开在线状态
	var presence chat.PresenceStore
	if cfg.RedisAddr != "" {
		err := redisstore.InitRedis(redisstore.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			PoolSize: 64,
		})
		if err != nil {
			logger.Errorf("[boot] redis init failed, presence disabled: %v", err)
		}
	}
	if redisstore.Ready() {
		presence = storage.NewOnlineManager(cfg.GatewayID, 2*cfg.WSIdleTimeout)
		defer redisstore.CloseRedis()
	}

	// NATS 可选，多网关部署时互转聊天
	var relay *natsx.Relay
	if cfg.NatsURL != "" {
		var err error
		relay, err = natsx.NewRelay(natsx.RelayConfig{
			Servers:   []string{cfg.NatsURL},
			Name:      cfg.GatewayID,
			GatewayID: cfg.GatewayID,
		})
		if err != nil {
			logger.Errorf("[boot] nats connect failed, relay disabled: %v", err)
			relay = nil
		} else {
			defer relay.Close()
		}
	}

	jwtOpts := jwtlib.DefaultOptions(global.GetJwtSecret())

	userSvc := usersvc.New(pg.Pool(), jwtOpts)
	charSvc := charactersvc.New(pg.Pool())
	worldSvc := worldsvc.New(pg.Pool())
	chatlogSvc := chatlogsvc.New(pg.Pool())

	chatServer := chat.NewServer(chat.ServerConfig{
		GatewayID:   cfg.GatewayID,
		IdleTimeout: cfg.WSIdleTimeout,
		Verifier:    jwtlib.NewVerifier(jwtOpts),
		Characters:  charSvc,
		ChatLogs:    chatlogSvc,
		Presence:    presence,
		Relay:       relayOrNil(relay),
	})
	chatServer.Disp().Register(chathandlers.NewChatHandler())
	chatServer.Disp().Register(chathandlers.NewPingHandler())

	if relay != nil {
		err := relay.SubscribeChat(func(envelope json.RawMessage) {
			chatServer.Broadcast(envelope, 0)
		})
		if err != nil {
			logger.Errorf("[boot] relay subscribe failed: %v", err)
		}
	}

	userH := userhdl.NewHandler(userSvc)
	charH := characterhdl.NewHandler(charSvc)
	worldH := worldhdl.NewHandler(worldSvc)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Origin())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "game": "DreamMMO", "version": "0.1"})
	})

	middleware.POST(r, "/register", userH.Register, middleware.RouteOpt{})
	middleware.POST(r, "/login", userH.Login, middleware.RouteOpt{})

	middleware.POST(r, "/character/create", charH.Create, middleware.RouteOpt{IsAuth: true})
	middleware.GET(r, "/character", charH.Get, middleware.RouteOpt{IsAuth: true})

	middleware.GET(r, "/locations", worldH.Locations, middleware.RouteOpt{})
	middleware.GET(r, "/items", worldH.Items, middleware.RouteOpt{})
	middleware.GET(r, "/quests", worldH.Quests, middleware.RouteOpt{})

	r.GET("/ws/:token", chatServer.HandleWS)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		logger.Infof("[boot] gateway=%s listening on %s", cfg.GatewayID, cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("[boot] http server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("[boot] shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("[boot] shutdown: %v", err)
	}
}

// relayOrNil 避免把带 nil 指针的接口塞进 Server
func relayOrNil(r *natsx.Relay) chat.Relay {
	if r == nil {
		return nil
	}
	return r
}
