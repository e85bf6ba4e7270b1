// 程序入口：仅负责读取配置、初始化依赖并启动查询服务；API 注册在 internal/api 以便扩展
// 约束：本进程只持有只读存储凭据；字典重建走 cmd/dict-ingest，公网不可达
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"boundary-api/internal/api"
	"boundary-api/internal/config"
	"boundary-api/internal/dictstore"
	"boundary-api/internal/logger"
	"boundary-api/internal/metrics"
	"boundary-api/internal/middleware"
	"boundary-api/internal/resolver"
	"boundary-api/internal/utils"
)

func main() {
	_ = godotenv.Load(".env")
	l := logger.Setup()
	l.Debug("log_init_ok")

	cfg := config.Load()
	l.Info("config_loaded", "levels", cfg.LevelOrder, "default_level", cfg.DefaultLevel, "meta_table", cfg.MetaTable)

	rc := utils.OpenRedisRead()
	if rc == nil {
		l.Error("redis_addr_missing")
		os.Exit(1)
	}
	if err := rc.Ping(context.Background()).Err(); err != nil {
		// 启动时存储不可达不致命：查询路径自身会按瞬时错误处理并对外返回 503
		l.Error("redis_ping_error", "err", err)
	} else {
		l.Info("redis_ping_ok")
	}

	store := dictstore.NewReadStore(rc, cfg)
	rs := resolver.New(store, cfg)

	apiBase := os.Getenv("API_BASE")
	mux := http.NewServeMux()
	apiMux := api.BuildRoutes(rs, store, cfg)
	if apiBase != "" {
		mux.Handle(apiBase+"/", http.StripPrefix(apiBase, apiMux))
	} else {
		mux.Handle("/", apiMux)
	}
	mux.Handle(apiBase+"/metrics", metrics.Handler())

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	handler := logger.AccessMiddleware(l)(mux)
	handler = middleware.Wrap(handler)
	s := &http.Server{Addr: addr, Handler: handler}
	l.Info("listening", "addr", addr, "base", apiBase)
	if err := s.ListenAndServe(); err != nil {
		l.Error("server_error", "err", err)
		os.Exit(1)
	}
}
