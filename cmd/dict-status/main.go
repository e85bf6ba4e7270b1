// 文档注释：字典状态巡检工具
// 背景：逐层级输出 describe 结果与元数据，供运维确认重建是否完整、版本是否前进
// 约束：只读身份即可运行；不修改任何数据
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"boundary-api/internal/config"
	"boundary-api/internal/dictstore"
	"boundary-api/internal/logger"
	"boundary-api/internal/utils"
)

func main() {
	_ = godotenv.Load(".env")
	l := logger.Setup()
	cfg := config.Load()
	ctx := context.Background()

	rc := utils.OpenRedisRead()
	if rc == nil {
		l.Error("redis_addr_missing")
		os.Exit(1)
	}
	if err := rc.Ping(ctx).Err(); err != nil {
		l.Error("redis_ping_error", "err", err)
		os.Exit(1)
	}
	store := dictstore.NewReadStore(rc, cfg)

	for _, level := range cfg.LevelOrder {
		table, _ := cfg.Table(level)
		info, err := store.Describe(ctx, level)
		if err != nil {
			l.Error("describe_error", "level", level, "table", table, "err", err)
			continue
		}
		rev, _ := store.GetMeta(ctx, dictstore.MetaKey(level, dictstore.MetaKeySourceRevision))
		built, _ := store.GetMeta(ctx, dictstore.MetaKey(level, dictstore.MetaKeyLastBuild))
		status, _ := store.GetMeta(ctx, dictstore.MetaKey(level, dictstore.MetaKeyStatus))
		l.Info("level_status",
			"level", level,
			"table", table,
			"records", info.RecordCount,
			"schema", info.SchemaVersion,
			"source_revision", rev,
			"last_build", built,
			"status", status,
		)
	}
}
