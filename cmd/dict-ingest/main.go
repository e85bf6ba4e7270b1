// 文档注释：字典重建作业入口
// 背景：以读写身份整表重建一个层级的字典；源为 NDJSON 文件（INGEST_FILE）
// 或 PRG 镜像库（默认）；由运维或流水线带外触发
// 约束：同一层级不得并发运行两个实例；批次失败时元数据不推进，按日志中的断点排查后整层重跑
package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"

	"boundary-api/internal/config"
	"boundary-api/internal/dictstore"
	"boundary-api/internal/ingest"
	"boundary-api/internal/logger"
	"boundary-api/internal/source"
	"boundary-api/internal/utils"
)

func main() {
	_ = godotenv.Load(".env")
	l := logger.Setup()
	cfg := config.Load()
	ctx := context.Background()

	level := os.Getenv("INGEST_LEVEL")
	if level == "" {
		l.Error("ingest_level_missing")
		os.Exit(1)
	}
	if _, ok := cfg.Table(level); !ok {
		l.Error("ingest_level_unknown", "level", level)
		os.Exit(1)
	}

	var records []dictstore.BoundaryRecord
	revision := os.Getenv("INGEST_REVISION")
	if path := os.Getenv("INGEST_FILE"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			l.Error("source_open_error", "path", path, "err", err)
			os.Exit(1)
		}
		records, err = source.ReadNDJSON(f, revision)
		_ = f.Close()
		if err != nil {
			l.Error("source_parse_error", "path", path, "err", err)
			os.Exit(1)
		}
		l.Info("source_file_ok", "path", path, "records", len(records))
	} else {
		db, err := utils.OpenPostgresFromEnv()
		if err != nil {
			l.Error("db_open_error", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if os.Getenv("INGEST_ENSURE_SCHEMA") == "true" {
			if err := source.EnsureSchema(db); err != nil {
				l.Error("schema_error", "err", err)
				os.Exit(1)
			}
		}
		var rev string
		records, rev, err = source.FetchLevel(ctx, db, level)
		if err != nil {
			l.Error("prg_fetch_error", "level", level, "err", err)
			os.Exit(1)
		}
		if revision == "" {
			revision = rev
		}
	}

	rc := utils.OpenRedisWrite()
	if rc == nil {
		l.Error("redis_addr_missing")
		os.Exit(1)
	}
	if err := rc.Ping(ctx).Err(); err != nil {
		l.Error("redis_ping_error", "err", err)
		os.Exit(1)
	}
	ws := dictstore.NewWriteStore(rc, cfg)

	res, err := ingest.Rebuild(ctx, ws, cfg, level, revision, records)
	if err != nil {
		var pf *ingest.PartialFailureError
		if errors.As(err, &pf) {
			l.Error("rebuild_partial_failure",
				"level", pf.Level,
				"failed_batch", pf.FailedBatch,
				"batches_written", pf.BatchesWritten,
				"batches_total", pf.BatchesTotal,
				"err", pf.Err,
			)
		} else {
			l.Error("rebuild_error", "level", level, "err", err)
		}
		os.Exit(1)
	}
	l.Info("rebuild_ok", "level", level, "revision", revision,
		"records", res.RecordsWritten, "batches", res.BatchesWritten)
}
