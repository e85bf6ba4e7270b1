// 包 ingest：字典表的离线批量重建
// 背景：重建作业持有写能力，独立于对外查询进程运行；由运维或流水线触发，公网不可达
// 约束：同一层级不允许并发重建（运维约定，不在此加锁）：两次运行交错的批量写
// 会在一张表内混入新旧记录
package ingest

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"boundary-api/internal/config"
	"boundary-api/internal/dictstore"
	"boundary-api/internal/logger"
	"boundary-api/internal/metrics"
)

// Dictionary：重建所需的写能力集合；生产实现为 dictstore.WriteStore
type Dictionary interface {
	CreateTable(ctx context.Context, level string) error
	BatchPut(ctx context.Context, level string, records []dictstore.BoundaryRecord) error
	SetMeta(ctx context.Context, key, value string) error
}

// Result：一次重建的写入统计
type Result struct {
	RecordsWritten int
	BatchesWritten int
	BatchesTotal   int
}

// PartialFailureError：部分批次成功后的中止
// 背景：不自动回滚已写批次（下次成功重建会整表覆盖），但必须告知运维从哪一批失败，
// 且元数据保持在上一个完整版本
type PartialFailureError struct {
	Level          string
	FailedBatch    int
	BatchesWritten int
	BatchesTotal   int
	Err            error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("ingest: rebuild of %s aborted at batch %d/%d (%d written, meta not advanced): %v",
		e.Level, e.FailedBatch+1, e.BatchesTotal, e.BatchesWritten, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }

// Rebuild：整表重建一个层级的字典
// 顺序保证：建表 → 全部批次写入 → 元数据推进；任何批次失败都不推进元数据，
// 读方依据 source_revision 判断新鲜度时不会看到记录不完整的版本
// 幂等：记录按代码覆盖写，同样的源数据重跑产生相同表内容
func Rebuild(ctx context.Context, d Dictionary, cfg config.Config, level, revision string, records []dictstore.BoundaryRecord) (Result, error) {
	start := time.Now()
	bs := cfg.BatchSize
	if bs <= 0 {
		bs = 25
	}
	total := (len(records) + bs - 1) / bs
	res := Result{BatchesTotal: total}
	logger.L().Info("rebuild_begin", "level", level, "revision", revision, "records", len(records), "batches", total)

	if err := d.SetMeta(ctx, dictstore.MetaKey(level, dictstore.MetaKeyStatus), dictstore.StatusCreating); err != nil {
		return res, err
	}
	if err := d.CreateTable(ctx, level); err != nil {
		return res, err
	}

	for i := 0; i < total; i++ {
		lo := i * bs
		hi := lo + bs
		if hi > len(records) {
			hi = len(records)
		}
		batchCtx, cancel := context.WithTimeout(ctx, cfg.WriteTimeout)
		err := d.BatchPut(batchCtx, level, records[lo:hi])
		cancel()
		if err != nil {
			metrics.RebuildFailuresTotal.WithLabelValues(level).Inc()
			logger.L().Error("rebuild_abort", "level", level, "batch", i, "written", res.BatchesWritten, "err", err)
			return res, &PartialFailureError{
				Level:          level,
				FailedBatch:    i,
				BatchesWritten: res.BatchesWritten,
				BatchesTotal:   total,
				Err:            err,
			}
		}
		res.BatchesWritten++
		res.RecordsWritten += hi - lo
		metrics.RebuildBatchesTotal.WithLabelValues(level).Inc()
		if res.BatchesWritten%100 == 0 {
			logger.L().Info("rebuild_progress", "level", level, "batches", res.BatchesWritten, "records", res.RecordsWritten)
		}
	}

	// 元数据最后推进；失败时 status 停留在 creating，读方沿用上一个版本
	now := strconv.FormatInt(time.Now().Unix(), 10)
	if err := d.SetMeta(ctx, dictstore.MetaKey(level, dictstore.MetaKeyLastBuild), now); err != nil {
		return res, err
	}
	if err := d.SetMeta(ctx, dictstore.MetaKey(level, dictstore.MetaKeySourceRevision), revision); err != nil {
		return res, err
	}
	if err := d.SetMeta(ctx, dictstore.MetaKey(level, dictstore.MetaKeyStatus), dictstore.StatusReady); err != nil {
		return res, err
	}
	metrics.RebuildRecordsTotal.WithLabelValues(level).Add(float64(res.RecordsWritten))
	metrics.RebuildDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	logger.L().Info("rebuild_done", "level", level, "revision", revision, "records", res.RecordsWritten, "batches", res.BatchesWritten)
	return res, nil
}
