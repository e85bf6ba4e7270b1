// 包 resolver：行政代码到边界记录的只读解析
// 背景：每次调用恰好一次字典点查；无实例内可变状态，可任意水平复制
package resolver

import (
	"context"
	"errors"
	"time"

	"boundary-api/internal/config"
	"boundary-api/internal/dictstore"
	"boundary-api/internal/logger"
	"boundary-api/internal/metrics"
	"boundary-api/internal/terc"
)

// ErrBadCode：代码语法不符合层级要求；与 ErrNotFound（语法合法但不存在）区分
var ErrBadCode = errors.New("resolver: bad code syntax")

// ErrUnavailable：后端存储在有界重试后仍不可用
var ErrUnavailable = errors.New("resolver: backing store unavailable")

// Store：解析所需的最小读能力
// 为什么：解析器只依赖点查，便于测试替换；生产实现为 dictstore.ReadStore
type Store interface {
	Get(ctx context.Context, level, code string) (*dictstore.BoundaryRecord, error)
}

// Resolver：无状态解析器；配置与存储句柄注入后不再变更
type Resolver struct {
	store Store
	cfg   config.Config
}

func New(store Store, cfg config.Config) *Resolver {
	return &Resolver{store: store, cfg: cfg}
}

// Resolve：解析一次行政代码
// 约束：未知层级与非法代码语法直接拒绝，不触碰存储；
// 未命中（ErrNotFound）绝不重试；仅瞬时存储错误进入有界退避重试
func (rs *Resolver) Resolve(ctx context.Context, level, code string) (*dictstore.BoundaryRecord, error) {
	start := time.Now()
	if _, ok := rs.cfg.Table(level); !ok {
		metrics.BadRequestTotal.Inc()
		return nil, dictstore.ErrBadLevel
	}
	if !terc.ValidCode(level, code) {
		metrics.BadRequestTotal.Inc()
		return nil, ErrBadCode
	}
	metrics.ResolveTotal.WithLabelValues(level).Inc()

	var lastErr error
	for attempt := 0; attempt <= rs.cfg.RetryMax; attempt++ {
		if attempt > 0 {
			metrics.RetriesTotal.Inc()
			backoff := rs.cfg.RetryBackoff * time.Duration(attempt)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				metrics.UnavailableTotal.Inc()
				return nil, ErrUnavailable
			}
		}
		getCtx, cancel := context.WithTimeout(ctx, rs.cfg.ReadTimeout)
		rec, err := rs.store.Get(getCtx, level, code)
		cancel()
		if err == nil {
			metrics.ResolveDurationMs.Observe(float64(time.Since(start).Milliseconds()))
			return rec, nil
		}
		if errors.Is(err, dictstore.ErrNotFound) {
			metrics.NotFoundTotal.WithLabelValues(level).Inc()
			return nil, err
		}
		if errors.Is(err, dictstore.ErrBadLevel) {
			metrics.BadRequestTotal.Inc()
			return nil, err
		}
		metrics.StoreErrorsTotal.Inc()
		logger.L().Warn("resolve_store_error", "level", level, "code", code, "attempt", attempt, "err", err)
		lastErr = err
	}
	metrics.UnavailableTotal.Inc()
	logger.L().Error("resolve_unavailable", "level", level, "code", code, "err", lastErr)
	return nil, ErrUnavailable
}
