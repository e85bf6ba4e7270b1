package dictstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"boundary-api/internal/config"
	"boundary-api/internal/logger"
)

// ReadStore：只读访问句柄，绑定查询服务身份
// 背景：查询服务是对外可达面，即使被攻破也不能具备破坏缓存数据的能力；
// 本类型只暴露 get / describe / 元数据读取
type ReadStore struct {
	rdb *redis.Client
	cfg config.Config
}

// NewReadStore：用只读凭据的客户端构建读句柄
func NewReadStore(rdb *redis.Client, cfg config.Config) *ReadStore {
	return &ReadStore{rdb: rdb, cfg: cfg}
}

// Get：按层级与代码做点查
// 约束：仅精确匹配，不做前缀/模糊；未命中返回 ErrNotFound 而非存储错误
func (s *ReadStore) Get(ctx context.Context, level, code string) (*BoundaryRecord, error) {
	table, err := tableFor(s.cfg, level)
	if err != nil {
		return nil, err
	}
	raw, err := s.rdb.HGet(ctx, table, code).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var rec BoundaryRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		logger.L().Error("dict_decode_error", "table", table, "code", code, "err", err)
		return nil, err
	}
	return &rec, nil
}

// Describe：返回表的记录数与格式版本，供健康检查与运维工具使用
// 约束：不在查询热路径上调用；表未创建时记录数为 0、版本为空
func (s *ReadStore) Describe(ctx context.Context, level string) (TableInfo, error) {
	table, err := tableFor(s.cfg, level)
	if err != nil {
		return TableInfo{}, err
	}
	n, err := s.rdb.HLen(ctx, table).Result()
	if err != nil {
		return TableInfo{}, err
	}
	ver, err := s.rdb.Get(ctx, schemaKey(table)).Result()
	if errors.Is(err, redis.Nil) {
		ver = ""
	} else if err != nil {
		return TableInfo{}, err
	}
	return TableInfo{RecordCount: n, SchemaVersion: ver}, nil
}

// GetMeta：读取缓存全局元数据；缺失返回 ErrNotFound
// 背景：元数据仅作咨询用途，调用方不得因元数据缺失或过期而阻断查询
func (s *ReadStore) GetMeta(ctx context.Context, key string) (string, error) {
	v, err := s.rdb.HGet(ctx, s.cfg.MetaTable, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}
