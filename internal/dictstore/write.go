package dictstore

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"boundary-api/internal/config"
	"boundary-api/internal/logger"
)

// WriteStore：读写访问句柄，绑定重建作业身份
// 背景：写能力包含读能力（作业需要校验与描述），反向不成立；
// 该句柄只出现在离线重建进程中，不进入对外服务
type WriteStore struct {
	ReadStore
}

// NewWriteStore：用读写凭据的客户端构建写句柄
func NewWriteStore(rdb *redis.Client, cfg config.Config) *WriteStore {
	return &WriteStore{ReadStore{rdb: rdb, cfg: cfg}}
}

// BatchPut：单批写入若干条记录
// 背景：一条 HSET 携带全部 field/value 对，批内原子；跨批不保证事务，
// 重建期间新旧记录短暂共存由元数据的 source_revision 兜底
// 约束：批大小由调用方限制在后端单请求上限内；按代码覆盖写，天然幂等
func (s *WriteStore) BatchPut(ctx context.Context, level string, records []BoundaryRecord) error {
	table, err := tableFor(s.cfg, level)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	pairs := make([]interface{}, 0, len(records)*2)
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		pairs = append(pairs, rec.Code, string(b))
	}
	if err := s.rdb.HSet(ctx, table, pairs...).Err(); err != nil {
		return err
	}
	logger.L().Debug("dict_batch_put", "table", table, "count", len(records))
	return nil
}

// CreateTable：整表重建入口，删旧表并盖上当前格式版本
// 为什么：格式变更采用 drop+recreate 而非原地迁移，读路径永不触碰表结构
func (s *WriteStore) CreateTable(ctx context.Context, level string) error {
	table, err := tableFor(s.cfg, level)
	if err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, table)
	pipe.Set(ctx, schemaKey(table), SchemaVersion, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	logger.L().Info("dict_table_created", "table", table, "schema", SchemaVersion)
	return nil
}

// DeleteTable：删除字典表及其格式版本键
func (s *WriteStore) DeleteTable(ctx context.Context, level string) error {
	table, err := tableFor(s.cfg, level)
	if err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, table)
	pipe.Del(ctx, schemaKey(table))
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	logger.L().Info("dict_table_deleted", "table", table)
	return nil
}

// SetMeta：写入缓存全局元数据；仅重建作业调用
func (s *WriteStore) SetMeta(ctx context.Context, key, value string) error {
	return s.rdb.HSet(ctx, s.cfg.MetaTable, key, value).Err()
}
