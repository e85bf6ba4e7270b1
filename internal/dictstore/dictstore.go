// 包 dictstore：字典表与元数据表的键值访问层
// 背景：以 Redis 作为后端缓存存储，一张字典表对应一个 hash（field=行政代码，value=记录 JSON），
// 元数据独立为一个 hash，避免元数据变更与查询流量在同一键上竞争
// 约束：读能力与写能力拆分为两个类型（ReadStore / WriteStore），查询服务在类型层面拿不到写操作；
// 存储侧由两套 ACL 凭据二次兜底
package dictstore

import (
	"errors"

	"boundary-api/internal/config"
)

// SchemaVersion：字典记录的序列化格式版本；格式变更时整表重建而非原地迁移
const SchemaVersion = "v1"

// ErrNotFound：合法层级下代码不存在；属稳态预期结果而非故障
var ErrNotFound = errors.New("dictstore: record not found")

// ErrBadLevel：层级未在部署配置中声明
var ErrBadLevel = errors.New("dictstore: unknown level")

// BoundaryRecord：单条行政边界记录
// 约束：Code 在所在字典表内唯一；Geometry 为不透明序列化几何，同一 Revision 下不可变
type BoundaryRecord struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Geometry []byte `json:"geometry"`
	Revision string `json:"revision"`
}

// TableInfo：describe 结果，面向运维检查，不在查询热路径上
type TableInfo struct {
	RecordCount   int64  `json:"record_count"`
	SchemaVersion string `json:"schema_version"`
}

// 元数据键：每层级一组，重建作业独占写入
const (
	MetaKeySourceRevision = "source_revision"
	MetaKeyLastBuild      = "last_build_timestamp"
	MetaKeyStatus         = "status"
)

// 元数据状态值：沿袭 creating → ready 生命周期
const (
	StatusCreating = "creating"
	StatusReady    = "ready"
)

// MetaKey：层级内元数据键的命名空间拼接
func MetaKey(level, key string) string {
	return level + ":" + key
}

// schemaKey：字典表的格式版本键，与 hash 本体分离存储
func schemaKey(table string) string {
	return table + ":schema"
}

// tableFor：层级到表名的解析；未知层级统一以 ErrBadLevel 反馈
func tableFor(cfg config.Config, level string) (string, error) {
	t, ok := cfg.Table(level)
	if !ok {
		return "", ErrBadLevel
	}
	return t, nil
}
