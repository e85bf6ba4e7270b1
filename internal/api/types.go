package api

// 文档注释：查询返回结构（对外）
// 背景：统一对外序列化模型，仅包含必要字段；几何负载保持不透明字节（JSON 中为 base64）
// 约束：字段稳定；新增字段需评估兼容性与下游依赖
type boundaryResult struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Geometry []byte `json:"geometry"`
	Revision string `json:"revision"`
}

// errorResult：错误响应统一结构；不向外透出原始存储错误
type errorResult struct {
	Error string `json:"error"`
}

// levelStatus：单层级的运维状态视图（describe + 元数据）
type levelStatus struct {
	Level          string `json:"level"`
	Table          string `json:"table"`
	RecordCount    int64  `json:"record_count"`
	SchemaVersion  string `json:"schema_version"`
	SourceRevision string `json:"source_revision"`
	LastBuild      string `json:"last_build_timestamp"`
	Status         string `json:"status"`
}

// statusResult：/status 返回结构；仅作咨询用途，不参与查询路径决策
type statusResult struct {
	Commit string        `json:"commit"`
	Levels []levelStatus `json:"levels"`
}
