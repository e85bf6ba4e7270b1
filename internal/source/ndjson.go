// 包 source：重建作业的源数据读取；文件源（NDJSON）与 PRG 镜像库源（Postgres）
package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"boundary-api/internal/dictstore"
)

// sourceRow：源行结构；geometry 保留原始 JSON 字节（GeoJSON 对象或字符串均可），
// 存储层视其为不透明负载
type sourceRow struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Geometry json.RawMessage `json:"geometry"`
	Revision string          `json:"revision"`
}

// ReadNDJSON：逐行解析 NDJSON 源
// 约束：空行跳过；解析失败或缺少代码的行直接报错，不做纠错以确保数据质量；
// 行内未带 revision 时回落到调用方给定的版本
func ReadNDJSON(r io.Reader, fallbackRevision string) ([]dictstore.BoundaryRecord, error) {
	sc := bufio.NewScanner(r)
	// 几何负载可能很大，放开扫描缓冲
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	var out []dictstore.BoundaryRecord
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var row sourceRow
		if err := json.Unmarshal([]byte(text), &row); err != nil {
			return nil, fmt.Errorf("source: line %d: %w", line, err)
		}
		if row.Code == "" {
			return nil, fmt.Errorf("source: line %d: missing code", line)
		}
		rev := row.Revision
		if rev == "" {
			rev = fallbackRevision
		}
		out = append(out, dictstore.BoundaryRecord{
			Code:     row.Code,
			Name:     row.Name,
			Geometry: []byte(row.Geometry),
			Revision: rev,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
