package source

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"boundary-api/internal/dictstore"
	"boundary-api/internal/logger"
)

// 文档注释：PRG 镜像库源
// 背景：国家边界登记（PRG）数据经离线转换后落在一张 Postgres 镜像表里，
// 重建作业按层级整层读出；镜像表的灌入属于外部转换管道，不在本服务范围
// 约束：revision 取该层级的最大版本标签，作为本次重建的源版本

// EnsureSchema：首次运行自动创建镜像表
// 约束：使用 IF NOT EXISTS 避免与既有结构冲突；仅创建最小必需结构
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS prg_boundaries (
            level TEXT NOT NULL,
            code TEXT NOT NULL,
            name TEXT NOT NULL,
            geometry TEXT NOT NULL,
            revision TEXT NOT NULL,
            PRIMARY KEY (level, code)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_prg_level ON prg_boundaries(level)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	logger.L().Debug("prg_schema_ok")
	return nil
}

// FetchLevel：读出一个层级的全部边界记录与源版本
func FetchLevel(ctx context.Context, db *sql.DB, level string) ([]dictstore.BoundaryRecord, string, error) {
	var revision string
	row := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(revision), '') FROM prg_boundaries WHERE level=$1`, level)
	if err := row.Scan(&revision); err != nil {
		return nil, "", err
	}
	rows, err := db.QueryContext(ctx, `SELECT code, name, geometry, revision FROM prg_boundaries WHERE level=$1 ORDER BY code`, level)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()
	var out []dictstore.BoundaryRecord
	for rows.Next() {
		var rec dictstore.BoundaryRecord
		var geom string
		if err := rows.Scan(&rec.Code, &rec.Name, &geom, &rec.Revision); err != nil {
			return nil, "", err
		}
		rec.Geometry = []byte(geom)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}
	logger.L().Info("prg_fetch_done", "level", level, "records", len(out), "revision", revision)
	return out, revision, nil
}
