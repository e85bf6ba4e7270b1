// 包 api：集中注册 HTTP API 路由以解耦主入口，便于后续扩展与替换
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"boundary-api/internal/config"
	"boundary-api/internal/dictstore"
	"boundary-api/internal/resolver"
	"boundary-api/internal/version"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.Header().Set("cache-control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// 构建并返回 API 路由：独立 ServeMux 便于在主入口挂载到前缀之下
// 背景：/boundaries/{code} 默认按市镇层级解析；/boundaries/{level}/{code} 指定层级；
// /status 与 /healthz 面向运维，不在查询热路径上
func BuildRoutes(rs *resolver.Resolver, store *dictstore.ReadStore, cfg config.Config) *http.ServeMux {
	apiMux := http.NewServeMux()

	resolve := func(w http.ResponseWriter, r *http.Request, level, code string) {
		rec, err := rs.Resolve(r.Context(), level, code)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, boundaryResult{
				Code:     rec.Code,
				Name:     rec.Name,
				Geometry: rec.Geometry,
				Revision: rec.Revision,
			})
		case errors.Is(err, dictstore.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorResult{Error: "not_found"})
		case errors.Is(err, dictstore.ErrBadLevel):
			writeJSON(w, http.StatusBadRequest, errorResult{Error: "unknown_level"})
		case errors.Is(err, resolver.ErrBadCode):
			writeJSON(w, http.StatusBadRequest, errorResult{Error: "bad_code"})
		default:
			// 重试耗尽或其它存储侧故障，统一对外为 503
			writeJSON(w, http.StatusServiceUnavailable, errorResult{Error: "unavailable"})
		}
	}

	apiMux.HandleFunc("GET /boundaries/{code}", func(w http.ResponseWriter, r *http.Request) {
		resolve(w, r, cfg.DefaultLevel, r.PathValue("code"))
	})
	apiMux.HandleFunc("GET /boundaries/{level}/{code}", func(w http.ResponseWriter, r *http.Request) {
		resolve(w, r, r.PathValue("level"), r.PathValue("code"))
	})

	// 运维状态：逐层级 describe 加元数据；元数据缺失不算错误（仅表示尚未重建过）
	apiMux.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		out := statusResult{Commit: version.Commit}
		for _, level := range cfg.LevelOrder {
			table, _ := cfg.Table(level)
			ls := levelStatus{Level: level, Table: table}
			if info, err := store.Describe(ctx, level); err == nil {
				ls.RecordCount = info.RecordCount
				ls.SchemaVersion = info.SchemaVersion
			}
			ls.SourceRevision, _ = store.GetMeta(ctx, dictstore.MetaKey(level, dictstore.MetaKeySourceRevision))
			ls.LastBuild, _ = store.GetMeta(ctx, dictstore.MetaKey(level, dictstore.MetaKeyLastBuild))
			ls.Status, _ = store.GetMeta(ctx, dictstore.MetaKey(level, dictstore.MetaKeyStatus))
			out.Levels = append(out.Levels, ls)
		}
		writeJSON(w, http.StatusOK, out)
	})

	apiMux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return apiMux
}
