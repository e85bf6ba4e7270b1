// 包 config：进程级不可变配置；启动时一次性读取，显式注入到查询与重建组件，避免散落的全局状态
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config：部署期固定的字典布局与运行参数
// 背景：哪些行政层级存在、各层级对应哪张字典表，属于部署时决策；运行期只读
// 约束：加载后不再修改；两个进程（查询服务与重建作业）注入同一份结构
type Config struct {
	// Levels：层级名到字典表名；LevelOrder 保留声明顺序，供状态输出使用
	Levels     map[string]string
	LevelOrder []string
	// DefaultLevel：路径未携带层级时使用的层级
	DefaultLevel string
	// MetaTable：缓存全局元数据表，独立于各字典表
	MetaTable string
	// BatchSize：批量写入的单批条数上限，对齐后端存储的单请求限制
	BatchSize int
	// ReadTimeout：查询路径单次存储访问超时；WriteTimeout：重建路径单批写入超时
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// RetryMax / RetryBackoff：查询路径瞬时错误的有界重试参数
	RetryMax     int
	RetryBackoff time.Duration
}

// 默认层级与表名：沿用上游字典的命名惯例
const defaultLevels = "municipalities:osm_prg_gminy_v1,counties:osm_prg_powiaty_v1,provinces:osm_prg_wojewodztwa_v1"

// Load：从环境变量构建配置
// 约束：LEVELS 格式为 "层级:表名" 逗号分隔；解析失败的段被跳过而非中断启动
func Load() Config {
	c := Config{
		Levels:       map[string]string{},
		DefaultLevel: envOr("DEFAULT_LEVEL", "municipalities"),
		MetaTable:    envOr("META_TABLE", "meta"),
		BatchSize:    envInt("BATCH_SIZE", 25),
		ReadTimeout:  envMillis("READ_TIMEOUT_MS", 2000),
		WriteTimeout: envMillis("WRITE_TIMEOUT_MS", 30000),
		RetryMax:     envInt("RETRY_MAX", 2),
		RetryBackoff: envMillis("RETRY_BACKOFF_MS", 50),
	}
	raw := envOr("LEVELS", defaultLevels)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, table, ok := strings.Cut(part, ":")
		if !ok || name == "" || table == "" {
			continue
		}
		if _, dup := c.Levels[name]; !dup {
			c.LevelOrder = append(c.LevelOrder, name)
		}
		c.Levels[name] = table
	}
	return c
}

// Table：层级名解析为字典表名；未配置的层级返回 false
func (c Config) Table(level string) (string, bool) {
	t, ok := c.Levels[level]
	return t, ok
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envMillis(key string, def int) time.Duration {
	return time.Duration(envInt(key, def)) * time.Millisecond
}
