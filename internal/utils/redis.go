// 包 utils：Redis 连接工具，统一环境变量读取；按身份（只读/读写）打开各自的客户端
package utils

import (
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"

	"boundary-api/internal/logger"
)

// OpenRedis：使用地址与凭据打开 Redis 客户端
// 背景：保留直接传入参数的能力，用于测试与手工注入场景
func OpenRedis(addr, user, pass string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Username: user, Password: pass, DB: db})
}

func redisAddrFromEnv() string {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	return host + ":" + port
}

func redisDBFromEnv() int {
	// 解析失败时忽略并回退到 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, _ := strconv.Atoi(v); n >= 0 {
			return n
		}
	}
	return 0
}

// OpenRedisRead：以只读身份（get/describe 级 ACL 用户）打开客户端
// 约束：查询服务进程只允许经此入口连接存储；任何时刻不得持有读写凭据
func OpenRedisRead() *redis.Client {
	addr := redisAddrFromEnv()
	user := os.Getenv("REDIS_RO_USER")
	pass := os.Getenv("REDIS_RO_PASS")
	logger.L().Debug("redis_env", "addr", addr, "user", user, "db", redisDBFromEnv(), "capability", "read")
	return redis.NewClient(&redis.Options{Addr: addr, Username: user, Password: pass, DB: redisDBFromEnv()})
}

// OpenRedisWrite：以读写身份打开客户端；仅重建作业进程使用
func OpenRedisWrite() *redis.Client {
	addr := redisAddrFromEnv()
	user := os.Getenv("REDIS_RW_USER")
	pass := os.Getenv("REDIS_RW_PASS")
	logger.L().Debug("redis_env", "addr", addr, "user", user, "db", redisDBFromEnv(), "capability", "write")
	return redis.NewClient(&redis.Options{Addr: addr, Username: user, Password: pass, DB: redisDBFromEnv()})
}
