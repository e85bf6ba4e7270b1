package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestOpenRedisEmptyAddr(t *testing.T) {
	require.Nil(t, OpenRedis("", "", "", 0))
}

func TestOpenRedisReadUsesReadIdentity(t *testing.T) {
	srv := miniredis.RunT(t)
	srv.RequireUserAuth("dict-reader", "ro-secret")

	t.Setenv("REDIS_HOST", srv.Host())
	t.Setenv("REDIS_PORT", srv.Port())
	t.Setenv("REDIS_RO_USER", "dict-reader")
	t.Setenv("REDIS_RO_PASS", "ro-secret")

	rc := OpenRedisRead()
	require.NotNil(t, rc)
	require.NoError(t, rc.Ping(context.Background()).Err())

	// 错误凭据必须被存储拒绝
	bad := OpenRedis(srv.Addr(), "dict-reader", "wrong", 0)
	require.Error(t, bad.Ping(context.Background()).Err())
}
