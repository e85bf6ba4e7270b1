package dictstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"boundary-api/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Levels: map[string]string{
			"municipalities": "osm_prg_gminy_v1",
			"provinces":      "osm_prg_wojewodztwa_v1",
		},
		LevelOrder:   []string{"municipalities", "provinces"},
		DefaultLevel: "municipalities",
		MetaTable:    "meta",
		BatchSize:    25,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		RetryMax:     2,
		RetryBackoff: time.Millisecond,
	}
}

func testStores(t *testing.T) (*ReadStore, *WriteStore) {
	t.Helper()
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	cfg := testConfig()
	return NewReadStore(rdb, cfg), NewWriteStore(rdb, cfg)
}

func TestGetMissReturnsNotFound(t *testing.T) {
	rs, _ := testStores(t)
	_, err := rs.Get(context.Background(), "municipalities", "0000000")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetUnknownLevel(t *testing.T) {
	rs, ws := testStores(t)
	_, err := rs.Get(context.Background(), "districts", "12")
	require.ErrorIs(t, err, ErrBadLevel)
	err = ws.BatchPut(context.Background(), "districts", []BoundaryRecord{{Code: "12"}})
	require.ErrorIs(t, err, ErrBadLevel)
}

func TestBatchPutGetRoundtrip(t *testing.T) {
	rs, ws := testStores(t)
	ctx := context.Background()
	require.NoError(t, ws.CreateTable(ctx, "municipalities"))
	recs := []BoundaryRecord{
		{Code: "1465011", Name: "Example Gmina", Geometry: []byte(`"<polygon>"`), Revision: "r1"},
		{Code: "0201011", Name: "Bolesławiec", Geometry: []byte(`{"type":"Polygon"}`), Revision: "r1"},
	}
	require.NoError(t, ws.BatchPut(ctx, "municipalities", recs))

	got, err := rs.Get(ctx, "municipalities", "1465011")
	require.NoError(t, err)
	require.Equal(t, "Example Gmina", got.Name)
	require.Equal(t, "r1", got.Revision)
	require.Equal(t, []byte(`"<polygon>"`), got.Geometry)
}

func TestDescribe(t *testing.T) {
	rs, ws := testStores(t)
	ctx := context.Background()

	// 未建表：记录数 0、版本为空
	info, err := rs.Describe(ctx, "provinces")
	require.NoError(t, err)
	require.Zero(t, info.RecordCount)
	require.Empty(t, info.SchemaVersion)

	require.NoError(t, ws.CreateTable(ctx, "provinces"))
	require.NoError(t, ws.BatchPut(ctx, "provinces", []BoundaryRecord{
		{Code: "02", Name: "dolnośląskie", Revision: "r1"},
		{Code: "14", Name: "mazowieckie", Revision: "r1"},
	}))
	info, err = rs.Describe(ctx, "provinces")
	require.NoError(t, err)
	require.EqualValues(t, 2, info.RecordCount)
	require.Equal(t, SchemaVersion, info.SchemaVersion)
}

func TestCreateTableDropsOldRecords(t *testing.T) {
	rs, ws := testStores(t)
	ctx := context.Background()
	require.NoError(t, ws.CreateTable(ctx, "provinces"))
	require.NoError(t, ws.BatchPut(ctx, "provinces", []BoundaryRecord{{Code: "02", Name: "old", Revision: "r1"}}))

	// drop+recreate：旧记录不残留
	require.NoError(t, ws.CreateTable(ctx, "provinces"))
	_, err := rs.Get(ctx, "provinces", "02")
	require.ErrorIs(t, err, ErrNotFound)
	info, err := rs.Describe(ctx, "provinces")
	require.NoError(t, err)
	require.Zero(t, info.RecordCount)
	require.Equal(t, SchemaVersion, info.SchemaVersion)
}

func TestDeleteTable(t *testing.T) {
	rs, ws := testStores(t)
	ctx := context.Background()
	require.NoError(t, ws.CreateTable(ctx, "provinces"))
	require.NoError(t, ws.BatchPut(ctx, "provinces", []BoundaryRecord{{Code: "02", Revision: "r1"}}))
	require.NoError(t, ws.DeleteTable(ctx, "provinces"))

	info, err := rs.Describe(ctx, "provinces")
	require.NoError(t, err)
	require.Zero(t, info.RecordCount)
	require.Empty(t, info.SchemaVersion)
}

func TestMetaRoundtrip(t *testing.T) {
	rs, ws := testStores(t)
	ctx := context.Background()

	_, err := rs.GetMeta(ctx, MetaKey("municipalities", MetaKeySourceRevision))
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, ws.SetMeta(ctx, MetaKey("municipalities", MetaKeySourceRevision), "2026-08-01"))
	v, err := rs.GetMeta(ctx, MetaKey("municipalities", MetaKeySourceRevision))
	require.NoError(t, err)
	require.Equal(t, "2026-08-01", v)
}

// 能力边界在类型层面成立：只读句柄不满足任何写接口
func TestReadStoreLacksWriteCapability(t *testing.T) {
	type writer interface {
		BatchPut(ctx context.Context, level string, records []BoundaryRecord) error
		CreateTable(ctx context.Context, level string) error
		DeleteTable(ctx context.Context, level string) error
		SetMeta(ctx context.Context, key, value string) error
	}
	rs, ws := testStores(t)
	_, ok := interface{}(rs).(writer)
	require.False(t, ok)
	_, ok = interface{}(ws).(writer)
	require.True(t, ok)
}

func TestBatchPutOverwritesByCode(t *testing.T) {
	rs, ws := testStores(t)
	ctx := context.Background()
	require.NoError(t, ws.CreateTable(ctx, "municipalities"))
	require.NoError(t, ws.BatchPut(ctx, "municipalities", []BoundaryRecord{{Code: "1465011", Name: "old", Revision: "r1"}}))
	require.NoError(t, ws.BatchPut(ctx, "municipalities", []BoundaryRecord{{Code: "1465011", Name: "new", Revision: "r2"}}))

	got, err := rs.Get(ctx, "municipalities", "1465011")
	require.NoError(t, err)
	require.Equal(t, "new", got.Name)
	require.Equal(t, "r2", got.Revision)
	info, err := rs.Describe(ctx, "municipalities")
	require.NoError(t, err)
	require.EqualValues(t, 1, info.RecordCount)
}
