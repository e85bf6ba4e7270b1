package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadNDJSON(t *testing.T) {
	in := strings.Join([]string{
		`{"code":"1465011","name":"Example Gmina","geometry":{"type":"Polygon","coordinates":[]},"revision":"r2"}`,
		``,
		`{"code":"0201011","name":"Bolesławiec","geometry":"<polygon>"}`,
	}, "\n")
	recs, err := ReadNDJSON(strings.NewReader(in), "r1")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	require.Equal(t, "1465011", recs[0].Code)
	require.Equal(t, "r2", recs[0].Revision)
	require.JSONEq(t, `{"type":"Polygon","coordinates":[]}`, string(recs[0].Geometry))

	// 行内未带 revision：回落到调用方版本；geometry 原样保留
	require.Equal(t, "r1", recs[1].Revision)
	require.Equal(t, `"<polygon>"`, string(recs[1].Geometry))
}

func TestReadNDJSONRejectsBadRows(t *testing.T) {
	_, err := ReadNDJSON(strings.NewReader(`{"name":"no code"}`), "r1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing code")

	_, err = ReadNDJSON(strings.NewReader(`not json`), "r1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 1")
}

func TestReadNDJSONEmpty(t *testing.T) {
	recs, err := ReadNDJSON(strings.NewReader(""), "r1")
	require.NoError(t, err)
	require.Empty(t, recs)
}
