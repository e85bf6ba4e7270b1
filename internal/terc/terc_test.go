package terc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidCode(t *testing.T) {
	require.True(t, ValidCode("provinces", "02"))
	require.True(t, ValidCode("counties", "0201"))
	require.True(t, ValidCode("municipalities", "1465011"))

	require.False(t, ValidCode("provinces", "021"))
	require.False(t, ValidCode("municipalities", "146501"))
	require.False(t, ValidCode("municipalities", "146501a"))
	require.False(t, ValidCode("municipalities", ""))

	// 自定义层级：仅要求非空数字串
	require.True(t, ValidCode("districts", "123456"))
	require.False(t, ValidCode("districts", "12x"))
}

func TestParent(t *testing.T) {
	require.Equal(t, "1465", Parent("1465011"))
	require.Equal(t, "02", Parent("0201"))
	require.Equal(t, "", Parent("14"))
}

func TestKindName(t *testing.T) {
	require.Equal(t, "województwo", KindName("14"))
	require.Equal(t, "powiat", KindName("1465"))
	require.Equal(t, "gmina miejska", KindName("1465011"))
	require.Equal(t, "gmina wiejska", KindName("1465012"))
	require.Equal(t, "", KindName("1465010"))
	require.Equal(t, "", KindName("146"))
}
