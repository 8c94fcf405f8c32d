package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require.Equal(t, ID("partition_key"), ID("partition_key"))
	require.NotEqual(t, ID("partition_key"), ID("clustering_key"))

	// String and byte hashing agree, so either form can key a lookup.
	require.Equal(t, ID("v"), Sum([]byte("v")))
}

func TestSum(t *testing.T) {
	require.Equal(t, Sum([]byte{0x01, 0x02}), Sum([]byte{0x01, 0x02}))
	require.NotEqual(t, Sum([]byte{0x01, 0x02}), Sum([]byte{0x02, 0x01}))
	require.Equal(t, Sum(nil), Sum([]byte{}))
}
