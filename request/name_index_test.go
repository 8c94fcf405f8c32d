package request

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cqlkit/cqlkit/errs"
)

func TestGetIndices_AssignsInFirstSeenOrder(t *testing.T) {
	req := NewQueryRequest("UPDATE t SET a = :a, b = :b WHERE c = :c", 3)

	require.Equal(t, []uint16{0}, req.GetIndices("a"))
	require.Equal(t, []uint16{1}, req.GetIndices("b"))
	require.Equal(t, []uint16{2}, req.GetIndices("c"))
}

func TestGetIndices_StableForKnownNames(t *testing.T) {
	req := NewQueryRequest("SELECT * FROM t WHERE k = :k AND v = :v", 2)

	first := req.GetIndices("k")
	require.Equal(t, []uint16{0}, first)
	require.Equal(t, first, req.GetIndices("k"))

	require.Equal(t, []uint16{1}, req.GetIndices("v"))
	require.Equal(t, []uint16{0}, req.GetIndices("k"))
}

func TestGetIndices_CapacityExhausted(t *testing.T) {
	req := NewQueryRequest("UPDATE t SET a = :a WHERE b = :b", 2)

	require.NotEmpty(t, req.GetIndices("a"))
	require.NotEmpty(t, req.GetIndices("b"))

	// More distinct names than declared slots: no index is assigned.
	require.Empty(t, req.GetIndices("c"))

	// Known names are still resolvable afterwards.
	require.Equal(t, []uint16{0}, req.GetIndices("a"))
}

func TestGetIndices_MarksNamedMode(t *testing.T) {
	req := NewQueryRequest("SELECT * FROM t WHERE k = :k", 1)
	require.False(t, req.HasNamesForValues())

	req.GetIndices("k")
	require.True(t, req.HasNamesForValues())
}

func TestBindByName_CapacityError(t *testing.T) {
	req := NewQueryRequest("UPDATE t SET a = :a", 1)

	require.NoError(t, req.BindByName("a", []byte{0x01}))
	require.ErrorIs(t, req.BindByName("b", []byte{0x02}), errs.ErrNamedValueCapacity)
}

func TestNameIndex_ManyNames(t *testing.T) {
	const slots = 64

	req := NewQueryRequest("q", slots)
	for i := 0; i < slots; i++ {
		indices := req.GetIndices(fmt.Sprintf("name_%d", i))
		require.Equal(t, []uint16{uint16(i)}, indices)
	}

	// Every name resolves to its original index on re-lookup.
	for i := 0; i < slots; i++ {
		require.Equal(t, []uint16{uint16(i)}, req.GetIndices(fmt.Sprintf("name_%d", i)))
	}

	require.Empty(t, req.GetIndices("one_too_many"))
}
