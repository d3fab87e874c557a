package swiss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchByteWord(t *testing.T) {
	// Lane 0 and lane 3 hold 0x2a, the rest hold 0x00.
	w := uint64(0x2a) | uint64(0x2a)<<(3*8)
	mask := compactWordMask(matchByteWord(w, 0x2a))
	require.True(t, BitMask(mask).Any())

	idx, ok := BitMask(mask).First()
	require.True(t, ok)
	require.Equal(t, 0, idx)

	rest := BitMask(mask).Next()
	idx, ok = rest.First()
	require.True(t, ok)
	require.Equal(t, 3, idx)

	require.False(t, rest.Next().Any())
}

func TestMatchEmptyWord(t *testing.T) {
	var w uint64
	for i := 0; i < 8; i++ {
		b := byte(0x00) // Full(0)
		if i == 2 || i == 5 {
			b = ctrlEmpty
		}
		w |= uint64(b) << (i * 8)
	}
	mask := BitMask(compactWordMask(matchEmptyWord(w)))
	idx, ok := mask.First()
	require.True(t, ok)
	require.Equal(t, 2, idx)
	mask = mask.Next()
	idx, ok = mask.First()
	require.True(t, ok)
	require.Equal(t, 5, idx)
}

func TestMatchFullWord(t *testing.T) {
	var w uint64
	for i := 0; i < 8; i++ {
		b := ctrlEmpty
		if i == 1 {
			b = 0x13 // Full, h2=0x13
		}
		w |= uint64(b) << (i * 8)
	}
	mask := BitMask(compactWordMask(matchFullWord(w)))
	idx, ok := mask.First()
	require.True(t, ok)
	require.Equal(t, 1, idx)
	require.False(t, mask.Next().Any())
}

func TestMatchEmptyOrDeletedWord(t *testing.T) {
	var w uint64
	for i := 0; i < 8; i++ {
		b := byte(0x00) // Full
		switch i {
		case 1:
			b = ctrlEmpty
		case 4:
			b = ctrlDeleted
		}
		w |= uint64(b) << (i * 8)
	}
	mask := BitMask(compactWordMask(matchEmptyOrDeletedWord(w)))
	lanes := []int{}
	for mask.Any() {
		idx, _ := mask.First()
		lanes = append(lanes, idx)
		mask = mask.Next()
	}
	require.Equal(t, []int{1, 4}, lanes)
}

func TestH1H2Split(t *testing.T) {
	h := uint64(0x1234_5678_9abc_def0)
	require.Equal(t, byte(h&0x7f), h2Of(h))
	require.Equal(t, h>>7, h1Of(h))
	require.Less(t, h2Of(h), byte(0x80))
}

func TestSwarBackendGroupSize(t *testing.T) {
	require.Equal(t, 16, defaultBackend.GroupSize())
	require.Equal(t, GroupSize, defaultBackend.GroupSize())
}
