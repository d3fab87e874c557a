package swiss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func visitAll(t *testing.T, policy CollisionPolicy, groups uint32) []uint32 {
	t.Helper()
	seq := newProbeSeq(0, groups, policy)
	visited := make([]uint32, 0, groups)
	for i := uint32(0); i < groups; i++ {
		visited = append(visited, seq.current())
		seq.advance()
	}
	return visited
}

func TestProbeSeqQuadraticVisitsEveryGroupOnce(t *testing.T) {
	for _, groups := range []uint32{1, 2, 4, 8, 16, 32, 64} {
		visited := visitAll(t, Quadratic, groups)
		seen := make(map[uint32]bool, groups)
		for _, g := range visited {
			require.False(t, seen[g], "group %d visited twice for groups=%d", g, groups)
			require.Less(t, g, groups)
			seen[g] = true
		}
		require.Len(t, seen, int(groups))
	}
}

func TestProbeSeqLinearVisitsEveryGroupOnce(t *testing.T) {
	for _, groups := range []uint32{1, 2, 4, 8, 16} {
		visited := visitAll(t, Linear, groups)
		for i, g := range visited {
			require.Equal(t, uint32(i)&(groups-1), g)
		}
	}
}

func TestProbeSeqStartsAtH1(t *testing.T) {
	seq := newProbeSeq(5, 8, Quadratic)
	require.Equal(t, uint32(5), seq.current())
}
