package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstruct(t *testing.T) {
	g := newTestGraph([]int64{1, 2, 3, 4, 5}, diamondEdges)
	res, err := NewDijkstra[int64](g).ShortestPath(1)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		destination int64
		want        []int64
		wantDist    float64
		wantErr     error
	}{
		{name: "source to itself", destination: 1, want: []int64{1}, wantDist: 0},
		{name: "through the cheaper chain", destination: 4, want: []int64{1, 2, 3, 4}, wantDist: 3},
		{name: "unreachable vertex", destination: 5, wantErr: ErrUnreachable},
		{name: "unknown vertex", destination: 99, wantErr: ErrUnreachable},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			route, err := Reconstruct(res, tt.destination)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, route.Vertices)
			assert.Equal(t, tt.wantDist, route.Distance)
		})
	}
}

func TestReconstructInconsistentPath(t *testing.T) {
	testCases := []struct {
		name string
		res  *ShortestPathResult[int64]
	}{
		{
			name: "broken predecessor chain",
			res: &ShortestPathResult[int64]{
				source: 1,
				dist:   map[int64]float64{1: 0, 2: 1, 3: 2},
				pred:   map[int64]int64{3: 2},
			},
		},
		{
			name: "predecessor cycle",
			res: &ShortestPathResult[int64]{
				source: 1,
				dist:   map[int64]float64{1: 0, 2: 1, 3: 2},
				pred:   map[int64]int64{3: 2, 2: 3},
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Reconstruct(tt.res, 3)
			assert.ErrorIs(t, err, ErrInconsistentPath)
		})
	}
}

func TestPathWeight(t *testing.T) {
	g := newTestGraph([]int64{1, 2, 3, 4}, diamondEdges)

	w, ok := PathWeight[int64](g, []int64{1, 2, 3, 4})
	require.True(t, ok)
	assert.Equal(t, 3.0, w)

	w, ok = PathWeight[int64](g, []int64{1})
	require.True(t, ok)
	assert.Equal(t, 0.0, w)

	_, ok = PathWeight[int64](g, []int64{4, 3})
	assert.False(t, ok)
}
