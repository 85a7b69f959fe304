package similarity

import (
	"testing"

	"fjacquet/txlabel/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "WALMART", "WALMART", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "WALMART", "", 0.0},
		{"disjoint", "abc", "xyz", 0.0},
		{"half", "abcd", "abxy", 0.5},
		{"store numbers", "WALMART #1234", "WALMART #5678", 18.0 / 26.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestRatio_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"STARBUCKS #1234", "WALMART #1234"},
		{"café", "cafe"},
		{"AMAZON MKTP", "amazon mktp"},
	}
	for _, p := range pairs {
		r := Ratio(p[0], p[1])
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
	}
	assert.Less(t, Ratio("WALMART #1234", "STARBUCKS #1234"), DefaultThreshold)
}

func TestGroup_Walmart(t *testing.T) {
	entries := []Entry{
		{Index: 0, Description: "WALMART #1234"},
		{Index: 1, Description: "WALMART #5678"},
		{Index: 2, Description: "CHEVRON 0042"},
	}

	groups := Group(entries, DefaultThreshold)
	assert.Equal(t, [][]int{{0, 1}}, groups)
}

func TestGroup_ReturnsOriginalIndices(t *testing.T) {
	entries := []Entry{
		{Index: 7, Description: "WALMART #1234"},
		{Index: 3, Description: "CHEVRON 0042"},
		{Index: 12, Description: "WALMART #5678"},
		{Index: 20, Description: "CHEVRON 0043"},
	}

	groups := Group(entries, DefaultThreshold)
	assert.Equal(t, [][]int{{7, 12}, {3, 20}}, groups)
}

func TestGroup_Empty(t *testing.T) {
	assert.Empty(t, Group(nil, DefaultThreshold))
	assert.Empty(t, Group([]Entry{{Index: 0, Description: "ONLY ONE"}}, DefaultThreshold))
}

func TestGroup_ThresholdExtremes(t *testing.T) {
	entries := []Entry{
		{Index: 0, Description: "abc"},
		{Index: 1, Description: "xyz"},
		{Index: 2, Description: "abc"},
	}

	assert.Equal(t, [][]int{{0, 1, 2}}, Group(entries, 0))
	assert.Equal(t, [][]int{{0, 2}}, Group(entries, 1))
}

func TestGroup_SeedOnlyComparison(t *testing.T) {
	// b is close to both a and c, but a and c are not close to each other.
	a := "aaaaabbbbb"
	b := "aaaaaccccc"
	c := "dddddccccc"
	require.GreaterOrEqual(t, Ratio(a, b), 0.5)
	require.GreaterOrEqual(t, Ratio(b, c), 0.5)
	require.Less(t, Ratio(a, c), 0.5)

	groups := Group([]Entry{{0, a}, {1, b}, {2, c}}, 0.5)
	assert.Equal(t, [][]int{{0, 1}}, groups)
}

func TestGroup_Invariants(t *testing.T) {
	descriptions := []string{
		"WALMART #1234", "STARBUCKS PLEASANTON", "WALMART #5678", "CHEVRON 0042",
		"STARBUCKS DUBLIN", "SHELL OIL 5521", "CHEVRON 0043", "SHELL OIL 5522",
		"WALMART SUPERCENTER", "TARGET T-1234",
	}
	entries := make([]Entry, len(descriptions))
	for i, d := range descriptions {
		entries[i] = Entry{Index: 100 + i, Description: d}
	}

	for _, threshold := range []float64{0, 0.3, 0.5, 0.6, 0.8, 1} {
		groups := Group(entries, threshold)
		seen := map[int]bool{}
		for _, g := range groups {
			assert.GreaterOrEqual(t, len(g), 2)
			for k, idx := range g {
				assert.False(t, seen[idx], "index %d grouped twice", idx)
				seen[idx] = true
				if k > 0 {
					assert.Greater(t, idx, g[0], "members follow their seed")
				}
			}
		}
	}
}

func TestGroup_MonotoneOnFixture(t *testing.T) {
	entries := AllEntries([]models.Transaction{
		{Description: "WALMART #1234"},
		{Description: "WALMART #5678"},
		{Description: "CHEVRON 0042"},
		{Description: "CHEVRON 0043"},
		{Description: "AMAZON MKTP"},
	})

	grouped := func(threshold float64) map[int]bool {
		out := map[int]bool{}
		for _, g := range Group(entries, threshold) {
			for _, idx := range g {
				out[idx] = true
			}
		}
		return out
	}

	strict := grouped(0.8)
	loose := grouped(0.6)
	for idx := range strict {
		assert.True(t, loose[idx], "index %d grouped at 0.8 but not at 0.6", idx)
	}
}

func TestEntries(t *testing.T) {
	records := []models.Transaction{
		{Description: "A"},
		{Description: "B"},
		{Description: "C"},
	}

	assert.Equal(t, []Entry{{0, "A"}, {1, "B"}, {2, "C"}}, AllEntries(records))
	assert.Equal(t, []Entry{{2, "C"}, {0, "A"}}, EntriesFor(records, []int{2, 0, 5, -1}))
	assert.Empty(t, EntriesFor(records, nil))
}
