package langdist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dist(entries ...Entry) Distribution {
	return Distribution(entries)
}

func e(name string, pct int) Entry {
	return Entry{Name: name, Percentage: pct, ColorToken: "tok-" + name}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Distribution
		want Distribution
	}{
		{
			name: "already 100 is identity",
			in:   dist(e("A", 60), e("B", 40)),
			want: dist(e("A", 60), e("B", 40)),
		},
		{
			name: "under total goes to largest",
			in:   dist(e("A", 50), e("B", 30), e("C", 10)),
			want: dist(e("A", 60), e("B", 30), e("C", 10)),
		},
		{
			name: "over total comes off largest",
			in:   dist(e("A", 40), e("B", 70)),
			want: dist(e("A", 40), e("B", 60)),
		},
		{
			name: "all equal picks first",
			in:   dist(e("A", 33), e("B", 33), e("C", 33)),
			want: dist(e("A", 34), e("B", 33), e("C", 33)),
		},
		{
			name: "largest later in list",
			in:   dist(e("A", 10), e("B", 85)),
			want: dist(e("A", 10), e("B", 90)),
		},
		{
			name: "single entry",
			in:   dist(e("A", 37)),
			want: dist(e("A", 100)),
		},
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			if len(got) > 0 {
				assert.Equal(t, 100, got.Total())
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := dist(e("A", 48), e("B", 30), e("C", 14))
	once := Normalize(in)
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	in := dist(e("A", 50), e("B", 30))
	_ = Normalize(in)
	assert.Equal(t, dist(e("A", 50), e("B", 30)), in)
}

func TestAddEntry(t *testing.T) {
	t.Run("first entry owns 100", func(t *testing.T) {
		got := AddEntry(nil, "X", "t", DefaultAddShare)
		assert.Equal(t, Distribution{{Name: "X", Percentage: 100, ColorToken: "t"}}, got)
	})

	t.Run("existing entries shrink proportionally", func(t *testing.T) {
		in := dist(e("A", 70), e("B", 30))
		got := AddEntry(in, "C", "tok-C", 5)

		require.Len(t, got, 3)
		assert.Equal(t, 100, got.Total())
		assert.Equal(t, e("C", 5), got[2])
		// 70:30 rescaled into 95: 66.5→67 and 28.5→29 overshoot by one,
		// normalize takes it back off the largest
		assert.Equal(t, e("A", 66), got[0])
		assert.Equal(t, e("B", 29), got[1])
	})

	t.Run("input untouched", func(t *testing.T) {
		in := dist(e("A", 70), e("B", 30))
		_ = AddEntry(in, "C", "tok-C", 5)
		assert.Equal(t, dist(e("A", 70), e("B", 30)), in)
	})
}

func TestRemoveEntry(t *testing.T) {
	t.Run("share flows to survivors by weight", func(t *testing.T) {
		got := RemoveEntry(dist(e("A", 60), e("B", 40)), 1)
		assert.Equal(t, dist(e("A", 100)), got)
	})

	t.Run("three way split", func(t *testing.T) {
		got := RemoveEntry(dist(e("A", 50), e("B", 30), e("C", 20)), 0)
		// B and C keep their 3:2 ratio over the freed 50
		assert.Equal(t, dist(e("B", 60), e("C", 40)), got)
		assert.Equal(t, 100, got.Total())
	})

	t.Run("negative index is a no-op", func(t *testing.T) {
		in := dist(e("A", 60), e("B", 40))
		assert.Equal(t, in, RemoveEntry(in, -1))
	})

	t.Run("index past end is a no-op", func(t *testing.T) {
		in := dist(e("A", 60), e("B", 40))
		assert.Equal(t, in, RemoveEntry(in, 2))
	})

	t.Run("single entry is a no-op", func(t *testing.T) {
		in := dist(e("A", 100))
		assert.Equal(t, in, RemoveEntry(in, 0))
	})

	t.Run("all-zero survivors split evenly", func(t *testing.T) {
		got := RemoveEntry(dist(e("A", 100), e("B", 0), e("C", 0)), 0)
		require.Len(t, got, 2)
		assert.Equal(t, 100, got.Total())
		assert.Equal(t, 50, got[0].Percentage)
		assert.Equal(t, 50, got[1].Percentage)
	})

	t.Run("uneven even-split remainder goes first", func(t *testing.T) {
		got := RemoveEntry(dist(e("A", 100), e("B", 0), e("C", 0), e("D", 0)), 0)
		require.Len(t, got, 3)
		assert.Equal(t, 100, got.Total())
		assert.Equal(t, 34, got[0].Percentage)
		assert.Equal(t, 33, got[1].Percentage)
		assert.Equal(t, 33, got[2].Percentage)
	})
}

func TestUpdatePercentage(t *testing.T) {
	t.Run("others absorb the delta proportionally", func(t *testing.T) {
		got := UpdatePercentage(dist(e("A", 50), e("B", 30), e("C", 20)), 0, 70)
		assert.Equal(t, dist(e("A", 70), e("B", 18), e("C", 12)), got)
	})

	t.Run("overshoot clamps to 99", func(t *testing.T) {
		got := UpdatePercentage(dist(e("A", 50), e("B", 50)), 0, 500)
		assert.Equal(t, 99, got[0].Percentage)
		assert.Equal(t, 100, got.Total())
	})

	t.Run("undershoot clamps to 1", func(t *testing.T) {
		got := UpdatePercentage(dist(e("A", 50), e("B", 50)), 0, -10)
		assert.Equal(t, 1, got[0].Percentage)
		assert.Equal(t, 100, got.Total())
	})

	t.Run("same value is identity", func(t *testing.T) {
		in := dist(e("A", 50), e("B", 50))
		got := UpdatePercentage(in, 1, 50)
		assert.Equal(t, in, got)
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		assert.Empty(t, UpdatePercentage(nil, 0, 40))
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		in := dist(e("A", 100))
		assert.Equal(t, in, UpdatePercentage(in, 3, 40))
	})

	t.Run("non-target entries never drop below 1", func(t *testing.T) {
		got := UpdatePercentage(dist(e("A", 98), e("B", 1), e("C", 1)), 1, 50)
		for i, entry := range got {
			if i == 1 {
				continue
			}
			assert.GreaterOrEqual(t, entry.Percentage, 1, "entry %d", i)
		}
		assert.Equal(t, 100, got.Total())
	})

	t.Run("input untouched", func(t *testing.T) {
		in := dist(e("A", 50), e("B", 30), e("C", 20))
		_ = UpdatePercentage(in, 0, 70)
		assert.Equal(t, dist(e("A", 50), e("B", 30), e("C", 20)), in)
	})
}

func TestSumInvariantAcrossEditSession(t *testing.T) {
	// a long edit session must never drift off 100
	d := dist(e("Go", 62), e("HTML", 24), e("Makefile", 14))

	d = UpdatePercentage(d, 0, 80)
	assert.Equal(t, 100, d.Total())

	d = AddEntry(d, "Shell", "tok-Shell", DefaultAddShare)
	assert.Equal(t, 100, d.Total())

	d = UpdatePercentage(d, 3, 25)
	assert.Equal(t, 100, d.Total())

	d = RemoveEntry(d, 1)
	assert.Equal(t, 100, d.Total())

	d = UpdatePercentage(d, 0, 1)
	assert.Equal(t, 100, d.Total())
}

func TestParseShare(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"42", 42},
		{"0", 0},
		{"-7", -7},
		{"", 0},
		{"abc", 0},
		{"12.5", 0},
		{" 9", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseShare(tt.raw), "raw=%q", tt.raw)
	}
}
