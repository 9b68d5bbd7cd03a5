package langdist

import (
	"math"
	"sort"
)

// maxEntries caps how many languages a card shows; anything past the top 6
// is folded into the largest entry by the total correction below.
const maxEntries = 6

// FromByteCounts derives a distribution from a raw language→bytes mapping,
// the shape GitHub's languages endpoint returns. Shares are computed to one
// decimal, sorted descending (ties broken by name so map order never leaks
// into the result), truncated to the top 6, and corrected to a float total of
// exactly 100 on the largest entry before the final integer rounding pass.
// Color tokens come from the caller's lookup. An empty or all-zero mapping
// yields an empty distribution.
func FromByteCounts(bytes map[string]int64, colors func(name string) string) Distribution {
	var total int64
	for _, n := range bytes {
		total += n
	}
	if total <= 0 {
		return nil
	}

	type share struct {
		name string
		pct  float64
	}
	shares := make([]share, 0, len(bytes))
	for name, n := range bytes {
		pct := math.Round(float64(n)/float64(total)*1000) / 10
		shares = append(shares, share{name: name, pct: pct})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].pct != shares[j].pct {
			return shares[i].pct > shares[j].pct
		}
		return shares[i].name < shares[j].name
	})
	if len(shares) > maxEntries {
		shares = shares[:maxEntries]
	}

	// close the float total on the largest entry, same rule as Normalize
	sum := 0.0
	largest := 0
	largestPct := 0.0
	for i, s := range shares {
		sum += s.pct
		if s.pct > largestPct {
			largestPct = s.pct
			largest = i
		}
	}
	shares[largest].pct += 100 - sum

	out := make(Distribution, 0, len(shares))
	for _, s := range shares {
		e := Entry{Name: s.name, Percentage: round(s.pct)}
		if colors != nil {
			e.ColorToken = colors(s.name)
		}
		out = append(out, e)
	}
	return Normalize(out)
}
