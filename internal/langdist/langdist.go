// Package langdist keeps a repository's language shares summing to exactly
// 100 while entries are added, removed, or edited. All operations are pure:
// they return a fresh slice and leave their input untouched, except where a
// call is documented as an identity no-op.
package langdist

import (
	"math"
	"strconv"
)

// DefaultAddShare is the share a newly added language starts with when the
// caller does not pick one.
const DefaultAddShare = 5

// Entry is one language's slice of the distribution. ColorToken is an opaque
// display color; redistribution never touches it.
type Entry struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	ColorToken string `json:"color_token"`
}

// Distribution is an ordered list of entries. Order is display order and is
// preserved by every operation.
type Distribution []Entry

func (d Distribution) clone() Distribution {
	out := make(Distribution, len(d))
	copy(out, d)
	return out
}

// Total returns the sum of all percentages.
func (d Distribution) Total() int {
	total := 0
	for _, e := range d {
		total += e.Percentage
	}
	return total
}

// round is half-away-from-zero, the rule used for every rescale in this
// package. Keeping one rule matters: mixed rounding drifts across repeated
// edits.
func round(f float64) int {
	return int(math.Round(f))
}

// Normalize nudges the distribution back to a total of exactly 100 by
// adjusting a single entry: the first strictly-largest one absorbs the whole
// difference. A distribution already at 100 is returned as-is. Normalize is a
// best-effort closer, not a bounds check; a wildly off-total input can push
// the adjusted entry outside [1, 99].
func Normalize(d Distribution) Distribution {
	if len(d) == 0 {
		return d
	}
	total := d.Total()
	if total == 100 {
		return d
	}

	largest := 0
	largestPct := 0
	for i, e := range d {
		if e.Percentage > largestPct {
			largestPct = e.Percentage
			largest = i
		}
	}

	out := d.clone()
	out[largest].Percentage += 100 - total
	return out
}

// AddEntry inserts a new language at the given share, shrinking every
// existing entry proportionally, and normalizes the result. The first entry
// added to an empty distribution always owns 100 regardless of pct.
//
// The input is assumed to already total 100; existing shares are rescaled
// against a 100 base, not against their actual sum.
func AddEntry(d Distribution, name, colorToken string, pct int) Distribution {
	if len(d) == 0 {
		return Distribution{{Name: name, Percentage: 100, ColorToken: colorToken}}
	}

	remaining := 100 - pct
	out := make(Distribution, 0, len(d)+1)
	for _, e := range d {
		e.Percentage = round(float64(e.Percentage) / 100 * float64(remaining))
		out = append(out, e)
	}
	out = append(out, Entry{Name: name, Percentage: pct, ColorToken: colorToken})
	return Normalize(out)
}

// RemoveEntry deletes the entry at index and hands its share to the
// survivors, each growing in proportion to its own current weight. Removing
// from a single-entry distribution or with an out-of-range index is a no-op.
//
// When every survivor sits at 0 the proportional rule has no denominator; the
// removed share is then split evenly, the first survivors taking the
// remainder.
func RemoveEntry(d Distribution, index int) Distribution {
	if len(d) <= 1 || index < 0 || index >= len(d) {
		return d
	}

	removed := d[index].Percentage
	rest := make(Distribution, 0, len(d)-1)
	restTotal := 0
	for i, e := range d {
		if i == index {
			continue
		}
		restTotal += e.Percentage
		rest = append(rest, e)
	}

	if restTotal == 0 {
		base, rem := removed/len(rest), removed%len(rest)
		for i := range rest {
			rest[i].Percentage = base
			if i < rem {
				rest[i].Percentage++
			}
		}
		return Normalize(rest)
	}

	for i := range rest {
		p := float64(rest[i].Percentage)
		rest[i].Percentage = round(p + p/float64(restTotal)*float64(removed))
	}
	return Normalize(rest)
}

// UpdatePercentage sets one entry's share, absorbing the delta from all other
// entries via a single shared scale factor. The target value is clamped to
// [1, 99] first; every other entry is floored at 1 after rescaling, and a
// final Normalize pass absorbs rounding drift. Setting an entry to its
// current value returns the input unchanged. Empty distributions and
// out-of-range indices are no-ops.
func UpdatePercentage(d Distribution, index, pct int) Distribution {
	if len(d) == 0 || index < 0 || index >= len(d) {
		return d
	}

	validated := clamp(pct, 1, 99)
	diff := validated - d[index].Percentage
	if diff == 0 {
		return d
	}

	othersTotal := d.Total() - d[index].Percentage

	out := d.clone()
	out[index].Percentage = validated

	if othersTotal > 0 {
		factor := float64(othersTotal-diff) / float64(othersTotal)
		for i := range out {
			if i == index {
				continue
			}
			scaled := round(float64(d[i].Percentage) * factor)
			if scaled < 1 {
				scaled = 1
			}
			out[i].Percentage = scaled
		}
	}
	return Normalize(out)
}

// ParseShare turns raw user input into a share value: non-numeric input
// coerces to 0 (which UpdatePercentage then clamps to 1). It never fails.
func ParseShare(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
