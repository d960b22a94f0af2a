package qsim

import (
	"sort"
	"strings"
)

// Counts tallies repeated MeasureAll draws, keyed by bitstring with the first qubit first.
type Counts map[string]int

/*
Sample measures the whole register shots times. The register is not changed
between draws, so every shot samples the same distribution.
*/
func (m *Measurer) Sample(r *Register, shots int) (Counts, error) {
	counts := make(Counts)

	for i := 0; i < shots; i++ {
		bits, err := m.MeasureAll(r)
		if err != nil {
			return nil, err
		}
		counts[Bitstring(bits)]++
	}

	return counts, nil
}

// Total returns the number of shots recorded.
func (c Counts) Total() int {
	var total int
	for _, n := range c {
		total += n
	}
	return total
}

// Frequency returns the share of shots that produced bits.
func (c Counts) Frequency(bits string) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c[bits]) / float64(total)
}

// Keys returns the observed bitstrings in ascending order.
func (c Counts) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bitstring renders outcomes as a string of 0s and 1s.
func Bitstring(bits []Outcome) string {
	var sb strings.Builder
	for _, b := range bits {
		sb.WriteString(b.String())
	}
	return sb.String()
}
