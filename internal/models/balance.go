package models

import (
	"math"
	"sort"
)

// BalanceSheet maps participant IDs to their net balance.
// Positive = is owed money, Negative = owes money, zero = settled.
type BalanceSheet map[string]float64

// IDs returns the participant IDs in the sheet, sorted.
func (b BalanceSheet) IDs() []string {
	ids := make([]string, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Settled reports whether every balance is within tolerance of zero.
// An empty sheet is settled.
func (b BalanceSheet) Settled(tolerance float64) bool {
	for _, v := range b {
		if math.Abs(v) > tolerance {
			return false
		}
	}
	return true
}
