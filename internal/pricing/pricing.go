// Package pricing computes the derived aggregates of an offer's tier set.
package pricing

import "math"

// Round2 rounds a price to two fractional digits (standard half-away-from-zero).
func Round2(price float64) float64 {
	return math.Round(price*100) / 100
}

// MinPrice returns the lowest price across the given tiers, or nil when the
// set is empty.
func MinPrice(prices []float64) *float64 {
	if len(prices) == 0 {
		return nil
	}
	min := prices[0]
	for _, p := range prices[1:] {
		if p < min {
			min = p
		}
	}
	return &min
}

// MinDeliveryTime returns the shortest delivery time in days across the given
// tiers, or nil when the set is empty.
func MinDeliveryTime(days []int) *int {
	if len(days) == 0 {
		return nil
	}
	min := days[0]
	for _, d := range days[1:] {
		if d < min {
			min = d
		}
	}
	return &min
}
