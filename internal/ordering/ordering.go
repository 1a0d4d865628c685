// Package ordering maps listing sort keys onto deterministic comparators.
// A leading '-' selects the descending form; unknown keys fall back to the
// default key so listing endpoints stay available on bad input.
package ordering

import (
	"math"
	"sort"
	"strings"

	"servio_backend/internal/models"
	"servio_backend/internal/pricing"
)

const (
	DefaultOfferKey  = "updated_at"
	DefaultReviewKey = "-updated_at"
)

// Offers returns a sorted copy of the given offers. Supported keys:
// updated_at, min_price (plus their '-' descending forms).
func Offers(offers []models.Offer, key string) []models.Offer {
	field, desc := splitKey(key)

	var less func(a, b models.Offer) bool
	switch field {
	case "min_price":
		less = func(a, b models.Offer) bool {
			return offerMinPrice(a) < offerMinPrice(b)
		}
	case "updated_at":
		less = func(a, b models.Offer) bool {
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
	default:
		return Offers(offers, DefaultOfferKey)
	}

	sorted := make([]models.Offer, len(offers))
	copy(sorted, offers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// Reviews returns a sorted copy of the given reviews. Supported keys:
// updated_at, rating (plus their '-' descending forms).
func Reviews(reviews []models.Review, key string) []models.Review {
	field, desc := splitKey(key)

	var less func(a, b models.Review) bool
	switch field {
	case "rating":
		less = func(a, b models.Review) bool {
			return a.Rating < b.Rating
		}
	case "updated_at":
		less = func(a, b models.Review) bool {
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
	default:
		return Reviews(reviews, DefaultReviewKey)
	}

	sorted := make([]models.Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func splitKey(key string) (field string, desc bool) {
	if strings.HasPrefix(key, "-") {
		return strings.TrimPrefix(key, "-"), true
	}
	return key, false
}

// Offers without any tier sort after every priced offer.
func offerMinPrice(o models.Offer) float64 {
	prices := make([]float64, 0, len(o.Details))
	for _, d := range o.Details {
		prices = append(prices, d.Price)
	}
	if min := pricing.MinPrice(prices); min != nil {
		return *min
	}
	return math.Inf(1)
}
