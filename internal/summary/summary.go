// Package summary aggregates a shop's machine lists into shop-level availability.
// Counts are always recomputed from the machine lists; the denormalized counts a data
// source may supply on the shop are ignored.
package summary

import (
	"laundry-finder-backend/internal/model"
	"laundry-finder-backend/internal/status"
)

// Tier is a coarse availability bucket.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

const (
	highRatio   = 0.5
	mediumRatio = 0.25
)

// KindSummary describes availability for one machine kind in a shop.
type KindSummary struct {
	Available          int     `json:"available"`
	Total              int     `json:"total"`
	Ratio              float64 `json:"ratio"`
	Tier               Tier    `json:"tier"`
	NextAvailable      *int    `json:"nextAvailableMinutes"`
	AverageWaitMinutes float64 `json:"averageWaitMinutes"`
}

// Summary is the shop-level view of machine availability.
type Summary struct {
	ShopID     string      `json:"shopId"`
	Washers    KindSummary `json:"washers"`
	Dryers     KindSummary `json:"dryers"`
	HasAnyFree bool        `json:"hasAnyFree"`
}

// Summarize recomputes availability for both machine kinds of the shop.
func Summarize(shop model.LaundryShop) Summary {
	w := summarizeKind(shop.Washers)
	d := summarizeKind(shop.Dryers)
	return Summary{
		ShopID:     shop.ID,
		Washers:    w,
		Dryers:     d,
		HasAnyFree: w.Available+d.Available > 0,
	}
}

func summarizeKind(machines []model.Machine) KindSummary {
	available := CountAvailable(machines)
	total := len(machines)
	ks := KindSummary{
		Available:          available,
		Total:              total,
		Ratio:              Ratio(available, total),
		Tier:               AvailabilityTier(available, total),
		AverageWaitMinutes: status.AverageWaitMinutes(machines),
	}
	if minutes, ok := status.NextAvailableMinutes(machines); ok {
		ks.NextAvailable = &minutes
	}
	return ks
}

// CountAvailable counts machines whose status is available.
func CountAvailable(machines []model.Machine) int {
	n := 0
	for _, m := range machines {
		if m.Status == model.StatusAvailable {
			n++
		}
	}
	return n
}

// Ratio is available/total, or 0 when total is 0.
func Ratio(available, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(available) / float64(total)
}

// AvailabilityTier buckets an available/total pair. A shop with no machines is low.
func AvailabilityTier(available, total int) Tier {
	r := Ratio(available, total)
	switch {
	case r >= highRatio:
		return TierHigh
	case r >= mediumRatio:
		return TierMedium
	default:
		return TierLow
	}
}

// HasAnyFreeMachine reports whether any washer or dryer in the shop is available.
func HasAnyFreeMachine(shop model.LaundryShop) bool {
	return CountAvailable(shop.Washers)+CountAvailable(shop.Dryers) > 0
}
