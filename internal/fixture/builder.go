// Package fixture builds deterministic shop and notification data for development and tests,
// and loads the same data from YAML files.
package fixture

import (
	"laundry-finder-backend/internal/model"
	"laundry-finder-backend/internal/summary"
)

// ShopBuilder assembles a LaundryShop machine by machine.
type ShopBuilder struct {
	shop    model.LaundryShop
	claimed bool
}

// Shop starts a builder for an open shop with the given id and name.
func Shop(id, name string) *ShopBuilder {
	return &ShopBuilder{shop: model.LaundryShop{ID: id, Name: name, IsOpen: true}}
}

// At sets the address and distance.
func (b *ShopBuilder) At(address string, distanceKm float64) *ShopBuilder {
	b.shop.Address = address
	b.shop.DistanceKm = distanceKm
	return b
}

// Rated sets the rating.
func (b *ShopBuilder) Rated(rating float64) *ShopBuilder {
	b.shop.Rating = rating
	return b
}

// Closed marks the shop as closed.
func (b *ShopBuilder) Closed() *ShopBuilder {
	b.shop.IsOpen = false
	return b
}

// Washer appends a washer.
func (b *ShopBuilder) Washer(id string, s model.MachineStatus, minutes int, capacity string) *ShopBuilder {
	b.shop.Washers = append(b.shop.Washers, model.Machine{
		ID: id, Kind: model.KindWasher, Status: s, TimeRemainingMinutes: minutes, Capacity: capacity,
	})
	return b
}

// Dryer appends a dryer.
func (b *ShopBuilder) Dryer(id string, s model.MachineStatus, minutes int, capacity string) *ShopBuilder {
	b.shop.Dryers = append(b.shop.Dryers, model.Machine{
		ID: id, Kind: model.KindDryer, Status: s, TimeRemainingMinutes: minutes, Capacity: capacity,
	})
	return b
}

// Claims overrides the denormalized counts, for data whose stored counts disagree with its machines.
func (b *ShopBuilder) Claims(availableWashers, totalWashers, availableDryers, totalDryers int) *ShopBuilder {
	b.shop.AvailableWashers = availableWashers
	b.shop.TotalWashers = totalWashers
	b.shop.AvailableDryers = availableDryers
	b.shop.TotalDryers = totalDryers
	b.claimed = true
	return b
}

// Build returns the shop. Unless Claims was called, the denormalized counts match the machine lists.
func (b *ShopBuilder) Build() model.LaundryShop {
	shop := b.shop.Clone()
	if !b.claimed {
		shop.TotalWashers = len(shop.Washers)
		shop.TotalDryers = len(shop.Dryers)
		shop.AvailableWashers = summary.CountAvailable(shop.Washers)
		shop.AvailableDryers = summary.CountAvailable(shop.Dryers)
	}
	return shop
}
