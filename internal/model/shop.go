package model

// LaundryShop represents a laundromat and the machines it owns.
//
// The Total* and Available* fields are carried as supplied by the data source.
// They are not trusted; use the summary package to derive counts from Washers and Dryers.
type LaundryShop struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Address    string  `json:"address" yaml:"address"`
	DistanceKm float64 `json:"distance" yaml:"distance_km"`
	Rating     float64 `json:"rating" yaml:"rating"`
	IsOpen     bool    `json:"isOpen" yaml:"is_open"`

	TotalWashers     int `json:"totalWashers" yaml:"total_washers"`
	TotalDryers      int `json:"totalDryers" yaml:"total_dryers"`
	AvailableWashers int `json:"availableWashers" yaml:"available_washers"`
	AvailableDryers  int `json:"availableDryers" yaml:"available_dryers"`

	Washers []Machine `json:"washers" yaml:"washers"`
	Dryers  []Machine `json:"dryers" yaml:"dryers"`
}

// Clone returns a copy of the shop that shares no machine slices with the receiver.
func (s LaundryShop) Clone() LaundryShop {
	c := s
	c.Washers = append([]Machine(nil), s.Washers...)
	c.Dryers = append([]Machine(nil), s.Dryers...)
	return c
}

// CloneShops deep-copies a shop list.
func CloneShops(shops []LaundryShop) []LaundryShop {
	if shops == nil {
		return nil
	}
	out := make([]LaundryShop, len(shops))
	for i, s := range shops {
		out[i] = s.Clone()
	}
	return out
}
