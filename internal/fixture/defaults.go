package fixture

import (
	"fmt"

	"laundry-finder-backend/internal/model"
)

// DefaultShops returns the three development shops.
func DefaultShops() []model.LaundryShop {
	hongdae := Shop("1", "24h Coin Laundry Hongdae").
		At("123 Hongik-ro, Mapo-gu, Seoul", 0.3).Rated(4.5).
		Washer("w1", model.StatusAvailable, 0, "8kg").
		Washer("w2", model.StatusInUse, 23, "8kg").
		Washer("w3", model.StatusInUse, 15, "12kg").
		Washer("w4", model.StatusAvailable, 0, "8kg").
		Washer("w5", model.StatusInUse, 41, "12kg").
		Washer("w6", model.StatusAvailable, 0, "8kg").
		Washer("w7", model.StatusInUse, 7, "8kg").
		Washer("w8", model.StatusInUse, 33, "12kg").
		Dryer("d1", model.StatusAvailable, 0, "8kg").
		Dryer("d2", model.StatusInUse, 18, "8kg").
		Dryer("d3", model.StatusInUse, 35, "12kg").
		Dryer("d4", model.StatusAvailable, 0, "8kg").
		Dryer("d5", model.StatusInUse, 12, "12kg").
		Dryer("d6", model.StatusInUse, 28, "8kg").
		Build()

	sinchon := Shop("2", "Self Laundry Sinchon").
		At("456 Sinchon-ro, Seodaemun-gu, Seoul", 0.7).Rated(4.2).
		Washer("w1", model.StatusInUse, 19, "8kg").
		Washer("w2", model.StatusInUse, 25, "8kg").
		Washer("w3", model.StatusAvailable, 0, "12kg").
		Washer("w4", model.StatusInUse, 8, "8kg").
		Washer("w5", model.StatusInUse, 37, "12kg").
		Washer("w6", model.StatusInUse, 14, "8kg").
		Dryer("d1", model.StatusInUse, 22, "8kg").
		Dryer("d2", model.StatusInUse, 31, "8kg").
		Dryer("d3", model.StatusAvailable, 0, "12kg").
		Dryer("d4", model.StatusInUse, 16, "8kg").
		Build()

	hapjeong := Shop("3", "Clean Laundry Hapjeong").
		At("789 Hapjeong-ro, Mapo-gu, Seoul", 1.2).Rated(4.0)
	for i := 0; i < 10; i++ {
		capacity := "8kg"
		if i%3 == 0 {
			capacity = "12kg"
		}
		if i < 5 || i%2 == 0 {
			hapjeong.Washer(fmt.Sprintf("w%d", i+1), model.StatusAvailable, 0, capacity)
		} else {
			hapjeong.Washer(fmt.Sprintf("w%d", i+1), model.StatusInUse, 5+(i*13)%45, capacity)
		}
	}
	for i := 0; i < 8; i++ {
		capacity := "8kg"
		if i%2 == 0 {
			capacity = "12kg"
		}
		if i < 3 || i == 6 {
			hapjeong.Dryer(fmt.Sprintf("d%d", i+1), model.StatusAvailable, 0, capacity)
		} else {
			hapjeong.Dryer(fmt.Sprintf("d%d", i+1), model.StatusInUse, 10+(i*11)%40, capacity)
		}
	}
	// The stored counts for this shop lag behind its machine lists.
	hapjeong.Claims(5, 10, 3, 8)

	return []model.LaundryShop{hongdae, sinchon, hapjeong.Build()}
}

// DefaultNotifications returns the two cycles tracked on first start.
func DefaultNotifications() []model.NotificationEntry {
	return []model.NotificationEntry{
		{ID: "1", ShopName: "24h Coin Laundry Hongdae", MachineID: "W2", TimeRemainingMinutes: 23, Kind: model.CycleWash, IsActive: true},
		{ID: "2", ShopName: "24h Coin Laundry Hongdae", MachineID: "D2", TimeRemainingMinutes: 18, Kind: model.CycleDry, IsActive: true},
	}
}
