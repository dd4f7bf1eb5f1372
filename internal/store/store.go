package store

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"laundry-finder-backend/internal/model"
)

// Store defines the shop persistence operations.
type Store interface {
	FetchShops(ctx context.Context) ([]model.LaundryShop, error)
	SaveShops(ctx context.Context, shops []model.LaundryShop) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// FetchShops loads every shop with its machines, in stored order.
func (s *gormStore) FetchShops(ctx context.Context) ([]model.LaundryShop, error) {
	var records []ShopRecord
	err := s.db.WithContext(ctx).
		Preload("Machines", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position")
		}).
		Order("position").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shops: %w", err)
	}

	shops := make([]model.LaundryShop, 0, len(records))
	for _, r := range records {
		shops = append(shops, toShop(r))
	}
	return shops, nil
}

// SaveShops makes the stored shop list equal to shops: shops are upserted, their machine
// lists replaced, and shops no longer present are deleted.
func (s *gormStore) SaveShops(ctx context.Context, shops []model.LaundryShop) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make([]string, 0, len(shops))
		for i, shop := range shops {
			ids = append(ids, shop.ID)
			if err := upsertShop(tx, shop, i); err != nil {
				return err
			}
			if err := replaceMachines(tx, shop); err != nil {
				return err
			}
		}

		stale := tx.Model(&ShopRecord{})
		if len(ids) > 0 {
			stale = stale.Where("id NOT IN ?", ids)
		} else {
			stale = stale.Where("1 = 1")
		}
		var staleIDs []string
		if err := stale.Pluck("id", &staleIDs).Error; err != nil {
			return fmt.Errorf("failed to list stale shops: %w", err)
		}
		if len(staleIDs) == 0 {
			return nil
		}

		log.Printf("Deleting %d shops no longer listed", len(staleIDs))
		if err := tx.Where("shop_id IN ?", staleIDs).Delete(&MachineRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete machines of stale shops: %w", err)
		}
		if err := tx.Where("id IN ?", staleIDs).Delete(&ShopRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete stale shops: %w", err)
		}
		return nil
	})
}

func upsertShop(tx *gorm.DB, shop model.LaundryShop, position int) error {
	record := ShopRecord{
		ID:         shop.ID,
		Position:   position,
		Name:       shop.Name,
		Address:    shop.Address,
		DistanceKm: shop.DistanceKm,
		Rating:     shop.Rating,
		IsOpen:     shop.IsOpen,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"position", "name", "address", "distance_km", "rating", "is_open", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert shop %s: %w", shop.ID, err)
	}
	return nil
}

func replaceMachines(tx *gorm.DB, shop model.LaundryShop) error {
	if err := tx.Where("shop_id = ?", shop.ID).Delete(&MachineRecord{}).Error; err != nil {
		return fmt.Errorf("failed to clear machines for shop %s: %w", shop.ID, err)
	}

	machines := make([]MachineRecord, 0, len(shop.Washers)+len(shop.Dryers))
	for _, m := range append(append([]model.Machine{}, shop.Washers...), shop.Dryers...) {
		var remaining *int
		if !m.RemainingUnknown {
			minutes := m.TimeRemainingMinutes
			remaining = &minutes
		}
		machines = append(machines, MachineRecord{
			ShopID:               shop.ID,
			ID:                   m.ID,
			Position:             len(machines),
			Kind:                 string(m.Kind),
			Status:               string(m.Status),
			TimeRemainingMinutes: remaining,
			Capacity:             m.Capacity,
		})
	}
	if len(machines) == 0 {
		return nil
	}
	if err := tx.Create(&machines).Error; err != nil {
		return fmt.Errorf("failed to create machines for shop %s: %w", shop.ID, err)
	}
	return nil
}

// toShop converts a record into a shop. The denormalized counts are left at zero:
// consumers derive them from the machine lists.
func toShop(r ShopRecord) model.LaundryShop {
	shop := model.LaundryShop{
		ID:         r.ID,
		Name:       r.Name,
		Address:    r.Address,
		DistanceKm: r.DistanceKm,
		Rating:     r.Rating,
		IsOpen:     r.IsOpen,
	}
	for _, m := range r.Machines {
		machine := model.Machine{
			ID:       m.ID,
			Kind:     model.MachineKind(m.Kind),
			Status:   model.MachineStatus(m.Status),
			Capacity: m.Capacity,
		}
		if m.TimeRemainingMinutes != nil {
			machine.TimeRemainingMinutes = *m.TimeRemainingMinutes
		} else {
			machine.RemainingUnknown = machine.Status == model.StatusInUse
		}
		switch machine.Kind {
		case model.KindDryer:
			shop.Dryers = append(shop.Dryers, machine)
		case model.KindWasher:
			shop.Washers = append(shop.Washers, machine)
		default:
			log.Printf("Warning: machine %s in shop %s has unknown kind %q; skipping", m.ID, r.ID, m.Kind)
		}
	}
	return shop
}
