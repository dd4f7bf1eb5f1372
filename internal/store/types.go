package store

import "time"

// ShopRecord is the persisted form of a laundry shop. Position keeps the list order.
type ShopRecord struct {
	ID         string    `gorm:"primaryKey;size:64"`
	Position   int       `gorm:"not null;index"`
	Name       string    `gorm:"size:256;not null"`
	Address    string    `gorm:"size:512"`
	DistanceKm float64   `gorm:"not null"`
	Rating     float64   `gorm:"not null"`
	IsOpen     bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	// Associations
	Machines []MachineRecord `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}

// TableName pins the table name.
func (ShopRecord) TableName() string { return "shops" }

// MachineRecord is the persisted form of a machine. Ids are unique within a shop only.
type MachineRecord struct {
	ShopID               string `gorm:"primaryKey;size:64"`
	ID                   string `gorm:"primaryKey;size:32"`
	Position             int    `gorm:"not null"`
	Kind                 string `gorm:"size:16;not null"`
	Status               string `gorm:"size:16;not null"`
	TimeRemainingMinutes *int
	Capacity             string `gorm:"size:32"`
	UpdatedAt            time.Time
}

// TableName pins the table name.
func (MachineRecord) TableName() string { return "machines" }

// Tables lists the models to migrate.
func Tables() []any {
	return []any{&ShopRecord{}, &MachineRecord{}}
}
