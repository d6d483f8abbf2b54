package models

import "time"

// VehicleImage is a gallery entry for a vehicle listing.
type VehicleImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VehicleID string    `gorm:"type:char(36);not null;index" json:"vehicle_id"`
	URL       string    `gorm:"type:varchar(500);not null" json:"url"`
	AltText   string    `gorm:"type:varchar(255)" json:"alt_text"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
