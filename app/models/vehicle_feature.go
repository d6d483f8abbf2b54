package models

// VehicleFeature is a short highlight shown on listing cards and detail pages.
type VehicleFeature struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	VehicleID string `gorm:"type:char(36);not null;index" json:"vehicle_id"`
	Label     string `gorm:"type:varchar(255);not null" json:"label"`
	Icon      string `gorm:"type:varchar(100)" json:"icon"`
	Category  string `gorm:"type:varchar(100)" json:"category"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}
