package models

// VehicleSpecification is a grouped label/value pair on the detail page.
type VehicleSpecification struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	VehicleID string `gorm:"type:char(36);not null;index" json:"vehicle_id"`
	Group     string `gorm:"column:spec_group;type:varchar(100)" json:"group"`
	Label     string `gorm:"type:varchar(255);not null" json:"label"`
	Value     string `gorm:"type:varchar(255);not null" json:"value"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}
