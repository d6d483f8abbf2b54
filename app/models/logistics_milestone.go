package models

// LogisticsMilestone is one step of the delivery timeline for a vehicle.
type LogisticsMilestone struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	VehicleID   string `gorm:"type:char(36);not null;index" json:"vehicle_id"`
	Label       string `gorm:"type:varchar(255);not null" json:"label"`
	Description string `gorm:"type:text" json:"description"`
	EtaDays     int    `json:"eta_days"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
}
