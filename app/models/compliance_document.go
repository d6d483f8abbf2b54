package models

import "time"

// ComplianceDocument is a customs or certification paper attached to a vehicle.
type ComplianceDocument struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	VehicleID string     `gorm:"type:char(36);not null;index" json:"vehicle_id"`
	Title     string     `gorm:"type:varchar(255);not null" json:"title"`
	URL       string     `gorm:"type:varchar(500);not null" json:"url"`
	IssuedAt  *time.Time `json:"issued_at"`
	ExpiresAt *time.Time `json:"expires_at"`
}
