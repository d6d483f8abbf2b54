package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CUSTOMER_TYPE_INDIVIDUAL = "individual"
	CUSTOMER_TYPE_COMPANY    = "company"

	INQUIRY_STATUS_NEW         = "new"
	INQUIRY_STATUS_IN_PROGRESS = "in_progress"
	INQUIRY_STATUS_CLOSED      = "closed"
)

// Inquiry is a captured lead, optionally tied to a vehicle. The estimated
// cost snapshot is whatever the pricing engine produced at submission time;
// the engine itself never touches this record.
type Inquiry struct {
	ID                 string   `gorm:"type:char(36);primaryKey" json:"id"`
	VehicleID          *string  `gorm:"type:char(36);index" json:"vehicle_id"`
	Vehicle            *Vehicle `gorm:"foreignKey:VehicleID;constraint:OnDelete:SET NULL" json:"vehicle,omitempty"`
	CustomerType       string   `gorm:"type:varchar(20);not null;default:'individual'" json:"customer_type" validate:"oneof=individual company"`
	Name               string   `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=1,max=150"`
	Email              string   `gorm:"type:varchar(200);not null" json:"email" validate:"required,email,max=200"`
	Phone              string   `gorm:"type:varchar(30)" json:"phone" validate:"max=30"`
	Message            string   `gorm:"type:text" json:"message"`
	Status             string   `gorm:"type:varchar(20);not null;default:'new';index:idx_inquiries_status" json:"status" validate:"oneof=new in_progress closed"`
	EstimatedCostCents *int64   `json:"estimated_cost_cents"`
	Payload            string   `gorm:"type:text" json:"payload"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_inquiries_status" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (i *Inquiry) Validate() error {
	v := validator.New()
	return v.Struct(i)
}
