package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	VEHICLE_STATUS_DRAFT     = "draft"
	VEHICLE_STATUS_PUBLISHED = "published"
	VEHICLE_STATUS_ARCHIVED  = "archived"
)

// Vehicle is a catalog listing imported from a source market. Prices are
// stored in source-currency minor units (EUR cents); the destination price
// is always derived through the pricing engine, never persisted.
type Vehicle struct {
	ID                string `gorm:"type:char(36);primaryKey" json:"id"`
	Slug              string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required,min=1,max=255"`
	Title             string `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=1,max=255"`
	Brand             string `gorm:"type:varchar(100);not null;index:idx_vehicles_brand_model_year" json:"brand" validate:"required,max=100"`
	Model             string `gorm:"type:varchar(100);not null;index:idx_vehicles_brand_model_year" json:"model" validate:"required,max=100"`
	Generation        string `gorm:"type:varchar(100)" json:"generation"`
	BodyType          string `gorm:"type:varchar(50)" json:"body_type"`
	Year              int    `gorm:"not null;index:idx_vehicles_brand_model_year" json:"year" validate:"required,min=1950,max=2100"`
	Mileage           int    `json:"mileage"`
	MileageUnit       string `gorm:"type:varchar(10);default:'km'" json:"mileage_unit"`
	BasePriceEURCents int64  `gorm:"not null" json:"base_price_eur_cents" validate:"required,gt=0"`

	// Per-vehicle overrides in basis points. When nil the active
	// calculator config (or engine defaults) supplies the rate.
	VATRateBps     *int `json:"vat_rate_bps"`
	CustomsDutyBps *int `json:"customs_duty_bps"`

	Country          string `gorm:"type:varchar(100);not null" json:"country" validate:"required,max=100"`
	City             string `gorm:"type:varchar(100)" json:"city"`
	DeliveryPorts    string `gorm:"type:varchar(255)" json:"delivery_ports"`
	ThumbnailURL     string `gorm:"type:varchar(500)" json:"thumbnail_url"`
	Status           string `gorm:"type:varchar(20);not null;default:'published';index" json:"status" validate:"oneof=draft published archived"`
	ShortDescription string `gorm:"type:text" json:"short_description"`
	LongDescription  string `gorm:"type:longtext" json:"long_description"`

	FuelType       string `gorm:"type:varchar(50)" json:"fuel_type"`
	Transmission   string `gorm:"type:varchar(50)" json:"transmission"`
	DriveType      string `gorm:"type:varchar(50)" json:"drive_type"`
	EngineVolumeCc int    `json:"engine_volume_cc"`
	PowerHp        int    `json:"power_hp"`
	TorqueNm       int    `json:"torque_nm"`
	Doors          int    `json:"doors"`
	Seats          int    `json:"seats"`
	Color          string `gorm:"type:varchar(50)" json:"color"`
	VIN            string `gorm:"type:varchar(32)" json:"vin"`

	ViewCount int64 `gorm:"default:0" json:"view_count"`

	Images         []VehicleImage         `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Features       []VehicleFeature       `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"features,omitempty"`
	Specifications []VehicleSpecification `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"specifications,omitempty"`
	Logistics      []LogisticsMilestone   `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"logistics,omitempty"`
	Documents      []ComplianceDocument   `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

func (v *Vehicle) Validate() error {
	validate := validator.New()
	return validate.Struct(v)
}

// IsPublished reports whether the vehicle is visible in the public catalog.
func (v *Vehicle) IsPublished() bool {
	return v.Status == VEHICLE_STATUS_PUBLISHED
}

// PrimaryImage returns the image flagged as primary, falling back to the
// first image by sort order.
func (v *Vehicle) PrimaryImage() *VehicleImage {
	for i := range v.Images {
		if v.Images[i].IsPrimary {
			return &v.Images[i]
		}
	}
	if len(v.Images) > 0 {
		return &v.Images[0]
	}
	return nil
}
