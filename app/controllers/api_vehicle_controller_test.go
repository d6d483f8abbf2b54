package controllers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rvolkov-dev/autobridge/app/models"
)

func TestSplitQueryList(t *testing.T) {
	t.Parallel()

	assert.Nil(t, splitQueryList(""))
	assert.Equal(t, []string{"Germany"}, splitQueryList("Germany"))
	assert.Equal(t, []string{"Germany", "Japan"}, splitQueryList("Germany, Japan"))
	assert.Equal(t, []string{"suv", "sedan"}, splitQueryList("suv,,sedan,"))
}

func TestVehicleSummaryPrefersPrimaryImage(t *testing.T) {
	t.Parallel()

	v := &models.Vehicle{
		ID:                "v-1",
		Slug:              "bmw-x5-2021",
		Title:             "BMW X5",
		BasePriceEURCents: 4500000,
		ThumbnailURL:      "https://img.example.com/fallback.jpg",
		Images: []models.VehicleImage{
			{URL: "https://img.example.com/first.jpg"},
			{URL: "https://img.example.com/primary.jpg", IsPrimary: true},
		},
	}

	summary := vehicleSummary(v)
	assert.Equal(t, "https://img.example.com/primary.jpg", summary["thumbnail_url"])

	price := summary["base_price_eur"].(decimal.Decimal)
	assert.True(t, price.Equal(decimal.NewFromInt(45000)), "price %s", price)
}

func TestVehicleSummaryFallsBackToThumbnail(t *testing.T) {
	t.Parallel()

	v := &models.Vehicle{
		ID:           "v-2",
		ThumbnailURL: "https://img.example.com/fallback.jpg",
	}

	summary := vehicleSummary(v)
	assert.Equal(t, "https://img.example.com/fallback.jpg", summary["thumbnail_url"])
}

func TestValidInquiryStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, validInquiryStatus(models.INQUIRY_STATUS_NEW))
	assert.True(t, validInquiryStatus(models.INQUIRY_STATUS_IN_PROGRESS))
	assert.True(t, validInquiryStatus(models.INQUIRY_STATUS_CLOSED))
	assert.False(t, validInquiryStatus("archived"))
	assert.False(t, validInquiryStatus(""))
}
