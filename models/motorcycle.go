package models

import (
	"time"
)

// Availability states for the catalog. Unavailable states are excluded
// from listings when hide_unavailable is requested.
const (
	AvailabilityAvailable    = "Available"
	AvailabilityLimitedStock = "Limited Stock"
	AvailabilityOutOfStock   = "Out of Stock"
	AvailabilityNotAvailable = "Not Available"
	AvailabilityDiscontinued = "Discontinued"
	AvailabilityCollector    = "Collector Item"
)

// UnavailableStates are the availability values filtered out by hide_unavailable
var UnavailableStates = []string{
	AvailabilityDiscontinued,
	AvailabilityNotAvailable,
	AvailabilityOutOfStock,
	AvailabilityCollector,
}

// Categories is the fixed category list used by listings and summaries
var Categories = []string{
	"Sport",
	"Cruiser",
	"Touring",
	"Adventure",
	"Naked",
	"Commuter",
	"Scooter",
	"Off-Road",
	"Electric",
}

type Motorcycle struct {
	ID           string `json:"id" gorm:"primaryKey;size:191"`
	Manufacturer string `json:"manufacturer" gorm:"not null;size:100;index"`
	Model        string `json:"model" gorm:"not null;size:100"`
	Year         int    `json:"year" gorm:"not null;index"`
	Category     string `json:"category" gorm:"not null;size:50;index"`

	// Engine attributes
	EngineDisplacement float64 `json:"engine_displacement"` // cc
	Horsepower         float64 `json:"horsepower"`
	Torque             float64 `json:"torque"`    // Nm
	TopSpeed           float64 `json:"top_speed"` // km/h
	FuelCapacity       float64 `json:"fuel_capacity"`
	EngineType         string  `json:"engine_type" gorm:"size:50"`
	Mileage            float64 `json:"mileage"` // km/l

	// Commercial attributes
	PriceUSD     float64 `json:"price_usd" gorm:"index"`
	Availability string  `json:"availability" gorm:"size:50;default:'Available'"`

	Description     string      `json:"description" gorm:"type:text"`
	ImageURL        string      `json:"image_url" gorm:"size:500"`
	Specialisations StringSlice `json:"specialisations"`
	InterestScore   float64     `json:"interest_score" gorm:"index"`

	// Technical features
	TransmissionType string  `json:"transmission_type" gorm:"size:50"`
	GearCount        int     `json:"gear_count"`
	GroundClearance  float64 `json:"ground_clearance"` // mm
	SeatHeight       float64 `json:"seat_height"`      // mm
	ABSAvailable     bool    `json:"abs_available"`
	BrakingSystem    string  `json:"braking_system" gorm:"size:50"`
	SuspensionType   string  `json:"suspension_type" gorm:"size:50"`
	TyreType         string  `json:"tyre_type" gorm:"size:50"`
	HeadlightType    string  `json:"headlight_type" gorm:"size:50"`
	FuelType         string  `json:"fuel_type" gorm:"size:30"`

	// Denormalized rating rollup, recomputed on every rating write
	RatingAverage float64 `json:"rating_average"`
	RatingCount   int     `json:"rating_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VendorPrice is a synthesized vendor offer for a motorcycle in a region.
// It is derived, never persisted.
type VendorPrice struct {
	VendorName       string  `json:"vendor_name"`
	Price            float64 `json:"price"`
	Currency         string  `json:"currency"`
	Availability     string  `json:"availability"`
	Rating           float64 `json:"rating"`
	ReviewCount      int     `json:"review_count"`
	DeliveryEstimate string  `json:"delivery_estimate"`
	Website          string  `json:"website"`
}
