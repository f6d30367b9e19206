package domain

// Default configuration values
const (
	DefaultSlotCount  = 100
	DefaultHourlyRate = 2.50
)

// Business validation constants
const (
	MaxPlateLength       = 16
	MaxNameLength        = 100
	MaxVehicleTypeLength = 50
)
