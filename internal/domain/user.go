package domain

import "time"

// User represents a registered driver, keyed by the vehicle plate
type User struct {
	VehiclePlate string
	Name         string
	VehicleType  string
	IsEmployee   bool
	// BookedSlot is a back-reference to the slot this user currently holds.
	// It is updated in a separate step from the slot record itself and may
	// briefly desynchronize; the booking workflow repairs it opportunistically.
	BookedSlot *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasBooking returns true if the user's back-reference points at a slot
func (u *User) HasBooking() bool {
	return u.BookedSlot != nil && *u.BookedSlot != ""
}
