package models

import "time"

// Reservation status labels. Stored as plain strings, not a closed enum.
const (
	ReservationReserved  = "Reserved"
	ReservationCancelled = "Cancelled"
	ReservationCompleted = "Completed"
)

// RideOffer is a published seat-sharing trip with a capacity counter
type RideOffer struct {
	ID              string
	ParentID        string
	SchoolID        int64
	OfferDate       time.Time
	PickupLocation  string
	DropOffLocation string
	AvailableSeats  int
	IsActive        bool
}

// HasCapacity reports whether the offer can still accept a reservation
func (o *RideOffer) HasCapacity() bool {
	return o.IsActive && o.AvailableSeats > 0
}

// RideReservation is a claim against a ride offer's capacity
type RideReservation struct {
	ID              string
	ParentID        string
	RideOfferID     string
	ReservationDate time.Time
	NumberOfSeats   int
	Status          string
}
