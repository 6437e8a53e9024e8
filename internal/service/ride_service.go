package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"saferide/internal/models"
	"saferide/internal/repository"
)

var (
	ErrRideNotAvailable    = errors.New("ride offer not available")
	ErrOfferNotFound       = errors.New("ride offer not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotOfferOwner       = errors.New("parent does not own this ride offer")
	ErrNotReservationOwner = errors.New("parent does not own this reservation")
)

// RideService manages ride offers and seat reservations
type RideService struct {
	rideRepo *repository.RideRepository
}

// NewRideService creates a new ride service
func NewRideService(rideRepo *repository.RideRepository) *RideService {
	return &RideService{rideRepo: rideRepo}
}

// OfferRide publishes a new ride offer. The caller supplies seat count,
// date and locations; the offer starts active.
func (s *RideService) OfferRide(parentID string, schoolID int64, offerDate time.Time, pickup, dropOff string, availableSeats int) (*models.RideOffer, error) {
	offer := &models.RideOffer{
		ID:              uuid.New().String(),
		ParentID:        parentID,
		SchoolID:        schoolID,
		OfferDate:       offerDate,
		PickupLocation:  pickup,
		DropOffLocation: dropOff,
		AvailableSeats:  availableSeats,
		IsActive:        true,
	}

	if err := s.rideRepo.CreateOffer(offer); err != nil {
		return nil, fmt.Errorf("failed to offer ride: %w", err)
	}

	return offer, nil
}

// GetAvailableRides returns active offers with free seats departing on
// the same calendar day as date
func (s *RideService) GetAvailableRides(date time.Time) ([]models.RideOffer, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	offers, err := s.rideRepo.GetAvailableOffers(dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get available rides: %w", err)
	}
	return offers, nil
}

// ReserveSeat claims a seat on a ride offer. The offer's seat count
// always drops by exactly one per reservation, independent of
// numberOfSeats, which is recorded on the reservation as supplied.
func (s *RideService) ReserveSeat(parentID, rideOfferID string, numberOfSeats int) (*models.RideReservation, error) {
	offer, err := s.rideRepo.GetOfferByID(rideOfferID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ride offer: %w", err)
	}
	if offer == nil || offer.AvailableSeats <= 0 {
		return nil, ErrRideNotAvailable
	}

	if err := s.rideRepo.UpdateOfferSeats(offer.ID, offer.AvailableSeats-1); err != nil {
		return nil, fmt.Errorf("failed to update offer seats: %w", err)
	}

	reservation := &models.RideReservation{
		ID:              uuid.New().String(),
		ParentID:        parentID,
		RideOfferID:     rideOfferID,
		ReservationDate: time.Now().UTC(),
		NumberOfSeats:   numberOfSeats,
		Status:          models.ReservationReserved,
	}

	if err := s.rideRepo.CreateReservation(reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return reservation, nil
}

// GetUserReservations returns all reservations made by a parent
func (s *RideService) GetUserReservations(parentID string) ([]models.RideReservation, error) {
	return s.rideRepo.GetParentReservations(parentID)
}

// DeactivateOffer withdraws an offer from the available-rides listing.
// Only the offering parent may deactivate it.
func (s *RideService) DeactivateOffer(parentID, offerID string) error {
	offer, err := s.rideRepo.GetOfferByID(offerID)
	if err != nil {
		return fmt.Errorf("failed to load ride offer: %w", err)
	}
	if offer == nil {
		return ErrOfferNotFound
	}
	if offer.ParentID != parentID {
		return ErrNotOfferOwner
	}

	return s.rideRepo.DeactivateOffer(offerID)
}

// CancelReservation marks a reservation as cancelled. Seats are not
// returned to the offer; the capacity counter only ever decreases.
func (s *RideService) CancelReservation(parentID, reservationID string) error {
	reservation, err := s.rideRepo.GetReservationByID(reservationID)
	if err != nil {
		return fmt.Errorf("failed to load reservation: %w", err)
	}
	if reservation == nil {
		return ErrReservationNotFound
	}
	if reservation.ParentID != parentID {
		return ErrNotReservationOwner
	}

	return s.rideRepo.UpdateReservationStatus(reservationID, models.ReservationCancelled)
}
