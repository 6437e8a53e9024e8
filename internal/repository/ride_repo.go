package repository

import (
	"database/sql"
	"fmt"
	"time"

	"saferide/internal/database"
	"saferide/internal/models"
)

// RideRepository handles database operations for ride offers and reservations
type RideRepository struct {
	db *database.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(db *database.DB) *RideRepository {
	return &RideRepository{db: db}
}

// CreateOffer inserts a new ride offer
func (r *RideRepository) CreateOffer(offer *models.RideOffer) error {
	query := `
		INSERT INTO ride_offers (id, parent_id, school_id, offer_date,
			pickup_location, dropoff_location, available_seats, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		offer.ID,
		offer.ParentID,
		offer.SchoolID,
		offer.OfferDate,
		offer.PickupLocation,
		offer.DropOffLocation,
		offer.AvailableSeats,
		offer.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create ride offer: %w", err)
	}
	return nil
}

// GetOfferByID retrieves a ride offer by ID
func (r *RideRepository) GetOfferByID(offerID string) (*models.RideOffer, error) {
	query := `
		SELECT id, parent_id, school_id, offer_date, pickup_location,
			dropoff_location, available_seats, is_active
		FROM ride_offers WHERE id = ?
	`
	offer := &models.RideOffer{}
	err := r.db.QueryRow(query, offerID).Scan(
		&offer.ID,
		&offer.ParentID,
		&offer.SchoolID,
		&offer.OfferDate,
		&offer.PickupLocation,
		&offer.DropOffLocation,
		&offer.AvailableSeats,
		&offer.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride offer: %w", err)
	}

	return offer, nil
}

// GetAvailableOffers retrieves active offers with free seats departing
// within [dayStart, dayEnd)
func (r *RideRepository) GetAvailableOffers(dayStart, dayEnd time.Time) ([]models.RideOffer, error) {
	query := `
		SELECT id, parent_id, school_id, offer_date, pickup_location,
			dropoff_location, available_seats, is_active
		FROM ride_offers
		WHERE offer_date >= ? AND offer_date < ? AND available_seats > 0 AND is_active = ?
		ORDER BY offer_date ASC, id ASC
	`
	rows, err := r.db.Query(query, dayStart, dayEnd, true)
	if err != nil {
		return nil, fmt.Errorf("failed to query ride offers: %w", err)
	}
	defer rows.Close()

	var offers []models.RideOffer
	for rows.Next() {
		var offer models.RideOffer
		if err := rows.Scan(
			&offer.ID,
			&offer.ParentID,
			&offer.SchoolID,
			&offer.OfferDate,
			&offer.PickupLocation,
			&offer.DropOffLocation,
			&offer.AvailableSeats,
			&offer.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ride offer: %w", err)
		}
		offers = append(offers, offer)
	}

	return offers, rows.Err()
}

// UpdateOfferSeats sets an offer's remaining seat count
func (r *RideRepository) UpdateOfferSeats(offerID string, availableSeats int) error {
	query := "UPDATE ride_offers SET available_seats = ? WHERE id = ?"
	_, err := r.db.Exec(query, availableSeats, offerID)
	if err != nil {
		return fmt.Errorf("failed to update offer seats: %w", err)
	}
	return nil
}

// DeactivateOffer marks an offer as no longer taking reservations
func (r *RideRepository) DeactivateOffer(offerID string) error {
	query := "UPDATE ride_offers SET is_active = ? WHERE id = ?"
	_, err := r.db.Exec(query, false, offerID)
	if err != nil {
		return fmt.Errorf("failed to deactivate offer: %w", err)
	}
	return nil
}

// CreateReservation inserts a new ride reservation
func (r *RideRepository) CreateReservation(reservation *models.RideReservation) error {
	query := `
		INSERT INTO ride_reservations (id, parent_id, ride_offer_id,
			reservation_date, number_of_seats, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		reservation.ID,
		reservation.ParentID,
		reservation.RideOfferID,
		reservation.ReservationDate,
		reservation.NumberOfSeats,
		reservation.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// GetReservationByID retrieves a reservation by ID
func (r *RideRepository) GetReservationByID(reservationID string) (*models.RideReservation, error) {
	query := `
		SELECT id, parent_id, ride_offer_id, reservation_date, number_of_seats, status
		FROM ride_reservations WHERE id = ?
	`
	reservation := &models.RideReservation{}
	err := r.db.QueryRow(query, reservationID).Scan(
		&reservation.ID,
		&reservation.ParentID,
		&reservation.RideOfferID,
		&reservation.ReservationDate,
		&reservation.NumberOfSeats,
		&reservation.Status,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return reservation, nil
}

// GetParentReservations retrieves all reservations made by a parent
func (r *RideRepository) GetParentReservations(parentID string) ([]models.RideReservation, error) {
	query := `
		SELECT id, parent_id, ride_offer_id, reservation_date, number_of_seats, status
		FROM ride_reservations
		WHERE parent_id = ?
		ORDER BY reservation_date ASC
	`
	rows, err := r.db.Query(query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []models.RideReservation
	for rows.Next() {
		var reservation models.RideReservation
		if err := rows.Scan(
			&reservation.ID,
			&reservation.ParentID,
			&reservation.RideOfferID,
			&reservation.ReservationDate,
			&reservation.NumberOfSeats,
			&reservation.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	return reservations, rows.Err()
}

// UpdateReservationStatus sets a reservation's status label
func (r *RideRepository) UpdateReservationStatus(reservationID, status string) error {
	query := "UPDATE ride_reservations SET status = ? WHERE id = ?"
	_, err := r.db.Exec(query, status, reservationID)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}
	return nil
}
