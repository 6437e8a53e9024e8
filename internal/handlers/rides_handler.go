package handlers

import (
	"errors"
	"net/http"
	"time"

	"saferide/internal/service"
)

// RidesHandler exposes ride offers and seat reservations
type RidesHandler struct {
	rideService *service.RideService
}

// NewRidesHandler creates a new rides handler
func NewRidesHandler(rideService *service.RideService) *RidesHandler {
	return &RidesHandler{rideService: rideService}
}

// GetAvailableRides lists active offers with free seats for a given day.
// The date query parameter defaults to today.
func (h *RidesHandler) GetAvailableRides(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	offers, err := h.rideService.GetAvailableRides(date)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load rides", err)
		return
	}

	views := make([]rideOfferView, 0, len(offers))
	for i := range offers {
		views = append(views, newRideOfferView(&offers[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

// OfferRide publishes a new ride offer
func (h *RidesHandler) OfferRide(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	var req struct {
		SchoolID        int64     `json:"schoolId"`
		OfferDate       time.Time `json:"offerDate"`
		PickupLocation  string    `json:"pickupLocation"`
		DropOffLocation string    `json:"dropOffLocation"`
		AvailableSeats  int       `json:"availableSeats"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.AvailableSeats < 0 {
		respondError(w, http.StatusBadRequest, "Available seats cannot be negative", nil)
		return
	}

	offer, err := h.rideService.OfferRide(
		claims.ParentID,
		req.SchoolID,
		req.OfferDate,
		req.PickupLocation,
		req.DropOffLocation,
		req.AvailableSeats,
	)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to offer ride", err)
		return
	}

	respondJSON(w, http.StatusCreated, newRideOfferView(offer))
}

// ReserveSeat claims a seat on a ride offer
func (h *RidesHandler) ReserveSeat(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())
	offerID := r.PathValue("rideId")

	var req struct {
		NumberOfSeats int `json:"numberOfSeats"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.NumberOfSeats < 1 {
		req.NumberOfSeats = 1
	}

	reservation, err := h.rideService.ReserveSeat(claims.ParentID, offerID, req.NumberOfSeats)
	if err != nil {
		if errors.Is(err, service.ErrRideNotAvailable) {
			respondResult(w, service.Fail("Ride is not available"))
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to reserve seat", err)
		return
	}

	respondJSON(w, http.StatusCreated, newReservationView(reservation))
}

// GetReservations lists the authenticated parent's reservations
func (h *RidesHandler) GetReservations(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())

	reservations, err := h.rideService.GetUserReservations(claims.ParentID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load reservations", err)
		return
	}

	views := make([]reservationView, 0, len(reservations))
	for i := range reservations {
		views = append(views, newReservationView(&reservations[i]))
	}
	respondJSON(w, http.StatusOK, views)
}

// DeactivateOffer withdraws one of the parent's own ride offers
func (h *RidesHandler) DeactivateOffer(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())
	offerID := r.PathValue("rideId")

	if err := h.rideService.DeactivateOffer(claims.ParentID, offerID); err != nil {
		switch {
		case errors.Is(err, service.ErrOfferNotFound):
			respondError(w, http.StatusNotFound, "Ride offer not found", nil)
		case errors.Is(err, service.ErrNotOfferOwner):
			respondError(w, http.StatusForbidden, "You do not own this ride offer", nil)
		default:
			respondError(w, http.StatusInternalServerError, "Failed to deactivate offer", err)
		}
		return
	}

	respondResult(w, service.Ok())
}

// CancelReservation cancels one of the parent's own reservations
func (h *RidesHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	claims := GetClaimsFromContext(r.Context())
	reservationID := r.PathValue("id")

	if err := h.rideService.CancelReservation(claims.ParentID, reservationID); err != nil {
		switch {
		case errors.Is(err, service.ErrReservationNotFound):
			respondError(w, http.StatusNotFound, "Reservation not found", nil)
		case errors.Is(err, service.ErrNotReservationOwner):
			respondError(w, http.StatusForbidden, "You do not own this reservation", nil)
		default:
			respondError(w, http.StatusInternalServerError, "Failed to cancel reservation", err)
		}
		return
	}

	respondResult(w, service.Ok())
}
