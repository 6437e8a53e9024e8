package handlers

import (
	"time"

	"saferide/internal/models"
)

// JSON projections of the domain models. Password hashes and other
// internal fields never leave the API.

type parentView struct {
	ID                 string `json:"id"`
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	PhoneNumber        string `json:"phoneNumber"`
	CreditPoints       int    `json:"creditPoints"`
	IsVerified         bool   `json:"isVerified"`
	VerificationStatus string `json:"verificationStatus"`
	IsAdmin            bool   `json:"isAdmin"`
}

func newParentView(p *models.Parent) parentView {
	return parentView{
		ID:                 p.ID,
		FullName:           p.FullName,
		Email:              p.Email,
		PhoneNumber:        p.PhoneNumber,
		CreditPoints:       p.CreditPoints,
		IsVerified:         p.IsVerified,
		VerificationStatus: string(p.VerificationStatus),
		IsAdmin:            p.IsAdmin,
	}
}

type schoolView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	IsActive     bool   `json:"isActive"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

func newSchoolView(s models.School) schoolView {
	return schoolView{
		ID:           s.ID,
		Name:         s.Name,
		Address:      s.Address,
		IsActive:     s.IsActive,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
	}
}

func newSchoolViews(schools []models.School) []schoolView {
	views := make([]schoolView, 0, len(schools))
	for _, s := range schools {
		views = append(views, newSchoolView(s))
	}
	return views
}

type rideOfferView struct {
	ID              string    `json:"id"`
	ParentID        string    `json:"parentId"`
	SchoolID        int64     `json:"schoolId"`
	OfferDate       time.Time `json:"offerDate"`
	PickupLocation  string    `json:"pickupLocation"`
	DropOffLocation string    `json:"dropOffLocation"`
	AvailableSeats  int       `json:"availableSeats"`
	IsActive        bool      `json:"isActive"`
}

func newRideOfferView(o *models.RideOffer) rideOfferView {
	return rideOfferView{
		ID:              o.ID,
		ParentID:        o.ParentID,
		SchoolID:        o.SchoolID,
		OfferDate:       o.OfferDate,
		PickupLocation:  o.PickupLocation,
		DropOffLocation: o.DropOffLocation,
		AvailableSeats:  o.AvailableSeats,
		IsActive:        o.IsActive,
	}
}

type reservationView struct {
	ID              string    `json:"id"`
	RideOfferID     string    `json:"rideOfferId"`
	ReservationDate time.Time `json:"reservationDate"`
	NumberOfSeats   int       `json:"numberOfSeats"`
	Status          string    `json:"status"`
}

func newReservationView(r *models.RideReservation) reservationView {
	return reservationView{
		ID:              r.ID,
		RideOfferID:     r.RideOfferID,
		ReservationDate: r.ReservationDate,
		NumberOfSeats:   r.NumberOfSeats,
		Status:          r.Status,
	}
}

type enrollmentView struct {
	ID              string     `json:"id"`
	SchoolID        int64      `json:"schoolId"`
	SchoolName      string     `json:"schoolName"`
	ParentID        string     `json:"parentId"`
	Status          string     `json:"status"`
	RequestDate     time.Time  `json:"requestDate"`
	ApprovalDate    *time.Time `json:"approvalDate,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	ParentNotes     string     `json:"parentNotes,omitempty"`
	AdminNotes      string     `json:"adminNotes,omitempty"`
}

func newEnrollmentView(e models.EnrollmentWithSchool) enrollmentView {
	return enrollmentView{
		ID:              e.Enrollment.ID,
		SchoolID:        e.Enrollment.SchoolID,
		SchoolName:      e.SchoolName,
		ParentID:        e.Enrollment.ParentID,
		Status:          string(e.Enrollment.Status),
		RequestDate:     e.Enrollment.RequestDate,
		ApprovalDate:    e.Enrollment.ApprovalDate,
		RejectionReason: e.Enrollment.RejectionReason,
		ParentNotes:     e.Enrollment.ParentNotes,
		AdminNotes:      e.Enrollment.AdminNotes,
	}
}

func newEnrollmentViews(enrollments []models.EnrollmentWithSchool) []enrollmentView {
	views := make([]enrollmentView, 0, len(enrollments))
	for _, e := range enrollments {
		views = append(views, newEnrollmentView(e))
	}
	return views
}

type documentView struct {
	ID           string    `json:"id"`
	DocumentType string    `json:"documentType"`
	DocumentURL  string    `json:"documentUrl"`
	UploadedDate time.Time `json:"uploadedDate"`
	Status       string    `json:"status"`
}

func newDocumentView(d models.VerificationDocument) documentView {
	return documentView{
		ID:           d.ID,
		DocumentType: d.DocumentType,
		DocumentURL:  d.DocumentURL,
		UploadedDate: d.UploadedDate,
		Status:       string(d.Status),
	}
}

type transactionView struct {
	ID              string    `json:"id"`
	PointsChanged   int       `json:"pointsChanged"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transactionDate"`
}

func newTransactionView(tx models.CreditTransaction) transactionView {
	return transactionView{
		ID:              tx.ID,
		PointsChanged:   tx.PointsChanged,
		Description:     tx.Description,
		TransactionDate: tx.TransactionDate,
	}
}
