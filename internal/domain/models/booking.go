package models

import "time"

// BookingForm is the raw submission as it arrives from the booking form.
type BookingForm struct {
	FullName            string `form:"fullName" json:"fullName"`
	Email               string `form:"email" json:"email"`
	Phone               string `form:"phone" json:"phone"`
	Participants        string `form:"participants" json:"participants"`
	Destination         string `form:"destination" json:"destination"`
	TourPackage         string `form:"tourPackage" json:"tourPackage"`
	DepartureDate       string `form:"departureDate" json:"departureDate"`
	ReturnDate          string `form:"returnDate" json:"returnDate"`
	SpecialRequirements string `form:"specialRequirements" json:"specialRequirements"`
}

// BookingRequest is a validated, normalized submission.
type BookingRequest struct {
	FullName            string
	Email               string
	Phone               string
	Participants        int
	Destination         string
	TourPackage         string
	DepartureDate       time.Time
	ReturnDate          time.Time
	SpecialRequirements string
}

// Booking mirrors a row of the bookings table.
type Booking struct {
	ID                  int64     `db:"id" json:"-"`
	Reference           string    `db:"booking_reference" json:"booking_reference"`
	FullName            string    `db:"full_name" json:"full_name"`
	Email               string    `db:"email" json:"email"`
	Phone               string    `db:"phone" json:"phone"`
	Participants        int       `db:"participants" json:"participants"`
	Destination         string    `db:"destination" json:"destination"`
	TourPackage         string    `db:"tour_package" json:"tour_package"`
	DepartureDate       time.Time `db:"departure_date" json:"departure_date"`
	ReturnDate          time.Time `db:"return_date" json:"return_date"`
	Duration            int       `db:"duration" json:"duration"`
	TotalPrice          float64   `db:"total_price" json:"total_price"`
	SpecialRequirements string    `db:"special_requirements" json:"special_requirements"`
	BookingDate         time.Time `db:"booking_date" json:"booking_date"`
	Status              string    `db:"status" json:"status"`
}
