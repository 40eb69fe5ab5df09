package models

import "time"

// AvailableDate is one open day for a destination.
type AvailableDate struct {
	Date  time.Time `db:"available_date"`
	Spots int       `db:"spots_available"`
}

// AvailabilityCheck is the outcome of a range check for a party size.
type AvailabilityCheck struct {
	Available      bool
	Known          bool
	SpotsAvailable int
	TotalPrice     float64
	FormattedPrice string
	Message        string
}
