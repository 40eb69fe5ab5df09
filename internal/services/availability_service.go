package services

import (
	"context"
	"fmt"

	"wildventures/internal/domain/models"
	"wildventures/internal/repositories"
	"wildventures/internal/utils"
)

// DefaultCapacity is what the capacity lookup reports when no availability
// row covers the requested range.
const DefaultCapacity = 20

const (
	msgNoAvailabilityData = "No availability information found for the selected dates"
	msgOnlySpotsFmt       = "Only %d spots available for the selected dates"
)

type AvailabilityService struct {
	Availability repositories.AvailabilityRepository
	Pricing      PricingService
	RequestID    string
}

// MinSpots is the minimum capacity over [from, to]; found=false means unknown.
func (s AvailabilityService) MinSpots(ctx context.Context, destination, from, to string) (int, bool, error) {
	return s.Availability.MinSpots(ctx, destination, from, to)
}

// Capacity treats an unknown range as full capacity.
func (s AvailabilityService) Capacity(ctx context.Context, destination, from, to string) (int, error) {
	spots, found, err := s.MinSpots(ctx, destination, from, to)
	if err != nil {
		return 0, err
	}
	if !found {
		return DefaultCapacity, nil
	}
	return spots, nil
}

// Check treats an unknown range as unavailable, unlike Capacity. The price is
// only computed when the party fits.
func (s AvailabilityService) Check(ctx context.Context, destination, from, to string, participants int, pkg string) (models.AvailabilityCheck, error) {
	spots, found, err := s.MinSpots(ctx, destination, from, to)
	if err != nil {
		return models.AvailabilityCheck{}, err
	}
	if !found {
		return models.AvailabilityCheck{Message: msgNoAvailabilityData}, nil
	}
	if spots < participants {
		return models.AvailabilityCheck{
			Known:          true,
			SpotsAvailable: spots,
			Message:        fmt.Sprintf(msgOnlySpotsFmt, spots),
		}, nil
	}

	total, err := s.Pricing.TotalPrice(ctx, destination, participants, pkg)
	if err != nil {
		return models.AvailabilityCheck{}, err
	}
	utils.LogEvent(s.RequestID, "availability", "check",
		fmt.Sprintf("destination=%s spots=%d participants=%d", destination, spots, participants))

	return models.AvailabilityCheck{
		Available:      true,
		Known:          true,
		SpotsAvailable: spots,
		TotalPrice:     total,
		FormattedPrice: utils.FormatUSD(total),
	}, nil
}

func (s AvailabilityService) ListAvailableDates(ctx context.Context, destination string) ([]models.AvailableDate, error) {
	return s.Availability.ListOpenDates(ctx, destination)
}
