package services

import (
	"context"

	"wildventures/internal/repositories"
	"wildventures/internal/utils"
)

// PricingService is the single pricing table shared by the submit path and
// the availability check.
type PricingService struct {
	Destinations repositories.DestinationRepository
}

// BasePrice prefers the destinations table, then the fallback table, then
// utils.DefaultBasePrice. Storage failures are returned, not defaulted.
func (s PricingService) BasePrice(ctx context.Context, destination string) (float64, error) {
	price, found, err := s.Destinations.BasePrice(ctx, destination)
	if err != nil {
		return 0, err
	}
	if found {
		return price, nil
	}
	return utils.FallbackBasePrice(destination), nil
}

// Modifier never fails; unknown packages are charged at 1.0.
func (s PricingService) Modifier(pkg string) float64 {
	return utils.PackageModifier(pkg)
}

func (s PricingService) TotalPrice(ctx context.Context, destination string, participants int, pkg string) (float64, error) {
	base, err := s.BasePrice(ctx, destination)
	if err != nil {
		return 0, err
	}
	return utils.ComputeTotal(base, participants, s.Modifier(pkg)), nil
}
