package utils

import "strings"

// DefaultBasePrice applies to destinations found neither in the database nor
// in FallbackBasePrices.
const DefaultBasePrice = 2000.0

// FallbackBasePrices is used when the destinations table has no price.
var FallbackBasePrices = map[string]float64{
	"serengeti":    1999,
	"amazon":       2299,
	"galapagos":    3499,
	"yellowstone":  1499,
	"borneo":       2799,
	"barrier-reef": 2199,
}

// PackageModifiers multiply the base price per tour package tier.
var PackageModifiers = map[string]float64{
	"standard":    1.0,
	"premium":     1.3,
	"luxury":      1.8,
	"photography": 1.5,
	"migration":   1.4,
	"river":       1.2,
	"indigenous":  1.35,
	"cruise":      1.6,
	"diving":      1.4,
	"geyser":      1.15,
	"wildlife":    1.25,
	"orangutan":   1.4,
	"jungle":      1.3,
	"island":      1.25,
}

// FallbackBasePrice returns the constant price for destination, or
// DefaultBasePrice when the code is unknown.
func FallbackBasePrice(destination string) float64 {
	if p, ok := FallbackBasePrices[strings.TrimSpace(destination)]; ok {
		return p
	}
	return DefaultBasePrice
}

// PackageModifier returns the multiplier for pkg. Unknown or empty codes are
// charged at 1.0.
func PackageModifier(pkg string) float64 {
	if m, ok := PackageModifiers[strings.TrimSpace(pkg)]; ok {
		return m
	}
	return 1.0
}

// ComputeTotal is base × participants × modifier, unrounded.
func ComputeTotal(basePrice float64, participants int, modifier float64) float64 {
	return basePrice * float64(participants) * modifier
}
