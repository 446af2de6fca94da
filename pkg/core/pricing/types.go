// Package pricing resolves equipment costs for a sized system using
// size-weighted interpolation curves. Money math runs on
// shopspring/decimal; float64 never touches a dollar figure until the
// financial engine consumes the assembled snapshot.
package pricing

import (
	"context"

	"github.com/shopspring/decimal"
)

// SystemSize is the sized configuration the resolver prices. Battery
// energy is priced per kWh; generation assets per watt.
type SystemSize struct {
	BatteryMWh  float64
	SolarMW     float64
	WindMW      float64
	GeneratorMW float64
}

// CostBreakdown is the priced result. Region records which region's
// table actually served the request, making the default-region
// fallback visible to the caller instead of silent.
type CostBreakdown struct {
	Region             string          `json:"region"`
	BatteryCost        decimal.Decimal `json:"batteryCost"`
	SolarCost          decimal.Decimal `json:"solarCost"`
	WindCost           decimal.Decimal `json:"windCost"`
	GeneratorCost      decimal.Decimal `json:"generatorCost"`
	BalanceOfPlantCost decimal.Decimal `json:"balanceOfPlantCost"`
	TotalCost          decimal.Decimal `json:"totalCost"`
}

// Resolver prices a sized system for a region. Implementations must be
// pure with respect to their inputs and must fall back to the default
// region rather than fail when a region is unknown.
type Resolver interface {
	PriceSystem(ctx context.Context, size SystemSize, region string) (*CostBreakdown, error)
}

// Curve is a two-point unit-price curve: a small-system unit price
// that declines linearly with size to a large-system floor. The unit
// price never drops below the floor (no extrapolation).
type Curve struct {
	SmallSize float64         // size at or below which SmallUnit applies
	LargeSize float64         // size at or above which FloorUnit applies
	SmallUnit decimal.Decimal // $/unit for small systems
	FloorUnit decimal.Decimal // $/unit floor for large systems
}

// UnitPrice interpolates the unit price for a given size.
func (c Curve) UnitPrice(size float64) decimal.Decimal {
	if size <= c.SmallSize {
		return c.SmallUnit
	}
	if size >= c.LargeSize {
		return c.FloorUnit
	}
	// Linear interpolation between the two anchor points.
	frac := (size - c.SmallSize) / (c.LargeSize - c.SmallSize)
	span := c.SmallUnit.Sub(c.FloorUnit)
	return c.SmallUnit.Sub(span.Mul(decimal.NewFromFloat(frac)))
}

// RegionTable holds one region's pricing curves. Battery is $/kWh over
// total MWh; solar, wind and generator are $/W over MW.
type RegionTable struct {
	Region            string
	BatteryPerKWh     Curve
	SolarPerWatt      Curve
	WindPerWatt       Curve
	GeneratorPerWatt  Curve
	BalanceOfPlantPct decimal.Decimal // fraction of equipment subtotal
}
