package pricing

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// StaticResolver prices against an in-memory set of region tables.
// It backs both the built-in default tables and tables loaded from the
// pricing database.
type StaticResolver struct {
	tables        map[string]RegionTable
	defaultRegion string
	log           *logrus.Entry
}

// NewStaticResolver builds a resolver over the given tables. The
// default region must be present; every quote can fall back to it.
func NewStaticResolver(tables []RegionTable, defaultRegion string, log *logrus.Logger) (*StaticResolver, error) {
	m := make(map[string]RegionTable, len(tables))
	for _, t := range tables {
		m[normalizeRegion(t.Region)] = t
	}
	if _, ok := m[normalizeRegion(defaultRegion)]; !ok {
		return nil, fmt.Errorf("pricing: default region %q has no table", defaultRegion)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &StaticResolver{
		tables:        m,
		defaultRegion: normalizeRegion(defaultRegion),
		log:           log.WithField("component", "pricing"),
	}, nil
}

func normalizeRegion(r string) string {
	return strings.ToLower(strings.TrimSpace(r))
}

// PriceSystem prices each component off its curve and adds balance of
// plant. An unknown region degrades to the default region's table;
// the chosen region is recorded on the breakdown.
func (r *StaticResolver) PriceSystem(_ context.Context, size SystemSize, region string) (*CostBreakdown, error) {
	key := normalizeRegion(region)
	table, ok := r.tables[key]
	if !ok {
		r.log.WithFields(logrus.Fields{
			"requested": region,
			"fallback":  r.defaultRegion,
		}).Warn("unknown pricing region, using default")
		table = r.tables[r.defaultRegion]
	}

	bd := &CostBreakdown{Region: table.Region}

	// Battery: $/kWh over total MWh.
	kwh := decimal.NewFromFloat(size.BatteryMWh * 1000)
	bd.BatteryCost = kwh.Mul(table.BatteryPerKWh.UnitPrice(size.BatteryMWh)).Round(2)

	// Generation assets: $/W over MW.
	bd.SolarCost = wattCost(table.SolarPerWatt, size.SolarMW)
	bd.WindCost = wattCost(table.WindPerWatt, size.WindMW)
	bd.GeneratorCost = wattCost(table.GeneratorPerWatt, size.GeneratorMW)

	subtotal := bd.BatteryCost.Add(bd.SolarCost).Add(bd.WindCost).Add(bd.GeneratorCost)
	bd.BalanceOfPlantCost = subtotal.Mul(table.BalanceOfPlantPct).Round(2)
	bd.TotalCost = subtotal.Add(bd.BalanceOfPlantCost)
	return bd, nil
}

func wattCost(c Curve, mw float64) decimal.Decimal {
	if mw <= 0 {
		return decimal.Zero
	}
	watts := decimal.NewFromFloat(mw * 1e6)
	return watts.Mul(c.UnitPrice(mw)).Round(2)
}
