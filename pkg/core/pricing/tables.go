package pricing

import "github.com/shopspring/decimal"

// DefaultRegion serves quotes whose region has no table of its own.
const DefaultRegion = "us"

func usd(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// DefaultTables are the built-in pricing curves, used when the pricing
// database is unavailable or unseeded. Figures are indicative
// turnkey equipment prices, refreshed by the seed tool from the
// admin-maintained tables in production.
func DefaultTables() []RegionTable {
	return []RegionTable{
		{
			Region:            "us",
			BatteryPerKWh:     Curve{SmallSize: 1, LargeSize: 50, SmallUnit: usd("380"), FloorUnit: usd("280")},
			SolarPerWatt:      Curve{SmallSize: 1, LargeSize: 20, SmallUnit: usd("0.95"), FloorUnit: usd("0.75")},
			WindPerWatt:       Curve{SmallSize: 1, LargeSize: 20, SmallUnit: usd("1.45"), FloorUnit: usd("1.20")},
			GeneratorPerWatt:  Curve{SmallSize: 1, LargeSize: 20, SmallUnit: usd("0.80"), FloorUnit: usd("0.65")},
			BalanceOfPlantPct: usd("0.12"),
		},
		{
			Region:            "europe",
			BatteryPerKWh:     Curve{SmallSize: 1, LargeSize: 50, SmallUnit: usd("410"), FloorUnit: usd("300")},
			SolarPerWatt:      Curve{SmallSize: 1, LargeSize: 20, SmallUnit: usd("1.05"), FloorUnit: usd("0.82")},
			WindPerWatt:       Curve{SmallSize: 1, LargeSize: 20, SmallUnit: usd("1.35"), FloorUnit: usd("1.10")},
			GeneratorPerWatt:  Curve{SmallSize: 1, LargeSize: 20, SmallUnit: usd("0.90"), FloorUnit: usd("0.72")},
			BalanceOfPlantPct: usd("0.14"),
		},
		{
			Region:            "middle-east",
			BatteryPerKWh:     Curve{SmallSize: 1, LargeSize: 50, SmallUnit: usd("395"), FloorUnit: usd("290")},
			SolarPerWatt:      Curve{SmallSize: 1, LargeSize: 20, SmallUnit: usd("0.85"), FloorUnit: usd("0.68")},
			WindPerWatt:       Curve{SmallSize: 1, LargeSize: 20, SmallUnit: usd("1.55"), FloorUnit: usd("1.30")},
			GeneratorPerWatt:  Curve{SmallSize: 1, LargeSize: 20, SmallUnit: usd("0.70"), FloorUnit: usd("0.58")},
			BalanceOfPlantPct: usd("0.11"),
		},
		{
			Region:            "asia-pacific",
			BatteryPerKWh:     Curve{SmallSize: 1, LargeSize: 50, SmallUnit: usd("360"), FloorUnit: usd("265")},
			SolarPerWatt:      Curve{SmallSize: 1, LargeSize: 20, SmallUnit: usd("0.80"), FloorUnit: usd("0.62")},
			WindPerWatt:       Curve{SmallSize: 1, LargeSize: 20, SmallUnit: usd("1.40"), FloorUnit: usd("1.15")},
			GeneratorPerWatt:  Curve{SmallSize: 1, LargeSize: 20, SmallUnit: usd("0.75"), FloorUnit: usd("0.60")},
			BalanceOfPlantPct: usd("0.12"),
		},
	}
}
