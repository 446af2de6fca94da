package finance

// RateContext holds the tariff and operating assumptions behind the
// annual savings estimate. One context is attached per quote so the
// savings snapshot is reproducible.
type RateContext struct {
	PeakRateUSDPerMWh         float64 `json:"peakRateUSDPerMWh"`
	OffPeakRateUSDPerMWh      float64 `json:"offPeakRateUSDPerMWh"`
	DemandChargeUSDPerKWMonth float64 `json:"demandChargeUSDPerKWMonth"`
	CyclesPerYear             float64 `json:"cyclesPerYear"`
	OutageHoursPerYear        float64 `json:"outageHoursPerYear"`
	ValueOfLostLoadUSDPerMWh  float64 `json:"valueOfLostLoadUSDPerMWh"`
	SolarCapacityFactor       float64 `json:"solarCapacityFactor"`
	WindCapacityFactor        float64 `json:"windCapacityFactor"`
	BlendedRateUSDPerMWh      float64 `json:"blendedRateUSDPerMWh"`
}

// DefaultRates are US commercial-tariff assumptions, overridable per
// quote from the API request.
func DefaultRates() RateContext {
	return RateContext{
		PeakRateUSDPerMWh:         180,
		OffPeakRateUSDPerMWh:      70,
		DemandChargeUSDPerKWMonth: 15,
		CyclesPerYear:             330,
		OutageHoursPerYear:        12,
		ValueOfLostLoadUSDPerMWh:  5000,
		SolarCapacityFactor:       0.22,
		WindCapacityFactor:        0.32,
		BlendedRateUSDPerMWh:      120,
	}
}

// SavingsInput is the sized configuration the savings model reads.
type SavingsInput struct {
	BatteryMW          float64
	BatteryDurationHrs float64
	SolarMW            float64
	WindMW             float64
	PeakDemandMW       float64
	GridReliable       bool // outage-avoidance value only accrues on shaky grids
}

// SavingsBreakdown itemizes the annual savings estimate. Total is the
// only figure the projection consumes, and it is always the sum of the
// listed drivers; there is no second savings formula anywhere.
type SavingsBreakdown struct {
	ArbitrageUSD        float64 `json:"arbitrageUSD"`
	DemandChargeUSD     float64 `json:"demandChargeUSD"`
	OutageAvoidanceUSD  float64 `json:"outageAvoidanceUSD"`
	GenerationOffsetUSD float64 `json:"generationOffsetUSD"`
	TotalUSD            float64 `json:"totalUSD"`
}

// EstimateAnnualSavings builds the savings snapshot for one system.
//
// Drivers:
//   - arbitrage: the battery charges off-peak and discharges on-peak
//     once per cycle, earning the peak/off-peak spread per MWh cycled
//   - demand charge: battery power shaves the billed peak kW
//   - outage avoidance: unserved-load cost avoided on unreliable grids
//   - generation offset: solar/wind energy displacing grid purchases
//     at the blended rate
func EstimateAnnualSavings(in SavingsInput, rates RateContext) SavingsBreakdown {
	var b SavingsBreakdown

	cycledMWh := in.BatteryMW * in.BatteryDurationHrs * rates.CyclesPerYear
	spread := rates.PeakRateUSDPerMWh - rates.OffPeakRateUSDPerMWh
	if spread > 0 {
		b.ArbitrageUSD = cycledMWh * spread
	}

	shavedKW := in.BatteryMW * 1000
	if in.PeakDemandMW > 0 && in.PeakDemandMW*1000 < shavedKW {
		// cannot shave more than the facility peak
		shavedKW = in.PeakDemandMW * 1000
	}
	b.DemandChargeUSD = shavedKW * rates.DemandChargeUSDPerKWMonth * 12

	if !in.GridReliable && in.PeakDemandMW > 0 {
		b.OutageAvoidanceUSD = rates.OutageHoursPerYear * in.PeakDemandMW * rates.ValueOfLostLoadUSDPerMWh
	}

	hoursPerYear := 8760.0
	generatedMWh := in.SolarMW*rates.SolarCapacityFactor*hoursPerYear +
		in.WindMW*rates.WindCapacityFactor*hoursPerYear
	b.GenerationOffsetUSD = generatedMWh * rates.BlendedRateUSDPerMWh

	b.TotalUSD = b.ArbitrageUSD + b.DemandChargeUSD + b.OutageAvoidanceUSD + b.GenerationOffsetUSD
	return b
}
