package catalog

// Universal questions appended to every template. These mirror the
// facility-agnostic questions every use case asks: size and operating
// profile (classification only), a direct peak-load override, and the
// grid connection pair consumed by the gap analyzer.
//
// NOTE: all per-industry coefficients below are configuration data,
// not engineering ground truth. They can be corrected at load time via
// a calibration overlay (see calibration.go) without a code change.
func universalFields() []FieldSpec {
	return []FieldSpec{
		{
			Key:      "facilitySize",
			Question: "Facility size (sq ft)",
			Impact:   ImpactFactor,
			Unit:     "sq ft",
			Default:  10000,
			HelpText: "Total building/facility square footage",
		},
		{
			Key:      "operatingHours",
			Question: "Daily operating hours",
			Impact:   ImpactFactor,
			Unit:     "hours",
			Default:  12,
			Required: true,
			HelpText: "Hours per day the facility operates",
		},
		{
			Key:      "peakLoad",
			Question: "Peak power demand (if known)",
			Impact:   ImpactNone,
			Unit:     "MW",
			HelpText: "Optional: actual peak load from utility bill (leave 0 for auto-calculation)",
		},
		{
			Key:         "gridConnection",
			Question:    "Grid connection quality",
			Impact:      ImpactFactor,
			Required:    true,
			DefaultText: "reliable",
			Options: []Option{
				{Value: "reliable", Label: "Reliable Grid - Stable power, rare outages"},
				{Value: "unreliable", Label: "Unreliable Grid - Frequent outages"},
				{Value: "limited", Label: "Limited Capacity - Grid undersized for facility"},
				{Value: "off_grid", Label: "Off-Grid - No grid connection"},
				{Value: "microgrid", Label: "Microgrid - Independent power system"},
			},
			HelpText: "Grid quality affects backup requirements and generation needs",
		},
		{
			Key:      "gridCapacity",
			Question: "Grid connection capacity (if limited)",
			Impact:   ImpactFactor,
			Unit:     "MW",
			HelpText: "If limited grid: enter max capacity from utility. If 0, we assume unspecified.",
		},
	}
}

func withUniversal(fields ...FieldSpec) []FieldSpec {
	return append(fields, universalFields()...)
}

// templates is the static industry catalog. Every entry must survive
// Validate(); the test suite enforces the invariants.
var templates = []IndustryTemplate{
	{
		ID:                 "hotel",
		Name:               "Hotel & Hospitality",
		Aliases:            []string{"hotels", "hospitality", "hotel-hospitality", "resort"},
		BaseLoadKW:         150,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "rooms", Question: "Number of guest rooms", Impact: ImpactMultiplier, Coefficient: 0.00293, Unit: "rooms", Required: true},
			FieldSpec{Key: "conferenceSqFt", Question: "Conference/banquet space (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.012, Unit: "sq ft"},
			FieldSpec{Key: "poolCount", Question: "Number of heated pools", Impact: ImpactPowerAdd, Coefficient: 35, Unit: "pools"},
		),
	},
	{
		ID:                 "data-center",
		Name:               "Data Center",
		Aliases:            []string{"datacenter", "data_center", "data-centers", "colocation"},
		BaseLoadKW:         500,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "racks", Question: "Number of IT racks", Impact: ImpactMultiplier, Coefficient: 0.0075, Unit: "racks", Required: true},
			FieldSpec{Key: "coolingOverheadPct", Question: "Cooling overhead (%)", Impact: ImpactFactor, Unit: "%", Default: 35},
		),
	},
	{
		ID:                 "ev-charging",
		Name:               "EV Charging Station",
		Aliases:            []string{"ev_charging", "ev-charging-station", "electric-vehicle-charging", "ev-fleet"},
		BaseLoadKW:         25,
		DefaultDurationHrs: 2, // fast-cycling use case
		Fields: withUniversal(
			FieldSpec{Key: "level2Chargers", Question: "Level 2 chargers (19.2 kW)", Impact: ImpactPowerAdd, Coefficient: 19.2, Unit: "chargers", Required: true},
			FieldSpec{Key: "dcFastChargers", Question: "DC fast chargers (150 kW)", Impact: ImpactPowerAdd, Coefficient: 150, Unit: "chargers", Required: true},
			FieldSpec{Key: "ultraFastChargers", Question: "Ultra-fast chargers (350 kW)", Impact: ImpactPowerAdd, Coefficient: 350, Unit: "chargers"},
		),
	},
	{
		ID:                 "hospital",
		Name:               "Hospital & Healthcare",
		Aliases:            []string{"hospitals", "healthcare", "medical-center", "medical_center"},
		BaseLoadKW:         400,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "beds", Question: "Number of patient beds", Impact: ImpactMultiplier, Coefficient: 0.0025, Unit: "beds", Required: true},
			FieldSpec{Key: "operatingRooms", Question: "Number of operating rooms", Impact: ImpactPowerAdd, Coefficient: 60, Unit: "rooms"},
			FieldSpec{Key: "imagingSuites", Question: "Imaging suites (MRI/CT)", Impact: ImpactPowerAdd, Coefficient: 90, Unit: "suites"},
		),
	},
	{
		ID:                 "manufacturing",
		Name:               "Manufacturing Plant",
		Aliases:            []string{"factory", "industrial", "manufacturing-plant"},
		BaseLoadKW:         300,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "productionSqFt", Question: "Production floor area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.025, Unit: "sq ft", Required: true},
			FieldSpec{Key: "heavyMachineCount", Question: "Heavy machines (>50 kW each)", Impact: ImpactPowerAdd, Coefficient: 55, Unit: "machines"},
			FieldSpec{Key: "shiftCount", Question: "Shifts per day", Impact: ImpactFactor, Unit: "shifts", Default: 1},
		),
	},
	{
		ID:                 "gas-station",
		Name:               "Gas Station & Convenience",
		Aliases:            []string{"gas_station", "fuel-station", "gas-stations", "petrol-station"},
		BaseLoadKW:         30,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			// Coefficient is kW per pump. A historical data entry error
			// expressed this in MW per pump, inflating sites >1000x;
			// the calibration overlay exists for exactly this case.
			FieldSpec{Key: "fuelPumps", Question: "Number of fuel pumps", Impact: ImpactPowerAdd, Coefficient: 15, Unit: "pumps", Required: true},
			FieldSpec{Key: "storeSqFt", Question: "Convenience store area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.02, Unit: "sq ft"},
			FieldSpec{Key: "carWashBays", Question: "Car wash bays", Impact: ImpactPowerAdd, Coefficient: 40, Unit: "bays"},
		),
	},
	{
		ID:                 "warehouse",
		Name:               "Warehouse & Distribution",
		Aliases:            []string{"warehouses", "distribution-center", "distribution_center", "logistics"},
		BaseLoadKW:         100,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "warehouseSqFt", Question: "Warehouse area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.008, Unit: "sq ft", Required: true},
			FieldSpec{Key: "refrigeratedSqFt", Question: "Refrigerated area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.06, Unit: "sq ft"},
			FieldSpec{Key: "dockDoors", Question: "Loading dock doors", Impact: ImpactFactor, Unit: "doors"},
		),
	},
	{
		ID:                 "government",
		Name:               "Government Building",
		Aliases:            []string{"government-building", "government_building", "municipal", "public-sector"},
		BaseLoadKW:         120,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "buildingSqFt", Question: "Building area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.012, Unit: "sq ft", Required: true},
			FieldSpec{Key: "dataRoomCount", Question: "Server/data rooms", Impact: ImpactPowerAdd, Coefficient: 25, Unit: "rooms"},
		),
	},
	{
		ID:                 "casino",
		Name:               "Casino & Gaming Resort",
		Aliases:            []string{"casinos", "gaming", "casino-resort"},
		BaseLoadKW:         350,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			// Two independent scale drivers: gaming floor and the
			// attached hotel tower both contribute.
			FieldSpec{Key: "gamingFloorSqFt", Question: "Gaming floor area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.045, Unit: "sq ft", Required: true},
			FieldSpec{Key: "hotelRooms", Question: "Attached hotel rooms", Impact: ImpactMultiplier, Coefficient: 0.00293, Unit: "rooms"},
			FieldSpec{Key: "restaurantCount", Question: "Restaurants on site", Impact: ImpactPowerAdd, Coefficient: 45, Unit: "restaurants"},
		),
	},
	{
		ID:                 "school",
		Name:               "K-12 School",
		Aliases:            []string{"schools", "k12", "education", "school-district"},
		BaseLoadKW:         80,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "students", Question: "Student enrollment", Impact: ImpactMultiplier, Coefficient: 0.0002, Unit: "students", Required: true},
			FieldSpec{Key: "gymCount", Question: "Gymnasiums", Impact: ImpactPowerAdd, Coefficient: 30, Unit: "gyms"},
			FieldSpec{Key: "cafeteriaMeals", Question: "Cafeteria meals per day", Impact: ImpactFactor, Unit: "meals"},
		),
	},
	{
		ID:                 "university",
		Name:               "College & University Campus",
		Aliases:            []string{"college", "campus", "higher-education", "higher_education"},
		BaseLoadKW:         600,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "campusSqFt", Question: "Campus building area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.01, Unit: "sq ft", Required: true},
			FieldSpec{Key: "housingBeds", Question: "Student housing beds", Impact: ImpactMultiplier, Coefficient: 0.0005, Unit: "beds"},
			FieldSpec{Key: "labBuildings", Question: "Laboratory buildings", Impact: ImpactPowerAdd, Coefficient: 150, Unit: "buildings"},
		),
	},
	{
		ID:                 "retail",
		Name:               "Retail Store",
		Aliases:            []string{"retail-store", "retail_store", "shopping", "big-box"},
		BaseLoadKW:         60,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "salesFloorSqFt", Question: "Sales floor area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.01, Unit: "sq ft", Required: true},
		),
	},
	{
		ID:                 "grocery",
		Name:               "Grocery & Supermarket",
		Aliases:            []string{"supermarket", "grocery-store", "grocery_store"},
		BaseLoadKW:         150,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "storeSqFt", Question: "Store area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.035, Unit: "sq ft", Required: true},
			FieldSpec{Key: "refrigerationCases", Question: "Refrigeration case count", Impact: ImpactPowerAdd, Coefficient: 1.5, Unit: "cases"},
		),
	},
	{
		ID:                 "restaurant",
		Name:               "Restaurant",
		Aliases:            []string{"restaurants", "food-service", "food_service", "qsr"},
		BaseLoadKW:         40,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "seats", Question: "Seating capacity", Impact: ImpactMultiplier, Coefficient: 0.0005, Unit: "seats", Required: true},
			FieldSpec{Key: "kitchenSqFt", Question: "Kitchen area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.05, Unit: "sq ft"},
		),
	},
	{
		ID:                 "office",
		Name:               "Office Building",
		Aliases:            []string{"offices", "office-building", "office_building", "commercial-office"},
		BaseLoadKW:         90,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "officeSqFt", Question: "Office area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.008, Unit: "sq ft", Required: true},
			FieldSpec{Key: "floors", Question: "Number of floors", Impact: ImpactFactor, Unit: "floors"},
		),
	},
	{
		ID:                 "agriculture",
		Name:               "Agriculture & Farm",
		Aliases:            []string{"farm", "farming", "agricultural", "agri"},
		BaseLoadKW:         50,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "irrigatedAcres", Question: "Irrigated acreage", Impact: ImpactPowerAdd, Coefficient: 1.5, Unit: "acres", Required: true},
			FieldSpec{Key: "greenhouseSqFt", Question: "Greenhouse area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.02, Unit: "sq ft"},
			FieldSpec{Key: "grainDryers", Question: "Grain dryers", Impact: ImpactPowerAdd, Coefficient: 75, Unit: "dryers"},
		),
	},
	{
		ID:                 "cold-storage",
		Name:               "Cold Storage Facility",
		Aliases:            []string{"cold_storage", "refrigerated-warehouse", "refrigerated_warehouse"},
		BaseLoadKW:         200,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "refrigeratedSqFt", Question: "Refrigerated area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.05, Unit: "sq ft", Required: true},
			FieldSpec{Key: "blastFreezers", Question: "Blast freezer units", Impact: ImpactPowerAdd, Coefficient: 120, Unit: "units"},
		),
	},
	{
		ID:                 "telecom",
		Name:               "Telecom Infrastructure",
		Aliases:            []string{"telecom-tower", "telecom_tower", "cell-tower", "telecommunications"},
		BaseLoadKW:         10,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "towerSites", Question: "Tower sites served", Impact: ImpactMultiplier, Coefficient: 0.005, Unit: "sites", Required: true},
			FieldSpec{Key: "switchingCenters", Question: "Switching centers", Impact: ImpactPowerAdd, Coefficient: 200, Unit: "centers"},
		),
	},
	{
		ID:                 "mining",
		Name:               "Mining Operation",
		Aliases:            []string{"mine", "mining-operation", "mineral-processing"},
		BaseLoadKW:         800,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "processingTonsPerDay", Question: "Ore processed (tons/day)", Impact: ImpactPowerAdd, Coefficient: 1.2, Unit: "tons/day", Required: true},
			FieldSpec{Key: "electricHaulTrucks", Question: "Electric haul trucks", Impact: ImpactPowerAdd, Coefficient: 250, Unit: "trucks"},
		),
	},
	{
		ID:                 "apartment",
		Name:               "Apartment & Residential Community",
		Aliases:            []string{"apartments", "residential", "multifamily", "multi-family"},
		BaseLoadKW:         75,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "units", Question: "Residential units", Impact: ImpactMultiplier, Coefficient: 0.0015, Unit: "units", Required: true},
			FieldSpec{Key: "evParkingSpots", Question: "EV-ready parking spots", Impact: ImpactPowerAdd, Coefficient: 7.2, Unit: "spots"},
		),
	},
	{
		ID:                 "airport",
		Name:               "Airport",
		Aliases:            []string{"airports", "airfield", "aviation"},
		BaseLoadKW:         1000,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "gates", Question: "Passenger gates", Impact: ImpactMultiplier, Coefficient: 0.05, Unit: "gates", Required: true},
			FieldSpec{Key: "terminalSqFt", Question: "Terminal area (sq ft)", Impact: ImpactPowerAdd, Coefficient: 0.012, Unit: "sq ft"},
			FieldSpec{Key: "groundSupportEV", Question: "Electric ground support vehicles", Impact: ImpactPowerAdd, Coefficient: 20, Unit: "vehicles"},
		),
	},
	{
		ID:                 "water-treatment",
		Name:               "Water Treatment Plant",
		Aliases:            []string{"water_treatment", "wastewater", "water-utility", "water_utility"},
		BaseLoadKW:         250,
		DefaultDurationHrs: 4,
		Fields: withUniversal(
			FieldSpec{Key: "millionGallonsPerDay", Question: "Treatment capacity (MGD)", Impact: ImpactMultiplier, Coefficient: 0.35, Unit: "MGD", Required: true},
			FieldSpec{Key: "liftStations", Question: "Lift/pump stations", Impact: ImpactPowerAdd, Coefficient: 50, Unit: "stations"},
		),
	},
}
