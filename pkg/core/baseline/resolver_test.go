package baseline

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestHotel150Rooms(t *testing.T) {
	// 150 * 0.00293 = 0.4395 -> 0.44 with two-decimal rounding.
	// One-decimal rounding (the old regression) would report 0.4.
	b, err := Resolve("hotel", AnswerSet{"rooms": 150.0}, nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if b.PowerMW != 0.44 {
		t.Errorf("PowerMW = %v, want 0.44", b.PowerMW)
	}
	if b.DurationHrs != 4 {
		t.Errorf("DurationHrs = %v, want 4", b.DurationHrs)
	}
	if b.EnergyMWh != b.PowerMW*b.DurationHrs {
		t.Errorf("energy identity violated: %v != %v*%v", b.EnergyMWh, b.PowerMW, b.DurationHrs)
	}
	if len(b.Trace) == 0 {
		t.Error("trace must never be empty")
	}
}

func TestEVChargingSumsAllTiers(t *testing.T) {
	// (100*19.2 + 50*150) / 1000 = 9.42 MW raw
	b, err := Resolve("ev-charging", AnswerSet{
		"level2Chargers": 100.0,
		"dcFastChargers": 50.0,
	}, nil)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if math.Abs(b.PowerMW-9.42) > 1e-9 {
		t.Errorf("PowerMW = %v, want 9.42", b.PowerMW)
	}
	if b.DurationHrs != 2 {
		t.Errorf("DurationHrs = %v, want 2 for fast-cycling use case", b.DurationHrs)
	}
}

func TestUnknownIndustryIsFatal(t *testing.T) {
	_, err := Resolve("bogus-key", AnswerSet{}, nil)
	var unknown *UnknownIndustryError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownIndustryError, got %v", err)
	}
	if unknown.Key != "bogus-key" {
		t.Errorf("error key = %q, want bogus-key", unknown.Key)
	}
}

func TestAliasEquivalence(t *testing.T) {
	answers := AnswerSet{"rooms": 150.0, "poolCount": 2.0}
	canonical, err := Resolve("hotel", answers, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, alias := range []string{"hotels", "hospitality", "Hotel-Hospitality"} {
		got, err := Resolve(alias, answers, nil)
		if err != nil {
			t.Fatalf("alias %q: %v", alias, err)
		}
		if !reflect.DeepEqual(got, canonical) {
			t.Errorf("alias %q produced a different baseline", alias)
		}
	}
}

func TestDeterminism(t *testing.T) {
	answers := AnswerSet{"gamingFloorSqFt": 80000.0, "hotelRooms": 400.0}
	first, err := Resolve("casino", answers, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := Resolve("casino", answers, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differed from first run", i)
		}
	}
}

func TestCasinoSumsBothScaleDrivers(t *testing.T) {
	// 80000*0.045/1000 = 3.6, plus 400*0.00293 = 1.172 -> 4.772 -> 4.77
	b, err := Resolve("casino", AnswerSet{
		"gamingFloorSqFt": 80000.0,
		"hotelRooms":      400.0,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if b.PowerMW != 4.77 {
		t.Errorf("PowerMW = %v, want 4.77 (both drivers summed)", b.PowerMW)
	}
}

func TestRoundingFloorLaw(t *testing.T) {
	// 10 rooms -> 0.0293 raw -> 0.03 rounded -> floored to 0.2
	b, err := Resolve("hotel", AnswerSet{"rooms": 10.0}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if b.PowerMW != 0.2 {
		t.Errorf("PowerMW = %v, want floor 0.2", b.PowerMW)
	}
	if b.PeakDemandMW != 0.03 {
		t.Errorf("PeakDemandMW = %v, want 0.03 (floor applies to battery power only)", b.PeakDemandMW)
	}
	if b.EnergyMWh != b.PowerMW*b.DurationHrs {
		t.Error("energy identity violated after floor")
	}
}

func TestConfigOverridePrecedence(t *testing.T) {
	override := &ConfigOverride{IndustryID: "hotel", TypicalLoadKW: 750, PreferredDurationHrs: 6}

	// No scale answers yet: override supplies the provisional figure.
	b, err := Resolve("hotel", AnswerSet{"operatingHours": 24.0}, override)
	if err != nil {
		t.Fatal(err)
	}
	if b.PowerMW != 0.75 {
		t.Errorf("PowerMW = %v, want 0.75 (750 kW / 1000)", b.PowerMW)
	}
	if b.DurationHrs != 6 {
		t.Errorf("DurationHrs = %v, want override 6", b.DurationHrs)
	}

	// Once a scale answer arrives the coefficients take over; the
	// preferred duration remains.
	b, err = Resolve("hotel", AnswerSet{"rooms": 150.0}, override)
	if err != nil {
		t.Fatal(err)
	}
	if b.PowerMW != 0.44 {
		t.Errorf("PowerMW = %v, want coefficient-derived 0.44", b.PowerMW)
	}
	if b.DurationHrs != 6 {
		t.Errorf("DurationHrs = %v, want override 6", b.DurationHrs)
	}
}

func TestUserPeakOverridesEverything(t *testing.T) {
	override := &ConfigOverride{IndustryID: "hotel", TypicalLoadKW: 750}
	b, err := Resolve("hotel", AnswerSet{
		"rooms":    150.0,
		"peakLoad": 2.5, // utility-bill ground truth
	}, override)
	if err != nil {
		t.Fatal(err)
	}
	if b.PowerMW != 2.5 {
		t.Errorf("PowerMW = %v, want user-declared 2.5", b.PowerMW)
	}
	if len(b.Trace) != 1 || b.Trace[0].Field != "peakLoad" {
		t.Errorf("trace should record only the user override, got %+v", b.Trace)
	}
}

func TestFactorsNeverTouchPower(t *testing.T) {
	base, err := Resolve("hotel", AnswerSet{"rooms": 150.0}, nil)
	if err != nil {
		t.Fatal(err)
	}
	withFactors, err := Resolve("hotel", AnswerSet{
		"rooms":          150.0,
		"facilitySize":   90000.0,
		"operatingHours": 24.0,
		"gridConnection": "unreliable",
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if withFactors.PowerMW != base.PowerMW {
		t.Errorf("factor answers changed power: %v vs %v", withFactors.PowerMW, base.PowerMW)
	}
	if withFactors.Factors["gridConnection"] != "unreliable" {
		t.Errorf("factor stash missing gridConnection: %+v", withFactors.Factors)
	}
}

func TestResolveFinalCompleteness(t *testing.T) {
	_, err := ResolveFinal("hotel", AnswerSet{"rooms": 150.0}, nil)
	var invalid *InvalidAnswerError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidAnswerError, got %v", err)
	}
	if len(invalid.Missing) == 0 {
		t.Error("missing required fields not reported")
	}

	// Answer keys outside the template must fail loudly, not
	// contribute zero silently.
	_, err = ResolveFinal("hotel", AnswerSet{
		"rooms":          150.0,
		"operatingHours": 12.0,
		"gridConnection": "reliable",
		"room_count":     150.0, // legacy field name
	}, nil)
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidAnswerError for unknown key, got %v", err)
	}
	if len(invalid.UnknownKeys) != 1 || invalid.UnknownKeys[0] != "room_count" {
		t.Errorf("unknown keys = %v, want [room_count]", invalid.UnknownKeys)
	}

	b, err := ResolveFinal("hotel", AnswerSet{
		"rooms":          150.0,
		"operatingHours": 12.0,
		"gridConnection": "reliable",
	}, nil)
	if err != nil {
		t.Fatalf("complete answer set rejected: %v", err)
	}
	if b.Provisional {
		t.Error("final baseline marked provisional")
	}
}

func TestProvisionalFlag(t *testing.T) {
	b, err := Resolve("hotel", AnswerSet{"rooms": 150.0}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Provisional {
		t.Error("partial answer set should produce a provisional baseline")
	}
}

func TestTraceTextNonEmpty(t *testing.T) {
	b, err := Resolve("warehouse", AnswerSet{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if b.TraceText() == "" {
		t.Error("trace text empty for empty answer set")
	}
}
