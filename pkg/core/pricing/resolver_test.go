package pricing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestResolver(t *testing.T) *StaticResolver {
	t.Helper()
	r, err := NewStaticResolver(DefaultTables(), DefaultRegion, nil)
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	return r
}

func TestCurveInterpolation(t *testing.T) {
	c := Curve{SmallSize: 1, LargeSize: 50, SmallUnit: usd("380"), FloorUnit: usd("280")}

	if got := c.UnitPrice(0.5); !got.Equal(usd("380")) {
		t.Errorf("below small anchor: %s, want 380", got)
	}
	if got := c.UnitPrice(1); !got.Equal(usd("380")) {
		t.Errorf("at small anchor: %s, want 380", got)
	}
	// Midpoint of [1,50] is 25.5: price should be halfway down.
	if got := c.UnitPrice(25.5); !got.Equal(usd("330")) {
		t.Errorf("midpoint: %s, want 330", got)
	}
	if got := c.UnitPrice(50); !got.Equal(usd("280")) {
		t.Errorf("at large anchor: %s, want 280", got)
	}
	// Never extrapolate below the floor.
	if got := c.UnitPrice(500); !got.Equal(usd("280")) {
		t.Errorf("beyond large anchor: %s, want floor 280", got)
	}
}

func TestBatteryCostMonotonic(t *testing.T) {
	r := newTestResolver(t)
	prev := decimal.Zero
	for _, mwh := range []float64{0.4, 0.8, 1, 2, 5, 10, 25, 50, 80, 200} {
		bd, err := r.PriceSystem(context.Background(), SystemSize{BatteryMWh: mwh}, "us")
		if err != nil {
			t.Fatal(err)
		}
		if bd.BatteryCost.LessThan(prev) {
			t.Fatalf("battery cost decreased at %v MWh: %s < %s", mwh, bd.BatteryCost, prev)
		}
		prev = bd.BatteryCost
	}
}

func TestPriceSystemBreakdown(t *testing.T) {
	r := newTestResolver(t)
	bd, err := r.PriceSystem(context.Background(), SystemSize{
		BatteryMWh:  0.8, // below small anchor -> 380 $/kWh
		SolarMW:     0.5, // below small anchor -> 0.95 $/W
		GeneratorMW: 0.5, // -> 0.80 $/W
	}, "us")
	if err != nil {
		t.Fatal(err)
	}

	if want := usd("304000"); !bd.BatteryCost.Equal(want) { // 800 kWh * 380
		t.Errorf("battery = %s, want %s", bd.BatteryCost, want)
	}
	if want := usd("475000"); !bd.SolarCost.Equal(want) { // 500000 W * 0.95
		t.Errorf("solar = %s, want %s", bd.SolarCost, want)
	}
	if !bd.WindCost.IsZero() {
		t.Errorf("wind = %s, want 0 for unsized component", bd.WindCost)
	}
	if want := usd("400000"); !bd.GeneratorCost.Equal(want) { // 500000 W * 0.80
		t.Errorf("generator = %s, want %s", bd.GeneratorCost, want)
	}

	subtotal := usd("1179000")
	if want := subtotal.Mul(usd("0.12")).Round(2); !bd.BalanceOfPlantCost.Equal(want) {
		t.Errorf("BoP = %s, want %s", bd.BalanceOfPlantCost, want)
	}
	if want := subtotal.Add(bd.BalanceOfPlantCost); !bd.TotalCost.Equal(want) {
		t.Errorf("total = %s, want %s", bd.TotalCost, want)
	}
}

func TestUnknownRegionFallsBack(t *testing.T) {
	r := newTestResolver(t)
	bd, err := r.PriceSystem(context.Background(), SystemSize{BatteryMWh: 1}, "atlantis")
	if err != nil {
		t.Fatalf("unknown region must degrade, not fail: %v", err)
	}
	if bd.Region != "us" {
		t.Errorf("fallback region = %q, want us", bd.Region)
	}
}

func TestRegionNormalization(t *testing.T) {
	r := newTestResolver(t)
	bd, err := r.PriceSystem(context.Background(), SystemSize{BatteryMWh: 1}, "  Middle-East ")
	if err != nil {
		t.Fatal(err)
	}
	if bd.Region != "middle-east" {
		t.Errorf("region = %q, want middle-east", bd.Region)
	}
}

func TestDefaultRegionRequired(t *testing.T) {
	if _, err := NewStaticResolver(DefaultTables(), "nowhere", nil); err == nil {
		t.Error("missing default region table accepted")
	}
}
