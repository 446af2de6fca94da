package catalog

import (
	"strconv"
	"testing"
)

func TestApplyCalibrationOverridesCoefficient(t *testing.T) {
	gs, _ := Lookup("gas-station")
	orig, _ := gs.Field("fuelPumps")
	defer func() {
		// restore for other tests; the overlay mutates in place
		applyCalibrationBytes([]byte("industries:\n  gas-station:\n    fuelPumps: " + floatYAML(orig.Coefficient)))
	}()

	n, err := applyCalibrationBytes([]byte(`
industries:
  gas-station:
    fuelPumps: 18.5
`))
	if err != nil {
		t.Fatalf("calibration failed: %v", err)
	}
	if n != 1 {
		t.Errorf("applied %d overrides, want 1", n)
	}
	f, _ := gs.Field("fuelPumps")
	if f.Coefficient != 18.5 {
		t.Errorf("fuelPumps coefficient = %v, want 18.5", f.Coefficient)
	}
}

func TestApplyCalibrationRejectsUnknownTargets(t *testing.T) {
	if _, err := applyCalibrationBytes([]byte("industries:\n  bogus-key:\n    rooms: 1\n")); err == nil {
		t.Error("unknown industry accepted; calibration misses must be loud")
	}
	if _, err := applyCalibrationBytes([]byte("industries:\n  hotel:\n    noSuchField: 1\n")); err == nil {
		t.Error("unknown field accepted; calibration misses must be loud")
	}
	if _, err := applyCalibrationBytes([]byte("industries:\n  hotel:\n    operatingHours: 1\n")); err == nil {
		t.Error("factor field accepted as coefficient target")
	}
	if _, err := applyCalibrationBytes([]byte("industries:\n  hotel:\n    rooms: -2\n")); err == nil {
		t.Error("negative coefficient accepted")
	}
}

func floatYAML(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
