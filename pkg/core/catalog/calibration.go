package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Per-industry coefficients are configuration data, not engineering
// ground truth; several were discovered wrong in production (a per-pump
// figure off by >1000x). The calibration overlay lets operators correct
// a coefficient without a code change.
//
// File format (YAML):
//
//	industries:
//	  gas-station:
//	    fuelPumps: 15
//	  warehouse:
//	    warehouseSqFt: 0.009
type calibrationFile struct {
	Industries map[string]map[string]float64 `yaml:"industries"`
}

// ApplyCalibration loads a YAML calibration file and overwrites the
// matching field coefficients in place. Unknown industries or fields
// are errors, not skips: a calibration entry that silently matches
// nothing is the same field-name-mismatch bug the catalog exists to
// prevent. Call during startup, before the first Lookup is served.
func ApplyCalibration(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("calibration: read %s: %w", path, err)
	}
	return applyCalibrationBytes(data)
}

func applyCalibrationBytes(data []byte) (int, error) {
	var cal calibrationFile
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return 0, fmt.Errorf("calibration: parse: %w", err)
	}

	applied := 0
	for industry, fields := range cal.Industries {
		tmpl, ok := Lookup(industry)
		if !ok {
			return applied, fmt.Errorf("calibration: unknown industry %q", industry)
		}
		for key, coeff := range fields {
			if coeff <= 0 {
				return applied, fmt.Errorf("calibration: %s.%s: non-positive coefficient %v", industry, key, coeff)
			}
			idx := -1
			for i, f := range tmpl.Fields {
				if f.Key == key {
					idx = i
					break
				}
			}
			if idx < 0 {
				return applied, fmt.Errorf("calibration: industry %q has no field %q", industry, key)
			}
			if !tmpl.Fields[idx].Contributes() {
				return applied, fmt.Errorf("calibration: %s.%s is a %s field, not a coefficient", industry, key, tmpl.Fields[idx].Impact)
			}
			tmpl.Fields[idx].Coefficient = coeff
			applied++
		}
	}
	return applied, nil
}
