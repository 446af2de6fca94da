package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"bess_quoting/pkg/core/pricing"
)

// PricingRepo loads the admin-maintained region pricing tables.
type PricingRepo struct {
	pool *pgxpool.Pool
}

func NewPricingRepo(pool *pgxpool.Pool) *PricingRepo {
	return &PricingRepo{pool: pool}
}

// LoadTables reads every region's curves. Rows map 1:1 onto
// pricing.RegionTable; decimal columns scan straight into
// shopspring decimals.
func (r *PricingRepo) LoadTables(ctx context.Context) ([]pricing.RegionTable, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("pricing repo: no database pool")
	}
	rows, err := r.pool.Query(ctx,
		`SELECT region,
		        battery_small_mwh, battery_large_mwh, battery_small_usd_kwh, battery_floor_usd_kwh,
		        solar_small_mw, solar_large_mw, solar_small_usd_w, solar_floor_usd_w,
		        wind_small_mw, wind_large_mw, wind_small_usd_w, wind_floor_usd_w,
		        gen_small_mw, gen_large_mw, gen_small_usd_w, gen_floor_usd_w,
		        balance_of_plant_pct
		   FROM region_pricing
		  ORDER BY region`)
	if err != nil {
		return nil, fmt.Errorf("pricing repo: query: %w", err)
	}
	defer rows.Close()

	var tables []pricing.RegionTable
	for rows.Next() {
		var t pricing.RegionTable
		if err := rows.Scan(
			&t.Region,
			&t.BatteryPerKWh.SmallSize, &t.BatteryPerKWh.LargeSize, &t.BatteryPerKWh.SmallUnit, &t.BatteryPerKWh.FloorUnit,
			&t.SolarPerWatt.SmallSize, &t.SolarPerWatt.LargeSize, &t.SolarPerWatt.SmallUnit, &t.SolarPerWatt.FloorUnit,
			&t.WindPerWatt.SmallSize, &t.WindPerWatt.LargeSize, &t.WindPerWatt.SmallUnit, &t.WindPerWatt.FloorUnit,
			&t.GeneratorPerWatt.SmallSize, &t.GeneratorPerWatt.LargeSize, &t.GeneratorPerWatt.SmallUnit, &t.GeneratorPerWatt.FloorUnit,
			&t.BalanceOfPlantPct,
		); err != nil {
			return nil, fmt.Errorf("pricing repo: scan: %w", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pricing repo: rows: %w", err)
	}
	return tables, nil
}

// SaveTable upserts one region's curves. Used by the seed tool and the
// admin surface; the engine itself never calls this.
func (r *PricingRepo) SaveTable(ctx context.Context, t pricing.RegionTable) error {
	if r.pool == nil {
		return fmt.Errorf("pricing repo: no database pool")
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO region_pricing (
		        region,
		        battery_small_mwh, battery_large_mwh, battery_small_usd_kwh, battery_floor_usd_kwh,
		        solar_small_mw, solar_large_mw, solar_small_usd_w, solar_floor_usd_w,
		        wind_small_mw, wind_large_mw, wind_small_usd_w, wind_floor_usd_w,
		        gen_small_mw, gen_large_mw, gen_small_usd_w, gen_floor_usd_w,
		        balance_of_plant_pct)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		 ON CONFLICT (region) DO UPDATE SET
		        battery_small_mwh = EXCLUDED.battery_small_mwh,
		        battery_large_mwh = EXCLUDED.battery_large_mwh,
		        battery_small_usd_kwh = EXCLUDED.battery_small_usd_kwh,
		        battery_floor_usd_kwh = EXCLUDED.battery_floor_usd_kwh,
		        solar_small_mw = EXCLUDED.solar_small_mw,
		        solar_large_mw = EXCLUDED.solar_large_mw,
		        solar_small_usd_w = EXCLUDED.solar_small_usd_w,
		        solar_floor_usd_w = EXCLUDED.solar_floor_usd_w,
		        wind_small_mw = EXCLUDED.wind_small_mw,
		        wind_large_mw = EXCLUDED.wind_large_mw,
		        wind_small_usd_w = EXCLUDED.wind_small_usd_w,
		        wind_floor_usd_w = EXCLUDED.wind_floor_usd_w,
		        gen_small_mw = EXCLUDED.gen_small_mw,
		        gen_large_mw = EXCLUDED.gen_large_mw,
		        gen_small_usd_w = EXCLUDED.gen_small_usd_w,
		        gen_floor_usd_w = EXCLUDED.gen_floor_usd_w,
		        balance_of_plant_pct = EXCLUDED.balance_of_plant_pct`,
		t.Region,
		t.BatteryPerKWh.SmallSize, t.BatteryPerKWh.LargeSize, t.BatteryPerKWh.SmallUnit, t.BatteryPerKWh.FloorUnit,
		t.SolarPerWatt.SmallSize, t.SolarPerWatt.LargeSize, t.SolarPerWatt.SmallUnit, t.SolarPerWatt.FloorUnit,
		t.WindPerWatt.SmallSize, t.WindPerWatt.LargeSize, t.WindPerWatt.SmallUnit, t.WindPerWatt.FloorUnit,
		t.GeneratorPerWatt.SmallSize, t.GeneratorPerWatt.LargeSize, t.GeneratorPerWatt.SmallUnit, t.GeneratorPerWatt.FloorUnit,
		t.BalanceOfPlantPct,
	)
	if err != nil {
		return fmt.Errorf("pricing repo: upsert %s: %w", t.Region, err)
	}
	return nil
}
