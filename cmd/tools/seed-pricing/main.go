// Seeds the region_pricing table with the built-in default pricing
// curves. Run once against a fresh database; existing regions are
// overwritten.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"bess_quoting/pkg/config"
	"bess_quoting/pkg/core/pricing"
	"bess_quoting/pkg/core/store"
)

func main() {
	godotenv.Load()
	log := config.GetLogger()

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	ctx := context.Background()
	if err := store.InitDB(ctx); err != nil {
		log.WithField("error", err).Fatal("database init failed")
	}
	defer store.Close()

	repo := store.NewPricingRepo(store.GetPool())
	for _, table := range pricing.DefaultTables() {
		if err := repo.SaveTable(ctx, table); err != nil {
			log.WithField("region", table.Region).WithField("error", err).Fatal("seed failed")
		}
		log.WithField("region", table.Region).Info("seeded pricing table")
	}
	log.Info("pricing seed complete")
}
