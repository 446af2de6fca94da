package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"bess_quoting/pkg/api"
	"bess_quoting/pkg/config"
	"bess_quoting/pkg/core/advisor"
	"bess_quoting/pkg/core/catalog"
	"bess_quoting/pkg/core/pricing"
	"bess_quoting/pkg/core/quote"
	"bess_quoting/pkg/core/store"
)

func main() {
	godotenv.Load()
	log := config.GetLogger()

	cfgPath := os.Getenv("APP_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/app.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithField("error", err).Fatal("config load failed")
	}
	config.ApplyLogLevel(cfg.LogLevel)

	if err := catalog.Validate(); err != nil {
		log.WithField("error", err).Fatal("industry catalog is inconsistent")
	}
	if cfg.CalibrationFile != "" {
		n, err := catalog.ApplyCalibration(cfg.CalibrationFile)
		if err != nil {
			log.WithField("file", cfg.CalibrationFile).WithField("error", err).Fatal("calibration failed")
		}
		log.WithField("file", cfg.CalibrationFile).WithField("coefficients", n).Info("calibration applied")
	}

	ctx := context.Background()

	// Postgres is optional: without DATABASE_URL the service runs on
	// built-in pricing tables and skips configuration overrides.
	var lookup quote.OverrideLookup
	tables := pricing.DefaultTables()
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			log.WithField("error", err).Fatal("database init failed")
		}
		defer store.Close()

		lookup = store.NewOverrideStore(store.GetPool())

		dbTables, err := store.NewPricingRepo(store.GetPool()).LoadTables(ctx)
		switch {
		case err != nil:
			log.WithField("error", err).Warn("pricing tables unavailable, using built-in defaults")
		case len(dbTables) == 0:
			log.Warn("region_pricing is empty, using built-in defaults")
		default:
			tables = dbTables
			log.WithField("regions", len(dbTables)).Info("pricing tables loaded")
		}
	} else {
		log.Info("DATABASE_URL unset, running without overrides")
	}

	pricer, err := pricing.NewStaticResolver(tables, cfg.DefaultRegion, log)
	if err != nil {
		log.WithField("error", err).Fatal("pricing resolver init failed")
	}

	var provider advisor.Provider
	if os.Getenv("GEMINI_API_KEY") != "" {
		provider = &advisor.GeminiProvider{Model: cfg.GeminiModel}
		log.WithField("model", cfg.GeminiModel).Info("model-backed advisor enabled")
	}

	router := api.NewRouter(api.Deps{
		Assembler: quote.NewAssembler(pricer, cfg.DefaultRegion, cfg.HorizonYears, cfg.DiscountRate, log),
		Lookup:    lookup,
		Advisor:   advisor.New(provider, log),
		Log:       log,
	})

	log.WithField("addr", cfg.ListenAddr).Info("quoting API starting")
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.WithField("error", err).Fatal("server exited")
	}
}
