package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	appconfig "bess_quoting/pkg/config"
	"bess_quoting/pkg/core/baseline"
	"bess_quoting/pkg/core/catalog"
	"bess_quoting/pkg/core/finance"
	"bess_quoting/pkg/core/pricing"
	"bess_quoting/pkg/core/quote"
)

// requestFile is the YAML shape of a quote request on disk.
type requestFile struct {
	Industry string                 `yaml:"industry"`
	Region   string                 `yaml:"region"`
	Answers  map[string]interface{} `yaml:"answers"`
	Final    bool                   `yaml:"final"`
	Horizon  int                    `yaml:"horizon_years"`
	Discount float64                `yaml:"discount_rate"`

	Adjustments *struct {
		BatteryMW   float64 `yaml:"battery_mw"`
		DurationHrs float64 `yaml:"duration_hours"`
		SolarMW     float64 `yaml:"solar_mw"`
		WindMW      float64 `yaml:"wind_mw"`
		GeneratorMW float64 `yaml:"generator_mw"`
	} `yaml:"adjustments"`
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: quote <request.yaml>")
	fmt.Fprintln(os.Stderr, "  Computes a battery system quote from a YAML request file")
	fmt.Fprintln(os.Stderr, "  and prints the full quote as JSON on stdout.")
	os.Exit(2)
}

func main() {
	godotenv.Load()
	log := appconfig.GetLogger()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel) // keep stdout clean for the JSON quote

	if len(os.Args) != 2 {
		usage()
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.WithField("error", err).Fatal("cannot read request file")
	}
	var req requestFile
	if err := yaml.Unmarshal(data, &req); err != nil {
		log.WithField("error", err).Fatal("cannot parse request file")
	}
	if req.Industry == "" {
		log.Fatal("request file must set 'industry'")
	}
	if err := catalog.Validate(); err != nil {
		log.WithField("error", err).Fatal("industry catalog is inconsistent")
	}

	pricer, err := pricing.NewStaticResolver(pricing.DefaultTables(), pricing.DefaultRegion, log)
	if err != nil {
		log.WithField("error", err).Fatal("pricing init failed")
	}

	horizon := req.Horizon
	if horizon <= 0 {
		horizon = 10
	}
	discount := req.Discount
	if discount <= 0 {
		discount = 0.08
	}

	build := quote.Request{
		IndustryKey: req.Industry,
		Answers:     baseline.AnswerSet(req.Answers),
		Region:      req.Region,
		Final:       req.Final,
		Horizon:     horizon,
		Discount:    discount,
		Rates:       ratePtr(finance.DefaultRates()),
	}
	if a := req.Adjustments; a != nil {
		build.Adjustments = &quote.SizedSystem{
			BatteryMW:          a.BatteryMW,
			BatteryDurationHrs: a.DurationHrs,
			SolarMW:            a.SolarMW,
			WindMW:             a.WindMW,
			GeneratorMW:        a.GeneratorMW,
		}
	}

	assembler := quote.NewAssembler(pricer, pricing.DefaultRegion, horizon, discount, log)
	q, err := assembler.Build(context.Background(), nil, build)
	if err != nil {
		log.WithField("error", err).Fatal("quote build failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(q); err != nil {
		log.WithField("error", err).Fatal("cannot encode quote")
	}
}

func ratePtr(r finance.RateContext) *finance.RateContext { return &r }
