// Command spectrum fetches one symbol, builds its five-line spectrum and
// prints the presentation record as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"FiveLine/internal/collector"
	"FiveLine/internal/config"
	"FiveLine/internal/strategy"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	cfgPath := flag.String("config", "configs/config.yaml", "path to config file")
	symbol := flag.String("symbol", "", "symbol to compute (default from config)")
	years := flag.Int("years", 0, "years of history to show (default from config)")
	window := flag.Int("window", 0, "rolling window in trading days (default from config)")
	provider := flag.String("provider", "", "override data_source.provider")
	full := flag.Bool("full", false, "wrap the record with symbol, window and zone")
	timeout := flag.Duration("timeout", time.Minute, "fetch timeout")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *provider != "" {
		cfg.DataSource.Provider = *provider
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	ds := cfg.DataSource
	fetcher, err := collector.NewFetcher(ds.Provider, ds.BaseURL, ds.APIKey, ds.APISecret, cfg.Proxy)
	if err != nil {
		log.Fatalf("[FATAL] init fetcher: %v", err)
	}
	col := collector.NewCollector(fetcher, ds.Symbol, cfg.Spectrum.Years, cfg.Spectrum.Window, loc)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := col.CollectFor(ctx, collector.Request{Symbol: *symbol, Years: *years, Window: *window})
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if !*full {
		if err := enc.Encode(res.Spectrum.Record); err != nil {
			log.Fatalf("[FATAL] encode: %v", err)
		}
		return
	}

	out := struct {
		Symbol string      `json:"symbol"`
		Source string      `json:"source"`
		Window int         `json:"window"`
		Zone   string      `json:"zone,omitempty"`
		Record interface{} `json:"record"`
	}{
		Symbol: res.Series.Symbol,
		Source: res.Series.Source,
		Window: res.Spectrum.Window,
		Record: res.Spectrum.Record,
	}
	if sig, err := strategy.Evaluate(res.Series.Symbol, res.Spectrum); err == nil {
		out.Zone = string(sig.Zone)
	} else {
		log.Printf("[WARN] zone: %v", err)
	}
	if err := enc.Encode(out); err != nil {
		log.Fatalf("[FATAL] encode: %v", err)
	}
}
