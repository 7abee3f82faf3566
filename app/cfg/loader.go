package cfg

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version == "" {
		return "unknown"
	}
	return Version
}

type rawCfg struct {
	// Acquisition configuration
	SourcesDir    string `long:"sources-dir" env:"SOURCES_DIR" default:"./sources" description:"Directory containing source configuration files"`
	Timeout       int    `long:"timeout" env:"TIMEOUT" default:"30" description:"HTTP request timeout in seconds"`
	RetryCount    int    `long:"retry-count" env:"RETRY_COUNT" default:"3" description:"Number of retries on transient network failure"`
	RequestDelay  int    `long:"request-delay" env:"REQUEST_DELAY" default:"1000" description:"Polite delay between requests in milliseconds"`
	ExpectedSeats int    `long:"expected-seats" env:"EXPECTED_SEATS" default:"435" description:"Number of voting House seats expected from a complete source"`

	// Export configuration
	OutputFile string `long:"output" env:"OUTPUT_FILE" default:"./data/house_members.csv" description:"CSV output path"`
	JSONFile   string `long:"json-output" env:"JSON_OUTPUT_FILE" description:"JSON output path (optional)"`

	// Serve mode configuration
	Serve           bool   `long:"serve" env:"SERVE" description:"Keep running and serve the acquired dataset over HTTP"`
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port (serve mode)"`
	APIAccessKey    string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for refresh endpoint (optional)"`
	RefreshInterval int    `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"3600" description:"Background refresh interval in seconds (serve mode)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"House-Scraper/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		SourcesDir:      raw.SourcesDir,
		Timeout:         raw.Timeout,
		RetryCount:      raw.RetryCount,
		RequestDelay:    raw.RequestDelay,
		ExpectedSeats:   raw.ExpectedSeats,
		OutputFile:      raw.OutputFile,
		JSONFile:        raw.JSONFile,
		Serve:           raw.Serve,
		Port:            raw.Port,
		APIAccessKey:    raw.APIAccessKey,
		RefreshInterval: raw.RefreshInterval,
		UserAgent:       raw.UserAgent,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// Set replaces the global configuration. Intended for tests.
func Set(cfg *Cfg) {
	globalCfg = cfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
