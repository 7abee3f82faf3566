package scraper

// Source configuration types

type SourceConfig struct {
	Name     string         // Derived from filename (without .yml extension)
	URL      string         `yaml:"url"`
	Kind     string         `yaml:"kind"`
	Rank     int            `yaml:"rank"` // lower rank is tried first
	Settings SourceSettings `yaml:"settings"`
}

type SourceSettings struct {
	Enabled bool `yaml:"enabled"`
	Timeout int  `yaml:"timeout"` // seconds, overrides the global timeout
}

// Acquisition result types

type SourceStats struct {
	Parsed  int    `json:"parsed"`
	Skipped int    `json:"skipped"`
	Error   string `json:"error,omitempty"`
}

type Stats struct {
	Parsed    int                    `json:"parsed"`
	Skipped   int                    `json:"skipped"`
	Seats     int                    `json:"seats"`
	Consulted []string               `json:"consulted"`
	PerSource map[string]SourceStats `json:"per_source"`
}
