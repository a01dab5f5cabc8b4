package scraper

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	defaultTimeoutSeconds = 10
	defaultItemLimit      = 10
)

// SiteURLs holds the fixed set of scraped pages. WnpBase is the origin
// prepended to wnp.pl's relative article links.
type SiteURLs struct {
	Gramwzielone    string `yaml:"gramwzielone"`
	Wysokienapiecie string `yaml:"wysokienapiecie"`
	Wnp             string `yaml:"wnp"`
	WnpBase         string `yaml:"wnp_base"`
}

// Config carries everything the extractors need; there is no implicit
// global HTTP session or header state.
type Config struct {
	UserAgent      string   `yaml:"user_agent"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	ItemLimit      int      `yaml:"item_limit"`
	Sites          SiteURLs `yaml:"sites"`
}

func DefaultConfig() Config {
	return Config{
		UserAgent:      defaultUserAgent,
		TimeoutSeconds: defaultTimeoutSeconds,
		ItemLimit:      defaultItemLimit,
		Sites: SiteURLs{
			Gramwzielone:    "https://www.gramwzielone.pl/energia-wiatrowa",
			Wysokienapiecie: "https://wysokienapiecie.pl/category/energia-wiatrowa/",
			Wnp:             "https://www.wnp.pl/oze/",
			WnpBase:         "https://www.wnp.pl",
		},
	}
}

// LoadConfig decodes a YAML source definition over the defaults, so a
// partial file only overrides what it names.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse scraper config: %w", err)
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaultTimeoutSeconds
	}
	if cfg.ItemLimit <= 0 {
		cfg.ItemLimit = defaultItemLimit
	}

	return &cfg, nil
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
