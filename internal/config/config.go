package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"jobsweep/internal/query"
)

type Config struct {
	Scrape struct {
		SearchURL      string  `yaml:"search_url"`
		UserAgent      string  `yaml:"user_agent"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		RequestsPerSec float64 `yaml:"requests_per_sec"`
		Burst          int     `yaml:"burst"`
		PageSize       int     `yaml:"page_size"`
	} `yaml:"scrape"`

	Run struct {
		MaxPages       int  `yaml:"max_pages"`
		MaxJobs        int  `yaml:"max_jobs"` // 0 = no cap
		HydrateDetails bool `yaml:"hydrate_details"`
		PreviewRows    int  `yaml:"preview_rows"`
	} `yaml:"run"`

	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

func Default() Config {
	var cfg Config
	cfg.Scrape.SearchURL = query.DefaultSearchURL
	cfg.Scrape.TimeoutSeconds = 10
	cfg.Scrape.RequestsPerSec = 0.5
	cfg.Scrape.Burst = 1
	cfg.Scrape.PageSize = 25
	cfg.Run.MaxPages = 4
	cfg.Run.MaxJobs = 25
	cfg.Run.PreviewRows = 5
	cfg.Output.Dir = "."
	return cfg
}

// Load reads the yaml file at path over the defaults, so a sparse user file
// only has to name what it changes.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
