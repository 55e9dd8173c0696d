package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a cleaned-up copy plus anything worth telling
// the user. Errors stop the run; warnings are advisory.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Scrape.SearchURL = strings.TrimSpace(out.Scrape.SearchURL)
	out.Scrape.UserAgent = strings.TrimSpace(out.Scrape.UserAgent)
	out.Output.Dir = strings.TrimSpace(out.Output.Dir)
	if out.Output.Dir == "" {
		out.Output.Dir = "."
	}
	if out.Scrape.Burst < 1 {
		out.Scrape.Burst = 1
	}
	if out.Run.PreviewRows < 0 {
		out.Run.PreviewRows = 0
	}

	if out.Scrape.TimeoutSeconds <= 0 {
		res.addErr("scrape.timeout_seconds must be > 0")
	}
	if out.Scrape.PageSize <= 0 {
		res.addErr("scrape.page_size must be > 0")
	} else if out.Scrape.PageSize != 25 {
		res.addWarn("scrape.page_size is %d; the guest endpoint serves 25 cards per page, so offsets may skip or repeat results.", out.Scrape.PageSize)
	}

	if out.Scrape.RequestsPerSec <= 0 {
		res.addErr("scrape.requests_per_sec must be > 0")
	} else if out.Scrape.RequestsPerSec > 2 {
		res.addWarn("scrape.requests_per_sec is %.1f; anything above ~2 tends to hit 429s quickly.", out.Scrape.RequestsPerSec)
	}

	if out.Run.MaxPages <= 0 {
		res.addErr("run.max_pages must be > 0")
	}
	if out.Run.MaxJobs < 0 {
		res.addErr("run.max_jobs must be >= 0 (0 means no cap)")
	}

	return out, res
}
