package scrape

import (
	"context"
	"fmt"
	"log"

	"jobsweep/internal/domain"
	"jobsweep/internal/scrape/linkedin"
	"jobsweep/internal/scrape/util"
)

// Source is the page-oriented view the collector drives. The production
// implementation is linkedin.Source.
type Source interface {
	FetchPage(ctx context.Context, start int) ([]domain.JobListing, linkedin.PageStats, error)
	Hydrate(ctx context.Context, j *domain.JobListing) error
}

// Collector owns the page loop: fetch, parse, keep, advance, until a page
// comes back empty or a limit is hit. It holds no state beyond the run.
type Collector struct {
	Source   Source
	PageSize int // pagination step, normally 25
	MaxPages int
	MaxJobs  int // 0 = no cap
	Hydrate  bool
}

// Result is what one run collected. Partial is set when a page after the
// first failed to fetch; everything collected before the failure is kept.
type Result struct {
	Listings []domain.JobListing
	Pages    int
	Dropped  int // unusable cards plus cross-page duplicates
	Partial  bool
	FetchErr error
}

// Run executes the loop sequentially. A fetch failure on the very first
// page is returned as an error since there is nothing to export; any later
// failure just ends the loop with a partial result.
func (c *Collector) Run(ctx context.Context) (Result, error) {
	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = 25
	}
	maxPages := c.MaxPages
	if maxPages <= 0 {
		maxPages = 1
	}

	var res Result
	seen := map[string]bool{}

	for page := 0; page < maxPages; page++ {
		listings, stats, err := c.Source.FetchPage(ctx, page*pageSize)
		if err != nil {
			if page == 0 {
				return Result{}, fmt.Errorf("first page: %w", err)
			}
			log.Printf("[collect] page %d failed, keeping %d listings from earlier pages: %v",
				page, len(res.Listings), err)
			res.Partial = true
			res.FetchErr = err
			break
		}

		if stats.Cards == 0 {
			if stats.ListItems > 0 {
				log.Printf("[collect] page %d: %d list items but no parseable cards; site layout may have changed",
					page, stats.ListItems)
			}
			break
		}
		res.Pages++

		kept := 0
		for _, j := range listings {
			if !j.Usable() {
				res.Dropped++
				continue
			}
			if key := util.CanonicalLink(j.Link); key != "" {
				if seen[key] {
					res.Dropped++
					continue
				}
				seen[key] = true
			}
			res.Listings = append(res.Listings, j)
			kept++
			if c.MaxJobs > 0 && len(res.Listings) >= c.MaxJobs {
				break
			}
		}
		log.Printf("[collect] page %d: cards=%d kept=%d", page, stats.Cards, kept)

		if c.MaxJobs > 0 && len(res.Listings) >= c.MaxJobs {
			break
		}
	}

	if c.Hydrate {
		c.hydrateAll(ctx, res.Listings)
	}
	return res, nil
}

// hydrateAll is best-effort: a listing whose detail page won't load keeps
// its search-card fields.
func (c *Collector) hydrateAll(ctx context.Context, listings []domain.JobListing) {
	for i := range listings {
		if err := c.Source.Hydrate(ctx, &listings[i]); err != nil {
			log.Printf("[hydrate] %s: %v", listings[i].Link, err)
		}
	}
}
