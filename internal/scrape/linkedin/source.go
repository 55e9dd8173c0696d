package linkedin

import (
	"context"
	"time"

	"jobsweep/internal/domain"
	"jobsweep/internal/query"
	"jobsweep/internal/scrape/util"
)

// descriptionPreviewRunes bounds the description column in the CSV.
const descriptionPreviewRunes = 200

type Config struct {
	SearchURL string // empty means query.DefaultSearchURL
	UserAgent string
	Timeout   time.Duration
	Limiter   *util.HostLimiter
}

// Source is one search against the guest endpoint: it serves paginated
// search fragments and, on request, hydrates a listing from its detail page.
type Source struct {
	fetcher *Fetcher
	builder query.Builder
	opts    query.Options
}

func New(cfg Config, opts query.Options) *Source {
	return &Source{
		fetcher: NewFetcher(cfg.Timeout, cfg.UserAgent, cfg.Limiter),
		builder: query.NewBuilder(cfg.SearchURL),
		opts:    opts,
	}
}

// FetchPage loads and parses the search fragment at the given offset.
func (s *Source) FetchPage(ctx context.Context, start int) ([]domain.JobListing, PageStats, error) {
	html, err := s.fetcher.Fetch(ctx, s.builder.PageURL(s.opts, start))
	if err != nil {
		return nil, PageStats{}, err
	}
	return ParseSearchPage(html)
}

// Hydrate fills a listing in from its detail page. Card fields win only when
// empty; the detail page also contributes the applicant count and a bounded
// description preview. Listings without a link are left alone.
func (s *Source) Hydrate(ctx context.Context, j *domain.JobListing) error {
	if j.Link == "" {
		return nil
	}
	html, err := s.fetcher.Fetch(ctx, j.Link)
	if err != nil {
		return err
	}
	d, err := parseDetailPage(html)
	if err != nil {
		return err
	}

	if j.Title == "" {
		j.Title = d.Title
	}
	if j.Company == "" {
		j.Company = d.Company
	}
	if j.Location == "" {
		j.Location = d.Location
	}
	if j.PostedDate == "" {
		j.PostedDate = d.PostedDate
	}
	j.Applicants = d.Applicants
	j.DescriptionPreview = util.TruncateRunes(d.Description, descriptionPreviewRunes)
	return nil
}
