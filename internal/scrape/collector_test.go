package scrape

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsweep/internal/domain"
	"jobsweep/internal/scrape/linkedin"
)

type fakePage struct {
	listings []domain.JobListing
	stats    linkedin.PageStats
	err      error
}

type fakeSource struct {
	pages      map[int]fakePage
	hydrateErr error
	hydrated   int
}

func (f *fakeSource) FetchPage(_ context.Context, start int) ([]domain.JobListing, linkedin.PageStats, error) {
	pg, ok := f.pages[start]
	if !ok {
		return nil, linkedin.PageStats{}, nil
	}
	return pg.listings, pg.stats, pg.err
}

func (f *fakeSource) Hydrate(_ context.Context, j *domain.JobListing) error {
	f.hydrated++
	if f.hydrateErr != nil {
		return f.hydrateErr
	}
	j.Applicants = "12 applicants"
	return nil
}

func page(links ...string) fakePage {
	var ls []domain.JobListing
	for _, link := range links {
		ls = append(ls, domain.JobListing{
			Title: fmt.Sprintf("Job %s", link),
			Link:  link,
		})
	}
	return fakePage{listings: ls, stats: linkedin.PageStats{ListItems: len(ls), Cards: len(ls)}}
}

func TestRunStopsOnEmptyPage(t *testing.T) {
	src := &fakeSource{pages: map[int]fakePage{
		0:  page("https://x/jobs/1", "https://x/jobs/2"),
		25: page("https://x/jobs/3"),
		// offset 50 returns zero cards
	}}
	c := &Collector{Source: src, PageSize: 25, MaxPages: 10}

	res, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Partial)
	assert.Equal(t, 2, res.Pages)
	require.Len(t, res.Listings, 3)
	// page order, then in-page order
	assert.Equal(t, "https://x/jobs/1", res.Listings[0].Link)
	assert.Equal(t, "https://x/jobs/3", res.Listings[2].Link)
}

func TestRunFirstPageFailureIsFatal(t *testing.T) {
	src := &fakeSource{pages: map[int]fakePage{
		0: {err: &linkedin.FetchError{URL: "https://x", Status: 429}},
	}}
	c := &Collector{Source: src, PageSize: 25, MaxPages: 3}

	res, err := c.Run(context.Background())
	require.Error(t, err)

	var fe *linkedin.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 429, fe.Status)
	assert.Empty(t, res.Listings)
}

func TestRunMidRunFailureKeepsEarlierPages(t *testing.T) {
	src := &fakeSource{pages: map[int]fakePage{
		0:  page("https://x/jobs/1", "https://x/jobs/2"),
		25: {err: &linkedin.FetchError{URL: "https://x", Status: 503}},
	}}
	c := &Collector{Source: src, PageSize: 25, MaxPages: 5}

	res, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Partial)
	assert.Error(t, res.FetchErr)
	assert.Len(t, res.Listings, 2)
	assert.Equal(t, 1, res.Pages)
}

func TestRunDropsUnusableAndDuplicateListings(t *testing.T) {
	pg := page("https://x/jobs/1")
	pg.listings = append(pg.listings,
		domain.JobListing{Company: "Ghost Co"}, // no title, no link
		domain.JobListing{Title: "Dup", Link: "https://x/jobs/1?utm_source=feed"},
	)
	pg.stats.Cards = len(pg.listings)
	src := &fakeSource{pages: map[int]fakePage{0: pg}}
	c := &Collector{Source: src, PageSize: 25, MaxPages: 1}

	res, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Listings, 1)
	assert.Equal(t, 2, res.Dropped)
}

func TestRunHonorsMaxJobs(t *testing.T) {
	src := &fakeSource{pages: map[int]fakePage{
		0:  page("https://x/jobs/1", "https://x/jobs/2", "https://x/jobs/3"),
		25: page("https://x/jobs/4"),
	}}
	c := &Collector{Source: src, PageSize: 25, MaxPages: 10, MaxJobs: 2}

	res, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Listings, 2)
}

func TestRunHonorsMaxPages(t *testing.T) {
	src := &fakeSource{pages: map[int]fakePage{
		0:  page("https://x/jobs/1"),
		25: page("https://x/jobs/2"),
		50: page("https://x/jobs/3"),
	}}
	c := &Collector{Source: src, PageSize: 25, MaxPages: 2}

	res, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pages)
	assert.Len(t, res.Listings, 2)
}

func TestRunHydratesCollectedListings(t *testing.T) {
	src := &fakeSource{pages: map[int]fakePage{
		0: page("https://x/jobs/1", "https://x/jobs/2"),
	}}
	c := &Collector{Source: src, PageSize: 25, MaxPages: 1, Hydrate: true}

	res, err := c.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.hydrated)
	assert.Equal(t, "12 applicants", res.Listings[0].Applicants)
}

func TestRunHydrationFailureIsNotFatal(t *testing.T) {
	src := &fakeSource{
		pages:      map[int]fakePage{0: page("https://x/jobs/1")},
		hydrateErr: errors.New("detail page gone"),
	}
	c := &Collector{Source: src, PageSize: 25, MaxPages: 1, Hydrate: true}

	res, err := c.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Listings, 1)
	assert.Empty(t, res.Listings[0].Applicants)
}
