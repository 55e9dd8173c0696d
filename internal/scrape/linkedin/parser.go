package linkedin

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobsweep/internal/domain"
	"jobsweep/internal/scrape/util"
)

// PageStats lets the caller tell "no more results" apart from "the layout
// changed under us": a page full of list items that yields zero cards is
// suspicious, an empty page is the normal end of pagination.
type PageStats struct {
	ListItems int
	Cards     int
}

// ParseSearchPage extracts the job cards from one search-results fragment.
// Each field is pulled independently; a card missing an element just gets
// an empty value for that field. Parsing is pure: same HTML in, same
// listings out, in document order.
func ParseSearchPage(html string) ([]domain.JobListing, PageStats, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, PageStats{}, fmt.Errorf("parse search page: %w", err)
	}

	var stats PageStats
	stats.ListItems = doc.Find(selListItem).Length()

	var out []domain.JobListing
	doc.Find(selCard).Each(func(_ int, card *goquery.Selection) {
		stats.Cards++

		j := domain.JobListing{
			Title:    util.CleanText(card.Find(selTitle).First().Text()),
			Company:  util.CleanText(card.Find(selCompany).First().Text()),
			Location: util.CleanText(card.Find(selLocation).First().Text()),
		}

		posted := card.Find(selPosted).First()
		j.PostedDate = util.CleanText(posted.Text())
		if j.PostedDate == "" {
			if dt, ok := posted.Attr("datetime"); ok {
				j.PostedDate = strings.TrimSpace(dt)
			}
		}

		if href, ok := card.Find(selLink).First().Attr("href"); ok {
			j.Link = strings.TrimSpace(href)
		} else if href, ok := card.Find(selAnyLink).First().Attr("href"); ok {
			j.Link = strings.TrimSpace(href)
		}

		out = append(out, j)
	})

	return out, stats, nil
}

// detail is the topcard of one job-posting page.
type detail struct {
	Title       string
	Company     string
	Location    string
	PostedDate  string
	Applicants  string
	Description string
}

func parseDetailPage(html string) (detail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return detail{}, fmt.Errorf("parse detail page: %w", err)
	}

	return detail{
		Title:       util.CleanText(doc.Find(selDetailTitle).First().Text()),
		Company:     util.CleanText(doc.Find(selDetailCompany).First().Text()),
		Location:    util.CleanText(doc.Find(selDetailLocation).First().Text()),
		PostedDate:  util.CleanText(doc.Find(selDetailPosted).First().Text()),
		Applicants:  util.CleanText(doc.Find(selDetailApplicants).First().Text()),
		Description: util.CleanText(doc.Find(selDetailDesc).First().Text()),
	}, nil
}
