package domain

// JobListing is one posting scraped from the public guest search results.
// Every field is source-provided text; any of them may be empty because the
// guest pages do not render every attribute on every card.
type JobListing struct {
	Title      string
	Company    string
	Location   string
	PostedDate string
	Link       string

	// Filled only when detail hydration is enabled.
	Applicants         string
	DescriptionPreview string
}

// Usable reports whether the listing carries enough identity to be worth
// exporting. A row with neither a title nor a link is noise.
func (j JobListing) Usable() bool {
	return j.Title != "" || j.Link != ""
}
