package linkedin

// Every CSS selector for the guest pages lives here. LinkedIn renames these
// classes from time to time; keeping them in one table means a markup change
// is a one-file fix that never touches fetch or collect logic.

// Search-results fragment: one card per <li>.
const (
	selListItem = "li"
	selCard     = "div.base-card"
	selTitle    = ".base-search-card__title"
	selCompany  = ".base-search-card__subtitle"
	selLocation = ".job-search-card__location"
	selPosted   = "time"
	selLink     = "a.base-card__full-link"
	selAnyLink  = "a[href]"
)

// Job-posting detail page (topcard).
const (
	selDetailTitle      = "h2.topcard__title, .top-card-layout__title"
	selDetailCompany    = "a.topcard__org-name-link"
	selDetailLocation   = "span.topcard__flavor--bullet"
	selDetailPosted     = "span.posted-time-ago__text"
	selDetailApplicants = "span.num-applicants__caption"
	selDetailDesc       = "div.show-more-less-html__markup"
)
