package query

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// DefaultSearchURL is the guest endpoint behind the public job-search page.
// It serves plain HTML fragments and needs no auth or cookies.
const DefaultSearchURL = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"

// ExperienceLevel names one of LinkedIn's f_E buckets.
type ExperienceLevel string

const (
	ExpInternship ExperienceLevel = "internship"
	ExpEntry      ExperienceLevel = "entry"
	ExpAssociate  ExperienceLevel = "associate"
	ExpMidSenior  ExperienceLevel = "mid-senior"
	ExpDirector   ExperienceLevel = "director"
	ExpExecutive  ExperienceLevel = "executive"
)

var expCodes = map[ExperienceLevel]string{
	ExpInternship: "1",
	ExpEntry:      "2",
	ExpAssociate:  "3",
	ExpMidSenior:  "4",
	ExpDirector:   "5",
	ExpExecutive:  "6",
}

// AllExperienceLevels in menu order.
var AllExperienceLevels = []ExperienceLevel{
	ExpInternship, ExpEntry, ExpAssociate, ExpMidSenior, ExpDirector, ExpExecutive,
}

// DatePosted names one of LinkedIn's f_TPR buckets.
type DatePosted string

const (
	DateAny       DatePosted = ""
	DatePast24h   DatePosted = "past-24h"
	DatePastWeek  DatePosted = "past-week"
	DatePastMonth DatePosted = "past-month"
)

var dateCodes = map[DatePosted]string{
	DatePast24h:   "r86400",
	DatePastWeek:  "r604800",
	DatePastMonth: "r2592000",
}

// Options are the user's filter selections. Zero values mean "unset": the
// parameter is omitted entirely so the server applies its own default.
type Options struct {
	Keywords   string
	Location   string
	Experience []ExperienceLevel
	DatePosted DatePosted
}

// ParseExperience parses a comma-separated list of level names as given on
// the command line, e.g. "entry,associate". Empty input means any level.
func ParseExperience(s string) ([]ExperienceLevel, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "any") {
		return nil, nil
	}
	var out []ExperienceLevel
	for _, part := range strings.Split(s, ",") {
		lv := ExperienceLevel(strings.ToLower(strings.TrimSpace(part)))
		if lv == "" {
			continue
		}
		if _, ok := expCodes[lv]; !ok {
			return nil, fmt.Errorf("unknown experience level %q", part)
		}
		out = append(out, lv)
	}
	return out, nil
}

// ParseDatePosted parses a date-posted bucket name, e.g. "past-week".
func ParseDatePosted(s string) (DatePosted, error) {
	d := DatePosted(strings.ToLower(strings.TrimSpace(s)))
	if d == DateAny || strings.EqualFold(string(d), "any") {
		return DateAny, nil
	}
	if _, ok := dateCodes[d]; !ok {
		return DateAny, fmt.Errorf("unknown date-posted filter %q", s)
	}
	return d, nil
}

// Builder turns filter selections into search URLs.
type Builder struct {
	base string
}

func NewBuilder(base string) Builder {
	if strings.TrimSpace(base) == "" {
		base = DefaultSearchURL
	}
	return Builder{base: base}
}

// SearchURL encodes the set options as query parameters on the base URL.
// Options left unset are omitted rather than sent with a default.
func (b Builder) SearchURL(o Options) string {
	v := url.Values{}
	if o.Keywords != "" {
		v.Set("keywords", o.Keywords)
	}
	if o.Location != "" {
		v.Set("location", o.Location)
	}
	if code, ok := dateCodes[o.DatePosted]; ok {
		v.Set("f_TPR", code)
	}
	if codes := experienceCodes(o.Experience); len(codes) > 0 {
		v.Set("f_E", strings.Join(codes, ","))
	}
	if len(v) == 0 {
		return b.base
	}
	return b.base + "?" + v.Encode()
}

// PageURL is SearchURL plus the pagination offset.
func (b Builder) PageURL(o Options, start int) string {
	u := b.SearchURL(o)
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + "start=" + strconv.Itoa(start)
}

func experienceCodes(levels []ExperienceLevel) []string {
	seen := map[string]bool{}
	var codes []string
	for _, lv := range levels {
		code, ok := expCodes[lv]
		if !ok || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	// deterministic regardless of selection order
	sort.Strings(codes)
	return codes
}
