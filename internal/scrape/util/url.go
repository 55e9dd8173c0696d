package util

import (
	"net/url"
	"sort"
	"strings"
)

// CanonicalLink normalizes a job link for use as a dedup key. The same
// posting shows up across pages with different tracking junk appended, so
// we lowercase scheme/host, drop the fragment, and strip tracking params.
// LinkedIn view links additionally get their query reduced to nothing but
// currentJobId, which is the only part that identifies the posting.
func CanonicalLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") ||
			lk == "refid" || lk == "trackingid" || lk == "trk" ||
			lk == "gclid" || lk == "fbclid" || lk == "msclkid" {
			q.Del(k)
		}
	}

	if strings.Contains(u.Host, "linkedin.com") {
		keep := url.Values{}
		if v := q.Get("currentJobId"); v != "" {
			keep.Set("currentJobId", v)
		}
		q = keep
	}

	// deterministic query
	for k := range q {
		vals := q[k]
		sort.Strings(vals)
		q[k] = vals
	}
	u.RawQuery = q.Encode()
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u.String()
}
