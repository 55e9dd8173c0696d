package export

import (
	"fmt"
	"io"

	"jobsweep/internal/domain"
)

// Preview prints the first n listings human-readably. It's a sanity check
// on the console before the CSV lands, not a full dump.
func Preview(w io.Writer, listings []domain.JobListing, n int) {
	if len(listings) == 0 {
		fmt.Fprintln(w, "No listings collected.")
		return
	}
	if n <= 0 || n > len(listings) {
		n = len(listings)
	}

	for i, j := range listings[:n] {
		fmt.Fprintf(w, "%d. %s\n", i+1, orDash(j.Title))
		fmt.Fprintf(w, "   company:  %s\n", orDash(j.Company))
		fmt.Fprintf(w, "   location: %s\n", orDash(j.Location))
		fmt.Fprintf(w, "   posted:   %s\n", orDash(j.PostedDate))
		if j.Applicants != "" {
			fmt.Fprintf(w, "   interest: %s\n", j.Applicants)
		}
		fmt.Fprintf(w, "   link:     %s\n", orDash(j.Link))
	}
	if rest := len(listings) - n; rest > 0 {
		fmt.Fprintf(w, "... and %d more (see the CSV for the full list)\n", rest)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
