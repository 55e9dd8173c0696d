package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"jobsweep/internal/config"
	"jobsweep/internal/export"
	"jobsweep/internal/prompt"
	"jobsweep/internal/query"
	"jobsweep/internal/scrape"
	"jobsweep/internal/scrape/linkedin"
	"jobsweep/internal/scrape/util"
)

type runOptions struct {
	search   query.Options
	maxPages int
	maxJobs  int
	hydrate  bool
	outPath  string
	preview  int
}

func main() {
	log.SetFlags(0)

	// .env is optional; it can carry JOBSWEEP_DATA_DIR.
	_ = godotenv.Load()

	var (
		flagKeywords = flag.String("keywords", "", "search keywords; setting this makes the run non-interactive")
		flagLocation = flag.String("location", "", "location filter")
		flagDate     = flag.String("date", "", "posted-date filter: past-24h, past-week, past-month, any")
		flagExp      = flag.String("experience", "", "experience levels, comma-separated: internship,entry,associate,mid-senior,director,executive")
		flagMaxPages = flag.Int("max-pages", -1, "maximum result pages to fetch (-1 = config default)")
		flagMaxJobs  = flag.Int("max-jobs", -1, "maximum listings to keep, 0 = no cap (-1 = config default)")
		flagOut      = flag.String("out", "", "output CSV path (blank = auto-named in output dir)")
		flagDetails  = flag.Bool("details", false, "also fetch each listing's detail page")
		flagYes      = flag.Bool("yes", false, "skip the confirmation prompt")
		flagConfig   = flag.String("config", "", "config file path (blank = <data-dir>/config.yml)")
	)
	flag.Parse()

	dataDir := os.Getenv("JOBSWEEP_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	cfgPath := *flagConfig
	if cfgPath == "" {
		var err error
		cfgPath, err = config.EnsureUserConfig(dataDir)
		if err != nil {
			log.Fatalf("config bootstrap failed: %v", err)
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}
	cfg, val := config.NormalizeAndValidate(cfg)
	for _, w := range val.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !val.OK() {
		log.Fatalf("config invalid (%s):\n- %s", cfgPath, strings.Join(val.Errors, "\n- "))
	}

	var opts runOptions
	if *flagKeywords != "" {
		opts, err = flagOptions(cfg, *flagKeywords, *flagLocation, *flagDate, *flagExp,
			*flagMaxPages, *flagMaxJobs, *flagOut, *flagDetails)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		p := prompt.New(os.Stdin, os.Stdout)
		ok := false
		opts, ok = askOptions(p, cfg, *flagYes)
		if !ok {
			fmt.Println("Cancelled.")
			return
		}
	}
	if opts.outPath == "" {
		opts.outPath = filepath.Join(cfg.Output.Dir, autoFilename(opts.search))
	}

	printSummary(opts)

	limiter := util.NewHostLimiter(cfg.Scrape.RequestsPerSec, cfg.Scrape.Burst)
	src := linkedin.New(linkedin.Config{
		SearchURL: cfg.Scrape.SearchURL,
		UserAgent: cfg.Scrape.UserAgent,
		Timeout:   time.Duration(cfg.Scrape.TimeoutSeconds) * time.Second,
		Limiter:   limiter,
	}, opts.search)

	col := &scrape.Collector{
		Source:   src,
		PageSize: cfg.Scrape.PageSize,
		MaxPages: opts.maxPages,
		MaxJobs:  opts.maxJobs,
		Hydrate:  opts.hydrate,
	}

	res, err := col.Run(context.Background())
	if err != nil {
		log.Printf("scrape failed before anything was collected: %v", err)
		os.Exit(1)
	}
	if res.Partial {
		log.Printf("[run] stopped early (%v); exporting the %d listings collected first",
			res.FetchErr, len(res.Listings))
	}

	export.Preview(os.Stdout, res.Listings, opts.preview)

	if err := export.WriteCSV(opts.outPath, res.Listings, opts.hydrate); err != nil {
		log.Printf("export failed: %v", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d listings (%d pages) to %s\n", len(res.Listings), res.Pages, opts.outPath)
}

func flagOptions(cfg config.Config, keywords, location, date, exp string,
	maxPages, maxJobs int, out string, details bool) (runOptions, error) {

	o := runOptions{
		maxPages: cfg.Run.MaxPages,
		maxJobs:  cfg.Run.MaxJobs,
		hydrate:  details || cfg.Run.HydrateDetails,
		outPath:  out,
		preview:  cfg.Run.PreviewRows,
	}
	o.search.Keywords = keywords
	o.search.Location = location

	var err error
	if o.search.DatePosted, err = query.ParseDatePosted(date); err != nil {
		return o, err
	}
	if o.search.Experience, err = query.ParseExperience(exp); err != nil {
		return o, err
	}
	if maxPages >= 0 {
		o.maxPages = maxPages
	}
	if maxJobs >= 0 {
		o.maxJobs = maxJobs
	}
	if o.maxPages <= 0 {
		return o, fmt.Errorf("max-pages must be > 0")
	}
	return o, nil
}

func askOptions(p *prompt.Prompter, cfg config.Config, skipConfirm bool) (runOptions, bool) {
	var o runOptions
	o.preview = cfg.Run.PreviewRows

	o.search.Keywords = p.Required("Job title or keywords")
	if o.search.Keywords == "" {
		// stdin ended before we got anything
		return o, false
	}
	o.search.Location = p.Line("Location (blank for anywhere)")

	switch p.Choice("Jobs posted", []string{"Any time", "Past month", "Past week", "Past 24 hours"}, 3) {
	case 2:
		o.search.DatePosted = query.DatePastMonth
	case 3:
		o.search.DatePosted = query.DatePastWeek
	case 4:
		o.search.DatePosted = query.DatePast24h
	}

	fmt.Println("Experience levels:")
	for i, lv := range query.AllExperienceLevels {
		fmt.Printf("  %d. %s\n", i+1, lv)
	}
	for {
		s := p.Line("Select levels (comma-separated numbers, 'all', blank for any)")
		levels, err := experienceFromMenu(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		o.search.Experience = levels
		break
	}

	o.maxPages = p.Int("Maximum pages to fetch", cfg.Run.MaxPages)
	if o.maxPages <= 0 {
		o.maxPages = cfg.Run.MaxPages
	}
	o.maxJobs = p.Int("Maximum listings to keep (0 for no cap)", cfg.Run.MaxJobs)
	if o.maxJobs < 0 {
		o.maxJobs = cfg.Run.MaxJobs
	}
	o.hydrate = p.YesNo("Fetch each listing's detail page (slower)", cfg.Run.HydrateDetails)
	o.outPath = p.Line("Output CSV path (blank to auto-name)")

	if !skipConfirm && !p.YesNo("Proceed with scraping?", true) {
		return o, false
	}
	return o, true
}

// experienceFromMenu parses the interactive selection: "1,3", "all", or
// blank for any level.
func experienceFromMenu(s string) ([]query.ExperienceLevel, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if strings.EqualFold(s, "all") {
		return append([]query.ExperienceLevel{}, query.AllExperienceLevels...), nil
	}
	var out []query.ExperienceLevel
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n := 0
		if _, err := fmt.Sscanf(part, "%d", &n); err != nil || n < 1 || n > len(query.AllExperienceLevels) {
			return nil, fmt.Errorf("invalid selection %q: use numbers 1-%d", part, len(query.AllExperienceLevels))
		}
		out = append(out, query.AllExperienceLevels[n-1])
	}
	return out, nil
}

func autoFilename(o query.Options) string {
	slug := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
	}
	parts := []string{"jobs"}
	if s := slug(o.Keywords); s != "" {
		parts = []string{s}
	}
	if s := slug(o.Location); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, time.Now().Format("20060102_150405"))
	return strings.Join(parts, "_") + ".csv"
}

func printSummary(o runOptions) {
	orAny := func(s, any string) string {
		if s == "" {
			return any
		}
		return s
	}
	levels := "any level"
	if len(o.search.Experience) > 0 {
		var names []string
		for _, lv := range o.search.Experience {
			names = append(names, string(lv))
		}
		levels = strings.Join(names, ", ")
	}
	keepCap := "no cap"
	if o.maxJobs > 0 {
		keepCap = fmt.Sprintf("%d listings", o.maxJobs)
	}

	fmt.Println("Search summary:")
	fmt.Printf("  keywords:   %s\n", o.search.Keywords)
	fmt.Printf("  location:   %s\n", orAny(o.search.Location, "anywhere"))
	fmt.Printf("  posted:     %s\n", orAny(string(o.search.DatePosted), "any time"))
	fmt.Printf("  experience: %s\n", levels)
	fmt.Printf("  pages:      up to %d, %s\n", o.maxPages, keepCap)
	fmt.Printf("  details:    %v\n", o.hydrate)
	fmt.Printf("  output:     %s\n", o.outPath)
}
