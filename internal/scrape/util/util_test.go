package util

import (
	"context"
	"testing"
	"time"
)

func TestCleanText(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Staff   Engineer ", "Staff Engineer"},
		{"Example Co", "Example Co"},
		{"\n\t Toronto,\n ON \t", "Toronto, ON"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := TruncateRunes("abcdef", 3); got != "abc..." {
		t.Errorf("got %q", got)
	}
	// rune-safe, not byte-safe
	if got := TruncateRunes("héllo wörld", 4); got != "héll..." {
		t.Errorf("got %q", got)
	}
	if got := TruncateRunes("anything", 0); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestCanonicalLinkStripsTrackingJunk(t *testing.T) {
	a := CanonicalLink("https://example.com/jobs/1?utm_source=feed&utm_campaign=x&id=9")
	b := CanonicalLink("HTTPS://EXAMPLE.com/jobs/1?id=9#fragment")
	if a != b {
		t.Fatalf("%q != %q", a, b)
	}
	if a != "https://example.com/jobs/1?id=9" {
		t.Fatalf("got %q", a)
	}
}

func TestCanonicalLinkLinkedInKeepsOnlyJobID(t *testing.T) {
	a := CanonicalLink("https://www.linkedin.com/jobs/view/staff-engineer-3544610012?refId=abc&trackingId=xyz")
	b := CanonicalLink("https://www.linkedin.com/jobs/view/staff-engineer-3544610012/")
	if a != b {
		t.Fatalf("%q != %q", a, b)
	}

	withID := CanonicalLink("https://www.linkedin.com/jobs/search?currentJobId=42&refId=zzz")
	if withID != "https://www.linkedin.com/jobs/search?currentJobId=42" {
		t.Fatalf("got %q", withID)
	}
}

func TestCanonicalLinkEmptyAndGarbage(t *testing.T) {
	if got := CanonicalLink("   "); got != "" {
		t.Fatalf("got %q", got)
	}
	// unparseable input comes back verbatim so it still works as a map key
	if got := CanonicalLink("::notaurl"); got == "" {
		t.Fatal("garbage should not collapse to empty")
	}
}

func TestHostLimiterWaits(t *testing.T) {
	// 1 req/s with burst 1: the second request must wait roughly a second
	hl := NewHostLimiter(1, 1)
	ctx := context.Background()

	if err := hl.WaitURL(ctx, "https://example.com/a"); err != nil {
		t.Fatal(err)
	}
	start := time.Now()
	if err := hl.WaitURL(ctx, "https://example.com/b"); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 500*time.Millisecond {
		t.Fatalf("second request should have been throttled, waited %v", elapsed)
	}
}

func TestHostLimiterSeparateHosts(t *testing.T) {
	hl := NewHostLimiter(1, 1)
	ctx := context.Background()

	if err := hl.WaitURL(ctx, "https://a.example.com/"); err != nil {
		t.Fatal(err)
	}
	start := time.Now()
	if err := hl.WaitURL(ctx, "https://b.example.com/"); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed > 200*time.Millisecond {
		t.Fatalf("different hosts must not share a bucket, waited %v", elapsed)
	}
}

func TestHostLimiterCancelledContext(t *testing.T) {
	hl := NewHostLimiter(0.01, 1)
	ctx := context.Background()
	if err := hl.WaitURL(ctx, "https://example.com/"); err != nil {
		t.Fatal(err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := hl.WaitURL(cancelled, "https://example.com/"); err == nil {
		t.Fatal("expected a context error")
	}
}
