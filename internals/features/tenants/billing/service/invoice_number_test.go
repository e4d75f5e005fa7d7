package service

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateInvoiceNumber(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^INV-202603-[0-9A-HJ-NP-Z]{6}$`)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		n := GenerateInvoiceNumber(now)
		if !pattern.MatchString(n) {
			t.Fatalf("bad invoice number %q", n)
		}
		seen[n] = true
	}
	// 34^6 combinations; 200 draws colliding would mean a broken RNG.
	if len(seen) < 190 {
		t.Errorf("only %d distinct numbers out of 200", len(seen))
	}
}

func TestGenerateInvoiceNumberUsesGivenMonth(t *testing.T) {
	dec := time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)
	if got := GenerateInvoiceNumber(dec)[:10]; got != "INV-202512" {
		t.Errorf("prefix = %q, want INV-202512", got)
	}
}
