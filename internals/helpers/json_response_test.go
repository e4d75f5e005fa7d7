package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"empty", 0, 1, 20, 1, false, false},
		{"single page", 5, 1, 20, 1, false, false},
		{"exact boundary", 40, 1, 20, 2, true, false},
		{"middle page", 100, 3, 20, 5, true, true},
		{"last page", 100, 5, 20, 5, false, true},
		{"zero per page falls back", 10, 1, 0, 1, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPagination(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.wantPages)
			}
			if p.HasNext != tc.wantNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tc.wantNext)
			}
			if p.HasPrev != tc.wantPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tc.wantPrev)
			}
		})
	}
}
