package listutil

import (
	"net/url"
	"testing"
)

// TestParsePageParams_Defaults verifies default page params when no query values provided.
func TestParsePageParams_Defaults(t *testing.T) {
	q := url.Values{}
	p := ParsePageParams(q)
	if p.Page != 1 {
		t.Errorf("expected page 1, got %d", p.Page)
	}
	if p.PerPage != DefaultPerPage {
		t.Errorf("expected per_page %d, got %d", DefaultPerPage, p.PerPage)
	}
}

// TestParsePageParams_Valid verifies correct parsing of valid page and per_page values.
func TestParsePageParams_Valid(t *testing.T) {
	q := url.Values{"page": {"3"}, "per_page": {"50"}}
	p := ParsePageParams(q)
	if p.Page != 3 {
		t.Errorf("expected page 3, got %d", p.Page)
	}
	if p.PerPage != 50 {
		t.Errorf("expected per_page 50, got %d", p.PerPage)
	}
}

// TestParsePageParams_InvalidPerPage verifies fallback to default for invalid per_page.
func TestParsePageParams_InvalidPerPage(t *testing.T) {
	q := url.Values{"per_page": {"25"}} // not in allowed list
	p := ParsePageParams(q)
	if p.PerPage != DefaultPerPage {
		t.Errorf("expected default per_page %d for invalid value, got %d", DefaultPerPage, p.PerPage)
	}
}

// TestParsePageParams_NegativePage verifies page is clamped to 1 for negative input.
func TestParsePageParams_NegativePage(t *testing.T) {
	q := url.Values{"page": {"-1"}}
	p := ParsePageParams(q)
	if p.Page != 1 {
		t.Errorf("expected page 1 for negative input, got %d", p.Page)
	}
}

// TestNewPageInfo verifies pagination metadata computation.
func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		total      int
		wantPages  int
		wantPage   int
		wantEnd    int
		wantOffset int
	}{
		{"basic", 1, 20, 85, 5, 1, 20, 0},
		{"page2", 2, 20, 85, 5, 2, 40, 20},
		{"lastPage", 5, 20, 85, 5, 5, 85, 80},
		{"pageBeyondTotal", 10, 20, 85, 5, 5, 85, 80},
		{"emptyList", 1, 20, 0, 1, 1, 0, 0},
		{"exactFit", 1, 10, 10, 1, 1, 10, 0},
		{"singleRow", 1, 20, 1, 1, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pi := NewPageInfo(tt.page, tt.perPage, tt.total)
			if pi.TotalPages != tt.wantPages {
				t.Errorf("TotalPages: got %d, want %d", pi.TotalPages, tt.wantPages)
			}
			if pi.Page != tt.wantPage {
				t.Errorf("Page: got %d, want %d", pi.Page, tt.wantPage)
			}
			if pi.End() != tt.wantEnd {
				t.Errorf("End: got %d, want %d", pi.End(), tt.wantEnd)
			}
			if pi.Offset() != tt.wantOffset {
				t.Errorf("Offset: got %d, want %d", pi.Offset(), tt.wantOffset)
			}
		})
	}
}

// TestHasPrevNext verifies page navigation predicates.
func TestHasPrevNext(t *testing.T) {
	first := NewPageInfo(1, 20, 85)
	if first.HasPrev() {
		t.Error("first page should have no previous page")
	}
	if !first.HasNext() {
		t.Error("first page of five should have a next page")
	}
	last := NewPageInfo(5, 20, 85)
	if !last.HasPrev() {
		t.Error("last page should have a previous page")
	}
	if last.HasNext() {
		t.Error("last page should have no next page")
	}
}

// TestShowPagination verifies pagination visibility logic.
func TestShowPagination(t *testing.T) {
	if NewPageInfo(1, 20, 20).ShowPagination() {
		t.Error("should not show pagination when total == perPage")
	}
	if !NewPageInfo(1, 20, 21).ShowPagination() {
		t.Error("should show pagination when total > perPage")
	}
}
