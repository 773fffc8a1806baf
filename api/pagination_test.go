package api

import (
	"net/http/httptest"
	"testing"
)

func TestPageParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		url        string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "/blogs", 1, 10, 0},
		{"explicit", "/blogs?page=3&limit=5", 3, 5, 10},
		{"zero page falls back", "/blogs?page=0", 1, 10, 0},
		{"negative limit falls back", "/blogs?limit=-2", 1, 10, 0},
		{"garbage falls back", "/blogs?page=abc&limit=xyz", 1, 10, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", tc.url, nil)
			page, limit, offset := pageParams(r)
			if page != tc.wantPage || limit != tc.wantLimit || offset != tc.wantOffset {
				t.Fatalf("pageParams(%q) = (%d, %d, %d), want (%d, %d, %d)",
					tc.url, page, limit, offset, tc.wantPage, tc.wantLimit, tc.wantOffset)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}

	for _, tc := range cases {
		if got := totalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}
