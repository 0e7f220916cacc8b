package server

import "testing"

func TestBuildPaginationData(t *testing.T) {
	tests := []struct {
		name                 string
		page, perPage        int
		total                int64
		wantPage, wantOffset int
		wantPages            int
		prev, next           bool
	}{
		{name: "empty", page: 1, perPage: 25, total: 0, wantPage: 1, wantOffset: 0, wantPages: 1},
		{name: "middle", page: 2, perPage: 10, total: 35, wantPage: 2, wantOffset: 10, wantPages: 4, prev: true, next: true},
		{name: "past end", page: 9, perPage: 10, total: 35, wantPage: 4, wantOffset: 30, wantPages: 4, prev: true},
		{name: "zero per page", page: 1, perPage: 0, total: 3, wantPage: 1, wantOffset: 0, wantPages: 3, next: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildPaginationData("/admin/plays", tt.page, tt.perPage, tt.total)
			if got.Page != tt.wantPage || got.Offset != tt.wantOffset || got.TotalPages != tt.wantPages {
				t.Fatalf("unexpected pagination %#v", got)
			}
			if got.HasPrev != tt.prev || got.HasNext != tt.next {
				t.Fatalf("unexpected prev/next %#v", got)
			}
		})
	}
}
