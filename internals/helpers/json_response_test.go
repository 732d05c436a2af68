package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		wantPages  int
		wantHasNxt bool
		wantHasPrv bool
	}{
		{name: "first of three", total: 45, page: 1, perPage: 20, wantPages: 3, wantHasNxt: true},
		{name: "middle page", total: 45, page: 2, perPage: 20, wantPages: 3, wantHasNxt: true, wantHasPrv: true},
		{name: "last page", total: 45, page: 3, perPage: 20, wantPages: 3, wantHasPrv: true},
		{name: "empty set still one page", total: 0, page: 1, perPage: 20, wantPages: 1},
		{name: "exact multiple", total: 40, page: 2, perPage: 20, wantPages: 2, wantHasPrv: true},
		{name: "defaults applied", total: 10, page: 0, perPage: 0, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.wantPages, got.TotalPages)
			assert.Equal(t, tt.wantHasNxt, got.HasNext)
			assert.Equal(t, tt.wantHasPrv, got.HasPrev)
			assert.Equal(t, tt.total, got.Total)
		})
	}
}
