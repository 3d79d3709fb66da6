package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{name: "empty", total: 0, pageSize: 10, want: 0},
		{name: "exact multiple", total: 20, pageSize: 10, want: 2},
		{name: "remainder", total: 21, pageSize: 10, want: 3},
		{name: "single item", total: 1, pageSize: 10, want: 1},
		{name: "page size one", total: 7, pageSize: 1, want: 7},
		{name: "invalid page size", total: 7, pageSize: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		pageIndex int
		pageSize  int
		wantIndex int
		wantSkip  int
		wantPages int
	}{
		{name: "first page", total: 25, pageIndex: 1, pageSize: 10, wantIndex: 1, wantSkip: 0, wantPages: 3},
		{name: "last page", total: 25, pageIndex: 3, pageSize: 10, wantIndex: 3, wantSkip: 20, wantPages: 3},
		{name: "beyond last page resets", total: 25, pageIndex: 4, pageSize: 10, wantIndex: 1, wantSkip: 0, wantPages: 3},
		{name: "zero index resets", total: 25, pageIndex: 0, pageSize: 10, wantIndex: 1, wantSkip: 0, wantPages: 3},
		{name: "negative index resets", total: 25, pageIndex: -3, pageSize: 10, wantIndex: 1, wantSkip: 0, wantPages: 3},
		{name: "no items", total: 0, pageIndex: 2, pageSize: 10, wantIndex: 1, wantSkip: 0, wantPages: 0},
		{name: "default size", total: 25, pageIndex: 2, pageSize: 0, wantIndex: 2, wantSkip: 5, wantPages: 5},
		{name: "capped size", total: 250, pageIndex: 2, pageSize: 1000, wantIndex: 2, wantSkip: 100, wantPages: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Resolve(tt.total, tt.pageIndex, tt.pageSize, 5, 100)
			assert.Equal(t, tt.wantIndex, w.PageIndex)
			assert.Equal(t, tt.wantSkip, w.Skip)
			assert.Equal(t, tt.wantPages, w.TotalPages)
		})
	}
}

func TestResolveIndexAlwaysInRange(t *testing.T) {
	for total := int64(0); total <= 40; total++ {
		for size := 1; size <= 7; size++ {
			for index := -2; index <= 45; index++ {
				w := Resolve(total, index, size, 10, 0)
				if w.TotalPages >= 1 {
					assert.GreaterOrEqual(t, w.PageIndex, 1)
					assert.LessOrEqual(t, w.PageIndex, w.TotalPages)
				} else {
					assert.Equal(t, 1, w.PageIndex)
				}
				if index < 1 || index > w.TotalPages {
					assert.Equal(t, 1, w.PageIndex)
				}
			}
		}
	}
}
