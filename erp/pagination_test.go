package erp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginateMath(t *testing.T) {
	// For a collection of size N, page p with limit l must return
	// ceil(N/l) total pages and min(l, max(0, N-(p-1)*l)) items.
	tests := []struct {
		name      string
		total     int
		page      int
		limit     int
		wantLen   int
		wantPages int
	}{
		{"single item single page", 1, 1, 1, 1, 1},
		{"full first page", 10, 1, 5, 5, 2},
		{"partial last page", 10, 2, 7, 3, 2},
		{"page past the end", 10, 4, 5, 0, 2},
		{"limit larger than collection", 3, 1, 20, 3, 1},
		{"empty collection", 0, 1, 20, 0, 0},
		{"exact multiple", 20, 4, 5, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, tt.total)
			for i := range items {
				items[i] = i
			}

			got, pagination := paginate(items, tt.page, tt.limit)
			require.Len(t, got, tt.wantLen)
			require.Equal(t, tt.wantPages, pagination.Pages)
			require.Equal(t, tt.total, pagination.Total)
			require.Equal(t, tt.page, pagination.Page)
			require.Equal(t, tt.limit, pagination.Limit)

			// The slice must hold the right window, not just the right length
			if tt.wantLen > 0 {
				require.Equal(t, (tt.page-1)*tt.limit, got[0])
			}
		})
	}
}

func TestPaginateDefaults(t *testing.T) {
	items := make([]int, 30)
	got, pagination := paginate(items, 0, 0)
	require.Len(t, got, DefaultPageLimit)
	require.Equal(t, 1, pagination.Page)
	require.Equal(t, DefaultPageLimit, pagination.Limit)
	require.Equal(t, 2, pagination.Pages)
}
