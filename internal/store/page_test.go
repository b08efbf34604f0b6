package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		wantPages  int
		wantNext   *int
		wantsNext  bool
		nextageVal int
	}{
		{name: "exact multiple", page: 1, limit: 9, total: 18, wantPages: 2, wantsNext: true, nextageVal: 2},
		{name: "partial last page rounds up", page: 1, limit: 9, total: 19, wantPages: 3, wantsNext: true, nextageVal: 2},
		{name: "last page has no next", page: 3, limit: 9, total: 19, wantPages: 3, wantsNext: false},
		{name: "single page", page: 1, limit: 9, total: 5, wantPages: 1, wantsNext: false},
		{name: "empty listing", page: 1, limit: 9, total: 0, wantPages: 0, wantsNext: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			info := NewPageInfo(tc.page, tc.limit, tc.total)

			assert.Equal(t, tc.page, info.Page)
			assert.Equal(t, tc.total, info.TotalCount)
			assert.Equal(t, tc.wantPages, info.TotalPages)
			if tc.wantsNext {
				require.NotNil(t, info.NextPage)
				assert.Equal(t, tc.nextageVal, *info.NextPage)
			} else {
				assert.Nil(t, info.NextPage)
			}
		})
	}
}

func TestNormalizePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		page, limit       int
		wantPage, wantLim int
	}{
		{"defaults for zero values", 0, 0, DefaultPage, DefaultLimit},
		{"negative values fall back", -3, -1, DefaultPage, DefaultLimit},
		{"valid values pass through", 4, 20, 4, 20},
		{"limit capped", 1, 5000, 1, MaxLimit},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			page, limit := NormalizePage(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLim, limit)
		})
	}
}

func TestOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Offset(1, 9))
	assert.Equal(t, 9, Offset(2, 9))
	assert.Equal(t, 27, Offset(4, 9))
}
