package services

import (
	"testing"

	"amanah-finance/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntries(n int) []models.AmortizationEntry {
	entries := make([]models.AmortizationEntry, n)
	for i := range entries {
		entries[i] = models.AmortizationEntry{Period: i + 1}
	}
	return entries
}

func TestPaginateSchedule_PageCounts(t *testing.T) {
	tests := []struct {
		name      string
		entries   int
		pageSize  int
		pages     int
		lastCount int
	}{
		{name: "exact multiple", entries: 30, pageSize: 15, pages: 2, lastCount: 15},
		{name: "short last page", entries: 37, pageSize: 15, pages: 3, lastCount: 7},
		{name: "single short page", entries: 7, pageSize: 15, pages: 1, lastCount: 7},
		{name: "page size above total", entries: 12, pageSize: 500, pages: 1, lastCount: 12},
		{name: "page size one", entries: 3, pageSize: 1, pages: 3, lastCount: 1},
		{name: "empty schedule", entries: 0, pageSize: 15, pages: 0, lastCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := PaginateSchedule(makeEntries(tt.entries), tt.pageSize)
			require.NoError(t, err)
			require.Len(t, pages, tt.pages)

			if tt.pages > 0 {
				assert.Len(t, pages[tt.pages-1].Entries, tt.lastCount)
			}
		})
	}
}

// Concatenating the pages in order must reproduce the input exactly
func TestPaginateSchedule_Lossless(t *testing.T) {
	entries := makeEntries(37)

	pages, err := PaginateSchedule(entries, 15)
	require.NoError(t, err)

	var rejoined []models.AmortizationEntry
	for _, page := range pages {
		rejoined = append(rejoined, page.Entries...)
	}
	assert.Equal(t, entries, rejoined)
}

func TestPaginateSchedule_PageFlags(t *testing.T) {
	pages, err := PaginateSchedule(makeEntries(37), 15)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	for i, page := range pages {
		assert.Equal(t, i+1, page.PageNumber)
		assert.Equal(t, i == 0, page.IsFirstPage)
		assert.Equal(t, i == len(pages)-1, page.IsLastPage)
	}
}

// A single page is both the first and the last
func TestPaginateSchedule_SinglePageFlags(t *testing.T) {
	pages, err := PaginateSchedule(makeEntries(10), 15)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	assert.True(t, pages[0].IsFirstPage)
	assert.True(t, pages[0].IsLastPage)
}

// Losslessness and page arithmetic hold for arbitrary schedule lengths
func TestPaginateSchedule_RandomizedSizes(t *testing.T) {
	for i := 0; i < 50; i++ {
		n := gofakeit.Number(1, 600)
		pageSize := gofakeit.Number(1, 50)

		pages, err := PaginateSchedule(makeEntries(n), pageSize)
		require.NoError(t, err)
		require.Len(t, pages, (n+pageSize-1)/pageSize)

		total := 0
		for _, page := range pages {
			total += len(page.Entries)
		}
		assert.Equal(t, n, total, "n=%d pageSize=%d", n, pageSize)
	}
}

func TestPaginateSchedule_InvalidPageSize(t *testing.T) {
	for _, pageSize := range []int{0, -1} {
		pages, err := PaginateSchedule(makeEntries(10), pageSize)
		assert.Nil(t, pages)
		require.ErrorIs(t, err, ErrInvalidPageSize)
	}
}
