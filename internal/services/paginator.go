package services

import (
	"errors"

	"amanah-finance/internal/models"
)

// DefaultReportPageSize is the number of ledger rows per report page
const DefaultReportPageSize = 15

var ErrInvalidPageSize = errors.New("page size must be at least 1")

// PaginateSchedule partitions schedule entries into fixed-size report pages.
// The partition is lossless: concatenating the pages' entries in order
// reproduces the input exactly. The final page may be shorter than pageSize.
func PaginateSchedule(entries []models.AmortizationEntry, pageSize int) ([]models.ReportPage, error) {
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}

	pageCount := (len(entries) + pageSize - 1) / pageSize
	pages := make([]models.ReportPage, 0, pageCount)

	for start := 0; start < len(entries); start += pageSize {
		end := start + pageSize
		if end > len(entries) {
			end = len(entries)
		}

		pageNumber := len(pages) + 1
		pages = append(pages, models.ReportPage{
			PageNumber:  pageNumber,
			Entries:     entries[start:end],
			IsFirstPage: pageNumber == 1,
			IsLastPage:  end == len(entries),
		})
	}

	return pages, nil
}
