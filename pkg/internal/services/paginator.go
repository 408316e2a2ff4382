package services

import (
	"math"

	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// Pagination describes one window of an ordered result set. Page numbers
// are 1-based; anything invalid resolves to the first page and anything
// past the end clamps to the last page instead of erroring.
type Pagination struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// FeedPageSize is a single configured constant shared by every feed
// context.
func FeedPageSize() int {
	if size := viper.GetInt("feed.page_size"); size > 0 {
		return size
	}
	return 10
}

func Paginate(count int64, page int, size int) Pagination {
	if size < 1 {
		size = 1
	}

	// An empty set still has one (empty) page.
	pages := int(math.Ceil(float64(count) / float64(size)))
	if pages < 1 {
		pages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	return Pagination{
		Page:        page,
		PageSize:    size,
		TotalItems:  count,
		TotalPages:  pages,
		HasNext:     page < pages,
		HasPrevious: page > 1,
	}
}

// PaginateSlice windows an already loaded ordered sequence.
func PaginateSlice[T any](items []T, page int, size int) ([]T, Pagination) {
	pagination := Paginate(int64(len(items)), page, size)

	head := pagination.Offset()
	tail := min(head+pagination.PageSize, len(items))
	if head > len(items) {
		head = len(items)
	}

	return items[head:tail], pagination
}

// PagePost counts the filtered set, clamps the requested page and pulls
// that window newest-first with authors and groups joined.
func PagePost(tx *gorm.DB, page int) ([]*models.Post, Pagination, error) {
	count, err := CountPost(tx)
	if err != nil {
		return nil, Pagination{}, err
	}

	pagination := Paginate(count, page, FeedPageSize())

	items, err := ListPost(tx, pagination.PageSize, pagination.Offset(), "published_at DESC")
	if err != nil {
		return nil, pagination, err
	}

	return items, pagination, nil
}
