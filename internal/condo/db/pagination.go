package db

import (
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// Pagination is the page request attached to every list call. Zero values
// fall back to page 1 with the default size.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) normalize() (page, size int) {
	page = p.Page
	if page < 1 {
		page = 1
	}
	size = p.PageSize
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

// PageInfo describes the resolved page. Count reflects the scoped subset,
// never the whole table.
type PageInfo struct {
	Count       int64 `json:"count"`
	NumPages    int   `json:"num_pages"`
	CurrentPage int   `json:"current_page"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// paginate counts the scoped query, clamps the requested page into range and
// fetches it into out.
func paginate[T any](query *gorm.DB, pg Pagination, out *[]T) (PageInfo, error) {
	// Reusable session: Count and Find below each clone the statement.
	query = query.Session(&gorm.Session{})

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return PageInfo{}, err
	}

	page, size := pg.normalize()
	numPages := int((count + int64(size) - 1) / int64(size))
	if numPages < 1 {
		numPages = 1
	}
	if page > numPages {
		page = numPages
	}

	offset := (page - 1) * size
	if err := query.Offset(offset).Limit(size).Find(out).Error; err != nil {
		return PageInfo{}, err
	}

	return PageInfo{
		Count:       count,
		NumPages:    numPages,
		CurrentPage: page,
		HasNext:     page < numPages,
		HasPrevious: page > 1,
	}, nil
}
