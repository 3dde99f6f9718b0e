// Package pagination turns page/size query parameters into bounded, ordered
// result sets with metadata. Missing parameters default (page 0, size 10);
// present-but-invalid parameters are rejected rather than silently clamped,
// so caller mistakes stay visible.
package pagination

import (
	"fmt"
	"strconv"
)

const (
	DefaultPage = 0
	DefaultSize = 10
)

// Params is a validated page request.
type Params struct {
	Page int
	Size int
}

// Page wraps one page of results with the metadata clients page through.
type Page struct {
	Content       interface{} `json:"content"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
	CurrentPage   int         `json:"currentPage"`
	PageSize      int         `json:"pageSize"`
}

// Parse reads raw query values. Empty strings take the defaults; malformed
// or out-of-range values return an error.
func Parse(pageRaw, sizeRaw string) (Params, error) {
	p := Params{Page: DefaultPage, Size: DefaultSize}

	if pageRaw != "" {
		page, err := strconv.Atoi(pageRaw)
		if err != nil {
			return Params{}, fmt.Errorf("page must be an integer, got %q", pageRaw)
		}
		if page < 0 {
			return Params{}, fmt.Errorf("page must not be negative, got %d", page)
		}
		p.Page = page
	}

	if sizeRaw != "" {
		size, err := strconv.Atoi(sizeRaw)
		if err != nil {
			return Params{}, fmt.Errorf("size must be an integer, got %q", sizeRaw)
		}
		if size <= 0 {
			return Params{}, fmt.Errorf("size must be positive, got %d", size)
		}
		p.Size = size
	}

	return p, nil
}

// Offset returns the row offset for SQL LIMIT/OFFSET paging.
func (p Params) Offset() int {
	return p.Page * p.Size
}

// NewPage assembles the response envelope for one page of content.
func NewPage(content interface{}, total int64, p Params) Page {
	return Page{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages(total, p.Size),
		CurrentPage:   p.Page,
		PageSize:      p.Size,
	}
}

func totalPages(total int64, size int) int {
	if total <= 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
