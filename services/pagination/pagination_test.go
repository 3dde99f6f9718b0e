package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	p, err := Parse("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultSize, p.Size)
}

func TestParse_ValidValues(t *testing.T) {
	p, err := Parse("3", "25")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Size)
	assert.Equal(t, 75, p.Offset())
}

func TestParse_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		page string
		size string
	}{
		{"negative page", "-1", "10"},
		{"zero size", "0", "0"},
		{"negative size", "0", "-5"},
		{"non-numeric page", "abc", "10"},
		{"non-numeric size", "0", "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.page, tt.size)
			assert.Error(t, err)
		})
	}
}

func TestNewPage_Metadata(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	// 25 items, size 10: 3 pages.
	page := NewPage(items, 25, Params{Page: 0, Size: 10})
	assert.Equal(t, int64(25), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 0, page.CurrentPage)
	assert.Equal(t, 10, page.PageSize)

	// Exact multiple: no partial trailing page.
	page = NewPage(items, 30, Params{Page: 2, Size: 10})
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
}

func TestNewPage_Empty(t *testing.T) {
	page := NewPage([]string{}, 0, Params{Page: 0, Size: 10})
	assert.Equal(t, int64(0), page.TotalElements)
	assert.Equal(t, 0, page.TotalPages)
}
