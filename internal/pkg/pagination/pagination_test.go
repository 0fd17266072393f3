package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"neighborshare/internal/pkg/pagination"
)

func Test_GetMeta_CeilingDivision(t *testing.T) {
	params := &pagination.Params{Page: 2, Limit: 2}

	meta := params.GetMeta(5)

	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 5, meta.TotalItems)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func Test_GetMeta_EmptyResult(t *testing.T) {
	params := &pagination.Params{Page: 1, Limit: 20}

	meta := params.GetMeta(0)

	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}

func Test_Slice_WindowsAndClamps(t *testing.T) {
	params := &pagination.Params{Page: 2, Limit: 2}

	start, end := params.Slice(5)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)

	// Final partial page.
	params.Page = 3
	start, end = params.Slice(5)
	assert.Equal(t, 4, start)
	assert.Equal(t, 5, end)

	// Past the end.
	params.Page = 9
	start, end = params.Slice(5)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}
