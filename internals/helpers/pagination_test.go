package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}
	out := BuildPagination(25, p, 10)

	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 3, out.TotalPages)
	assert.True(t, out.HasNext)
	assert.True(t, out.HasPrev)
	assert.Equal(t, 10, out.Count)

	last := BuildPagination(25, Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}, 5)
	assert.False(t, last.HasNext)
	assert.Equal(t, 5, last.Count)
}

func TestBuildPaginationEmpty(t *testing.T) {
	out := BuildPagination(0, Paging{Page: 1, PerPage: 10, Limit: 10}, 0)
	assert.Equal(t, 0, out.TotalPages)
	assert.False(t, out.HasNext)
	assert.False(t, out.HasPrev)
}
