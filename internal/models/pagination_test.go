package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		in       PageRequest
		wantPage int
		wantSize int
	}{
		{"defaults", PageRequest{}, 1, 10},
		{"negative", PageRequest{Page: -2, Size: -5}, 1, 10},
		{"kept", PageRequest{Page: 3, Size: 25}, 3, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			assert.Equal(t, tc.wantPage, got.Page)
			assert.Equal(t, tc.wantSize, got.Size)
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, Size: 10}.Offset())
	assert.Equal(t, 6, PageRequest{Page: 3, Size: 3}.Offset())
}

func TestNewPageComputesTotalPages(t *testing.T) {
	page := NewPage([]int{1, 2, 3}, 7, PageRequest{Page: 2, Size: 3})
	assert.Equal(t, 7, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)

	empty := NewPage[int](nil, 0, PageRequest{Page: 1, Size: 10})
	assert.Zero(t, empty.TotalPages)
	assert.NotNil(t, empty.Items)
}

func TestPageJSONShape(t *testing.T) {
	page := NewPage([]int{}, 0, PageRequest{Page: 1, Size: 10})
	data, err := json.Marshal(page)
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalItems":0,"totalPages":0,"currentPage":1,"items":[]}`, string(data))
}
