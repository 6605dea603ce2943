package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name                string
		page, size, maxSize int
		want                PageRequest
	}{
		{"defaults", 0, 0, 0, PageRequest{Page: 1, PageSize: 100}},
		{"negative falls back", -3, -1, 0, PageRequest{Page: 1, PageSize: 100}},
		{"explicit", 2, 10, 0, PageRequest{Page: 2, PageSize: 10}},
		{"clamped", 1, 5000, 1000, PageRequest{Page: 1, PageSize: 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageRequest(tt.page, tt.size, tt.maxSize))
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, PageSize: 100}.Offset())
	assert.Equal(t, 10, PageRequest{Page: 2, PageSize: 10}.Offset())
	assert.Equal(t, 0, PageRequest{}.Offset())
}

func TestPageRequestOffset_SaturatesOnOverflow(t *testing.T) {
	huge := PageRequest{Page: math.MaxInt, PageSize: 100}
	assert.Equal(t, math.MaxInt, huge.Offset())

	edge := PageRequest{Page: math.MaxInt/100 + 1, PageSize: 100}
	assert.GreaterOrEqual(t, edge.Offset(), 0)
}
