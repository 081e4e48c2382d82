package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		discountPrice float64
		want          int
	}{
		{"twenty percent", 100, 80, 20},
		{"rounds to nearest", 300, 200, 33},
		{"rounds up", 3, 2, 33},
		{"no discount price", 100, 0, 0},
		{"discount equals price", 100, 100, 0},
		{"discount above price", 100, 150, 0},
		{"negative discount price", 100, -5, 0},
		{"zero price", 0, 10, 0},
		{"small discount", 999.99, 949.99, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDiscount(tt.price, tt.discountPrice))
		})
	}
}

func TestInStock(t *testing.T) {
	assert.False(t, InStock(0))
	assert.False(t, InStock(-1))
	assert.True(t, InStock(1))
	assert.True(t, InStock(250))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count int64
		limit int64
		want  int64
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 20, 5},
		{101, 20, 6},
		{7, 3, 3},
		{5, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.limit),
			"count=%d limit=%d", tt.count, tt.limit)
	}
}
