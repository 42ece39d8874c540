package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 10)
	assert.Equal(t, 20, offset)
	assert.Equal(t, 10, limit)

	offset, limit = CalculateOffsetLimit(0, 1000)
	assert.Equal(t, 0, offset)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 20)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, int64(45), info.TotalItems)

	empty := NewPaginationInfo(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)

	clamped := NewPaginationInfo(5, 9, 20)
	assert.Equal(t, 1, clamped.CurrentPage)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{name: "explicit", query: "page=4&size=5", wantPage: 4, wantSize: 5},
		{name: "invalid falls back", query: "page=-1&size=abc", wantPage: DefaultPage, wantSize: DefaultPageSize},
		{name: "oversized size", query: "size=1000", wantPage: DefaultPage, wantSize: DefaultPageSize},
		{name: "huge page is capped", query: "page=461168601842738792", wantPage: MaxPage, wantSize: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/students?"+tt.query, nil)

			page, size := ParsePaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestCalculateOffsetLimitHugePageStaysPositive(t *testing.T) {
	offset, limit := CalculateOffsetLimit(int(^uint(0)>>1), MaxPageSize)
	assert.Equal(t, MaxPageSize, limit)
	assert.Equal(t, (MaxPage-1)*MaxPageSize, offset)
	assert.GreaterOrEqual(t, offset, 0)
}
