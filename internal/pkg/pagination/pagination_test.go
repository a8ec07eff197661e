package pagination

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		page, limit string
		want        Query
	}{
		{"", "", Query{Page: 0, Limit: 20}},
		{"3", "10", Query{Page: 3, Limit: 10}},
		{"-1", "0", Query{Page: 0, Limit: 20}},
		{"abc", "-5", Query{Page: 0, Limit: 20}},
		{"1", "1000", Query{Page: 1, Limit: MaxLimit}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.page, tt.limit), "page=%q limit=%q", tt.page, tt.limit)
	}
}

func TestSkipAndTotalPages(t *testing.T) {
	q := Query{Page: 2, Limit: 20}
	assert.Equal(t, int64(40), q.Skip())
	assert.Equal(t, 0, q.TotalPages(0))
	assert.Equal(t, 1, q.TotalPages(20))
	assert.Equal(t, 2, q.TotalPages(21))
}

func TestSkipSaturates(t *testing.T) {
	q := Parse("9223372036854775807", "20")
	assert.Equal(t, int64(math.MaxInt64), q.Skip())

	q = Query{Page: math.MaxInt64 / 20, Limit: 20}
	assert.Equal(t, int64(math.MaxInt64/20*20), q.Skip())
}

func TestFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/movies?page=4&limit=5", nil)
	assert.Equal(t, Query{Page: 4, Limit: 5}, FromContext(c))
}
