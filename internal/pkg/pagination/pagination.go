package pagination

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 0
	DefaultLimit = 20
	MaxLimit     = 100
)

// Query holds parsed pagination parameters. Page is zero-based.
type Query struct {
	Page  int
	Limit int
}

// FromContext extracts and clamps ?page= and ?limit= from the request.
func FromContext(c *gin.Context) Query {
	return Parse(c.Query("page"), c.Query("limit"))
}

// Parse applies the defaults to raw query values: unparsable or negative page
// becomes 0, unparsable or non-positive limit becomes 20, limit is capped.
func Parse(rawPage, rawLimit string) Query {
	page := parseIntOr(rawPage, DefaultPage)
	limit := parseIntOr(rawLimit, DefaultLimit)

	if page < 0 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Query{Page: page, Limit: limit}
}

// Skip is the number of documents before the requested page. It saturates
// at math.MaxInt64 so a huge page reads past the end instead of wrapping.
func (q Query) Skip() int64 {
	if q.Page <= 0 || q.Limit <= 0 {
		return 0
	}
	if int64(q.Page) > math.MaxInt64/int64(q.Limit) {
		return math.MaxInt64
	}
	return int64(q.Page) * int64(q.Limit)
}

// TotalPages returns ceil(total/limit).
func (q Query) TotalPages(total int64) int {
	if q.Limit < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(q.Limit) - 1) / int64(q.Limit))
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
