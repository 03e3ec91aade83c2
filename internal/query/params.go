// Package query implements the paginated list-and-filter contract shared by
// every resource: free-text search over designated columns, allow-listed
// sorting, offset pagination and a total count computed from the same
// predicate as the page itself.
package query

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Params holds the caller-supplied list inputs after coercion.
type Params struct {
	Search string
	Page   int
	Limit  int
	SortBy string
	Order  string
}

// FromContext parses list parameters from the request query string.
// Non-numeric page/limit fall back to their defaults; page and limit are
// clamped so the skip/ceil arithmetic never degenerates.
func FromContext(c *fiber.Ctx) Params {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))
	if err != nil {
		limit = DefaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	order := c.Query("order", "desc")
	if order != "asc" {
		order = "desc"
	}

	return Params{
		Search: strings.TrimSpace(c.Query("search", "")),
		Page:   page,
		Limit:  limit,
		SortBy: c.Query("sortBy", "createdAt"),
		Order:  order,
	}
}

// Offset returns the number of records to skip. Page 1 always yields 0.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}
