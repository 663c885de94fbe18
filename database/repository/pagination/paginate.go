package pagination

import (
	"math"
	"strconv"
	"strings"
)

const PostsPerPage = 9

type Paginate struct {
	Page     int
	Limit    int
	NumItems int64
}

// FromQuery reads a 1-based page number. Anything that is not a positive
// integer becomes page 1.
func FromQuery(raw string, limit int) Paginate {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		page = 1
	}

	return Paginate{Page: page, Limit: limit}
}

func (a *Paginate) SetNumItems(number int64) {
	a.NumItems = number
}

func (a *Paginate) GetNumItemsAsInt() int64 {
	return a.NumItems
}

func (a *Paginate) GetNumItemsAsFloat() float64 {
	return float64(a.NumItems)
}

func (a *Paginate) GetLimit() int {
	if a.Limit <= 0 {
		return PostsPerPage
	}

	return min(a.Limit, MaxLimit)
}

// LastPage is never below 1, so an empty listing still has a first page.
func (a *Paginate) LastPage() int {
	pages := int(math.Ceil(a.GetNumItemsAsFloat() / float64(a.GetLimit())))

	return max(1, pages)
}

// Clamp moves an out-of-range page onto the nearest valid one. Call it after
// SetNumItems.
func (a *Paginate) Clamp() {
	if a.Page < 1 {
		a.Page = 1
	}

	if last := a.LastPage(); a.Page > last {
		a.Page = last
	}
}

func (a *Paginate) Offset() int {
	return (a.Page - 1) * a.GetLimit()
}
