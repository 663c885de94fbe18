package paginate

import (
	"net/url"

	"github.com/blogbuster/database/repository/pagination"
)

// NewFrom reads the page query parameter. The page size is fixed by the
// caller; clients cannot change it.
func NewFrom(url *url.URL, pageSize int) pagination.Paginate {
	if url == nil {
		return pagination.FromQuery("", pageSize)
	}

	return pagination.FromQuery(url.Query().Get("page"), pageSize)
}
