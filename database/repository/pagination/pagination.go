package pagination

const MaxLimit = 100

// Pagination is one page of T plus the metadata needed to render pager links.
// NextPage and PreviousPage are nil on the last and first pages.
type Pagination[T any] struct {
	Data         []T   `json:"data"`
	Page         int   `json:"page"`
	Total        int64 `json:"total"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

func MakePagination[T any](data []T, paginate Paginate) *Pagination[T] {
	if data == nil {
		data = []T{}
	}

	pagination := Pagination[T]{
		Data:       data,
		Page:       paginate.Page,
		Total:      paginate.GetNumItemsAsInt(),
		PageSize:   paginate.GetLimit(),
		TotalPages: paginate.LastPage(),
	}

	if pagination.Page < pagination.TotalPages {
		p := pagination.Page + 1
		pagination.NextPage = &p
	}

	if pagination.Page > 1 && pagination.Page <= pagination.TotalPages {
		p := pagination.Page - 1
		pagination.PreviousPage = &p
	}

	return &pagination
}

// HydratePagination maps the items of a page while keeping its metadata.
func HydratePagination[S any, D any](source *Pagination[S], mapper func(S) D) *Pagination[D] {
	mapped := make([]D, len(source.Data))

	for i, item := range source.Data {
		mapped[i] = mapper(item)
	}

	return &Pagination[D]{
		Data:         mapped,
		Total:        source.Total,
		Page:         source.Page,
		PageSize:     source.PageSize,
		TotalPages:   source.TotalPages,
		NextPage:     source.NextPage,
		PreviousPage: source.PreviousPage,
	}
}
