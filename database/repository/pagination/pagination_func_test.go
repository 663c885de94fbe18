package pagination

import "testing"

func TestMakePagination(t *testing.T) {
	p := Paginate{Page: 2, Limit: 2}
	p.SetNumItems(5)

	result := MakePagination([]int{1, 2}, p)

	if result.TotalPages != 3 {
		t.Fatalf("expected 3 pages got %d", result.TotalPages)
	}
	if result.NextPage == nil || *result.NextPage != 3 {
		t.Fatalf("next page mismatch")
	}
	if result.PreviousPage == nil || *result.PreviousPage != 1 {
		t.Fatalf("prev page mismatch")
	}
}

func TestMakePaginationEmpty(t *testing.T) {
	p := Paginate{Page: 1, Limit: PostsPerPage}

	result := MakePagination[int](nil, p)

	if result.Data == nil || len(result.Data) != 0 {
		t.Fatalf("expected empty, non-nil data")
	}
	if result.TotalPages != 1 || result.NextPage != nil || result.PreviousPage != nil {
		t.Fatalf("unexpected metadata %+v", result)
	}
}

func TestFromQuery(t *testing.T) {
	cases := map[string]int{
		"":     1,
		"abc":  1,
		"-3":   1,
		"0":    1,
		" 4 ":  4,
		"999":  999,
		"2.5":  1,
		"1e3":  1,
		"0003": 3,
	}

	for raw, want := range cases {
		if got := FromQuery(raw, PostsPerPage).Page; got != want {
			t.Fatalf("%q: expected page %d got %d", raw, want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	p := Paginate{Page: 999, Limit: 9}
	p.SetNumItems(12)
	p.Clamp()

	if p.Page != 2 || p.Offset() != 9 {
		t.Fatalf("expected last page 2 with offset 9, got %d/%d", p.Page, p.Offset())
	}

	empty := Paginate{Page: 5, Limit: 9}
	empty.Clamp()

	if empty.Page != 1 || empty.Offset() != 0 {
		t.Fatalf("expected page 1 for empty listing, got %d", empty.Page)
	}
}

func TestGetLimitBounds(t *testing.T) {
	if (&Paginate{}).GetLimit() != PostsPerPage {
		t.Fatalf("expected default limit")
	}

	if (&Paginate{Limit: 500}).GetLimit() != MaxLimit {
		t.Fatalf("expected max limit cap")
	}
}

func TestHydratePagination(t *testing.T) {
	src := &Pagination[string]{
		Data:       []string{"a", "bb"},
		Page:       1,
		Total:      2,
		PageSize:   2,
		TotalPages: 1,
	}

	dst := HydratePagination(src, func(s string) int { return len(s) })

	if len(dst.Data) != 2 || dst.Data[1] != 2 {
		t.Fatalf("unexpected hydration")
	}
	if dst.Total != src.Total || dst.Page != src.Page {
		t.Fatalf("metadata mismatch")
	}
}
