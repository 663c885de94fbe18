package paginate

import (
	"net/url"
	"testing"

	"github.com/blogbuster/database/repository/pagination"
)

func TestNewFrom(t *testing.T) {
	u, _ := url.Parse("https://example.com/posts/?page=2&limit=50")
	p := NewFrom(u, pagination.PostsPerPage)

	if p.Page != 2 {
		t.Fatalf("page %d", p.Page)
	}

	if p.GetLimit() != pagination.PostsPerPage {
		t.Fatalf("limit %d", p.GetLimit())
	}

	cases := []string{"/posts/?page=-1", "/posts/?page=abc", "/posts/"}

	for _, raw := range cases {
		u, _ := url.Parse(raw)

		if got := NewFrom(u, pagination.PostsPerPage); got.Page != 1 {
			t.Fatalf("%s: expected page 1, got %d", raw, got.Page)
		}
	}

	if NewFrom(nil, 9).Page != 1 {
		t.Fatalf("nil url should yield page 1")
	}
}
