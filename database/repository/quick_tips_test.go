package repository_test

import (
	"testing"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
)

func TestQuickTipsActiveOrdering(t *testing.T) {
	f := newFixture(t)
	tips := repository.QuickTips{DB: f.conn}

	seeds := []database.QuickTipAttrs{
		{Title: "Second", Description: "b", IsActive: true, SortOrder: 2},
		{Title: "First", Description: "a", IsActive: true, SortOrder: 1},
		{Title: "Hidden", Description: "c", IsActive: false, SortOrder: 0},
		{Title: "Third", Description: "d", IsActive: true, SortOrder: 3},
	}

	for _, seed := range seeds {
		if _, err := tips.Create(f.ctx, seed); err != nil {
			t.Fatalf("create tip: %v", err)
		}
	}

	active, err := tips.Active(f.ctx, 2)
	if err != nil {
		t.Fatalf("active: %v", err)
	}

	if len(active) != 2 || active[0].Title != "First" || active[1].Title != "Second" {
		t.Fatalf("unexpected tips %+v", active)
	}

	if _, err := tips.Create(f.ctx, database.QuickTipAttrs{Title: "No description"}); err == nil {
		t.Fatalf("expected validation error")
	}
}
