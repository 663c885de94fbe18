package repository_test

import (
	"testing"

	"github.com/blogbuster/database"
	"github.com/blogbuster/database/repository"
)

func TestSettingsLoadCreatesDefaultsOnce(t *testing.T) {
	f := newFixture(t)
	settings := repository.Settings{DB: f.conn}

	loaded, err := settings.Load(f.ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if *loaded != database.DefaultHomepageSettings() {
		t.Fatalf("expected default copy, got %+v", loaded)
	}

	loaded.HeroHeading = "Edited heading"
	loaded.ID = 7
	if err := settings.Save(f.ctx, loaded); err != nil {
		t.Fatalf("save: %v", err)
	}

	again, err := settings.Load(f.ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	var rows int64
	f.conn.Sql().Model(&database.HomepageSettings{}).Count(&rows)

	if rows != 1 || again.ID != database.HomepageSettingsID || again.HeroHeading != "Edited heading" {
		t.Fatalf("expected one edited row, got %d rows and %+v", rows, again)
	}
}
