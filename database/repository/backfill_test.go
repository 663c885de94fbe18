package repository_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogbuster/database/repository"
)

type item uint64

func (i item) GetID() uint64 { return uint64(i) }

func staticFeatured(items ...item) func(int) ([]item, error) {
	return func(limit int) ([]item, error) {
		if len(items) > limit {
			return items[:limit], nil
		}

		return items, nil
	}
}

func TestBackfillTopsUpWithoutDuplicates(t *testing.T) {
	var asked []uint64
	var askedLimit int

	got, err := repository.Backfill(3,
		staticFeatured(7),
		func(exclude []uint64, limit int) ([]item, error) {
			asked, askedLimit = exclude, limit
			return []item{7, 2, 5}, nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, []item{7, 2, 5}, got)
	assert.Equal(t, []uint64{7}, asked)
	assert.Equal(t, 2, askedLimit)
}

func TestBackfillSkipsFillerWhenFeaturedIsFull(t *testing.T) {
	got, err := repository.Backfill(2,
		staticFeatured(1, 2, 3),
		func([]uint64, int) ([]item, error) {
			t.Fatalf("filler should not run")
			return nil, nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, []item{1, 2}, got)
}

func TestBackfillReturnsWhatExists(t *testing.T) {
	got, err := repository.Backfill(3,
		staticFeatured(),
		func([]uint64, int) ([]item, error) { return []item{4}, nil },
	)

	require.NoError(t, err)
	assert.Equal(t, []item{4}, got)
}

func TestBackfillPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := repository.Backfill(3,
		func(int) ([]item, error) { return nil, boom },
		func([]uint64, int) ([]item, error) { return nil, nil },
	)
	assert.ErrorIs(t, err, boom)

	_, err = repository.Backfill(3,
		staticFeatured(1),
		func([]uint64, int) ([]item, error) { return nil, boom },
	)
	assert.ErrorIs(t, err, boom)
}
