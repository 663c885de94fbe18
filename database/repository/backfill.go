package repository

import "fmt"

const FeaturedLimit = 3

type Identifiable interface {
	GetID() uint64
}

// Backfill tops up the featured items with filler items until limit is
// reached. featured results come first, in their order; filler is asked only
// for the shortfall and never sees ids that were already picked.
func Backfill[T Identifiable](
	limit int,
	featured func(limit int) ([]T, error),
	filler func(exclude []uint64, limit int) ([]T, error),
) ([]T, error) {
	if limit <= 0 {
		return []T{}, nil
	}

	items, err := featured(limit)
	if err != nil {
		return nil, fmt.Errorf("load featured items: %w", err)
	}

	if len(items) > limit {
		items = items[:limit]
	}

	if len(items) == limit {
		return items, nil
	}

	seen := make(map[uint64]struct{}, limit)
	exclude := make([]uint64, 0, len(items))

	for _, item := range items {
		seen[item.GetID()] = struct{}{}
		exclude = append(exclude, item.GetID())
	}

	extra, err := filler(exclude, limit-len(items))
	if err != nil {
		return nil, fmt.Errorf("load filler items: %w", err)
	}

	for _, item := range extra {
		if len(items) == limit {
			break
		}

		if _, dup := seen[item.GetID()]; dup {
			continue
		}

		seen[item.GetID()] = struct{}{}
		items = append(items, item)
	}

	return items, nil
}
