package repository

import (
	"context"
	"fmt"

	"github.com/blogbuster/database"
)

type QuickTips struct {
	DB *database.Connection
}

func (q QuickTips) Create(ctx context.Context, attrs database.QuickTipAttrs) (*database.QuickTip, error) {
	if err := validate(attrs); err != nil {
		return nil, err
	}

	tip := database.QuickTip{
		Title:       attrs.Title,
		Description: attrs.Description,
		IsActive:    attrs.IsActive,
		SortOrder:   attrs.SortOrder,
	}

	if err := q.DB.Sql().WithContext(ctx).Create(&tip).Error; err != nil {
		return nil, fmt.Errorf("issue creating quick tip [%s]: %w", attrs.Title, err)
	}

	return &tip, nil
}

// Active lists enabled tips by sort order, newest first within a position.
func (q QuickTips) Active(ctx context.Context, limit int) ([]database.QuickTip, error) {
	var tips []database.QuickTip

	err := q.DB.Sql().
		WithContext(ctx).
		Where("quick_tips.is_active = ?", true).
		Order(tipsOrder).
		Limit(limit).
		Find(&tips).Error

	if err != nil {
		return nil, fmt.Errorf("issue listing quick tips: %w", err)
	}

	return tips, nil
}
